// SPDX-License-Identifier: MIT

package units

// Physical constants in SI units. The values are those of gwtools, which the
// published surrogate waveforms were generated with; G·MSunSI equals the
// IAU nominal solar mass parameter 1.32712442099e20 m³ s⁻².
const (
	// G is Newton's constant [m³ kg⁻¹ s⁻²].
	G = 6.67384e-11

	// C is the speed of light in vacuum [m s⁻¹].
	C = 299792458.0

	// MSunSI is one solar mass [kg].
	MSunSI = 1.9885469549614615e30

	// MpcSI is one megaparsec [m].
	MpcSI = 3.085677581491367e22
)
