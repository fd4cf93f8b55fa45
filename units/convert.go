// Package units converts waveforms between geometric units (G = c = 1,
// time in units of total mass M, strain scaled by distance/M) and SI units.
//
//	t_SI = t_geo · G·M/c³
//	h_SI = h_geo · (G·M/c³) / d
//
// with M in kg and d in metres. The conversion is pure rescaling: every
// mode receives the same factor.
package units

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bhptsur/waveform"
)

// TimeScale returns G·M/c³ in seconds for a total mass in solar masses.
func TimeScale(mTotSolar float64) float64 {
	return G * mTotSolar * MSunSI / (C * C * C)
}

// StrainScale returns (G·M/c³)/d for a mass in solar masses and a distance in Mpc.
func StrainScale(mTotSolar, distMpc float64) float64 {
	return TimeScale(mTotSolar) / (distMpc * MpcSI)
}

func checkPhysical(mTotSolar, distMpc float64) error {
	for _, v := range []float64{mTotSolar, distMpc} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("M=%g Msun, d=%g Mpc: %w", mTotSolar, distMpc, ErrInvalidPhysicalParam)
		}
	}
	return nil
}

// ToPhysical rescales a geometric Set to seconds and dimensionless SI strain.
func ToPhysical(s waveform.Set, mTotSolar, distMpc float64) (waveform.Set, error) {
	if err := checkPhysical(mTotSolar, distMpc); err != nil {
		return waveform.Set{}, fmt.Errorf("ToPhysical: %w", err)
	}

	return rescale(s, TimeScale(mTotSolar), StrainScale(mTotSolar, distMpc)), nil
}

// ToGeometric inverts ToPhysical.
func ToGeometric(s waveform.Set, mTotSolar, distMpc float64) (waveform.Set, error) {
	if err := checkPhysical(mTotSolar, distMpc); err != nil {
		return waveform.Set{}, fmt.Errorf("ToGeometric: %w", err)
	}

	return rescale(s, 1/TimeScale(mTotSolar), 1/StrainScale(mTotSolar, distMpc)), nil
}

func rescale(s waveform.Set, timeFactor, strainFactor float64) waveform.Set {
	out := waveform.NewSet(nil)
	out.Time = make([]float64, len(s.Time))
	for i, t := range s.Time {
		out.Time[i] = t * timeFactor
	}
	f := complex(strainFactor, 0)
	for md, h := range s.Modes {
		scaled := make([]complex128, len(h))
		for i, v := range h {
			scaled[i] = v * f
		}
		out.Modes[md] = scaled
	}

	return out
}
