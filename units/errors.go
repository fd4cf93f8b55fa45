// SPDX-License-Identifier: MIT

package units

import "errors"

// ErrInvalidPhysicalParam is returned for a total mass or distance that is
// not strictly positive and finite.
var ErrInvalidPhysicalParam = errors.New("units: mass and distance must be positive and finite")
