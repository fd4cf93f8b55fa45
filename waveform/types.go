// SPDX-License-Identifier: MIT

package waveform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mode identifies one spherical-harmonic component (l, m) of the radiation.
// It is comparable and used directly as a map key.
type Mode struct {
	L int
	M int
}

// Dominant is the (2,2) mode every model generates first.
var Dominant = Mode{L: 2, M: 2}

// String renders the mode as "(l,m)".
func (md Mode) String() string {
	return fmt.Sprintf("(%d,%d)", md.L, md.M)
}

// Mirror returns (l, −m).
func (md Mode) Mirror() Mode {
	return Mode{L: md.L, M: -md.M}
}

// IsDiagonal reports whether l == m.
func (md Mode) IsDiagonal() bool {
	return md.L == md.M
}

// ParseMode accepts "(l,m)", "l,m" and the archive key form "l2_m2".
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	var ls, ms string
	switch {
	case strings.HasPrefix(s, "l") && strings.Contains(s, "_m"):
		parts := strings.SplitN(s[1:], "_m", 2)
		ls, ms = parts[0], parts[1]
	default:
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return Mode{}, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
		}
		ls, ms = parts[0], parts[1]
	}
	l, err := strconv.Atoi(strings.TrimSpace(ls))
	if err != nil {
		return Mode{}, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
	}
	m, err := strconv.Atoi(strings.TrimSpace(ms))
	if err != nil {
		return Mode{}, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
	}

	return Mode{L: l, M: m}, nil
}

// ParseModeList parses a list such as "(2,2),(3,3)" or "2,2;3,3".
func ParseModeList(s string) ([]Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var chunks []string
	if strings.Contains(s, "(") {
		for _, c := range strings.Split(s, ")") {
			c = strings.Trim(strings.TrimSpace(c), ",;")
			if c != "" {
				chunks = append(chunks, c+")")
			}
		}
	} else {
		chunks = strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ' ' })
	}
	out := make([]Mode, 0, len(chunks))
	for _, c := range chunks {
		md, err := ParseMode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, md)
	}

	return out, nil
}

// SortModes orders modes by l ascending, then m ascending, in place.
func SortModes(modes []Mode) {
	sort.Slice(modes, func(i, j int) bool {
		if modes[i].L != modes[j].L {
			return modes[i].L < modes[j].L
		}
		return modes[i].M < modes[j].M
	})
}

// Set is one evaluation's waveform: a time axis and one complex series per mode.
// Every series has len(Time) samples.
type Set struct {
	Time  []float64
	Modes map[Mode][]complex128
}

// NewSet allocates an empty Set over the given time axis. The axis is copied.
func NewSet(time []float64) Set {
	t := make([]float64, len(time))
	copy(t, time)

	return Set{Time: t, Modes: make(map[Mode][]complex128)}
}

// Clone returns a deep copy of s.
// Complexity: O(modes · samples).
func (s Set) Clone() Set {
	out := NewSet(s.Time)
	for md, h := range s.Modes {
		out.Modes[md] = cloneSeries(h)
	}

	return out
}

// Len returns the number of time samples.
func (s Set) Len() int {
	return len(s.Time)
}

// Has reports whether mode md is present.
func (s Set) Has(md Mode) bool {
	_, ok := s.Modes[md]
	return ok
}

// SortedModes returns the modes of s in (l, m) order.
func (s Set) SortedModes() []Mode {
	out := make([]Mode, 0, len(s.Modes))
	for md := range s.Modes {
		out = append(out, md)
	}
	SortModes(out)

	return out
}

// Validate checks that every series matches the time axis length.
func (s Set) Validate() error {
	for md, h := range s.Modes {
		if len(h) != len(s.Time) {
			return fmt.Errorf("Set.Validate: mode %s has %d samples, want %d: %w",
				md, len(h), len(s.Time), ErrLengthMismatch)
		}
	}

	return nil
}

func cloneSeries(h []complex128) []complex128 {
	out := make([]complex128, len(h))
	copy(out, h)

	return out
}
