// Package units converts internal measurements (millimetres) into the
// user's preferred display units.
package units

import (
	"fmt"
	"strings"
)

// Length selects the unit system for depths.
type Length int

const (
	Meters Length = iota
	Feet
)

const mmPerFoot = 304.8

// ParseLength maps a configuration value to a Length. An empty value means meters.
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "meters", "metres", "metric":
		return Meters, nil
	case "ft", "feet", "imperial":
		return Feet, nil
	default:
		return Meters, fmt.Errorf("unknown length unit %q", s)
	}
}

func (l Length) String() string {
	if l == Feet {
		return "ft"
	}
	return "m"
}

// Preferences holds display-unit choices.
type Preferences struct {
	Length Length
}

// Depth converts a depth in millimetres to the preferred unit and returns
// the value together with its unit label.
func (p Preferences) Depth(mm int) (float64, string) {
	if p.Length == Feet {
		return float64(mm) / mmPerFoot, Feet.String()
	}
	return float64(mm) / 1000.0, Meters.String()
}
