// Package gas implements breathing-gas mixture arithmetic: naming mixes and
// detecting isobaric counterdiffusion on a gas switch.
package gas

import (
	"fmt"
	"math"
)

// O2InAir is the oxygen fraction of air in per-mille.
const O2InAir = 209

// Mix is a breathing gas given as per-mille fractions of oxygen and helium.
// The remainder is nitrogen. An O2 fraction of zero means air.
type Mix struct {
	O2 int `json:"o2"`
	He int `json:"he"`
}

// Air is the default mix.
var Air = Mix{}

// OxygenPermille returns the effective oxygen fraction, substituting air for an unset value.
func (m Mix) OxygenPermille() int {
	if m.O2 == 0 {
		return O2InAir
	}
	return m.O2
}

// HeliumPermille returns the helium fraction.
func (m Mix) HeliumPermille() int {
	return m.He
}

// NitrogenPermille returns the inert remainder that is not helium.
func (m Mix) NitrogenPermille() int {
	return 1000 - m.OxygenPermille() - m.HeliumPermille()
}

// IsAir reports whether the mix is air, allowing for a ±1‰ rounding error.
func (m Mix) IsAir() bool {
	if m.He != 0 {
		return false
	}
	return m.O2 == 0 || (m.O2 >= O2InAir-1 && m.O2 <= O2InAir+1)
}

// IsOxygen reports whether the mix is pure oxygen.
func (m Mix) IsOxygen() bool {
	return m.He == 0 && m.OxygenPermille() == 1000
}

// Name returns the conventional short name of the mix: "air", "oxygen",
// "EAN32" or "18/45". The result is not localized.
func (m Mix) Name() string {
	if m.IsAir() {
		return "air"
	}
	if m.IsOxygen() {
		return "oxygen"
	}

	o2 := (m.OxygenPermille() + 5) / 10
	he := (m.HeliumPermille() + 5) / 10
	if he != 0 {
		return fmt.Sprintf("%d/%d", o2, he)
	}
	return fmt.Sprintf("EAN%d", o2)
}

func (m Mix) String() string {
	return m.Name()
}

// ICD holds the inert gas deltas of a switch, in per-mille.
type ICD struct {
	DN2 int
	DHe int
}

// Threshold is the nitrogen increase in percent above which a switch that
// drops helium counts as an isobaric counterdiffusion risk.
func (d ICD) Threshold() float64 {
	return math.RoundToEven(float64(-d.DHe)/5.0) / 10.0
}

// IsobaricCounterdiffusion compares the previous and next mixes. It reports
// a risk when helium decreases and nitrogen rises by more than a fifth of
// the helium drop.
func IsobaricCounterdiffusion(from, to Mix) (bool, ICD) {
	d := ICD{
		DN2: to.NitrogenPermille() - from.NitrogenPermille(),
		DHe: to.HeliumPermille() - from.HeliumPermille(),
	}
	return d.DHe < 0 && 5*d.DN2 > -d.DHe, d
}
