// Package axis maps data values onto screen coordinates.
package axis

// Linear maps the value range [Min, Max] onto the pixel range [From, To].
// From may be greater than To for an inverted axis.
type Linear struct {
	Min, Max float64
	From, To float64
}

// NewLinear returns a linear axis.
func NewLinear(min, max, from, to float64) *Linear {
	return &Linear{Min: min, Max: max, From: from, To: to}
}

// PosAtValue returns the screen coordinate of v. A degenerate value range
// maps everything onto From.
func (a *Linear) PosAtValue(v float64) float64 {
	span := a.Max - a.Min
	if span == 0 {
		return a.From
	}
	return a.From + (v-a.Min)*(a.To-a.From)/span
}

// SetRange changes the value range, as happens when the view zooms.
func (a *Linear) SetRange(min, max float64) {
	a.Min, a.Max = min, max
}
