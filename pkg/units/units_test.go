package units

import (
	"math"
	"testing"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		name  string
		prefs Preferences
		mm    int
		value float64
		unit  string
	}{
		{name: "metric", prefs: Preferences{Length: Meters}, mm: 6000, value: 6.0, unit: "m"},
		{name: "imperial", prefs: Preferences{Length: Feet}, mm: 3048, value: 10.0, unit: "ft"},
		{name: "zero", prefs: Preferences{}, mm: 0, value: 0, unit: "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, u := tt.prefs.Depth(tt.mm)
			if math.Abs(v-tt.value) > 1e-9 || u != tt.unit {
				t.Errorf("Depth(%d) = %v %s, expected %v %s", tt.mm, v, u, tt.value, tt.unit)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	for _, s := range []string{"", "m", "Metric", " meters "} {
		if l, err := ParseLength(s); err != nil || l != Meters {
			t.Errorf("ParseLength(%q) = %v, %v; expected meters", s, l, err)
		}
	}
	for _, s := range []string{"ft", "FEET", "imperial"} {
		if l, err := ParseLength(s); err != nil || l != Feet {
			t.Errorf("ParseLength(%q) = %v, %v; expected feet", s, l, err)
		}
	}
	if _, err := ParseLength("furlongs"); err == nil {
		t.Error("expected error for unknown unit")
	}
}
