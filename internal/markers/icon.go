package markers

// Icon is the visual category of an event marker.
type Icon int

const (
	Warning Icon = iota
	Bailout
	OnCCRLoop
	Bookmark
	GasChangeTrimix
	GasChangeTrimixICD
	GasChangeAir
	GasChangeAirICD
	GasChangeOxygen
	GasChangeOxygenICD
	GasChangeEAN
	GasChangeEANICD
	Transparent
	Info
	Violation
)

var iconNames = [...]string{
	Warning:            "warning",
	Bailout:            "bailout",
	OnCCRLoop:          "onCCRLoop",
	Bookmark:           "bookmark",
	GasChangeTrimix:    "gaschangeTrimix",
	GasChangeTrimixICD: "gaschangeTrimixICD",
	GasChangeAir:       "gaschangeAir",
	GasChangeAirICD:    "gaschangeAirICD",
	GasChangeOxygen:    "gaschangeOxygen",
	GasChangeOxygenICD: "gaschangeOxygenICD",
	GasChangeEAN:       "gaschangeEAN",
	GasChangeEANICD:    "gaschangeEANICD",
	Transparent:        "transparent",
	Info:               "info",
	Violation:          "violation",
}

func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return "unknown"
	}
	return iconNames[i]
}

// MarshalText lets icons appear by name in JSON and MessagePack output.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// IsGasChange reports whether the icon belongs to one of the gas-change families.
func (i Icon) IsGasChange() bool {
	return i >= GasChangeTrimix && i <= GasChangeEANICD
}

// IsICD reports whether the icon is the counterdiffusion variant of a gas change.
func (i Icon) IsICD() bool {
	switch i {
	case GasChangeTrimixICD, GasChangeAirICD, GasChangeOxygenICD, GasChangeEANICD:
		return true
	}
	return false
}

// IconSet supplies the artwork for each icon category.
type IconSet interface {
	// Size returns the rendered width and height of the icon in pixels.
	Size(Icon) (w, h float64)
	// Glyph returns a short textual stand-in for the icon.
	Glyph(Icon) string
}

// DefaultIcons is a text-based icon set. Every icon is square except the
// transparent placeholder, which is narrow and tall so it still catches
// the pointer.
type DefaultIcons struct {
	IconSize float64
}

var defaultGlyphs = [...]string{
	Warning:            "⚠",
	Bailout:            "B",
	OnCCRLoop:          "C",
	Bookmark:           "⚑",
	GasChangeTrimix:    "T",
	GasChangeTrimixICD: "T!",
	GasChangeAir:       "A",
	GasChangeAirICD:    "A!",
	GasChangeOxygen:    "O",
	GasChangeOxygenICD: "O!",
	GasChangeEAN:       "N",
	GasChangeEANICD:    "N!",
	Transparent:        "",
	Info:               "ℹ",
	Violation:          "✖",
}

func (s DefaultIcons) size() float64 {
	if s.IconSize <= 0 {
		return 22
	}
	return s.IconSize
}

func (s DefaultIcons) Size(i Icon) (float64, float64) {
	if i == Transparent {
		return 1, s.size()
	}
	return s.size(), s.size()
}

func (s DefaultIcons) Glyph(i Icon) string {
	if i < 0 || int(i) >= len(defaultGlyphs) {
		return "?"
	}
	return defaultGlyphs[i]
}
