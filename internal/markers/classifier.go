// Package markers turns dive computer events into positioned, classified
// markers for the dive profile view.
package markers

import (
	"strings"

	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/i18n"
	"github.com/chrissnell/diveprofile/pkg/gas"
	"github.com/chrissnell/diveprofile/pkg/units"
)

// SeverityDecoder extracts an event severity from its flags. Dive computer
// backends that do not report severities leave the decoder unset.
type SeverityDecoder interface {
	Severity(dive.Flags) int
}

// FlagSeverity reads the severity field of the event flags.
type FlagSeverity struct{}

func (FlagSeverity) Severity(f dive.Flags) int {
	return f.Severity()
}

// Preferences are the user settings that influence classification.
type Preferences struct {
	ShowICD       bool
	SeverityFlags bool
	Units         units.Preferences
}

// Classifier picks the icon and tooltip for an event.
type Classifier struct {
	Severity   SeverityDecoder
	ShowICD    bool
	Units      units.Preferences
	Translator i18n.Translator
}

// NewClassifier creates a classifier from user preferences. A nil translator
// leaves strings untranslated.
func NewClassifier(prefs Preferences, tr i18n.Translator) *Classifier {
	if tr == nil {
		tr = i18n.Identity{}
	}
	c := &Classifier{
		ShowICD:    prefs.ShowICD,
		Units:      prefs.Units,
		Translator: tr,
	}
	if prefs.SeverityFlags {
		c.Severity = FlagSeverity{}
	}
	return c
}

// Context is everything the classifier looks at for one event.
type Context struct {
	Dive    *dive.Dive
	Event   *dive.Event
	LastMix gas.Mix
}

// rule returns an icon and true when it applies to the event.
type rule struct {
	name  string
	match func(c *Classifier, ctx *Context) (Icon, bool)
}

// Rules are tried in order and the first match wins.
var rules = []rule{
	{"unnamed", func(_ *Classifier, ctx *Context) (Icon, bool) {
		return Warning, ctx.Event.Name == ""
	}},
	{"modechange", func(_ *Classifier, ctx *Context) (Icon, bool) {
		if !strings.EqualFold(ctx.Event.Name, "modechange") {
			return 0, false
		}
		if ctx.Event.Value == 0 {
			return Bailout, true
		}
		return OnCCRLoop, true
	}},
	{"bookmark", func(_ *Classifier, ctx *Context) (Icon, bool) {
		return Bookmark, ctx.Event.Type == dive.EventBookmark
	}},
	{"gaschange", func(c *Classifier, ctx *Context) (Icon, bool) {
		if !ctx.Event.IsGasChange() {
			return 0, false
		}
		mix, icd, _ := c.gasChange(ctx)
		return gasChangeIcon(mix, icd), true
	}},
	{"placeholder", func(c *Classifier, ctx *Context) (Icon, bool) {
		// Some computers log a heading in every sample, and an "SP change"
		// at t=0 only records the dive type. Keep their tooltips without
		// cluttering the profile.
		ev := ctx.Event
		if c.severity(ev) == dive.SeverityState ||
			strings.EqualFold(ev.Name, "heading") ||
			(strings.EqualFold(ev.Name, "SP change") && ev.Time == 0) {
			return Transparent, true
		}
		return 0, false
	}},
	{"severity", func(c *Classifier, ctx *Context) (Icon, bool) {
		switch c.severity(ctx.Event) {
		case dive.SeverityInfo:
			return Info, true
		case dive.SeverityWarn:
			return Warning, true
		case dive.SeverityAlarm:
			return Violation, true
		}
		return 0, false
	}},
	{"violation names", func(_ *Classifier, ctx *Context) (Icon, bool) {
		return Violation, nameIn(ctx.Event.Name, violationNames)
	}},
	{"info names", func(_ *Classifier, ctx *Context) (Icon, bool) {
		return Info, nameIn(ctx.Event.Name, infoNames)
	}},
}

var violationNames = []string{
	"violation",
	// Uemis
	"Safety stop violation",
	"pO₂ ascend alarm",
	"RGT alert",
	"Dive time alert",
	"Low battery alert",
	"Speed alarm",
}

var infoNames = []string{
	"non stop time",
	"safety stop",
	"safety stop (voluntary)",
	// Uemis
	"Tank change suggested",
	"Marker",
}

// Icon returns the icon category of the event.
func (c *Classifier) Icon(ctx Context) Icon {
	for _, r := range rules {
		if icon, ok := r.match(c, &ctx); ok {
			return icon
		}
	}
	// TODO: guess from the event type once unknown vendor events are catalogued.
	return Warning
}

// Classify returns both the icon and the tooltip of the event.
func (c *Classifier) Classify(ctx Context) (Icon, string) {
	return c.Icon(ctx), c.Tooltip(ctx)
}

func (c *Classifier) severity(ev *dive.Event) int {
	if c.Severity == nil {
		return dive.SeverityNone
	}
	return c.Severity.Severity(ev.Flags)
}

// gasChange resolves the mix switched to and its counterdiffusion data.
// With ICD display disabled the comparison is skipped entirely.
func (c *Classifier) gasChange(ctx *Context) (gas.Mix, bool, gas.ICD) {
	mix := ctx.Dive.GasMixOfEvent(ctx.Event)
	if !c.ShowICD {
		return mix, false, gas.ICD{}
	}
	icd, data := gas.IsobaricCounterdiffusion(ctx.LastMix, mix)
	return mix, icd, data
}

func gasChangeIcon(mix gas.Mix, icd bool) Icon {
	var icon Icon
	switch {
	case mix.He != 0:
		icon = GasChangeTrimix
	case mix.IsAir():
		icon = GasChangeAir
	case mix.IsOxygen():
		icon = GasChangeOxygen
	default:
		icon = GasChangeEAN
	}
	if icd {
		// each ICD variant directly follows its plain icon
		icon++
	}
	return icon
}

func nameIn(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
