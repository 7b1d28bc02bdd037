package markers

import (
	"fmt"
	"math"

	"github.com/chrissnell/diveprofile/internal/dive"
)

// Tooltip builds the localized description shown when hovering the marker.
func (c *Classifier) Tooltip(ctx Context) string {
	tr := c.Translator.Translate
	ev := ctx.Event
	name := tr(ev.Name)

	switch {
	case ev.IsGasChange():
		mix, icd, data := c.gasChange(&ctx)
		name += ": " + tr(mix.Name())

		if ev.Gas.Index >= 0 {
			name += fmt.Sprintf(tr(" (cyl. %d)"), ev.Gas.Index+1)
		}
		if data.DHe < 0 {
			cmp := "<"
			if icd {
				cmp = ">"
			}
			name += fmt.Sprintf("\n%s %s:%+.3g%% %s:%+.3g%%%s%+.3g%%",
				tr("ICD"),
				tr("ΔHe"), float64(data.DHe)/10.0,
				tr("ΔN₂"), float64(data.DN2)/10.0,
				cmp, data.Threshold())
		}

	case ev.Name == "modechange":
		name += ": " + tr(dive.Mode(ev.Value).Name())

	case ev.Value != 0:
		switch {
		case isSetpointChange(ev):
			name += fmt.Sprintf(": %.1fbar", float64(ev.Value)/1000.0)
		case ev.Type == dive.EventCeiling && ev.Name == "planned waypoint above ceiling":
			depth, unit := c.Units.Depth(ev.Value * 1000)
			name += fmt.Sprintf(": %d%s", int(math.Round(depth)), unit)
		default:
			name += fmt.Sprintf(": %d", ev.Value)
		}

	case isSetpointChange(ev):
		// a zero-valued setpoint change is how a bailout to open circuit is logged
		name += ":\n" + tr("Manual switch to OC")

	case ev.Flags.Has(dive.FlagBegin):
		name += tr(" begin")

	case ev.Flags.Has(dive.FlagEnd):
		name += tr(" end")
	}

	return name
}

func isSetpointChange(ev *dive.Event) bool {
	return ev.Type == dive.EventPO2 && ev.Name == "SP change"
}
