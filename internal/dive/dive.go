package dive

import (
	"sort"

	"github.com/chrissnell/diveprofile/pkg/gas"
)

// Cylinder is a tank carried on the dive.
type Cylinder struct {
	Description string
	Mix         gas.Mix
}

// Sample is a single depth reading of a dive computer.
type Sample struct {
	Time    int // seconds
	DepthMM int
}

// Computer is the record of one dive computer for a dive.
type Computer struct {
	Model    string
	Duration int // seconds
	Mode     Mode
	Samples  []Sample
	Events   []Event
}

// SortEvents orders the events by time, keeping the recorded order for ties.
func (dc *Computer) SortEvents() {
	sort.SliceStable(dc.Events, func(i, j int) bool {
		return dc.Events[i].Time < dc.Events[j].Time
	})
}

// Dive is a logged dive.
type Dive struct {
	Number    int
	Location  string
	Cylinders []Cylinder
	Computers []Computer
}

// GasMixOfEvent returns the mix a gas-change event switches to. A valid
// cylinder index wins over the mix stored in the event itself.
func (d *Dive) GasMixOfEvent(ev *Event) gas.Mix {
	if d != nil && ev.Gas.Index >= 0 && ev.Gas.Index < len(d.Cylinders) {
		return d.Cylinders[ev.Gas.Index].Mix
	}
	return ev.Gas.Mix
}

// InitialMix is the gas breathed at the start of the dive: the first
// cylinder, or air when no cylinders are recorded.
func (d *Dive) InitialMix() gas.Mix {
	if d == nil || len(d.Cylinders) == 0 {
		return gas.Air
	}
	return d.Cylinders[0].Mix
}
