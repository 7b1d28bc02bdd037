package markers

import (
	"sort"

	"github.com/chrissnell/diveprofile/internal/constants"
	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/profile"
)

// surfaceMargin is how close to the start or end of a dive a "surface"
// event has to be before it is considered noise.
const surfaceMargin = 30

// IsInteresting decides whether an event is worth a marker at all for the
// plotted range [firstSecond, lastSecond).
func IsInteresting(dc *dive.Computer, ev *dive.Event, pi profile.Info, firstSecond, lastSecond int) bool {
	if ev.Time < firstSecond || ev.Time >= lastSecond {
		return false
	}

	// Many computers report the initial gas as a gas change.
	if ev.Name == "gaschange" {
		if ev.Time == 0 {
			return false
		}
		if len(dc.Samples) > 0 && ev.Time == dc.Samples[0].Time {
			return false
		}
		depth, err := pi.DepthAt(ev.Time)
		if err != nil || depth < constants.SurfaceThresholdMM {
			return false
		}
	}

	if ev.Name == "surface" {
		if ev.Time <= surfaceMargin || ev.Time+surfaceMargin >= dc.Duration {
			return false
		}
	}

	return true
}

// HiddenEvent identifies a class of events the user chose not to see.
type HiddenEvent struct {
	Name     string `yaml:"name" json:"name"`
	Severity int    `yaml:"severity" json:"severity"`
}

// HiddenSet is the user's set of hidden event classes, keyed by name and
// severity. The zero value is ready to use. A nil set hides nothing.
type HiddenSet struct {
	hidden map[HiddenEvent]struct{}
}

// NewHiddenSet returns a set holding the given entries.
func NewHiddenSet(entries ...HiddenEvent) *HiddenSet {
	h := &HiddenSet{}
	for _, e := range entries {
		h.hide(e)
	}
	return h
}

func (h *HiddenSet) hide(e HiddenEvent) {
	if h.hidden == nil {
		h.hidden = make(map[HiddenEvent]struct{})
	}
	h.hidden[e] = struct{}{}
}

// Hide hides all events sharing the name and severity of the given flags.
func (h *HiddenSet) Hide(name string, flags dive.Flags) {
	h.hide(HiddenEvent{Name: name, Severity: flags.Severity()})
}

// Show undoes Hide.
func (h *HiddenSet) Show(name string, flags dive.Flags) {
	delete(h.hidden, HiddenEvent{Name: name, Severity: flags.Severity()})
}

// ShowAll clears the set.
func (h *HiddenSet) ShowAll() {
	h.hidden = nil
}

// IsHidden reports whether an event with this name and flags is hidden.
func (h *HiddenSet) IsHidden(name string, flags dive.Flags) bool {
	if h == nil {
		return false
	}
	_, ok := h.hidden[HiddenEvent{Name: name, Severity: flags.Severity()}]
	return ok
}

// Entries lists the hidden classes sorted by name, then severity.
func (h *HiddenSet) Entries() []HiddenEvent {
	if h == nil {
		return nil
	}
	entries := make([]HiddenEvent, 0, len(h.hidden))
	for e := range h.hidden {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Severity < entries[j].Severity
	})
	return entries
}
