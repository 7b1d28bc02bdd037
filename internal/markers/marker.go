package markers

import (
	"github.com/google/uuid"

	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/profile"
	"github.com/chrissnell/diveprofile/pkg/gas"
)

// Axis converts a data value into a screen coordinate.
type Axis interface {
	PosAtValue(v float64) float64
}

// View is the part of the owning profile view that markers depend on. The
// view swaps axes or edits the hidden set and then calls Recalculate.
type View struct {
	TimeAxis   Axis
	DepthAxis  Axis
	Icons      IconSet
	Classifier *Classifier
	Hidden     *HiddenSet
}

// Marker is one event drawn on the profile. Only its position and
// visibility change after construction.
type Marker struct {
	id      uuid.UUID
	view    *View
	ev      *dive.Event
	icon    Icon
	tooltip string

	depth   int
	depthOK bool

	x, y             float64
	offsetX, offsetY float64
	visible          bool
}

// New classifies ev, looks up its depth and places it.
func New(v *View, d *dive.Dive, ev *dive.Event, lastMix gas.Mix, pi profile.Info) *Marker {
	m := &Marker{
		id:   uuid.New(),
		view: v,
		ev:   ev,
	}

	depth, err := pi.DepthAt(ev.Time)
	m.depth, m.depthOK = depth, err == nil

	m.icon, m.tooltip = v.Classifier.Classify(Context{Dive: d, Event: ev, LastMix: lastMix})
	if m.icon == Bookmark {
		// sit above the profile line instead of covering it
		_, h := v.Icons.Size(m.icon)
		m.offsetY = -h
	}

	m.Recalculate()
	return m
}

// Recalculate refreshes position and visibility from the view.
func (m *Marker) Recalculate() {
	if m.ev == nil {
		return
	}
	if !m.depthOK {
		m.visible = false
		return
	}
	m.visible = !m.view.Hidden.IsHidden(m.ev.Name, m.ev.Flags)
	m.x = m.view.TimeAxis.PosAtValue(float64(m.ev.Time))
	m.y = m.view.DepthAxis.PosAtValue(float64(m.depth))
}

func (m *Marker) ID() uuid.UUID { return m.id }
func (m *Marker) Event() *dive.Event { return m.ev }
func (m *Marker) Icon() Icon { return m.icon }
func (m *Marker) Tooltip() string { return m.tooltip }
func (m *Marker) Visible() bool { return m.visible }
func (m *Marker) Pos() (x, y float64) { return m.x, m.y }
func (m *Marker) Offset() (dx, dy float64) { return m.offsetX, m.offsetY }

// Depth returns the plotted depth at the event time, if one exists.
func (m *Marker) Depth() (int, bool) {
	return m.depth, m.depthOK
}

// Recalculate re-places every marker, e.g. after an axis change.
func (v *View) Recalculate(markers []*Marker) {
	for _, m := range markers {
		m.Recalculate()
	}
}

// Build creates markers for the interesting events of a dive computer,
// feeding each one the gas that was breathed before it.
func (v *View) Build(d *dive.Dive, dc *dive.Computer, pi profile.Info, firstSecond, lastSecond int) []*Marker {
	var markers []*Marker
	lastMix := d.InitialMix()

	for i := range dc.Events {
		ev := &dc.Events[i]
		if IsInteresting(dc, ev, pi, firstSecond, lastSecond) {
			markers = append(markers, New(v, d, ev, lastMix, pi))
		}
		if ev.IsGasChange() {
			lastMix = d.GasMixOfEvent(ev)
		}
	}
	return markers
}
