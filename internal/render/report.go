// Package render presents the markers of a dive as a structured report, a
// terminal table or an SVG profile.
package render

import (
	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/markers"
)

// MarkerReport is the serializable view of one marker.
type MarkerReport struct {
	ID      string       `json:"id"`
	Time    int          `json:"time"`
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Icon    markers.Icon `json:"icon"`
	Tooltip string       `json:"tooltip"`
	DepthMM *int         `json:"depth_mm,omitempty"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Visible bool         `json:"visible"`
}

// Report describes the markers of one dive computer.
type Report struct {
	Dive     int            `json:"dive"`
	Location string         `json:"location,omitempty"`
	Computer string         `json:"computer,omitempty"`
	Duration int            `json:"duration"`
	Markers  []MarkerReport `json:"markers"`
}

// NewReport snapshots the current state of the markers.
func NewReport(d *dive.Dive, dc *dive.Computer, ms []*markers.Marker) Report {
	r := Report{
		Dive:     d.Number,
		Location: d.Location,
		Computer: dc.Model,
		Duration: dc.Duration,
		Markers:  make([]MarkerReport, 0, len(ms)),
	}

	for _, m := range ms {
		ev := m.Event()
		x, y := m.Pos()
		mr := MarkerReport{
			ID:      m.ID().String(),
			Time:    ev.Time,
			Name:    ev.Name,
			Type:    ev.Type.String(),
			Icon:    m.Icon(),
			Tooltip: m.Tooltip(),
			X:       x,
			Y:       y,
			Visible: m.Visible(),
		}
		if depth, ok := m.Depth(); ok {
			mr.DepthMM = &depth
		}
		r.Markers = append(r.Markers, mr)
	}
	return r
}
