package markers

import (
	"testing"

	"github.com/chrissnell/diveprofile/internal/axis"
	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/profile"
	"github.com/chrissnell/diveprofile/pkg/gas"
)

func testView() *View {
	return &View{
		TimeAxis:   axis.NewLinear(0, 600, 0, 600),
		DepthAxis:  axis.NewLinear(0, 30000, 0, 300),
		Icons:      DefaultIcons{},
		Classifier: NewClassifier(Preferences{ShowICD: true, SeverityFlags: true}, nil),
		Hidden:     NewHiddenSet(),
	}
}

func TestMarkerPlacement(t *testing.T) {
	v := testView()
	dc := testComputer()
	pi := profile.FromComputer(dc)
	d := &dive.Dive{}

	m := New(v, d, &dive.Event{Name: "ascent", Time: 20}, gas.Air, pi)
	if !m.Visible() {
		t.Fatal("marker should be visible")
	}
	if x, y := m.Pos(); x != 20 || y != 50 {
		t.Errorf("Pos() = (%v, %v), expected (20, 50)", x, y)
	}
	if depth, ok := m.Depth(); !ok || depth != 5000 {
		t.Errorf("Depth() = %d, %v", depth, ok)
	}
	if m.ID().String() == "" || m.Event().Name != "ascent" || m.Icon() != Warning || m.Tooltip() != "ascent" {
		t.Errorf("unexpected accessors: %v %v %q", m.ID(), m.Icon(), m.Tooltip())
	}

	// zoom the time axis and re-place
	v.TimeAxis.(*axis.Linear).SetRange(0, 300)
	v.Recalculate([]*Marker{m})
	if x, _ := m.Pos(); x != 40 {
		t.Errorf("Pos() after zoom x = %v, expected 40", x)
	}
}

func TestMarkerDepthNotFound(t *testing.T) {
	v := testView()
	pi := profile.FromComputer(testComputer())

	m := New(v, &dive.Dive{}, &dive.Event{Name: "ascent", Time: 15}, gas.Air, pi)
	if m.Visible() {
		t.Error("marker without a depth should be hidden")
	}
	m.Recalculate()
	if m.Visible() {
		t.Error("marker without a depth should stay hidden")
	}
}

func TestMarkerHidden(t *testing.T) {
	v := testView()
	pi := profile.FromComputer(testComputer())
	m := New(v, &dive.Dive{}, &dive.Event{Name: "ascent", Time: 30}, gas.Air, pi)

	v.Hidden.Hide("ascent", 0)
	m.Recalculate()
	if m.Visible() {
		t.Error("hidden event should not be visible")
	}

	v.Hidden.Show("ascent", 0)
	m.Recalculate()
	if !m.Visible() {
		t.Error("event should be visible again")
	}
}

func TestBookmarkOffset(t *testing.T) {
	v := testView()
	pi := profile.FromComputer(testComputer())

	m := New(v, &dive.Dive{}, &dive.Event{Name: "bookmark", Time: 30, Type: dive.EventBookmark}, gas.Air, pi)
	if m.Icon() != Bookmark {
		t.Fatalf("Icon() = %v", m.Icon())
	}
	if dx, dy := m.Offset(); dx != 0 || dy != -22 {
		t.Errorf("Offset() = (%v, %v), expected (0, -22)", dx, dy)
	}

	plain := New(v, &dive.Dive{}, &dive.Event{Name: "ascent", Time: 30}, gas.Air, pi)
	if _, dy := plain.Offset(); dy != 0 {
		t.Errorf("non-bookmark offset = %v", dy)
	}
}

func TestBuild(t *testing.T) {
	d := &dive.Dive{Cylinders: []dive.Cylinder{
		{Mix: gas.Mix{O2: 180, He: 450}},
		{Mix: gas.Mix{O2: 500}},
		{Mix: gas.Mix{O2: 1000}},
	}}

	dc := &dive.Computer{Duration: 600}
	for s := 0; s <= 600; s += 10 {
		depth := 20000
		if s == 0 || s == 600 {
			depth = 0
		}
		dc.Samples = append(dc.Samples, dive.Sample{Time: s, DepthMM: depth})
	}
	dc.Events = []dive.Event{
		{Name: "gaschange", Time: 0, Type: dive.EventGasChange, Gas: dive.EventGas{Index: 0}},
		{Name: "surface", Time: 10, Type: dive.EventSurface, Gas: dive.EventGas{Index: -1}},
		{Name: "bookmark", Time: 200, Type: dive.EventBookmark, Gas: dive.EventGas{Index: -1}},
		{Name: "gaschange", Time: 300, Type: dive.EventGasChange, Gas: dive.EventGas{Index: 1}},
		{Name: "gaschange", Time: 400, Type: dive.EventGasChange, Gas: dive.EventGas{Index: 2}},
	}

	v := testView()
	markers := v.Build(d, dc, profile.FromComputer(dc), 0, 600)

	expected := []Icon{Bookmark, GasChangeEANICD, GasChangeOxygen}
	if len(markers) != len(expected) {
		t.Fatalf("Build() returned %d markers, expected %d", len(markers), len(expected))
	}
	for i, m := range markers {
		if m.Icon() != expected[i] {
			t.Errorf("marker %d icon = %v, expected %v", i, m.Icon(), expected[i])
		}
	}
}

func TestIconNames(t *testing.T) {
	if Violation.String() != "violation" || GasChangeEANICD.String() != "gaschangeEANICD" {
		t.Errorf("unexpected icon names")
	}
	if Icon(99).String() != "unknown" {
		t.Errorf("out of range icon name = %q", Icon(99).String())
	}
	for i := Warning; i <= Violation; i++ {
		if i != Transparent && (DefaultIcons{}).Glyph(i) == "" {
			t.Errorf("icon %v has no glyph", i)
		}
	}
	if w, h := (DefaultIcons{}).Size(Transparent); w != 1 || h != 22 {
		t.Errorf("transparent size = %vx%v", w, h)
	}
}
