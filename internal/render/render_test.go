package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/markers"
	"github.com/chrissnell/diveprofile/internal/profile"
	"github.com/chrissnell/diveprofile/pkg/gas"
	"github.com/chrissnell/diveprofile/pkg/units"
)

var testGeometry = Geometry{Width: 700, Height: 400, MarginTop: 20, MarginBottom: 20, MarginLeft: 50, MarginRight: 50}

func fixture(t *testing.T) (*dive.Dive, *dive.Computer, profile.Info, *markers.View, []*markers.Marker) {
	t.Helper()

	d := &dive.Dive{
		Number:    7,
		Location:  "Jetty",
		Cylinders: []dive.Cylinder{{Mix: gas.Air}, {Mix: gas.Mix{O2: 500}}},
	}
	dc := &dive.Computer{Model: "Perdix", Duration: 600}
	for s := 0; s <= 600; s += 60 {
		depth := 18000
		if s == 0 || s == 600 {
			depth = 0
		}
		dc.Samples = append(dc.Samples, dive.Sample{Time: s, DepthMM: depth})
	}
	dc.Events = []dive.Event{
		{Name: "bookmark", Time: 120, Type: dive.EventBookmark, Gas: dive.EventGas{Index: -1}},
		{Name: "heading", Time: 180, Value: 270, Type: dive.EventHeading, Gas: dive.EventGas{Index: -1}},
		{Name: "ascent", Time: 200, Flags: dive.FlagBegin, Gas: dive.EventGas{Index: -1}},
		{Name: "gaschange", Time: 300, Type: dive.EventGasChange, Gas: dive.EventGas{Index: 1}},
		{Name: "violation", Time: 360, Gas: dive.EventGas{Index: -1}},
	}

	pi := profile.FromComputer(dc)
	ta, da := testGeometry.Axes(pi)
	v := &markers.View{
		TimeAxis:   ta,
		DepthAxis:  da,
		Icons:      markers.DefaultIcons{},
		Classifier: markers.NewClassifier(markers.Preferences{}, nil),
		Hidden:     markers.NewHiddenSet(markers.HiddenEvent{Name: "violation"}),
	}
	return d, dc, pi, v, v.Build(d, dc, pi, 0, 600)
}

func TestNewReport(t *testing.T) {
	d, dc, _, _, ms := fixture(t)
	r := NewReport(d, dc, ms)

	if r.Dive != 7 || r.Computer != "Perdix" || len(r.Markers) != 5 {
		t.Fatalf("unexpected report: %+v", r)
	}

	ascent := r.Markers[2]
	if ascent.DepthMM != nil || ascent.Visible {
		t.Errorf("ascent at 200s has no sample and should be hidden: %+v", ascent)
	}
	if ascent.Tooltip != "ascent begin" {
		t.Errorf("ascent tooltip = %q", ascent.Tooltip)
	}

	gc := r.Markers[3]
	if gc.Icon != markers.GasChangeEAN || gc.DepthMM == nil || *gc.DepthMM != 18000 || !gc.Visible {
		t.Errorf("unexpected gas change report: %+v", gc)
	}
	if r.Markers[4].Visible {
		t.Error("hidden violation reported as visible")
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if !bytes.Contains(out, []byte(`"icon":"gaschangeEAN"`)) {
		t.Errorf("icon not encoded by name: %s", out)
	}
}

func TestGeometryAxes(t *testing.T) {
	_, _, pi, _, _ := fixture(t)
	ta, da := testGeometry.Axes(pi)

	if ta.PosAtValue(0) != 50 || ta.PosAtValue(600) != 650 {
		t.Errorf("time axis maps to [%v, %v]", ta.PosAtValue(0), ta.PosAtValue(600))
	}
	if da.PosAtValue(0) != 20 || da.PosAtValue(19800) != 380 {
		t.Errorf("depth axis maps to [%v, %v]", da.PosAtValue(0), da.PosAtValue(19800))
	}
}

func TestTable(t *testing.T) {
	d, dc, _, v, ms := fixture(t)

	var buf bytes.Buffer
	if err := Table(&buf, NewReport(d, dc, ms), v.Icons, units.Preferences{}); err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Dive #7 Jetty (Perdix)", "TIME", "5:00", "18.0m", "gaschange: EAN50 (cyl. 2)", "heading: 270", "bookmark"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Table(&buf, Report{Dive: 1}, v.Icons, units.Preferences{}); err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	if !strings.Contains(buf.String(), "no events to show") {
		t.Errorf("empty table output: %q", buf.String())
	}
}

func TestSVG(t *testing.T) {
	_, _, pi, v, ms := fixture(t)

	var buf bytes.Buffer
	if err := SVG(&buf, pi, ms, v, testGeometry, units.Preferences{}); err != nil {
		t.Fatalf("SVG() error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if !strings.Contains(out, "<polyline") {
		t.Error("profile line missing")
	}
	if !strings.Contains(out, "<title>gaschange: EAN50 (cyl. 2)</title>") {
		t.Error("gas change marker missing")
	}
	if !strings.Contains(out, `class="event transparent"`) || !strings.Contains(out, "<title>heading: 270</title>") {
		t.Error("transparent heading marker missing")
	}
	if strings.Contains(out, "violation") || strings.Contains(out, "ascent") {
		t.Error("hidden markers were drawn")
	}
	// bookmark sits one icon height above its sample
	x, y := ms[0].Pos()
	if want := fmt.Sprintf("translate(%.1f,%.1f)", x, y-22); !strings.Contains(out, want) {
		t.Errorf("bookmark not offset, want %s", want)
	}
}
