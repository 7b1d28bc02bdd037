package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/chrissnell/diveprofile/internal/axis"
	"github.com/chrissnell/diveprofile/internal/markers"
	"github.com/chrissnell/diveprofile/internal/profile"
	"github.com/chrissnell/diveprofile/pkg/units"
)

// Geometry is the pixel layout of the rendered profile.
type Geometry struct {
	Width, Height           float64
	MarginTop, MarginBottom float64
	MarginLeft, MarginRight float64
}

// Axes returns a time axis spanning the plotted range left to right and a
// depth axis growing downwards from the surface.
func (g Geometry) Axes(pi profile.Info) (timeAxis, depthAxis *axis.Linear) {
	first, last := pi.Bounds()
	maxDepth := pi.MaxDepth()
	if maxDepth == 0 {
		maxDepth = 1000
	}
	// leave a little room under the deepest point for markers
	maxDepth += maxDepth / 10

	timeAxis = axis.NewLinear(float64(first), float64(last), g.MarginLeft, g.Width-g.MarginRight)
	depthAxis = axis.NewLinear(0, float64(maxDepth), g.MarginTop, g.Height-g.MarginBottom)
	return timeAxis, depthAxis
}

// SVG draws the depth profile with its visible markers. Each marker carries
// its tooltip as an SVG title.
func SVG(w io.Writer, pi profile.Info, ms []*markers.Marker, v *markers.View, g Geometry, prefs units.Preferences) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		g.Width, g.Height, g.Width, g.Height)
	fmt.Fprintf(bw, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	// surface line
	top := v.DepthAxis.PosAtValue(0)
	fmt.Fprintf(bw, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#8be9fd" stroke-width="1"/>`+"\n",
		g.MarginLeft, top, g.Width-g.MarginRight, top)

	// depth labels at the surface and the deepest point
	maxDepth := pi.MaxDepth()
	for _, mm := range []int{0, maxDepth} {
		val, unit := prefs.Depth(mm)
		fmt.Fprintf(bw, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" text-anchor="end" fill="#6272a4">%.0f%s</text>`+"\n",
			g.MarginLeft-6, v.DepthAxis.PosAtValue(float64(mm))+4, val, unit)
		if maxDepth == 0 {
			break
		}
	}

	if len(pi.Entries) > 0 {
		fmt.Fprint(bw, `  <polyline fill="none" stroke="#4285f4" stroke-width="2" points="`)
		for i, e := range pi.Entries {
			if i > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%.1f,%.1f", v.TimeAxis.PosAtValue(float64(e.Sec)), v.DepthAxis.PosAtValue(float64(e.DepthMM)))
		}
		fmt.Fprint(bw, `"/>`+"\n")
	}

	for _, m := range ms {
		if !m.Visible() {
			continue
		}
		writeMarker(bw, m, v.Icons)
	}

	fmt.Fprint(bw, "</svg>\n")
	return bw.Flush()
}

func writeMarker(w io.Writer, m *markers.Marker, icons markers.IconSet) {
	x, y := m.Pos()
	dx, dy := m.Offset()
	iw, ih := icons.Size(m.Icon())

	fmt.Fprintf(w, `  <g class="event %s" transform="translate(%.1f,%.1f)">`+"\n", m.Icon(), x+dx, y+dy)
	fmt.Fprintf(w, "    <title>%s</title>\n", html.EscapeString(m.Tooltip()))
	if m.Icon() == markers.Transparent {
		fmt.Fprintf(w, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill-opacity="0"/>`+"\n", -iw/2, -ih, iw, ih)
	} else {
		fmt.Fprintf(w, `    <text font-family="sans-serif" font-size="%.0f" text-anchor="middle">%s</text>`+"\n",
			ih*0.8, html.EscapeString(icons.Glyph(m.Icon())))
	}
	fmt.Fprint(w, "  </g>\n")
}
