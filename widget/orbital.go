package widget

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
	"github.com/Sogni-AI/sogni-photobooth-sub003/orbit"
)

// Orbital draws the camera-angle visualization into a screen region:
// a subject at the center, fixed marker dots on the orbit ellipse, the
// camera icon with its perspective scale cue, and the lens cone.
//
// Z-order follows the shared occlusion rule: far-hemisphere geometry is
// drawn first and dimmed, the subject covers it, near-hemisphere
// geometry draws on top
type Orbital struct {
	x, y, w, h int
	layout     orbit.Layout
}

// NewOrbital creates a widget for the given screen region.
// The orbit radius is fitted to the region; terminal cells being
// roughly twice as tall as wide already complements the projection's
// vertical flattening
func NewOrbital(x, y, w, h int) *Orbital {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2 + 2 // leave headroom for elevated cameras

	r := (float64(w) - 6) / 2
	if maxR := (float64(h)/2 - 2) / 0.4; r > maxR {
		r = maxR
	}
	if r < 4 {
		r = 4
	}

	return &Orbital{x: x, y: y, w: w, h: h, layout: orbit.Layout{CX: cx, CY: cy, R: r}}
}

// Layout exposes the projection frame for hit testing by the caller
func (o *Orbital) Layout() orbit.Layout {
	return o.layout
}

// HitAzimuth converts a mouse position into the nearest catalog
// azimuth. ok is false when the click is outside the orbit area
func (o *Orbital) HitAzimuth(mx, my int) (catalog.AzimuthSpec, bool) {
	dx := float64(mx) - o.layout.CX
	dy := float64(my) - o.layout.CY
	if math.Abs(dx) > o.layout.R+3 || math.Abs(dy) > o.layout.R {
		return catalog.AzimuthSpec{}, false
	}
	return orbit.ClosestAzimuth(orbit.AngleFromPointer(dx, dy)), true
}

var (
	subjectStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	markerFrontStyle  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	markerBehindStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	cameraFrontStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	cameraBehindStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive).Dim(true)
)

// Draw renders one angle triple into the widget region
func (o *Orbital) Draw(s tcell.Screen, spec catalog.AngleSpec) {
	proj := o.layout.Project(spec)

	// Far hemisphere first: occluded markers and camera under the subject
	o.drawMarkers(s, true)
	if proj.Behind {
		o.drawCamera(s, proj, cameraBehindStyle)
	}

	o.putRune(s, int(o.layout.CX), int(o.layout.CY), '☺', subjectStyle)

	o.drawMarkers(s, false)
	if !proj.Behind {
		o.drawCamera(s, proj, cameraFrontStyle)
	}
}

// drawMarkers draws the fixed azimuth dots for one hemisphere.
// Occlusion must match the camera's: both go through orbit.IsBehind
func (o *Orbital) drawMarkers(s tcell.Screen, behind bool) {
	for _, az := range catalog.Azimuths {
		if orbit.IsBehind(az.Degrees) != behind {
			continue
		}
		p := o.layout.PointAt(az.Degrees)
		style := markerFrontStyle
		if behind {
			style = markerBehindStyle
		}
		o.putRune(s, int(math.Round(p.X)), int(math.Round(p.Y)), '•', style)
	}
}

// cameraGlyph maps the perspective scale cue onto glyph weight
func cameraGlyph(scale float64) rune {
	switch {
	case scale >= 1.15:
		return '◉'
	case scale >= 0.9:
		return '◎'
	default:
		return '∘'
	}
}

func (o *Orbital) drawCamera(s tcell.Screen, proj orbit.Projection, style tcell.Style) {
	o.drawCone(s, proj)
	o.putRune(s, int(math.Round(proj.Camera.X)), int(math.Round(proj.Camera.Y)), cameraGlyph(proj.Scale), style)
}

// drawCone renders the lens cone as two edge rays from the camera
// toward the subject, faded by the visibility scalar
func (o *Orbital) drawCone(s tcell.Screen, proj orbit.Projection) {
	if proj.ConeVisibility < 0.1 {
		return
	}

	level := int32(80 + proj.ConeVisibility*175)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level/3))
	if proj.Behind {
		style = style.Dim(true)
	}

	aim := math.Atan2(o.layout.CX-proj.Camera.X, o.layout.CY-proj.Camera.Y)
	half := proj.ConeHalfAngle * math.Pi / 180
	length := o.layout.R * 0.6 * proj.ConeVisibility

	for _, edge := range []float64{aim - half, aim + half} {
		for step := 2.0; step < length; step++ {
			px := proj.Camera.X + math.Sin(edge)*step
			py := proj.Camera.Y + math.Cos(edge)*step*0.5 // cell aspect
			o.putRune(s, int(math.Round(px)), int(math.Round(py)), '·', style)
		}
	}
}

// putRune clips to the widget region before writing
func (o *Orbital) putRune(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	if x < o.x || x >= o.x+o.w || y < o.y || y >= o.y+o.h {
		return
	}
	s.SetContent(x, y, r, nil, style)
}
