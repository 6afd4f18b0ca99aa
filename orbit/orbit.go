package orbit

import (
	"math"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

// Orbital projection: maps a discrete camera parameter triple to 2D
// geometry simulating a camera orbiting the subject on a sphere, viewed
// with a fixed perspective flattening. All functions are pure; inputs
// are catalog keys or pre-validated angles, so there are no error paths.

const (
	// perspectiveFlatten compresses the orbit circle vertically to fake depth
	perspectiveFlatten = 0.4

	// behindThreshold marks the far hemisphere for occlusion
	// Deliberately -0.3 rather than 0: a strict half split flickered at the
	// 90/270 extremes, so the visible front hemisphere is biased larger.
	// Every occlusion check must go through IsBehind, never inline cos tests
	behindThreshold = -0.3

	// scaleGain drives the perspective size cue, range [1-gain, 1+gain]
	scaleGain = 0.3

	// elevationGain converts elevation degrees to vertical layout units
	elevationGain = 0.55

	// eyeLevelBias lifts the camera so eye-level tilt aligns with the
	// subject's eye height instead of the sphere's geometric center
	eyeLevelBias = 6.0

	// coneElevationRange is the elevation magnitude (degrees) at which
	// tilt alone makes the lens cone fully visible
	coneElevationRange = 60.0
)

// Point is a 2D position in layout units
type Point struct {
	X float64
	Y float64
}

// Layout describes the orbital widget frame: center and orbit radius
type Layout struct {
	CX float64
	CY float64
	R  float64
}

// Projection is the renderable geometry for one angle triple.
// Derived per render, never stored
type Projection struct {
	Marker         Point   // fixed dot on the orbit ellipse
	Camera         Point   // camera icon position (marker plus elevation offset)
	Scale          float64 // perspective size cue, [0.7, 1.3]
	ConeVisibility float64 // lens cone opacity, [0, 1]
	ConeHalfAngle  float64 // rendered cone spread in degrees
	Behind         bool    // far hemisphere, draw dimmed under the subject
}

// normalizeDeg wraps an angle into [0, 360)
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// PointAt returns the orbit ellipse position for an azimuth angle.
// Used for the fixed marker dots and as the base of the camera position
func (l Layout) PointAt(azimuthDeg float64) Point {
	theta := azimuthDeg * math.Pi / 180
	return Point{
		X: l.CX + l.R*math.Sin(theta),
		Y: l.CY + l.R*math.Cos(theta)*perspectiveFlatten,
	}
}

// CameraAt returns the camera icon position for an azimuth and elevation.
// Elevation is an independent vertical offset; it never affects X
func (l Layout) CameraAt(azimuthDeg, elevationDeg float64) Point {
	p := l.PointAt(azimuthDeg)
	p.Y -= elevationDeg*elevationGain + eyeLevelBias
	return p
}

// IsBehind reports whether an azimuth sits on the occluded far hemisphere.
// The single shared threshold keeps marker and camera occlusion consistent
func IsBehind(azimuthDeg float64) bool {
	return math.Cos(azimuthDeg*math.Pi/180) < behindThreshold
}

// CameraScale returns the perspective size cue for an azimuth:
// 1.3 facing the viewer at front, 0.7 at the back
func CameraScale(azimuthDeg float64) float64 {
	return 1 + math.Cos(azimuthDeg*math.Pi/180)*scaleGain
}

// ConeVisibility returns lens cone opacity in [0, 1].
// The azimuth term fades the cone when the camera points at or away from
// the viewer; the elevation term keeps it visible when tilt alone creates
// an oblique view at front or back. Combined with max so neither dominates
func ConeVisibility(azimuthDeg, elevationDeg float64) float64 {
	az := math.Abs(math.Sin(azimuthDeg * math.Pi / 180))
	el := math.Abs(elevationDeg) / coneElevationRange
	v := math.Max(az, el)
	if v > 1 {
		return 1
	}
	return v
}

// Project maps one angle triple to its full renderable geometry.
// Keys outside the catalog are a caller contract violation and resolve
// to the zero entry
func (l Layout) Project(spec catalog.AngleSpec) Projection {
	azSpec, _ := catalog.AzimuthByKey(spec.Azimuth)
	elSpec, _ := catalog.ElevationByKey(spec.Elevation)
	distSpec, _ := catalog.DistanceByKey(spec.Distance)

	return Projection{
		Marker:         l.PointAt(azSpec.Degrees),
		Camera:         l.CameraAt(azSpec.Degrees, elSpec.Degrees),
		Scale:          CameraScale(azSpec.Degrees),
		ConeVisibility: ConeVisibility(azSpec.Degrees, elSpec.Degrees),
		ConeHalfAngle:  distSpec.LensHalfAngle,
		Behind:         IsBehind(azSpec.Degrees),
	}
}
