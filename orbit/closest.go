package orbit

import (
	"math"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

// AngularDistance returns the circular distance between two angles in
// degrees, always in [0, 180]. Linear difference breaks at the 0/360
// wrap, so every nearest-angle decision goes through this
func AngularDistance(a, b float64) float64 {
	d := math.Abs(normalizeDeg(a) - normalizeDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ClosestAzimuth returns the catalog azimuth nearest to an arbitrary
// pointer-derived angle, by circular distance
func ClosestAzimuth(clickDeg float64) catalog.AzimuthSpec {
	best := catalog.Azimuths[0]
	bestDist := AngularDistance(clickDeg, best.Degrees)
	for _, spec := range catalog.Azimuths[1:] {
		if d := AngularDistance(clickDeg, spec.Degrees); d < bestDist {
			best = spec
			bestDist = d
		}
	}
	return best
}

// AngleFromPointer converts pointer coordinates relative to the layout
// center into an azimuth angle on the orbit ellipse. The Y component is
// un-flattened before the angle is taken so clicks land where markers draw
func AngleFromPointer(dx, dy float64) float64 {
	return normalizeDeg(math.Atan2(dx, dy/perspectiveFlatten) * 180 / math.Pi)
}

// Rotate steps to the adjacent azimuth in catalog declaration order,
// wrapping modulo catalog length. step is +1 or -1.
// Unknown keys return unchanged
func Rotate(current catalog.Azimuth, step int) catalog.Azimuth {
	i := catalog.AzimuthIndex(current)
	if i < 0 {
		return current
	}
	n := len(catalog.Azimuths)
	return catalog.Azimuths[((i+step)%n+n)%n].Key
}

// NextElevation steps the elevation in catalog order, clamped at the
// ends. Tilt does not wrap: stepping past high-angle stays at high-angle
func NextElevation(current catalog.Elevation, step int) catalog.Elevation {
	i := catalog.ElevationIndex(current)
	if i < 0 {
		return current
	}
	i += step
	if i < 0 {
		i = 0
	}
	if i >= len(catalog.Elevations) {
		i = len(catalog.Elevations) - 1
	}
	return catalog.Elevations[i].Key
}

// NextDistance steps the framing class in catalog order, clamped at the ends
func NextDistance(current catalog.Distance, step int) catalog.Distance {
	i := catalog.DistanceIndex(current)
	if i < 0 {
		return current
	}
	i += step
	if i < 0 {
		i = 0
	}
	if i >= len(catalog.Distances) {
		i = len(catalog.Distances) - 1
	}
	return catalog.Distances[i].Key
}
