package orbit

import (
	"math"
	"testing"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

func TestAngularDistanceIsCircular(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 180, 180},
		{10, 350, 20}, // linear difference would say 340
		{359, 1, 2},
		{720, 0, 0},
		{-45, 45, 90},
	}
	for _, tc := range cases {
		if got := AngularDistance(tc.a, tc.b); math.Abs(got-tc.want) > eps {
			t.Errorf("AngularDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := AngularDistance(tc.b, tc.a); math.Abs(got-tc.want) > eps {
			t.Errorf("AngularDistance(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestClosestAzimuthRoundTrip(t *testing.T) {
	for _, spec := range catalog.Azimuths {
		if got := ClosestAzimuth(spec.Degrees); got.Key != spec.Key {
			t.Errorf("ClosestAzimuth(%v) = %q, want %q", spec.Degrees, got.Key, spec.Key)
		}
	}
}

func TestClosestAzimuthAtWrap(t *testing.T) {
	// Both sides of the 0/360 seam must resolve to front
	if got := ClosestAzimuth(359); got.Key != catalog.AzimuthFront {
		t.Errorf("ClosestAzimuth(359) = %q, want front", got.Key)
	}
	if got := ClosestAzimuth(1); got.Key != catalog.AzimuthFront {
		t.Errorf("ClosestAzimuth(1) = %q, want front", got.Key)
	}
}

func TestRotateStepsDeclarationOrder(t *testing.T) {
	if got := Rotate(catalog.AzimuthFront, 1); got != catalog.AzimuthFrontRight {
		t.Errorf("Rotate(front, +1) = %q", got)
	}
	if got := Rotate(catalog.AzimuthFront, -1); got != catalog.AzimuthFrontLeft {
		t.Errorf("Rotate(front, -1) = %q, want wrap to front-left", got)
	}
	if got := Rotate(catalog.AzimuthFrontLeft, 1); got != catalog.AzimuthFront {
		t.Errorf("Rotate(front-left, +1) = %q, want wrap to front", got)
	}

	// Full forward cycle returns to the origin
	key := catalog.AzimuthFront
	for i := 0; i < len(catalog.Azimuths); i++ {
		key = Rotate(key, 1)
	}
	if key != catalog.AzimuthFront {
		t.Errorf("full rotation cycle ended at %q", key)
	}

	if got := Rotate("sideways", 1); got != "sideways" {
		t.Errorf("Rotate of unknown key should be unchanged, got %q", got)
	}
}

func TestNextElevationClampsAtEnds(t *testing.T) {
	if got := NextElevation(catalog.ElevationEyeLevel, 1); got != catalog.ElevationElevated {
		t.Errorf("NextElevation(eye-level, +1) = %q", got)
	}
	if got := NextElevation(catalog.ElevationHighAngle, 1); got != catalog.ElevationHighAngle {
		t.Errorf("elevation must clamp at high-angle, got %q", got)
	}
	if got := NextElevation(catalog.ElevationLowAngle, -1); got != catalog.ElevationLowAngle {
		t.Errorf("elevation must clamp at low-angle, got %q", got)
	}
}

func TestNextDistanceClampsAtEnds(t *testing.T) {
	if got := NextDistance(catalog.DistanceCloseUp, 1); got != catalog.DistanceMedium {
		t.Errorf("NextDistance(close-up, +1) = %q", got)
	}
	if got := NextDistance(catalog.DistanceWide, 1); got != catalog.DistanceWide {
		t.Errorf("distance must clamp at wide, got %q", got)
	}
	if got := NextDistance(catalog.DistanceCloseUp, -1); got != catalog.DistanceCloseUp {
		t.Errorf("distance must clamp at close-up, got %q", got)
	}
}

func TestAngleFromPointerMatchesMarkerPositions(t *testing.T) {
	l := Layout{CX: 0, CY: 0, R: 40}

	// A pointer landing exactly on a marker recovers its azimuth
	for _, spec := range catalog.Azimuths {
		p := l.PointAt(spec.Degrees)
		deg := AngleFromPointer(p.X-l.CX, p.Y-l.CY)
		if got := ClosestAzimuth(deg); got.Key != spec.Key {
			t.Errorf("pointer on %q marker resolved to %q (angle %v)", spec.Key, got.Key, deg)
		}
	}
}
