package catalog

import (
	"testing"
)

func TestEveryKeyHasExactlyOneEntry(t *testing.T) {
	seenAz := map[Azimuth]int{}
	for _, spec := range Azimuths {
		seenAz[spec.Key]++
	}
	for key, n := range seenAz {
		if n != 1 {
			t.Errorf("azimuth %q has %d entries, want 1", key, n)
		}
	}

	seenEl := map[Elevation]int{}
	for _, spec := range Elevations {
		seenEl[spec.Key]++
	}
	for key, n := range seenEl {
		if n != 1 {
			t.Errorf("elevation %q has %d entries, want 1", key, n)
		}
	}

	seenDist := map[Distance]int{}
	for _, spec := range Distances {
		seenDist[spec.Key]++
	}
	for key, n := range seenDist {
		if n != 1 {
			t.Errorf("distance %q has %d entries, want 1", key, n)
		}
	}
}

func TestDeclarationOrderIsIncreasingAngle(t *testing.T) {
	// Rotation adjacency depends on this ordering
	for i := 1; i < len(Azimuths); i++ {
		if Azimuths[i].Degrees <= Azimuths[i-1].Degrees {
			t.Errorf("azimuth order broken at %q: %v after %v",
				Azimuths[i].Key, Azimuths[i].Degrees, Azimuths[i-1].Degrees)
		}
	}
	for i := 1; i < len(Elevations); i++ {
		if Elevations[i].Degrees <= Elevations[i-1].Degrees {
			t.Errorf("elevation order broken at %q", Elevations[i].Key)
		}
	}
	for i := 1; i < len(Distances); i++ {
		if Distances[i].Ordinal <= Distances[i-1].Ordinal {
			t.Errorf("distance order broken at %q", Distances[i].Key)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for i, spec := range Azimuths {
		got, ok := AzimuthByKey(spec.Key)
		if !ok || got != spec {
			t.Errorf("AzimuthByKey(%q) = %+v, %v", spec.Key, got, ok)
		}
		if idx := AzimuthIndex(spec.Key); idx != i {
			t.Errorf("AzimuthIndex(%q) = %d, want %d", spec.Key, idx, i)
		}
	}
	for _, spec := range Elevations {
		if got, ok := ElevationByKey(spec.Key); !ok || got != spec {
			t.Errorf("ElevationByKey(%q) = %+v, %v", spec.Key, got, ok)
		}
	}
	for _, spec := range Distances {
		if got, ok := DistanceByKey(spec.Key); !ok || got != spec {
			t.Errorf("DistanceByKey(%q) = %+v, %v", spec.Key, got, ok)
		}
	}

	if _, ok := AzimuthByKey("sideways"); ok {
		t.Error("lookup of unknown azimuth key should fail")
	}
	if AzimuthIndex("sideways") != -1 {
		t.Error("index of unknown azimuth key should be -1")
	}
}

func TestLensHalfAnglesCarriedAsData(t *testing.T) {
	want := map[Distance]float64{
		DistanceCloseUp: 25,
		DistanceMedium:  45,
		DistanceWide:    70,
	}
	for key, angle := range want {
		spec, ok := DistanceByKey(key)
		if !ok {
			t.Fatalf("distance %q missing from catalog", key)
		}
		if spec.LensHalfAngle != angle {
			t.Errorf("lens half-angle for %q = %v, want %v", key, spec.LensHalfAngle, angle)
		}
	}
}

func TestPresetTemplatesResolveInCatalog(t *testing.T) {
	for _, p := range Presets {
		if p.Key == PresetCustom {
			if len(p.Angles) != 0 {
				t.Errorf("custom preset is a sentinel and must carry no template")
			}
			continue
		}
		if len(p.Angles) == 0 {
			t.Errorf("preset %q has an empty template", p.Key)
		}
		for i, spec := range p.Angles {
			if _, ok := AzimuthByKey(spec.Azimuth); !ok {
				t.Errorf("preset %q angle %d: unknown azimuth %q", p.Key, i, spec.Azimuth)
			}
			if _, ok := ElevationByKey(spec.Elevation); !ok {
				t.Errorf("preset %q angle %d: unknown elevation %q", p.Key, i, spec.Elevation)
			}
			if _, ok := DistanceByKey(spec.Distance); !ok {
				t.Errorf("preset %q angle %d: unknown distance %q", p.Key, i, spec.Distance)
			}
		}
	}
}

func TestPresetByKey(t *testing.T) {
	for _, p := range Presets {
		got, ok := PresetByKey(p.Key)
		if !ok || got.Key != p.Key {
			t.Errorf("PresetByKey(%q) failed", p.Key)
		}
	}
	if _, ok := PresetByKey("nonexistent"); ok {
		t.Error("lookup of unknown preset should fail")
	}
}
