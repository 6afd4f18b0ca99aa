package planner

import (
	"testing"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

func TestApplyRotateTargetsSingleAngle(t *testing.T) {
	p := newTestPlanner(1)

	if !p.Apply(Intent{Type: IntentRotate, Step: 1}) {
		t.Fatal("rotate on single angle should change state")
	}
	if got := p.Single().Azimuth; got != catalog.AzimuthFrontRight {
		t.Errorf("single azimuth after rotate = %q, want front-right", got)
	}

	p.Apply(Intent{Type: IntentRotate, Step: -1})
	p.Apply(Intent{Type: IntentRotate, Step: -1})
	if got := p.Single().Azimuth; got != catalog.AzimuthFrontLeft {
		t.Errorf("single azimuth after wrap = %q, want front-left", got)
	}
}

func TestApplyTiltClampIsNoChange(t *testing.T) {
	p := newTestPlanner(1)

	p.Apply(Intent{Type: IntentTilt, Step: -1}) // eye-level -> low-angle
	if p.Apply(Intent{Type: IntentTilt, Step: -1}) {
		t.Error("tilt below low-angle should report no change")
	}
	if got := p.Single().Elevation; got != catalog.ElevationLowAngle {
		t.Errorf("elevation = %q, want low-angle", got)
	}
}

func TestApplyPointAzimuthSnapsAcrossWrap(t *testing.T) {
	p := newTestPlanner(1)
	p.Apply(Intent{Type: IntentRotate, Step: 1}) // move off front first

	if !p.Apply(Intent{Type: IntentPointAzimuth, Angle: 359}) {
		t.Fatal("pointer pick should change state")
	}
	if got := p.Single().Azimuth; got != catalog.AzimuthFront {
		t.Errorf("azimuth after pointer at 359 = %q, want front", got)
	}
}

func TestApplyRotateTargetsSlotByID(t *testing.T) {
	p := newTestPlanner(1)
	p.AddSlot()
	id := p.Slots()[0].ID

	if !p.Apply(Intent{Type: IntentRotate, SlotID: id, Step: 1}) {
		t.Fatal("rotate on slot should change state")
	}
	slot, _ := p.Slot(id)
	if slot.Azimuth != catalog.AzimuthFrontRight {
		t.Errorf("slot azimuth = %q, want front-right", slot.Azimuth)
	}

	if p.Apply(Intent{Type: IntentRotate, SlotID: "missing", Step: 1}) {
		t.Error("rotate on unknown slot must be a no-op")
	}
}

func TestApplyToggleOriginal(t *testing.T) {
	p := newTestPlanner(1)
	p.AddSlot()
	id := p.Slots()[0].ID

	p.Apply(Intent{Type: IntentToggleOriginal, SlotID: id})
	if slot, _ := p.Slot(id); !slot.UseOriginal {
		t.Error("toggle should mark the slot original")
	}
	p.Apply(Intent{Type: IntentToggleOriginal, SlotID: id})
	if slot, _ := p.Slot(id); slot.UseOriginal {
		t.Error("second toggle should clear the flag")
	}
}

func TestApplySameForAllAndReset(t *testing.T) {
	p := newTestPlanner(3)

	if !p.Apply(Intent{Type: IntentSameForAll, On: false}) {
		t.Fatal("unchecking same-for-all should change state")
	}
	if p.Apply(Intent{Type: IntentSameForAll, On: false}) {
		t.Error("repeated toggle to the same value must be a no-op")
	}
	if p.Mode() != ModePerImage {
		t.Errorf("mode = %v, want per-image", p.Mode())
	}

	p.Apply(Intent{Type: IntentReset})
	if p.SlotCount() != 0 || p.Mode() != ModeSame {
		t.Error("reset must drop slots and return to same mode")
	}
}

func TestApplyUnknownIntent(t *testing.T) {
	p := newTestPlanner(1)
	if p.Apply(Intent{Type: IntentNone}) {
		t.Error("IntentNone must be a no-op")
	}
}
