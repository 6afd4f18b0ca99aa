package planner

import (
	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
	"github.com/Sogni-AI/sogni-photobooth-sub003/orbit"
)

// IntentType discriminates semantic planner actions.
// The rendering layer translates raw keys and pointer events into
// intents; the planner never sees input devices
type IntentType uint8

const (
	IntentNone IntentType = iota

	// IntentReset clears all state on popup entry
	IntentReset

	// IntentSameForAll toggles the "same angle for all" checkbox
	// Payload: On
	IntentSameForAll

	// IntentPreset applies a named preset template
	// Payload: Key
	IntentPreset

	// IntentAddSlot appends a default slot, bounded by MaxAngles
	IntentAddSlot

	// IntentRemoveSlot deletes a slot, bounded by the mode floor
	// Payload: SlotID
	IntentRemoveSlot

	// IntentEditSlot applies a partial parameter update
	// Payload: SlotID, Patch
	IntentEditSlot

	// IntentRotate steps azimuth through catalog order, wrapping
	// Payload: SlotID (empty targets the single angle), Step
	IntentRotate

	// IntentTilt steps elevation through catalog order, clamped
	// Payload: SlotID (empty targets the single angle), Step
	IntentTilt

	// IntentFrame steps the framing class, clamped
	// Payload: SlotID (empty targets the single angle), Step
	IntentFrame

	// IntentPointAzimuth snaps azimuth to the catalog entry nearest a
	// pointer-derived angle
	// Payload: SlotID (empty targets the single angle), Angle
	IntentPointAzimuth

	// IntentToggleOriginal flips a slot's pass-through flag
	// Payload: SlotID
	IntentToggleOriginal
)

// Intent is a parsed semantic action: pure data, no function pointers
type Intent struct {
	Type   IntentType
	SlotID string
	Key    string
	On     bool
	Step   int
	Angle  float64
	Patch  SlotPatch
}

// Apply dispatches one intent against the planner state and reports
// whether state changed. Invalid intents are absorbed as no-ops
func (p *Planner) Apply(intent Intent) bool {
	switch intent.Type {
	case IntentReset:
		p.Reset()
		return true

	case IntentSameForAll:
		if intent.On == p.sameForAll {
			return false
		}
		p.SetSameForAll(intent.On)
		return true

	case IntentPreset:
		return p.ApplyPreset(intent.Key)

	case IntentAddSlot:
		return p.AddSlot()

	case IntentRemoveSlot:
		return p.RemoveSlot(intent.SlotID)

	case IntentEditSlot:
		return p.EditSlot(intent.SlotID, intent.Patch)

	case IntentRotate:
		return p.editAngle(intent.SlotID, func(spec catalog.AngleSpec) catalog.AngleSpec {
			spec.Azimuth = orbit.Rotate(spec.Azimuth, intent.Step)
			return spec
		})

	case IntentTilt:
		return p.editAngle(intent.SlotID, func(spec catalog.AngleSpec) catalog.AngleSpec {
			spec.Elevation = orbit.NextElevation(spec.Elevation, intent.Step)
			return spec
		})

	case IntentFrame:
		return p.editAngle(intent.SlotID, func(spec catalog.AngleSpec) catalog.AngleSpec {
			spec.Distance = orbit.NextDistance(spec.Distance, intent.Step)
			return spec
		})

	case IntentPointAzimuth:
		picked := orbit.ClosestAzimuth(intent.Angle).Key
		return p.editAngle(intent.SlotID, func(spec catalog.AngleSpec) catalog.AngleSpec {
			spec.Azimuth = picked
			return spec
		})

	case IntentToggleOriginal:
		slot, ok := p.Slot(intent.SlotID)
		if !ok {
			return false
		}
		flipped := !slot.UseOriginal
		return p.EditSlot(intent.SlotID, SlotPatch{UseOriginal: &flipped})
	}
	return false
}

// editAngle routes a parameter transform to a slot by id, or to the
// single angle when id is empty
func (p *Planner) editAngle(slotID string, transform func(catalog.AngleSpec) catalog.AngleSpec) bool {
	if slotID == "" {
		before := p.single
		after := transform(before)
		if after == before {
			return false
		}
		p.SetSingle(after)
		return true
	}

	slot, ok := p.Slot(slotID)
	if !ok {
		return false
	}
	after := transform(slot.Angle())
	return p.EditSlot(slotID, SlotPatch{
		Azimuth:   &after.Azimuth,
		Elevation: &after.Elevation,
		Distance:  &after.Distance,
	})
}
