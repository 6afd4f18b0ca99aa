package planner

import (
	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

// SinglePayload is the generation request emitted when confirming in
// same mode: the triple, its catalog prompt fragments, and the fixed
// LoRA strength
type SinglePayload struct {
	Azimuth         catalog.Azimuth   `json:"azimuth"`
	Elevation       catalog.Elevation `json:"elevation"`
	Distance        catalog.Distance  `json:"distance"`
	AzimuthPrompt   string            `json:"azimuthPrompt"`
	ElevationPrompt string            `json:"elevationPrompt"`
	DistancePrompt  string            `json:"distancePrompt"`
	LoraStrength    float64           `json:"loraStrength"`
}

// MultiPayload is the generation request emitted when confirming in
// per-image or multiple mode: the full slot list plus the resolved mode
type MultiPayload struct {
	Slots []Slot `json:"slots"`
	Mode  Mode   `json:"mode"`
}

// ConfirmSingle resolves the single angle against the catalog and
// builds the same-mode generation payload
func (p *Planner) ConfirmSingle() SinglePayload {
	azSpec, _ := catalog.AzimuthByKey(p.single.Azimuth)
	elSpec, _ := catalog.ElevationByKey(p.single.Elevation)
	distSpec, _ := catalog.DistanceByKey(p.single.Distance)

	return SinglePayload{
		Azimuth:         p.single.Azimuth,
		Elevation:       p.single.Elevation,
		Distance:        p.single.Distance,
		AzimuthPrompt:   azSpec.Prompt,
		ElevationPrompt: elSpec.Prompt,
		DistancePrompt:  distSpec.Prompt,
		LoraStrength:    LoraStrength,
	}
}

// ConfirmMulti builds the multi-mode generation payload
func (p *Planner) ConfirmMulti() MultiPayload {
	return MultiPayload{
		Slots: p.Slots(),
		Mode:  p.Mode(),
	}
}
