package planner

import (
	"github.com/google/uuid"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
)

// Mode is the slot-to-image cardinality rule currently in effect.
// Always derived from batch size, the same-for-all flag, and slot
// presence; never stored
type Mode uint8

const (
	// ModeSame applies one angle to every output image
	ModeSame Mode = iota

	// ModePerImage assigns exactly one slot per source image (1:1)
	ModePerImage

	// ModeMultiple applies N angles to a single source image (N:1)
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModePerImage:
		return "per-image"
	case ModeMultiple:
		return "multiple"
	default:
		return "same"
	}
}

// MarshalJSON emits the mode as its wire name
func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// LoraStrength is the fixed generation strength attached to
// single-angle confirmations
const LoraStrength = 0.9

// Slot is one requested camera angle output unit.
// When UseOriginal is true the parameters are retained but ignored;
// the slot reuses the source image and produces no generation job
type Slot struct {
	ID          string            `json:"id"`
	Azimuth     catalog.Azimuth   `json:"azimuth"`
	Elevation   catalog.Elevation `json:"elevation"`
	Distance    catalog.Distance  `json:"distance"`
	UseOriginal bool              `json:"useOriginal,omitempty"`
}

// Angle returns the slot's parameter triple
func (s Slot) Angle() catalog.AngleSpec {
	return catalog.AngleSpec{
		Azimuth:     s.Azimuth,
		Elevation:   s.Elevation,
		Distance:    s.Distance,
		UseOriginal: s.UseOriginal,
	}
}

// SlotPatch is a partial slot update; nil fields are left unchanged
type SlotPatch struct {
	Azimuth     *catalog.Azimuth
	Elevation   *catalog.Elevation
	Distance    *catalog.Distance
	UseOriginal *bool
}

// baselineSingle is the single-angle default restored on reset
var baselineSingle = catalog.AngleSpec{
	Azimuth:   catalog.AzimuthFront,
	Elevation: catalog.ElevationEyeLevel,
	Distance:  catalog.DistanceCloseUp,
}

// defaultSlot is the parameter triple for manually added slots
var defaultSlot = catalog.AngleSpec{
	Azimuth:   catalog.AzimuthFront,
	Elevation: catalog.ElevationEyeLevel,
	Distance:  catalog.DistanceMedium,
}

// Planner owns the angle slot list and the selection mode invariants:
// mode-dependent slot floors, the global ceiling, preset expansion, and
// the derived job count fed to cost estimation.
//
// All operations are synchronous and complete within one event turn.
// Invariant violations (add past ceiling, remove past floor) are silent
// no-ops so the interaction never surfaces an error
type Planner struct {
	itemCount    int
	sameForAll   bool
	slots        []Slot
	single       catalog.AngleSpec
	activePreset string

	// newID is swappable for deterministic tests
	newID func() string
}

// New creates a planner for a batch of itemCount source images.
// The popup opens with same-for-all on and the baseline single angle
func New(itemCount int) *Planner {
	p := &Planner{newID: uuid.NewString}
	p.itemCount = clampItemCount(itemCount)
	p.Reset()
	return p
}

func clampItemCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Reset clears all slots and restores the single-angle baseline
func (p *Planner) Reset() {
	p.slots = nil
	p.sameForAll = true
	p.single = baselineSingle
	p.activePreset = ""
}

// SetItemCount updates the batch size. In per-image mode the slot list
// is re-synthesized to preserve the one-slot-per-image invariant
func (p *Planner) SetItemCount(n int) {
	n = clampItemCount(n)
	if n == p.itemCount {
		return
	}
	p.itemCount = n
	if p.Mode() == ModePerImage {
		p.synthesizePerImage()
	}
}

// ItemCount returns the batch size
func (p *Planner) ItemCount() int {
	return p.itemCount
}

// Mode derives the active selection mode:
// per-image for a batch with same-for-all off, multiple for a single
// image with slots present, same otherwise
func (p *Planner) Mode() Mode {
	if p.itemCount > 1 && !p.sameForAll {
		return ModePerImage
	}
	if p.itemCount <= 1 && len(p.slots) > 0 {
		return ModeMultiple
	}
	return ModeSame
}

// SameForAll returns the state of the "same angle for all" toggle
func (p *Planner) SameForAll() bool {
	return p.sameForAll
}

// SetSameForAll toggles between same and per-image mode.
// Turning it off on a batch synthesizes one slot per source image with
// the first marked UseOriginal and the rest framed wide. Turning it on
// discards all slots
func (p *Planner) SetSameForAll(on bool) {
	if on == p.sameForAll {
		return
	}
	p.sameForAll = on
	p.activePreset = ""
	if on {
		p.slots = nil
		return
	}
	if p.itemCount > 1 {
		p.synthesizePerImage()
	}
}

// synthesizePerImage builds the default per-image slot list:
// slot 0 passes the original through, the rest default to wide framing
func (p *Planner) synthesizePerImage() {
	slots := make([]Slot, 0, p.itemCount)
	for i := 0; i < p.itemCount; i++ {
		spec := baselineSingle
		if i == 0 {
			spec.UseOriginal = true
		} else {
			spec.Distance = catalog.DistanceWide
		}
		slots = append(slots, p.newSlot(spec))
	}
	p.slots = slots
}

func (p *Planner) newSlot(spec catalog.AngleSpec) Slot {
	return Slot{
		ID:          p.newID(),
		Azimuth:     spec.Azimuth,
		Elevation:   spec.Elevation,
		Distance:    spec.Distance,
		UseOriginal: spec.UseOriginal,
	}
}

// customTemplate is the expansion of the sentinel custom preset:
// pass the original through, then one wide generated angle
var customTemplate = []catalog.AngleSpec{
	{Azimuth: catalog.AzimuthFront, Elevation: catalog.ElevationEyeLevel, Distance: catalog.DistanceCloseUp, UseOriginal: true},
	{Azimuth: catalog.AzimuthFront, Elevation: catalog.ElevationEyeLevel, Distance: catalog.DistanceWide},
}

// ApplyPreset replaces the slot list with the preset's template.
// Per-image mode expands to max(itemCount, len(template)) slots; other
// contexts expand to max(len(template), 2). Templates shorter than the
// slot count are cycled, entry i taking template[i % len(template)].
// Re-selecting a preset re-derives from the template, dropping any
// manual edits. Unknown keys are a no-op
func (p *Planner) ApplyPreset(key string) bool {
	preset, ok := catalog.PresetByKey(key)
	if !ok {
		return false
	}

	template := preset.Angles
	if len(template) == 0 {
		template = customTemplate
	}

	count := len(template)
	if p.Mode() == ModePerImage {
		if p.itemCount > count {
			count = p.itemCount
		}
	} else if count < 2 {
		count = 2
	}

	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, p.newSlot(template[i%len(template)]))
	}
	p.slots = slots
	p.activePreset = key
	return true
}

// ActivePreset returns the selected preset key, or "" after manual edits
func (p *Planner) ActivePreset() string {
	return p.activePreset
}

// AddSlot appends one default slot. Returns false without change when
// the list is already at the MaxAngles ceiling. Manual additions clear
// the active preset since the list may no longer match any template
func (p *Planner) AddSlot() bool {
	if len(p.slots) >= catalog.MaxAngles {
		return false
	}
	p.slots = append(p.slots, p.newSlot(defaultSlot))
	p.activePreset = ""
	return true
}

// floor returns the minimum slot count the current mode allows
func (p *Planner) floor() int {
	if p.Mode() == ModePerImage {
		return p.itemCount
	}
	return 1
}

// RemoveSlot deletes the slot with the given id. Removal that would
// drop the list below the mode floor is a no-op: per-image keeps one
// slot per source image, multiple keeps at least one
func (p *Planner) RemoveSlot(id string) bool {
	if len(p.slots) <= p.floor() {
		return false
	}
	for i, s := range p.slots {
		if s.ID == id {
			p.slots = append(p.slots[:i], p.slots[i+1:]...)
			return true
		}
	}
	return false
}

// EditSlot applies a partial update to the slot with the given id,
// in place. Any edit clears the active preset
func (p *Planner) EditSlot(id string, patch SlotPatch) bool {
	for i := range p.slots {
		if p.slots[i].ID != id {
			continue
		}
		if patch.Azimuth != nil {
			p.slots[i].Azimuth = *patch.Azimuth
		}
		if patch.Elevation != nil {
			p.slots[i].Elevation = *patch.Elevation
		}
		if patch.Distance != nil {
			p.slots[i].Distance = *patch.Distance
		}
		if patch.UseOriginal != nil {
			p.slots[i].UseOriginal = *patch.UseOriginal
		}
		p.activePreset = ""
		return true
	}
	return false
}

// Slots returns a copy of the slot list for rendering
func (p *Planner) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	copy(out, p.slots)
	return out
}

// SlotCount returns the number of slots
func (p *Planner) SlotCount() int {
	return len(p.slots)
}

// Slot returns the slot with the given id
func (p *Planner) Slot(id string) (Slot, bool) {
	for _, s := range p.slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// Single returns the single-angle parameters used in same mode
func (p *Planner) Single() catalog.AngleSpec {
	return p.single
}

// SetSingle replaces the single-angle parameters
func (p *Planner) SetSingle(spec catalog.AngleSpec) {
	spec.UseOriginal = false
	p.single = spec
}

// GeneratedAngleCount counts slots that produce a generation job.
// UseOriginal slots reuse the source image and are excluded
func (p *Planner) GeneratedAngleCount() int {
	n := 0
	for _, s := range p.slots {
		if !s.UseOriginal {
			n++
		}
	}
	return n
}

// TotalJobCount derives the job count fed to cost estimation.
// Same mode generates one job per source image; per-image and multiple
// modes generate one job per non-original slot. Recomputed on every
// state change, never cached
func (p *Planner) TotalJobCount() int {
	if p.Mode() == ModeSame {
		return p.itemCount
	}
	return p.GeneratedAngleCount()
}
