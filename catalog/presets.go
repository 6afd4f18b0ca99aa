package catalog

// AngleSpec is one camera parameter triple, with an optional flag to
// reuse the original image instead of generating a new one.
// When UseOriginal is true the triple is retained but ignored downstream
type AngleSpec struct {
	Azimuth     Azimuth   `json:"azimuth"`
	Elevation   Elevation `json:"elevation"`
	Distance    Distance  `json:"distance"`
	UseOriginal bool      `json:"useOriginal,omitempty"`
}

// Preset is a named, ordered template of angle specifications used to
// bulk-populate slots. Templates shorter than the required slot count
// are cycled by the planner, never padded with defaults
type Preset struct {
	Key         string
	Label       string
	Icon        rune
	Description string
	Angles      []AngleSpec
}

// PresetCustom is the sentinel preset with no template
// Selecting it synthesizes a two-slot default: original + wide
const PresetCustom = "custom"

// Presets lists selectable templates in display order
var Presets = []Preset{
	{
		Key:         "turntable",
		Label:       "Turntable",
		Icon:        '◎',
		Description: "Four compass views orbiting the subject",
		Angles: []AngleSpec{
			{Azimuth: AzimuthFront, Elevation: ElevationEyeLevel, Distance: DistanceMedium},
			{Azimuth: AzimuthRight, Elevation: ElevationEyeLevel, Distance: DistanceMedium},
			{Azimuth: AzimuthBack, Elevation: ElevationEyeLevel, Distance: DistanceMedium},
			{Azimuth: AzimuthLeft, Elevation: ElevationEyeLevel, Distance: DistanceMedium},
		},
	},
	{
		Key:         "showcase",
		Label:       "Showcase",
		Icon:        '✦',
		Description: "Original plus a hero low angle and a wide establishing view",
		Angles: []AngleSpec{
			{Azimuth: AzimuthFront, Elevation: ElevationEyeLevel, Distance: DistanceCloseUp, UseOriginal: true},
			{Azimuth: AzimuthFrontRight, Elevation: ElevationLowAngle, Distance: DistanceCloseUp},
			{Azimuth: AzimuthFrontLeft, Elevation: ElevationHighAngle, Distance: DistanceWide},
		},
	},
	{
		Key:         "dramatic",
		Label:       "Dramatic",
		Icon:        '▲',
		Description: "Alternating low and high angle pair",
		Angles: []AngleSpec{
			{Azimuth: AzimuthFrontRight, Elevation: ElevationLowAngle, Distance: DistanceCloseUp},
			{Azimuth: AzimuthFrontLeft, Elevation: ElevationHighAngle, Distance: DistanceMedium},
		},
	},
	{
		Key:         PresetCustom,
		Label:       "Custom",
		Icon:        '✎',
		Description: "Start from original plus one wide angle and edit freely",
	},
}

// PresetByKey returns the preset for key, or false if unknown
func PresetByKey(key string) (Preset, bool) {
	for _, p := range Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
