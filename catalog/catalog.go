package catalog

// Discrete camera parameter catalog for the photobooth angle picker.
// Entries are immutable and loaded once at package init. Declaration
// order of each table is increasing angle; rotation helpers in the
// orbit package rely on that ordering to define adjacency.

// Azimuth identifies a horizontal camera position around the subject
type Azimuth string

const (
	AzimuthFront      Azimuth = "front"
	AzimuthFrontRight Azimuth = "front-right"
	AzimuthRight      Azimuth = "right"
	AzimuthBackRight  Azimuth = "back-right"
	AzimuthBack       Azimuth = "back"
	AzimuthBackLeft   Azimuth = "back-left"
	AzimuthLeft       Azimuth = "left"
	AzimuthFrontLeft  Azimuth = "front-left"
)

// Elevation identifies a vertical camera tilt relative to eye level
type Elevation string

const (
	ElevationLowAngle  Elevation = "low-angle"
	ElevationEyeLevel  Elevation = "eye-level"
	ElevationElevated  Elevation = "elevated"
	ElevationHighAngle Elevation = "high-angle"
)

// Distance identifies a discrete shot framing class
type Distance string

const (
	DistanceCloseUp Distance = "close-up"
	DistanceMedium  Distance = "medium"
	DistanceWide    Distance = "wide"
)

// AzimuthSpec is one catalog entry for a horizontal camera position
type AzimuthSpec struct {
	Key     Azimuth
	Degrees float64 // 0 faces the viewer, increasing clockwise from above
	Label   string
	Prompt  string // generation prompt fragment
}

// ElevationSpec is one catalog entry for a vertical camera tilt
type ElevationSpec struct {
	Key     Elevation
	Degrees float64 // 0 is eye level, positive looks down at the subject
	Label   string
	Prompt  string
}

// DistanceSpec is one catalog entry for a framing class
// LensHalfAngle is carried as data so render sites never re-derive it
// from the key (string switches on framing keys caused typo bugs)
type DistanceSpec struct {
	Key           Distance
	Ordinal       int
	Label         string
	Prompt        string
	LensHalfAngle float64 // degrees, rendered cone spread only, not a physical FOV
}

// MaxAngles is the global ceiling on slots in a single request
const MaxAngles = 8

// Azimuths lists horizontal positions in increasing angle order
var Azimuths = []AzimuthSpec{
	{Key: AzimuthFront, Degrees: 0, Label: "Front", Prompt: "viewed straight on from the front"},
	{Key: AzimuthFrontRight, Degrees: 45, Label: "Front Right", Prompt: "viewed from the front right, three-quarter view"},
	{Key: AzimuthRight, Degrees: 90, Label: "Right", Prompt: "viewed from the right side in full profile"},
	{Key: AzimuthBackRight, Degrees: 135, Label: "Back Right", Prompt: "viewed from behind on the right, over-the-shoulder"},
	{Key: AzimuthBack, Degrees: 180, Label: "Back", Prompt: "viewed directly from behind"},
	{Key: AzimuthBackLeft, Degrees: 225, Label: "Back Left", Prompt: "viewed from behind on the left, over-the-shoulder"},
	{Key: AzimuthLeft, Degrees: 270, Label: "Left", Prompt: "viewed from the left side in full profile"},
	{Key: AzimuthFrontLeft, Degrees: 315, Label: "Front Left", Prompt: "viewed from the front left, three-quarter view"},
}

// Elevations lists vertical tilts in increasing angle order
var Elevations = []ElevationSpec{
	{Key: ElevationLowAngle, Degrees: -20, Label: "Low Angle", Prompt: "shot from a low angle looking up"},
	{Key: ElevationEyeLevel, Degrees: 0, Label: "Eye Level", Prompt: "shot at eye level"},
	{Key: ElevationElevated, Degrees: 25, Label: "Elevated", Prompt: "shot from slightly above, looking down"},
	{Key: ElevationHighAngle, Degrees: 50, Label: "High Angle", Prompt: "shot from a high angle looking down"},
}

// Distances lists framing classes from tightest to widest
var Distances = []DistanceSpec{
	{Key: DistanceCloseUp, Ordinal: 0, Label: "Close-Up", Prompt: "close-up shot, tight framing on the face", LensHalfAngle: 25},
	{Key: DistanceMedium, Ordinal: 1, Label: "Medium", Prompt: "medium shot framed from the waist up", LensHalfAngle: 45},
	{Key: DistanceWide, Ordinal: 2, Label: "Wide", Prompt: "wide shot showing the full figure and surroundings", LensHalfAngle: 70},
}

var (
	azimuthIndex   map[Azimuth]int
	elevationIndex map[Elevation]int
	distanceIndex  map[Distance]int
)

func init() {
	azimuthIndex = make(map[Azimuth]int, len(Azimuths))
	for i, spec := range Azimuths {
		azimuthIndex[spec.Key] = i
	}
	elevationIndex = make(map[Elevation]int, len(Elevations))
	for i, spec := range Elevations {
		elevationIndex[spec.Key] = i
	}
	distanceIndex = make(map[Distance]int, len(Distances))
	for i, spec := range Distances {
		distanceIndex[spec.Key] = i
	}
}

// AzimuthByKey returns the catalog entry for key
// ok is false only on a caller contract violation (key not in catalog)
func AzimuthByKey(key Azimuth) (AzimuthSpec, bool) {
	i, ok := azimuthIndex[key]
	if !ok {
		return AzimuthSpec{}, false
	}
	return Azimuths[i], true
}

// ElevationByKey returns the catalog entry for key
func ElevationByKey(key Elevation) (ElevationSpec, bool) {
	i, ok := elevationIndex[key]
	if !ok {
		return ElevationSpec{}, false
	}
	return Elevations[i], true
}

// DistanceByKey returns the catalog entry for key
func DistanceByKey(key Distance) (DistanceSpec, bool) {
	i, ok := distanceIndex[key]
	if !ok {
		return DistanceSpec{}, false
	}
	return Distances[i], true
}

// AzimuthIndex returns the declaration-order index of key, or -1
func AzimuthIndex(key Azimuth) int {
	i, ok := azimuthIndex[key]
	if !ok {
		return -1
	}
	return i
}

// ElevationIndex returns the declaration-order index of key, or -1
func ElevationIndex(key Elevation) int {
	i, ok := elevationIndex[key]
	if !ok {
		return -1
	}
	return i
}

// DistanceIndex returns the declaration-order index of key, or -1
func DistanceIndex(key Distance) int {
	i, ok := distanceIndex[key]
	if !ok {
		return -1
	}
	return i
}
