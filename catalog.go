package viritys

// ScaleShape names a common scale formula expressed as step sizes in a
// twelve-step system.
type ScaleShape int

const (
	Ionian ScaleShape = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
)

// Major and NaturalMinor alias the church modes they correspond to.
const (
	Major        = Ionian
	Minor        = Aeolian
	NaturalMinor = Aeolian
)

var shapeSteps = [...][]int{
	Ionian:        {2, 2, 1, 2, 2, 2, 1},
	Dorian:        {2, 1, 2, 2, 2, 1, 2},
	Phrygian:      {1, 2, 2, 2, 1, 2, 2},
	Lydian:        {2, 2, 2, 1, 2, 2, 1},
	Mixolydian:    {2, 2, 1, 2, 2, 1, 2},
	Aeolian:       {2, 1, 2, 2, 1, 2, 2},
	Locrian:       {1, 2, 2, 1, 2, 2, 2},
	HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
	MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
}

var shapeNames = [...]string{
	Ionian:        "ionian",
	Dorian:        "dorian",
	Phrygian:      "phrygian",
	Lydian:        "lydian",
	Mixolydian:    "mixolydian",
	Aeolian:       "aeolian",
	Locrian:       "locrian",
	HarmonicMinor: "harmonic minor",
	MelodicMinor:  "melodic minor",
}

// Steps returns the shape's step sizes. The returned slice must not be
// modified.
func (s ScaleShape) Steps() []int {
	if s < Ionian || int(s) >= len(shapeSteps) {
		return nil
	}
	return shapeSteps[s]
}

func (s ScaleShape) String() string {
	if s < Ionian || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// Pattern builds the shape's scale pattern in the given twelve-step
// system.
func (s ScaleShape) Pattern(system SystemID, registry *TuningRegistry) (ScalePattern, error) {
	return ScalePatternFromSemitones(s.Steps(), system, registry)
}

// Scale builds the shape's scale rooted at rootIndex.
func (s ScaleShape) Scale(rootIndex int, system SystemID, registry *TuningRegistry) (Scale, error) {
	return ScaleFromSemitones(rootIndex, system, s.Steps(), registry)
}

// MajorScale builds the major scale rooted at rootIndex.
func MajorScale(rootIndex int, system SystemID, registry *TuningRegistry) (Scale, error) {
	return Major.Scale(rootIndex, system, registry)
}

// MinorScale builds the natural minor scale rooted at rootIndex.
func MinorScale(rootIndex int, system SystemID, registry *TuningRegistry) (Scale, error) {
	return Minor.Scale(rootIndex, system, registry)
}
