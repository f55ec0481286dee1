package viritys

// ChordQuality names a common chord formula expressed as semitone offsets
// from the root. The zero value QualityUnknown means no classification.
type ChordQuality int

const (
	QualityUnknown ChordQuality = iota
	// Triads
	MajorTriad
	MinorTriad
	DiminishedTriad
	AugmentedTriad
	SuspendedSecond
	SuspendedFourth
	// Seventh chords
	DominantSeventh
	MajorSeventh
	MinorSeventh
	MinorMajorSeventh
	HalfDiminishedSeventh
	DiminishedSeventh
	// Extended chords
	Dominant9
	Major9
	Minor9
	Add9
	Dominant11
	Major11
	Minor11
	Dominant13
	Major13
	Minor13
)

var qualityOffsets = map[ChordQuality][]int{
	MajorTriad:            {0, 4, 7},
	MinorTriad:            {0, 3, 7},
	DiminishedTriad:       {0, 3, 6},
	AugmentedTriad:        {0, 4, 8},
	SuspendedSecond:       {0, 2, 7},
	SuspendedFourth:       {0, 5, 7},
	DominantSeventh:       {0, 4, 7, 10},
	MajorSeventh:          {0, 4, 7, 11},
	MinorSeventh:          {0, 3, 7, 10},
	MinorMajorSeventh:     {0, 3, 7, 11},
	HalfDiminishedSeventh: {0, 3, 6, 10},
	DiminishedSeventh:     {0, 3, 6, 9},
	Add9:                  {0, 4, 7, 14}, // major triad + 9th, no 7th
	Dominant9:             {0, 4, 7, 10, 14},
	Major9:                {0, 4, 7, 11, 14},
	Minor9:                {0, 3, 7, 10, 14},
	Dominant11:            {0, 4, 7, 10, 17}, // 9th omitted
	Major11:               {0, 4, 7, 11, 17},
	Minor11:               {0, 3, 7, 10, 17},
	Dominant13:            {0, 4, 7, 10, 21}, // 9th and 11th omitted
	Major13:               {0, 4, 7, 11, 21},
	Minor13:               {0, 3, 7, 10, 21},
}

var qualityNames = map[ChordQuality]string{
	MajorTriad:            "major triad",
	MinorTriad:            "minor triad",
	DiminishedTriad:       "diminished triad",
	AugmentedTriad:        "augmented triad",
	SuspendedSecond:       "suspended second",
	SuspendedFourth:       "suspended fourth",
	DominantSeventh:       "dominant seventh",
	MajorSeventh:          "major seventh",
	MinorSeventh:          "minor seventh",
	MinorMajorSeventh:     "minor-major seventh",
	HalfDiminishedSeventh: "half-diminished seventh",
	DiminishedSeventh:     "diminished seventh",
	Dominant9:             "dominant ninth",
	Major9:                "major ninth",
	Minor9:                "minor ninth",
	Add9:                  "added ninth",
	Dominant11:            "dominant eleventh",
	Major11:               "major eleventh",
	Minor11:               "minor eleventh",
	Dominant13:            "dominant thirteenth",
	Major13:               "major thirteenth",
	Minor13:               "minor thirteenth",
}

// Offsets returns the semitone offsets from the root that define the
// quality. The returned slice must not be modified.
func (q ChordQuality) Offsets() []int { return qualityOffsets[q] }

// ToneCount returns the number of tones described by the quality.
func (q ChordQuality) ToneCount() int { return len(qualityOffsets[q]) }

// IsSeventh reports whether the quality is a four-note voicing.
func (q ChordQuality) IsSeventh() bool { return q.ToneCount() == 4 }

func (q ChordQuality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return "unknown"
}

// BuildPattern builds the chord pattern for this quality in a twelve-step
// system, typically twelve-tone equal temperament.
func (q ChordQuality) BuildPattern(system SystemID, registry *TuningRegistry) (ChordPattern, error) {
	return ChordPatternFromOffsets(q.Offsets(), system, registry)
}

// BuildChord builds a chord of this quality rooted at rootIndex.
func (q ChordQuality) BuildChord(rootIndex int, system SystemID, registry *TuningRegistry) (Chord, error) {
	return ChordFromOffsets(rootIndex, system, q.Offsets(), registry)
}

// ClassifyChordPattern matches a pattern against the quality catalog. It
// returns QualityUnknown when the pattern's step offsets cannot be
// recovered or match no known formula.
func ClassifyChordPattern(pattern ChordPattern) ChordQuality {
	offsets, ok := pattern.StepOffsets()
	if !ok {
		return QualityUnknown
	}
	return ClassifyOffsets(offsets)
}

// ClassifyOffsets matches semitone offsets against the quality catalog.
func ClassifyOffsets(offsets []int) ChordQuality {
	for quality, known := range qualityOffsets {
		if offsetsEqual(offsets, known) {
			return quality
		}
	}
	return QualityUnknown
}

func offsetsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
