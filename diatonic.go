package viritys

// DiatonicChord is the result of stacking scale degrees into a chord,
// together with its classification against the quality catalog.
// Quality is QualityUnknown when the stack matches no known formula.
type DiatonicChord struct {
	Degree  int
	Chord   Chord
	Quality ChordQuality
}

// DiatonicTriad stacks thirds within the scale to form the triad rooted at
// the given degree. Degrees beyond the pattern length wrap around.
func DiatonicTriad(scale Scale, degree int, registry *TuningRegistry) (DiatonicChord, error) {
	return buildDiatonic(scale, degree, 3, registry)
}

// DiatonicSeventh stacks four consecutive thirds within the scale to form
// the seventh chord rooted at the given degree.
func DiatonicSeventh(scale Scale, degree int, registry *TuningRegistry) (DiatonicChord, error) {
	return buildDiatonic(scale, degree, 4, registry)
}

// DiatonicTriads builds the triad on every degree of the scale.
func DiatonicTriads(scale Scale, registry *TuningRegistry) ([]DiatonicChord, error) {
	return collectDiatonic(scale, registry, 3)
}

// DiatonicSevenths builds the seventh chord on every degree of the scale.
func DiatonicSevenths(scale Scale, registry *TuningRegistry) ([]DiatonicChord, error) {
	return collectDiatonic(scale, registry, 4)
}

func collectDiatonic(scale Scale, registry *TuningRegistry, toneCount int) ([]DiatonicChord, error) {
	stepCount := scale.StepCount()
	if stepCount == 0 {
		return nil, ErrEmptyPattern
	}
	chords := make([]DiatonicChord, 0, stepCount)
	for degree := 0; degree < stepCount; degree++ {
		chord, err := buildDiatonic(scale, degree, toneCount, registry)
		if err != nil {
			return nil, err
		}
		chords = append(chords, chord)
	}
	return chords, nil
}

func buildDiatonic(scale Scale, degree, toneCount int, registry *TuningRegistry) (DiatonicChord, error) {
	stepCount := scale.StepCount()
	if stepCount == 0 || toneCount == 0 {
		return DiatonicChord{}, ErrEmptyPattern
	}
	if degree < 0 {
		degree = ((degree % stepCount) + stepCount) % stepCount
	}
	reduced := degree % stepCount
	root, err := scale.DegreePitch(reduced, registry)
	if err != nil {
		return DiatonicChord{}, err
	}

	intervals := make([]Interval, 0, toneCount)
	intervals = append(intervals, Identity())
	for idx := 1; idx < toneCount; idx++ {
		target, err := scale.DegreePitch(reduced+idx*2, registry)
		if err != nil {
			return DiatonicChord{}, err
		}
		interval, err := IntervalBetween(root, target, registry)
		if err != nil {
			return DiatonicChord{}, err
		}
		intervals = append(intervals, interval)
	}

	pattern, err := NewChordPattern(intervals)
	if err != nil {
		return DiatonicChord{}, err
	}
	chord := NewChord(root, pattern)
	return DiatonicChord{
		Degree:  reduced,
		Chord:   chord,
		Quality: ClassifyChordPattern(pattern),
	}, nil
}
