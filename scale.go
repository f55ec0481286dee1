package viritys

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a scale or chord pattern is constructed
// from an empty interval list.
var ErrEmptyPattern = errors.New("pattern must contain at least one interval")

type (
	// ScalePattern is the ordered, non-empty sequence of interval steps
	// between consecutive scale degrees, covering one cycle (typically one
	// octave). Applied cyclically from a root it generates arbitrarily many
	// degrees.
	ScalePattern struct {
		steps []Interval
	}

	// Scale anchors a ScalePattern at a root pitch.
	Scale struct {
		root    Pitch
		pattern ScalePattern
	}
)

// NewScalePattern creates a pattern from the steps between consecutive
// degrees. Fails with ErrEmptyPattern when steps is empty.
func NewScalePattern(steps []Interval) (ScalePattern, error) {
	if len(steps) == 0 {
		return ScalePattern{}, ErrEmptyPattern
	}
	return ScalePattern{steps: append([]Interval(nil), steps...)}, nil
}

// ScalePatternFromSemitones builds a pattern from integer step sizes in the
// given system, e.g. [2 2 1 2 2 2 1] for a major scale in twelve-tone equal
// temperament. Every step interval keeps exact step information for the
// system.
func ScalePatternFromSemitones(stepSizes []int, system SystemID, registry *TuningRegistry) (ScalePattern, error) {
	steps := make([]Interval, 0, len(stepSizes))
	index := 0
	for _, delta := range stepSizes {
		start := Abstract(index, system)
		index += delta
		interval, err := IntervalBetween(start, Abstract(index, system), registry)
		if err != nil {
			return ScalePattern{}, err
		}
		steps = append(steps, interval)
	}
	return NewScalePattern(steps)
}

// Len returns the number of steps in one cycle of the pattern.
func (p ScalePattern) Len() int { return len(p.steps) }

// Steps returns the ordered interval steps. The returned slice is shared;
// callers must not modify it.
func (p ScalePattern) Steps() []Interval { return p.steps }

// Rotate returns a copy of the pattern starting at a different step,
// wrapping the skipped steps to the end. Negative offsets rotate the other
// way. This is the pattern half of modal rotation.
func (p ScalePattern) Rotate(offset int) ScalePattern {
	if len(p.steps) == 0 {
		return p
	}
	shift := offset % len(p.steps)
	if shift < 0 {
		shift += len(p.steps)
	}
	if shift == 0 {
		return p
	}
	rotated := make([]Interval, 0, len(p.steps))
	rotated = append(rotated, p.steps[shift:]...)
	rotated = append(rotated, p.steps[:shift]...)
	return ScalePattern{steps: rotated}
}

// DegreeInterval returns the interval accumulated from the root to the
// given degree. Degree 0 is the identity; degrees past one cycle reuse the
// pattern cyclically, so degree Len()+1 is one full cycle plus one step.
func (p ScalePattern) DegreeInterval(degree int) (Interval, error) {
	if degree <= 0 || len(p.steps) == 0 {
		return Identity(), nil
	}
	acc := p.steps[0]
	for idx := 1; idx < degree; idx++ {
		next, err := acc.Compose(p.steps[idx%len(p.steps)])
		if err != nil {
			return Interval{}, err
		}
		acc = next
	}
	return acc, nil
}

// DegreeIntervals returns the accumulated interval for every degree from 0
// to highest inclusive, with the identity at index 0.
func (p ScalePattern) DegreeIntervals(highest int) ([]Interval, error) {
	if highest < 0 {
		return nil, nil
	}
	intervals := make([]Interval, 0, highest+1)
	iter := p.DegreeIntervalIter()
	for len(intervals) <= highest && iter.Next() {
		intervals = append(intervals, iter.Interval())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return intervals, nil
}

// NewScale anchors a pattern at a root pitch.
func NewScale(root Pitch, pattern ScalePattern) Scale {
	return Scale{root: root, pattern: pattern}
}

// ScaleFromSemitones builds a scale rooted at rootIndex from integer step
// sizes in the given system.
func ScaleFromSemitones(rootIndex int, system SystemID, stepSizes []int, registry *TuningRegistry) (Scale, error) {
	pattern, err := ScalePatternFromSemitones(stepSizes, system, registry)
	if err != nil {
		return Scale{}, err
	}
	return NewScale(Abstract(rootIndex, system), pattern), nil
}

// Root returns the root pitch.
func (s Scale) Root() Pitch { return s.root }

// Pattern returns the step pattern.
func (s Scale) Pattern() ScalePattern { return s.pattern }

// StepCount returns the number of steps in one cycle of the scale.
func (s Scale) StepCount() int { return s.pattern.Len() }

// DegreeInterval returns the interval from the root to the given degree.
func (s Scale) DegreeInterval(degree int) (Interval, error) {
	return s.pattern.DegreeInterval(degree)
}

// DegreePitch resolves the pitch at the given degree by applying the step
// sequence to the root, wrapping cyclically past one full cycle. Degree 0
// returns the root without registry access.
func (s Scale) DegreePitch(degree int, registry *TuningRegistry) (Pitch, error) {
	if degree <= 0 || len(s.pattern.steps) == 0 {
		return s.root, nil
	}
	pitch := s.root
	for idx := 0; idx < degree; idx++ {
		next, err := s.pattern.steps[idx%len(s.pattern.steps)].ApplyTo(pitch, registry)
		if err != nil {
			return Pitch{}, err
		}
		pitch = next
	}
	return pitch, nil
}

// DegreePitches resolves the pitch of every degree from 0 to highest
// inclusive, with the root at index 0.
func (s Scale) DegreePitches(highest int, registry *TuningRegistry) ([]Pitch, error) {
	if highest < 0 {
		return nil, nil
	}
	pitches := make([]Pitch, 0, highest+1)
	pitches = append(pitches, s.root)
	if highest <= 0 || len(s.pattern.steps) == 0 {
		return pitches, nil
	}
	current := s.root
	for idx := 0; idx < highest; idx++ {
		next, err := s.pattern.steps[idx%len(s.pattern.steps)].ApplyTo(current, registry)
		if err != nil {
			return nil, err
		}
		current = next
		pitches = append(pitches, current)
	}
	return pitches, nil
}

// ModeError reports a failed modal rotation: an intermediate step could not
// be inverted or an intermediate pitch could not be resolved.
type ModeError struct {
	Degree int
	Err    error
}

func (e ModeError) Error() string {
	return fmt.Sprintf("mode rotation by %d: %v", e.Degree, e.Err)
}

func (e ModeError) Unwrap() error { return e.Err }

// Mode rotates the scale forward: the root moves up to the given degree and
// the pattern rotates left by the same amount, yielding the classic modes
// (degree 1 of a major scale is dorian, etc.). Negative degrees wrap to
// their equivalent mode within the octave.
func (s Scale) Mode(degree int, registry *TuningRegistry) (Scale, error) {
	if len(s.pattern.steps) == 0 {
		return s, nil
	}
	n := len(s.pattern.steps)
	if degree < 0 {
		degree = (degree%n + n) % n
	}
	newRoot, err := s.DegreePitch(degree, registry)
	if err != nil {
		return Scale{}, err
	}
	return Scale{root: newRoot, pattern: s.pattern.Rotate(degree % n)}, nil
}

// ModeBack rotates the scale backward by the given number of degrees,
// undoing a forward rotation: the root walks down through the inverted
// steps in reverse order and the pattern rotates right.
func (s Scale) ModeBack(degree int, registry *TuningRegistry) (Scale, error) {
	if len(s.pattern.steps) == 0 || degree <= 0 {
		return s, nil
	}
	newRoot, err := s.shiftRootBackward(degree, registry)
	if err != nil {
		return Scale{}, ModeError{Degree: degree, Err: err}
	}
	n := len(s.pattern.steps)
	rotation := (n - degree%n) % n
	return Scale{root: newRoot, pattern: s.pattern.Rotate(rotation)}, nil
}

// ModeWithOffset rotates forward for positive offsets and backward for
// negative ones; zero returns the scale unchanged.
func (s Scale) ModeWithOffset(offset int, registry *TuningRegistry) (Scale, error) {
	if len(s.pattern.steps) == 0 || offset == 0 {
		return s, nil
	}
	if offset > 0 {
		return s.Mode(offset, registry)
	}
	return s.ModeBack(-offset, registry)
}

func (s Scale) shiftRootBackward(steps int, registry *TuningRegistry) (Pitch, error) {
	n := len(s.pattern.steps)
	pitch := s.root
	for offset := 0; offset < steps; offset++ {
		idx := (n + n - 1 - offset%n) % n
		inverse, err := s.pattern.steps[idx].Inverse()
		if err != nil {
			return Pitch{}, err
		}
		pitch, err = inverse.ApplyTo(pitch, registry)
		if err != nil {
			return Pitch{}, err
		}
	}
	return pitch, nil
}
