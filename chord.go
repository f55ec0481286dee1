package viritys

import (
	"errors"
)

// ErrMissingRootInterval is returned when a chord pattern does not begin
// with the identity interval representing the root itself.
var ErrMissingRootInterval = errors.New("chord pattern must begin with the identity interval")

// rootRatioEpsilon is the tolerance for recognizing the leading identity
// interval of a chord pattern.
const rootRatioEpsilon = machineEpsilon

type (
	// ChordPattern is the ordered, non-empty sequence of intervals from a
	// chord's root to each of its tones. The first interval is always the
	// identity, representing the root itself.
	ChordPattern struct {
		intervals []Interval
	}

	// Chord anchors a ChordPattern at a root pitch.
	Chord struct {
		root    Pitch
		pattern ChordPattern
	}
)

// NewChordPattern creates a pattern from explicit tone intervals. Fails
// with ErrEmptyPattern when intervals is empty and ErrMissingRootInterval
// when the first interval's ratio is not 1.0 within a tight epsilon.
func NewChordPattern(intervals []Interval) (ChordPattern, error) {
	if len(intervals) == 0 {
		return ChordPattern{}, ErrEmptyPattern
	}
	diff := intervals[0].Ratio() - 1
	if diff < -rootRatioEpsilon || diff > rootRatioEpsilon {
		return ChordPattern{}, ErrMissingRootInterval
	}
	return ChordPattern{intervals: append([]Interval(nil), intervals...)}, nil
}

// ChordPatternFromOffsets builds a pattern from integer step offsets
// measured from the root in the given system, e.g. [0 4 7] for a major
// triad in twelve-tone equal temperament. The first offset must be 0.
func ChordPatternFromOffsets(offsets []int, system SystemID, registry *TuningRegistry) (ChordPattern, error) {
	if len(offsets) == 0 {
		return ChordPattern{}, ErrEmptyPattern
	}
	if offsets[0] != 0 {
		return ChordPattern{}, ErrMissingRootInterval
	}
	root := Abstract(0, system)
	intervals := make([]Interval, 0, len(offsets))
	for _, offset := range offsets {
		interval, err := IntervalBetween(root, Abstract(offset, system), registry)
		if err != nil {
			return ChordPattern{}, err
		}
		intervals = append(intervals, interval)
	}
	return NewChordPattern(intervals)
}

// Len returns the number of tones described by the pattern.
func (p ChordPattern) Len() int { return len(p.intervals) }

// Intervals returns the ordered tone intervals. The returned slice is
// shared; callers must not modify it.
func (p ChordPattern) Intervals() []Interval { return p.intervals }

// StepOffsets recovers the integer step offsets of every tone. It reports
// false when any non-root interval lost its step information or when the
// intervals span more than one tuning system, since the offsets can then
// no longer be recovered losslessly.
func (p ChordPattern) StepOffsets() ([]int, bool) {
	if len(p.intervals) == 0 {
		return nil, true
	}
	offsets := make([]int, 0, len(p.intervals))
	offsets = append(offsets, 0)
	var system SystemID
	haveSystem := false
	for _, interval := range p.intervals[1:] {
		delta, ivSystem, ok := interval.Steps()
		if !ok {
			return nil, false
		}
		if haveSystem && system != ivSystem {
			return nil, false
		}
		system, haveSystem = ivSystem, true
		offsets = append(offsets, delta)
	}
	return offsets, true
}

// Tones applies the pattern to root, returning every chord tone with the
// root itself first.
func (p ChordPattern) Tones(root Pitch, registry *TuningRegistry) ([]Pitch, error) {
	if len(p.intervals) == 0 {
		return nil, nil
	}
	tones := make([]Pitch, 0, len(p.intervals))
	tones = append(tones, root)
	for _, interval := range p.intervals[1:] {
		pitch, err := interval.ApplyTo(root, registry)
		if err != nil {
			return nil, err
		}
		tones = append(tones, pitch)
	}
	return tones, nil
}

// NewChord anchors a pattern at a root pitch.
func NewChord(root Pitch, pattern ChordPattern) Chord {
	return Chord{root: root, pattern: pattern}
}

// ChordFromOffsets builds a chord rooted at rootIndex from integer step
// offsets in the given system.
func ChordFromOffsets(rootIndex int, system SystemID, offsets []int, registry *TuningRegistry) (Chord, error) {
	pattern, err := ChordPatternFromOffsets(offsets, system, registry)
	if err != nil {
		return Chord{}, err
	}
	return NewChord(Abstract(rootIndex, system), pattern), nil
}

// Root returns the chord root.
func (c Chord) Root() Pitch { return c.root }

// Pattern returns the chord pattern.
func (c Chord) Pattern() ChordPattern { return c.pattern }

// ToneCount returns the number of tones in the chord.
func (c Chord) ToneCount() int { return c.pattern.Len() }

// Tones resolves every chord tone.
func (c Chord) Tones(registry *TuningRegistry) ([]Pitch, error) {
	return c.pattern.Tones(c.root, registry)
}

// Tone resolves a single chord tone lazily. The root (index 0) is returned
// without registry access; out-of-range indices report false.
func (c Chord) Tone(index int, registry *TuningRegistry) (Pitch, bool, error) {
	if index < 0 || index >= c.pattern.Len() {
		return Pitch{}, false, nil
	}
	if index == 0 {
		return c.root, true, nil
	}
	pitch, err := c.pattern.intervals[index].ApplyTo(c.root, registry)
	if err != nil {
		return Pitch{}, false, err
	}
	return pitch, true, nil
}
