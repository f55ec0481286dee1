package viritys

import "fmt"

// Inversion identifies which chord tone appears in the bass. The zero
// value is root position.
type Inversion int

const (
	RootPosition Inversion = iota
	FirstInversion
	SecondInversion
	ThirdInversion
)

// InversionFromBassIndex constructs an inversion from the index of the
// bass tone, 0 being root position. Negative indices clamp to root.
func InversionFromBassIndex(index int) Inversion {
	if index < 0 {
		return RootPosition
	}
	return Inversion(index)
}

// BassIndex returns the index of the chord tone in the bass.
func (i Inversion) BassIndex() int {
	if i < 0 {
		return 0
	}
	return int(i)
}

func (i Inversion) String() string {
	switch i {
	case RootPosition:
		return "root position"
	case FirstInversion:
		return "1st inversion"
	case SecondInversion:
		return "2nd inversion"
	case ThirdInversion:
		return "3rd inversion"
	}
	return fmt.Sprintf("%dth inversion", int(i))
}

// Invert rotates the chord so that the tone at the inversion's bass index
// becomes the root. Tones that wrap past the top are raised an octave;
// their exact step counts are not preserved since the octave span in steps
// depends on the tuning system. Reports false when the bass index is out
// of range.
func (c Chord) Invert(inversion Inversion, registry *TuningRegistry) (Chord, bool, error) {
	bass := inversion.BassIndex()
	n := c.pattern.Len()
	if bass >= n {
		return Chord{}, false, nil
	}
	if bass == 0 {
		return c, true, nil
	}
	newRoot, err := c.pattern.intervals[bass].ApplyTo(c.root, registry)
	if err != nil {
		return Chord{}, false, err
	}
	base, err := c.pattern.intervals[bass].Inverse()
	if err != nil {
		return Chord{}, false, err
	}
	octave, err := IntervalFromRatio(2)
	if err != nil {
		return Chord{}, false, err
	}
	intervals := make([]Interval, 0, n)
	intervals = append(intervals, Identity())
	for idx := 1; idx < n; idx++ {
		src := (bass + idx) % n
		iv, err := c.pattern.intervals[src].Compose(base)
		if err != nil {
			return Chord{}, false, err
		}
		if src < bass {
			// wrapped tones sound an octave above the original voicing
			if iv, err = iv.Compose(octave); err != nil {
				return Chord{}, false, err
			}
		}
		intervals = append(intervals, iv)
	}
	pattern, err := NewChordPattern(intervals)
	if err != nil {
		return Chord{}, false, err
	}
	return NewChord(newRoot, pattern), true, nil
}
