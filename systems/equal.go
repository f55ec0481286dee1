// Package systems provides ready-made tuning systems: equal temperaments,
// ratio-based just intonation and cent-offset scales, plus loading of
// system definitions from yaml.
package systems

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroSteps is returned when an equal temperament is constructed with
// zero steps per octave.
var ErrZeroSteps = errors.New("steps per octave must be non-zero")

// EqualTemperament divides the octave into a fixed number of equal steps
// anchored at a base frequency and index.
type EqualTemperament struct {
	baseFreq       float32
	baseIndex      int
	stepsPerOctave int
	label          string
}

// NewEqualTemperament creates an equal temperament with the given number
// of steps per octave, anchored so that baseIndex sounds at baseFreq.
func NewEqualTemperament(stepsPerOctave int, baseFreq float32, baseIndex int) (EqualTemperament, error) {
	if stepsPerOctave <= 0 {
		return EqualTemperament{}, ErrZeroSteps
	}
	return EqualTemperament{
		baseFreq:       baseFreq,
		baseIndex:      baseIndex,
		stepsPerOctave: stepsPerOctave,
	}, nil
}

// WithLabel attaches a display label, e.g. "12-TET", used by NameOf.
func (e EqualTemperament) WithLabel(label string) EqualTemperament {
	e.label = label
	return e
}

// StepsPerOctave returns the number of steps per octave.
func (e EqualTemperament) StepsPerOctave() int { return e.stepsPerOctave }

// BaseFreq returns the anchor frequency.
func (e EqualTemperament) BaseFreq() float32 { return e.baseFreq }

// BaseIndex returns the anchor index.
func (e EqualTemperament) BaseIndex() int { return e.baseIndex }

// ToFrequency converts an abstract pitch index to a frequency in Hz. The
// intermediate math runs in float64 to keep large index offsets exact.
func (e EqualTemperament) ToFrequency(index int) float32 {
	steps := float64(index - e.baseIndex)
	return float32(float64(e.baseFreq) * math.Exp2(steps/float64(e.stepsPerOctave)))
}

// NameOf reports a symbolic name "label(index)" when a label is set.
func (e EqualTemperament) NameOf(index int) (string, bool) {
	if e.label == "" {
		return "", false
	}
	return fmt.Sprintf("%s(%d)", e.label, index), true
}

// TwelveTET builds the classic twelve-tone equal temperament with a custom
// anchor.
func TwelveTET(baseFreq float32, baseIndex int) EqualTemperament {
	et, _ := NewEqualTemperament(12, baseFreq, baseIndex)
	return et.WithLabel("12-TET")
}

// TwelveTETA440 is the standard tuning where index 69 sounds at 440 Hz.
func TwelveTETA440() EqualTemperament {
	return TwelveTET(440, 69)
}

// TwentyFourTET builds a quarter-tone equal temperament with a custom
// anchor.
func TwentyFourTET(baseFreq float32, baseIndex int) EqualTemperament {
	et, _ := NewEqualTemperament(24, baseFreq, baseIndex)
	return et.WithLabel("24-TET")
}

// TwentyFourTETA440 matches 440 Hz at index 69.
func TwentyFourTETA440() EqualTemperament {
	return TwentyFourTET(440, 69)
}
