package systems

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyCents is returned when a cent scale has no entries.
var ErrEmptyCents = errors.New("cent table must contain at least one value")

// CentsScale is a custom octave-repeating scale defined by cent offsets
// from the base pitch. The table conventionally begins with 0 (unison) and
// covers a single octave; indices past the table wrap by 1200 cents.
type CentsScale struct {
	baseFreq  float32
	baseIndex int
	cents     []float32
	label     string
}

// NewCentsScale creates a cent-based scale.
func NewCentsScale(baseFreq float32, baseIndex int, cents []float32) (CentsScale, error) {
	if len(cents) == 0 {
		return CentsScale{}, ErrEmptyCents
	}
	return CentsScale{
		baseFreq:  baseFreq,
		baseIndex: baseIndex,
		cents:     append([]float32(nil), cents...),
	}, nil
}

// WithLabel attaches a display label, e.g. "24-EDO", used by NameOf.
func (c CentsScale) WithLabel(label string) CentsScale {
	c.label = label
	return c
}

// QuarterToneA440 builds the 24-notes-per-octave quarter-tone scale, 50
// cents per step, anchored at 440 Hz on index 69.
func QuarterToneA440() CentsScale {
	cents := make([]float32, 24)
	for i := range cents {
		cents[i] = float32(i) * 50
	}
	c, _ := NewCentsScale(440, 69, cents)
	return c.WithLabel("24-EDO")
}

func (c CentsScale) ratioForSteps(steps int) float32 {
	n := len(c.cents)
	octave := floorDiv(steps, n)
	degree := floorMod(steps, n)
	total := float64(octave)*1200 + float64(c.cents[degree])
	return float32(math.Exp2(total / 1200))
}

// ToFrequency converts an abstract pitch index to a frequency in Hz.
func (c CentsScale) ToFrequency(index int) float32 {
	return c.baseFreq * c.ratioForSteps(index-c.baseIndex)
}

// NameOf reports a symbolic name "label(index)" when a label is set.
func (c CentsScale) NameOf(index int) (string, bool) {
	if c.label == "" {
		return "", false
	}
	return fmt.Sprintf("%s(%d)", c.label, index), true
}
