package systems

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrEmptyRatios is returned when a just intonation table has no
	// entries.
	ErrEmptyRatios = errors.New("ratio table must contain at least one entry")

	// ErrNonPositiveRatio is returned when a just intonation table
	// contains a zero, negative or non-finite ratio.
	ErrNonPositiveRatio = errors.New("ratios must be positive and finite")
)

// JustIntonation maps indices to frequencies through a table of ratios
// relative to the base pitch, covering one octave of scale degrees.
// Indices past the table wrap to the next octave by doubling.
type JustIntonation struct {
	baseFreq  float32
	baseIndex int
	ratios    []float32
	label     string
}

// NewJustIntonation creates a just intonation mapping. Ratios are relative
// to the base pitch, 1.0 being unison, and represent one octave's worth of
// degrees.
func NewJustIntonation(baseFreq float32, baseIndex int, ratios []float32) (JustIntonation, error) {
	if len(ratios) == 0 {
		return JustIntonation{}, ErrEmptyRatios
	}
	for _, r := range ratios {
		if !(r > 0) || math32.IsInf(r, 0) {
			return JustIntonation{}, ErrNonPositiveRatio
		}
	}
	return JustIntonation{
		baseFreq:  baseFreq,
		baseIndex: baseIndex,
		ratios:    append([]float32(nil), ratios...),
	}, nil
}

// WithLabel attaches a display label used by NameOf.
func (j JustIntonation) WithLabel(label string) JustIntonation {
	j.label = label
	return j
}

// MajorRatios returns the 5-limit just major scale ratios.
func MajorRatios() []float32 {
	return []float32{
		1,
		16.0 / 15.0,
		9.0 / 8.0,
		6.0 / 5.0,
		5.0 / 4.0,
		4.0 / 3.0,
		45.0 / 32.0,
		3.0 / 2.0,
		8.0 / 5.0,
		5.0 / 3.0,
		9.0 / 5.0,
		15.0 / 8.0,
	}
}

// JustMajor builds the 5-limit just major scale with a custom anchor.
func JustMajor(baseFreq float32, baseIndex int) JustIntonation {
	j, _ := NewJustIntonation(baseFreq, baseIndex, MajorRatios())
	return j.WithLabel("JI-major")
}

// JustMajorA440 is the just major scale aligned to 440 Hz at index 69.
func JustMajorA440() JustIntonation {
	return JustMajor(440, 69)
}

func (j JustIntonation) ratioForSteps(steps int) float32 {
	n := len(j.ratios)
	octave := floorDiv(steps, n)
	degree := floorMod(steps, n)
	return j.ratios[degree] * exp2i(octave)
}

// ToFrequency converts an abstract pitch index to a frequency in Hz.
func (j JustIntonation) ToFrequency(index int) float32 {
	return j.baseFreq * j.ratioForSteps(index-j.baseIndex)
}

// NameOf reports a symbolic name "label(index)" when a label is set.
func (j JustIntonation) NameOf(index int) (string, bool) {
	if j.label == "" {
		return "", false
	}
	return fmt.Sprintf("%s(%d)", j.label, index), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func exp2i(octave int) float32 {
	return math32.Exp2(float32(octave))
}
