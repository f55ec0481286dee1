package viritys

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Interval is the musical distance between two pitches. It always carries a
// validated frequency ratio and, when it was derived from two abstract
// pitches within one tuning system, the exact step delta in that system.
// The step information is what allows lossless transposition: applying such
// an interval to an abstract pitch of the same system shifts the index
// without any rounding. Any operation that mixes systems drops the steps
// and falls back to ratio-only math.
type Interval struct {
	ratio      float32
	stepSystem SystemID
	stepDelta  int
	hasSteps   bool
}

// RatioError reports an interval ratio that is non-finite or not strictly
// positive.
type RatioError struct {
	Ratio float32
}

func (e RatioError) Error() string {
	if math32.IsNaN(e.Ratio) || math32.IsInf(e.Ratio, 0) {
		return fmt.Sprintf("interval ratio must be finite (got %v)", e.Ratio)
	}
	return fmt.Sprintf("interval ratio must be positive (got %v)", e.Ratio)
}

func validRatio(ratio float32) error {
	if math32.IsNaN(ratio) || math32.IsInf(ratio, 0) || ratio <= 0 {
		return RatioError{Ratio: ratio}
	}
	return nil
}

// Identity returns the identity interval: ratio 1.0, no preserved steps.
func Identity() Interval {
	return Interval{ratio: 1}
}

// IntervalFromRatio constructs an interval from an explicit frequency
// ratio, without step information.
func IntervalFromRatio(ratio float32) (Interval, error) {
	if err := validRatio(ratio); err != nil {
		return Interval{}, err
	}
	return Interval{ratio: ratio}, nil
}

// IntervalFromSteps constructs an interval carrying both an explicit ratio
// and a step delta within system. Intended for callers that already know
// the exact relationship; IntervalBetween derives both from a pitch pair.
func IntervalFromSteps(ratio float32, system SystemID, delta int) (Interval, error) {
	if err := validRatio(ratio); err != nil {
		return Interval{}, err
	}
	return Interval{ratio: ratio, stepSystem: system, stepDelta: delta, hasSteps: true}, nil
}

// IntervalBetween derives the interval from base to target, resolving both
// pitches through the registry. Steps are preserved only when both pitches
// are abstract within the same system. Pitch resolution failures and ratio
// validation failures are both surfaced; use errors.As with RatioError to
// distinguish them.
func IntervalBetween(base, target Pitch, registry *TuningRegistry) (Interval, error) {
	baseFreq, err := base.TryFreqHz(registry)
	if err != nil {
		return Interval{}, err
	}
	targetFreq, err := target.TryFreqHz(registry)
	if err != nil {
		return Interval{}, err
	}
	ratio := targetFreq / baseFreq
	if err := validRatio(ratio); err != nil {
		return Interval{}, fmt.Errorf("failed to build interval: %w", err)
	}
	iv := Interval{ratio: ratio}
	lhs, lok := base.AsAbstract()
	rhs, rok := target.AsAbstract()
	if lok && rok && lhs.System == rhs.System {
		iv.stepSystem = lhs.System
		iv.stepDelta = rhs.Index - lhs.Index
		iv.hasSteps = true
	}
	return iv, nil
}

// Ratio returns the multiplicative frequency ratio.
func (i Interval) Ratio() float32 { return i.ratio }

// Steps returns the preserved step delta and its system, when the interval
// originated from pitches within one tuning system.
func (i Interval) Steps() (int, SystemID, bool) {
	return i.stepDelta, i.stepSystem, i.hasSteps
}

// Cents returns the interval size in cents (1200 per octave).
func (i Interval) Cents() float32 {
	return math32.Log2(i.ratio) * 1200
}

func (i Interval) String() string {
	if i.hasSteps {
		return fmt.Sprintf("ratio=%.6f, steps=%d@%s", i.ratio, i.stepDelta, i.stepSystem)
	}
	return fmt.Sprintf("ratio=%.6f", i.ratio)
}

// Inverse returns the interval pointing the opposite way: the ratio is
// reciprocated and any preserved steps negate within the same system.
func (i Interval) Inverse() (Interval, error) {
	ratio := 1 / i.ratio
	if err := validRatio(ratio); err != nil {
		return Interval{}, err
	}
	inv := Interval{ratio: ratio, stepSystem: i.stepSystem, hasSteps: i.hasSteps}
	if i.hasSteps {
		inv.stepDelta = -i.stepDelta
	}
	return inv, nil
}

// Compose combines two intervals into one. Ratios multiply; steps add only
// when both intervals recorded steps under the same system, otherwise the
// result carries no step information.
func (i Interval) Compose(other Interval) (Interval, error) {
	ratio := i.ratio * other.ratio
	if err := validRatio(ratio); err != nil {
		return Interval{}, err
	}
	out := Interval{ratio: ratio}
	if i.hasSteps && other.hasSteps && i.stepSystem == other.stepSystem {
		if sum, ok := checkedAdd(i.stepDelta, other.stepDelta); ok {
			out.stepSystem = i.stepSystem
			out.stepDelta = sum
			out.hasSteps = true
		}
	}
	return out, nil
}

// Powi repeats the interval the given number of times (negative values
// invert). Steps scale with the exponent when that multiplication does not
// overflow; on overflow the result simply carries no steps.
func (i Interval) Powi(times int) (Interval, error) {
	if times == 0 {
		out := Interval{ratio: 1}
		if i.hasSteps {
			out.stepSystem = i.stepSystem
			out.hasSteps = true
		}
		return out, nil
	}
	ratio := math32.Pow(i.ratio, float32(times))
	if err := validRatio(ratio); err != nil {
		return Interval{}, err
	}
	out := Interval{ratio: ratio}
	if i.hasSteps {
		if scaled, ok := checkedMul(i.stepDelta, times); ok {
			out.stepSystem = i.stepSystem
			out.stepDelta = scaled
			out.hasSteps = true
		}
	}
	return out, nil
}

// ApplyTo transposes a pitch by the interval. When the pitch is abstract in
// the same system the interval recorded its steps in, the index shifts
// exactly with no rounding and the result stays abstract. Otherwise the
// pitch is resolved and the result is a literal frequency scaled by the
// ratio.
func (i Interval) ApplyTo(pitch Pitch, registry *TuningRegistry) (Pitch, error) {
	if a, ok := pitch.AsAbstract(); ok && i.hasSteps && i.stepSystem == a.System {
		return FromAbstract(a.Transpose(i.stepDelta)), nil
	}
	freq, err := pitch.TryFreqHz(registry)
	if err != nil {
		return Pitch{}, err
	}
	return Hz(freq * i.ratio), nil
}

func checkedAdd(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return product, true
}
