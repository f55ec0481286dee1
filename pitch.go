package viritys

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// DefaultFrequencyEpsilon is the default tolerance in Hz used by helpers
// such as Pitch.ApproxEq.
const DefaultFrequencyEpsilon float32 = 1.0e-4

type (
	// AbstractPitch is a pitch expressed as an index into a tuning system,
	// independent of any literal frequency. It resolves to a frequency only
	// through a TuningRegistry.
	AbstractPitch struct {
		Index  int
		System SystemID
	}

	// Pitch is either a literal frequency in Hz or an abstract
	// (index, system) pair. Pitches are immutable values; transformations
	// return new ones. The zero value is a literal 0 Hz pitch, which fails
	// to resolve.
	Pitch struct {
		frequency  float32
		abstract   AbstractPitch
		isAbstract bool
	}

	// PitchLabel describes how a pitch renders for humans: a symbolic name
	// provided by the tuning system, or a numeric frequency fallback.
	PitchLabel struct {
		name      string
		frequency float32
		symbolic  bool
	}
)

// InvalidFrequencyError reports a literal frequency that is non-finite or
// not strictly positive.
type InvalidFrequencyError struct {
	Freq float32
}

func (e InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid literal frequency: %v", e.Freq)
}

// ErrLiteralHasNoName is returned by Pitch.TryName for literal frequency
// pitches, which can never yield a symbolic name.
var ErrLiteralHasNoName = errors.New("literal frequency pitches do not have symbolic names")

// ErrNotAbstract is returned when a literal pitch is used where an abstract
// one is required.
var ErrNotAbstract = errors.New("pitch is not abstract")

// NameUnavailableError reports that a tuning system provides no symbolic
// name for the requested index.
type NameUnavailableError struct {
	System SystemID
	Index  int
}

func (e NameUnavailableError) Error() string {
	return fmt.Sprintf("tuning system %s does not provide a name for index %d", e.System, e.Index)
}

// Transpose shifts the pitch index by steps, returning a new pitch in the
// same system.
func (a AbstractPitch) Transpose(steps int) AbstractPitch {
	return AbstractPitch{Index: a.Index + steps, System: a.System}
}

// WithSystem keeps the index but reinterprets it under another system.
func (a AbstractPitch) WithSystem(system SystemID) AbstractPitch {
	return AbstractPitch{Index: a.Index, System: system}
}

func (a AbstractPitch) String() string {
	return fmt.Sprintf("%d@%s", a.Index, a.System)
}

// Hz returns a literal frequency pitch.
func Hz(freq float32) Pitch {
	return Pitch{frequency: freq}
}

// Abstract returns an abstract pitch referencing index within system.
func Abstract(index int, system SystemID) Pitch {
	return Pitch{abstract: AbstractPitch{Index: index, System: system}, isAbstract: true}
}

// FromAbstract wraps an AbstractPitch value into a Pitch.
func FromAbstract(a AbstractPitch) Pitch {
	return Pitch{abstract: a, isAbstract: true}
}

// IsAbstract reports whether the pitch must be resolved through a registry.
func (p Pitch) IsAbstract() bool { return p.isAbstract }

// AsFrequency returns the literal frequency without resolution, when the
// pitch is literal.
func (p Pitch) AsFrequency() (float32, bool) {
	if p.isAbstract {
		return 0, false
	}
	return p.frequency, true
}

// AsAbstract returns the abstract pitch metadata, when available.
func (p Pitch) AsAbstract() (AbstractPitch, bool) {
	return p.abstract, p.isAbstract
}

// ToAbstract converts the pitch into its AbstractPitch, failing with
// ErrNotAbstract for literal pitches.
func (p Pitch) ToAbstract() (AbstractPitch, error) {
	if !p.isAbstract {
		return AbstractPitch{}, ErrNotAbstract
	}
	return p.abstract, nil
}

// Index returns the abstract index, when the pitch is abstract.
func (p Pitch) Index() (int, bool) {
	if !p.isAbstract {
		return 0, false
	}
	return p.abstract.Index, true
}

// System returns the tuning system identifier, when the pitch is abstract.
func (p Pitch) System() (SystemID, bool) {
	if !p.isAbstract {
		return "", false
	}
	return p.abstract.System, true
}

// Transpose shifts an abstract pitch by the given number of steps; literal
// frequency pitches are returned unchanged. It never touches the registry.
func (p Pitch) Transpose(steps int) Pitch {
	if !p.isAbstract {
		return p
	}
	return FromAbstract(p.abstract.Transpose(steps))
}

func (p Pitch) String() string {
	if p.isAbstract {
		return p.abstract.String()
	}
	return fmt.Sprintf("%.3f Hz", p.frequency)
}

func validFrequency(freq float32) error {
	if math32.IsNaN(freq) || math32.IsInf(freq, 0) || freq <= 0 {
		return InvalidFrequencyError{Freq: freq}
	}
	return nil
}

// TryFreqHz resolves the pitch to a frequency. Literal pitches are
// validated (finite, strictly positive); abstract pitches are resolved
// through the registry and fail with UnknownSystemError when the system is
// absent.
func (p Pitch) TryFreqHz(registry *TuningRegistry) (float32, error) {
	if !p.isAbstract {
		if err := validFrequency(p.frequency); err != nil {
			return 0, err
		}
		return p.frequency, nil
	}
	return registry.ResolveFrequency(p.abstract.System, p.abstract.Index)
}

// FreqHz resolves the pitch to a frequency, discarding the error detail.
func (p Pitch) FreqHz(registry *TuningRegistry) (float32, bool) {
	freq, err := p.TryFreqHz(registry)
	return freq, err == nil
}

// Resolved returns a literal frequency pitch equivalent to p.
func (p Pitch) Resolved(registry *TuningRegistry) (Pitch, error) {
	freq, err := p.TryFreqHz(registry)
	if err != nil {
		return Pitch{}, err
	}
	return Hz(freq), nil
}

// TryLabel returns the symbolic label when the tuning system provides one
// for this index, and a numeric frequency label otherwise.
func (p Pitch) TryLabel(registry *TuningRegistry) (PitchLabel, error) {
	if !p.isAbstract {
		if err := validFrequency(p.frequency); err != nil {
			return PitchLabel{}, err
		}
		return PitchLabel{frequency: p.frequency}, nil
	}
	name, ok, err := registry.ResolveName(p.abstract.System, p.abstract.Index)
	if err != nil {
		return PitchLabel{}, err
	}
	if ok {
		return PitchLabel{name: name, symbolic: true}, nil
	}
	freq, err := registry.ResolveFrequency(p.abstract.System, p.abstract.Index)
	if err != nil {
		return PitchLabel{}, err
	}
	return PitchLabel{frequency: freq}, nil
}

// TryName returns the symbolic name of the pitch. Unlike TryLabel it fails
// when no symbolic name exists: with ErrLiteralHasNoName for literal
// pitches and NameUnavailableError for abstract pitches whose system
// provides no name for the index.
func (p Pitch) TryName(registry *TuningRegistry) (string, error) {
	if !p.isAbstract {
		return "", ErrLiteralHasNoName
	}
	name, ok, err := registry.ResolveName(p.abstract.System, p.abstract.Index)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", NameUnavailableError{System: p.abstract.System, Index: p.abstract.Index}
	}
	return name, nil
}

// ApproxEq compares the resolved frequencies of two pitches within epsilon
// Hz. The tolerance is floored at the float32 machine epsilon so exact-zero
// tolerances still admit rounding noise.
func (p Pitch) ApproxEq(other Pitch, registry *TuningRegistry, epsilon float32) (bool, error) {
	lhs, err := p.TryFreqHz(registry)
	if err != nil {
		return false, err
	}
	rhs, err := other.TryFreqHz(registry)
	if err != nil {
		return false, err
	}
	threshold := math32.Max(epsilon, machineEpsilon)
	return math32.Abs(lhs-rhs) <= threshold, nil
}

const machineEpsilon float32 = 1.1920929e-07 // 2^-23

// CentsOffset returns the offset of p from reference in cents, positive
// when p is sharper than the reference.
func (p Pitch) CentsOffset(reference Pitch, registry *TuningRegistry) (float32, error) {
	lhs, err := p.TryFreqHz(registry)
	if err != nil {
		return 0, err
	}
	rhs, err := reference.TryFreqHz(registry)
	if err != nil {
		return 0, err
	}
	return math32.Log2(lhs/rhs) * 1200, nil
}

// IntervalTo derives the interval from p to other.
func (p Pitch) IntervalTo(other Pitch, registry *TuningRegistry) (Interval, error) {
	return IntervalBetween(p, other, registry)
}

// TransposeInterval applies an interval to the pitch, staying abstract when
// the interval preserves step information for the same system.
func (p Pitch) TransposeInterval(interval Interval, registry *TuningRegistry) (Pitch, error) {
	return interval.ApplyTo(p, registry)
}

// IsSymbolic reports whether the label carries a symbolic name instead of a
// numeric frequency.
func (l PitchLabel) IsSymbolic() bool { return l.symbolic }

// Name returns the symbolic name, when the label has one.
func (l PitchLabel) Name() (string, bool) {
	return l.name, l.symbolic
}

// Frequency returns the literal frequency, when the label is numeric.
func (l PitchLabel) Frequency() (float32, bool) {
	if l.symbolic {
		return 0, false
	}
	return l.frequency, true
}

func (l PitchLabel) String() string {
	if l.symbolic {
		return l.name
	}
	return fmt.Sprintf("%.3f Hz", l.frequency)
}
