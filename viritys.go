// Package viritys implements a multi-temperament music-theory engine:
// pitches, intervals, scales and chords that stay abstract (index + tuning
// system) for as long as possible and collapse to literal frequencies only
// when a TuningRegistry is consulted. The same algebra works under 12-tone
// equal temperament, quarter tones, just intonation or any cent-based scale
// registered at runtime.
package viritys

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type (
	// TuningSystem is the rule mapping an abstract pitch index to a
	// frequency in Hz. Implementations must be safe for concurrent use by
	// multiple readers, as the registry shares a single instance between
	// every pitch that references it.
	TuningSystem interface {
		ToFrequency(index int) float32
	}

	// PitchNamer is an optional extension of TuningSystem for systems that
	// can give certain indices a symbolic name (e.g. "12-TET(69)"). Systems
	// that do not implement it simply have no names.
	PitchNamer interface {
		NameOf(index int) (string, bool)
	}

	// SystemID identifies a tuning system inside a TuningRegistry. Valid
	// identifiers are non-empty after trimming and contain no control
	// characters; use NewSystemID to validate user input. Conversions from
	// trusted literals may use a plain SystemID("...") conversion.
	SystemID string
)

// ErrEmptySystemID is returned by NewSystemID for empty or whitespace-only
// identifiers.
var ErrEmptySystemID = errors.New("tuning system identifier must not be empty")

// ControlCharError is returned by NewSystemID when the identifier contains a
// control character (newline, tab, etc.).
type ControlCharError struct {
	Rune rune
}

func (e ControlCharError) Error() string {
	return fmt.Sprintf("tuning system identifier contains control character %q", e.Rune)
}

// NewSystemID validates an identifier and returns it as a SystemID.
func NewSystemID(name string) (SystemID, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptySystemID
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", ControlCharError{Rune: r}
		}
	}
	return SystemID(name), nil
}

func (id SystemID) String() string { return string(id) }
