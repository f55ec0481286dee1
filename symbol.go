package viritys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptySymbol is returned when parsing an empty chord symbol.
var ErrEmptySymbol = errors.New("chord symbol cannot be empty")

type (
	// NoteLetter is a note name C through B.
	NoteLetter int

	// Accidental is a sharp, flat or natural modifier.
	Accidental int

	// ChordSymbol is a parsed chord symbol such as "Cmaj7" or "F#m".
	ChordSymbol struct {
		Root       NoteLetter
		Accidental Accidental
		Quality    ChordQuality
	}

	// InvalidRootError reports an unrecognized root note letter.
	InvalidRootError struct {
		Rune rune
	}

	// UnknownQualityError reports an unrecognized quality suffix.
	UnknownQualityError struct {
		Suffix string
	}
)

const (
	NoteC NoteLetter = iota
	NoteD
	NoteE
	NoteF
	NoteG
	NoteA
	NoteB
)

const (
	Flat Accidental = iota - 1
	Natural
	Sharp
)

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root note: %q", e.Rune)
}

func (e *UnknownQualityError) Error() string {
	return fmt.Sprintf("unknown chord quality: %q", e.Suffix)
}

var noteLetterSemitones = [...]int{NoteC: 0, NoteD: 2, NoteE: 4, NoteF: 5, NoteG: 7, NoteA: 9, NoteB: 11}

// SemitoneFromC returns the note's semitone offset from C.
func (l NoteLetter) SemitoneFromC() int {
	if l < NoteC || l > NoteB {
		return 0
	}
	return noteLetterSemitones[l]
}

func (l NoteLetter) String() string {
	if l < NoteC || l > NoteB {
		return "?"
	}
	return string("CDEFGAB"[l])
}

// SemitoneOffset returns -1 for flat, 0 for natural and +1 for sharp.
func (a Accidental) SemitoneOffset() int { return int(a) }

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	}
	return ""
}

// RootSemitone returns the absolute semitone position of the root within
// the octave, C being 0.
func (s ChordSymbol) RootSemitone() int {
	semitone := (s.Root.SemitoneFromC() + s.Accidental.SemitoneOffset()) % 12
	if semitone < 0 {
		semitone += 12
	}
	return semitone
}

// Chord builds the symbol's chord in the given twelve-step system, rooted
// at the symbol's semitone position within the octave starting at
// octaveBase.
func (s ChordSymbol) Chord(octaveBase int, system SystemID, registry *TuningRegistry) (Chord, error) {
	return s.Quality.BuildChord(octaveBase+s.RootSemitone(), system, registry)
}

var qualitySuffixes = map[ChordQuality]string{
	MajorTriad:            "",
	MinorTriad:            "m",
	DiminishedTriad:       "dim",
	AugmentedTriad:        "aug",
	SuspendedSecond:       "sus2",
	SuspendedFourth:       "sus4",
	DominantSeventh:       "7",
	MajorSeventh:          "maj7",
	MinorSeventh:          "m7",
	MinorMajorSeventh:     "m(maj7)",
	HalfDiminishedSeventh: "m7♭5",
	DiminishedSeventh:     "dim7",
	Add9:                  "add9",
	Dominant9:             "9",
	Major9:                "maj9",
	Minor9:                "m9",
	Dominant11:            "11",
	Major11:               "maj11",
	Minor11:               "m11",
	Dominant13:            "13",
	Major13:               "maj13",
	Minor13:               "m13",
}

var suffixQualities = map[string]ChordQuality{
	"":        MajorTriad,
	"maj":     MajorTriad,
	"m":       MinorTriad,
	"min":     MinorTriad,
	"dim":     DiminishedTriad,
	"°":       DiminishedTriad,
	"aug":     AugmentedTriad,
	"+":       AugmentedTriad,
	"sus2":    SuspendedSecond,
	"sus4":    SuspendedFourth,
	"sus":     SuspendedFourth,
	"7":       DominantSeventh,
	"maj7":    MajorSeventh,
	"M7":      MajorSeventh,
	"Δ7":      MajorSeventh,
	"m7":      MinorSeventh,
	"min7":    MinorSeventh,
	"m(maj7)": MinorMajorSeventh,
	"m/maj7":  MinorMajorSeventh,
	"mM7":     MinorMajorSeventh,
	"m7b5":    HalfDiminishedSeventh,
	"m7♭5":    HalfDiminishedSeventh,
	"ø7":      HalfDiminishedSeventh,
	"dim7":    DiminishedSeventh,
	"°7":      DiminishedSeventh,
	"add9":    Add9,
	"9":       Dominant9,
	"maj9":    Major9,
	"M9":      Major9,
	"Δ9":      Major9,
	"m9":      Minor9,
	"min9":    Minor9,
	"11":      Dominant11,
	"maj11":   Major11,
	"M11":     Major11,
	"m11":     Minor11,
	"min11":   Minor11,
	"13":      Dominant13,
	"maj13":   Major13,
	"M13":     Major13,
	"m13":     Minor13,
	"min13":   Minor13,
}

// String renders the symbol in the same notation ParseChordSymbol accepts.
// Qualities outside the catalog render with a "?" suffix so they cannot be
// mistaken for a major triad.
func (s ChordSymbol) String() string {
	suffix, ok := qualitySuffixes[s.Quality]
	if !ok {
		suffix = "?"
	}
	return s.Root.String() + s.Accidental.String() + suffix
}

// ParseChordSymbol parses a chord symbol such as "Cmaj7", "F#m" or "Bb7"
// into its components.
func ParseChordSymbol(input string) (ChordSymbol, error) {
	if input == "" {
		return ChordSymbol{}, ErrEmptySymbol
	}
	rootRune, size := utf8.DecodeRuneInString(input)
	var root NoteLetter
	switch rootRune {
	case 'C', 'c':
		root = NoteC
	case 'D', 'd':
		root = NoteD
	case 'E', 'e':
		root = NoteE
	case 'F', 'f':
		root = NoteF
	case 'G', 'g':
		root = NoteG
	case 'A', 'a':
		root = NoteA
	case 'B', 'b':
		root = NoteB
	default:
		return ChordSymbol{}, &InvalidRootError{Rune: rootRune}
	}

	rest := input[size:]
	accidental := Natural
	switch {
	case strings.HasPrefix(rest, "#"), strings.HasPrefix(rest, "♯"):
		accidental = Sharp
	case strings.HasPrefix(rest, "b"), strings.HasPrefix(rest, "♭"):
		accidental = Flat
	}
	suffix := rest
	if accidental != Natural {
		_, accSize := utf8.DecodeRuneInString(rest)
		suffix = rest[accSize:]
	}

	quality, ok := suffixQualities[suffix]
	if !ok {
		return ChordSymbol{}, &UnknownQualityError{Suffix: suffix}
	}
	return ChordSymbol{Root: root, Accidental: accidental, Quality: quality}, nil
}
