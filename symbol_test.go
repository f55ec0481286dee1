package viritys_test

import (
	"errors"
	"testing"

	"github.com/viritys/viritys"
)

func TestParseChordSymbol(t *testing.T) {
	for _, tc := range []struct {
		input      string
		root       viritys.NoteLetter
		accidental viritys.Accidental
		quality    viritys.ChordQuality
	}{
		{"C", viritys.NoteC, viritys.Natural, viritys.MajorTriad},
		{"Cmaj", viritys.NoteC, viritys.Natural, viritys.MajorTriad},
		{"Am", viritys.NoteA, viritys.Natural, viritys.MinorTriad},
		{"F#m", viritys.NoteF, viritys.Sharp, viritys.MinorTriad},
		{"Bb7", viritys.NoteB, viritys.Flat, viritys.DominantSeventh},
		{"E♭maj7", viritys.NoteE, viritys.Flat, viritys.MajorSeventh},
		{"Gsus4", viritys.NoteG, viritys.Natural, viritys.SuspendedFourth},
		{"Ddim", viritys.NoteD, viritys.Natural, viritys.DiminishedTriad},
		{"C+", viritys.NoteC, viritys.Natural, viritys.AugmentedTriad},
		{"Am7b5", viritys.NoteA, viritys.Natural, viritys.HalfDiminishedSeventh},
		{"Cadd9", viritys.NoteC, viritys.Natural, viritys.Add9},
		{"G13", viritys.NoteG, viritys.Natural, viritys.Dominant13},
		{"f#m7", viritys.NoteF, viritys.Sharp, viritys.MinorSeventh},
	} {
		symbol, err := viritys.ParseChordSymbol(tc.input)
		if err != nil {
			t.Errorf("%q: %v", tc.input, err)
			continue
		}
		if symbol.Root != tc.root || symbol.Accidental != tc.accidental || symbol.Quality != tc.quality {
			t.Errorf("%q parsed as %v/%v/%v, want %v/%v/%v", tc.input,
				symbol.Root, symbol.Accidental, symbol.Quality,
				tc.root, tc.accidental, tc.quality)
		}
	}
}

func TestParseChordSymbolErrors(t *testing.T) {
	if _, err := viritys.ParseChordSymbol(""); !errors.Is(err, viritys.ErrEmptySymbol) {
		t.Errorf("expected ErrEmptySymbol, got %v", err)
	}

	_, err := viritys.ParseChordSymbol("H7")
	var invalidRoot *viritys.InvalidRootError
	if !errors.As(err, &invalidRoot) {
		t.Errorf("expected InvalidRootError, got %v", err)
	} else if invalidRoot.Rune != 'H' {
		t.Errorf("error carries rune %q", invalidRoot.Rune)
	}

	_, err = viritys.ParseChordSymbol("Cxyz")
	var unknownQuality *viritys.UnknownQualityError
	if !errors.As(err, &unknownQuality) {
		t.Errorf("expected UnknownQualityError, got %v", err)
	} else if unknownQuality.Suffix != "xyz" {
		t.Errorf("error carries suffix %q", unknownQuality.Suffix)
	}
}

func TestChordSymbolRootSemitone(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  int
	}{
		{"C", 0},
		{"C#", 1},
		{"Db", 1},
		{"F#", 6},
		{"Bb", 10},
		{"B", 11},
		{"Cb", 11}, // wraps below C
	} {
		symbol, err := viritys.ParseChordSymbol(tc.input)
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got := symbol.RootSemitone(); got != tc.want {
			t.Errorf("%q root semitone %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestChordSymbolString(t *testing.T) {
	for _, input := range []string{"C", "Am", "Bdim", "Gsus2", "Dmaj7", "Fm7"} {
		symbol, err := viritys.ParseChordSymbol(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		rendered := symbol.String()
		again, err := viritys.ParseChordSymbol(rendered)
		if err != nil {
			t.Fatalf("rendered symbol %q does not parse: %v", rendered, err)
		}
		if again != symbol {
			t.Errorf("%q round-tripped to %v via %q", input, again, rendered)
		}
	}
}

func TestChordSymbolStringUnknownQuality(t *testing.T) {
	symbol := viritys.ChordSymbol{Root: viritys.NoteC, Quality: viritys.QualityUnknown}
	major := viritys.ChordSymbol{Root: viritys.NoteC, Quality: viritys.MajorTriad}
	if symbol.String() == major.String() {
		t.Fatalf("unknown quality renders as %q, same as a major triad", symbol.String())
	}
	if got := symbol.String(); got != "C?" {
		t.Errorf("unknown quality rendered %q, want %q", got, "C?")
	}
}

func TestChordSymbolBuildsChord(t *testing.T) {
	registry := newTestRegistry(t)
	symbol, err := viritys.ParseChordSymbol("Am")
	if err != nil {
		t.Fatal(err)
	}
	chord, err := symbol.Chord(60, "12tet", registry)
	if err != nil {
		t.Fatal(err)
	}
	tones, err := chord.Tones(registry)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{69, 72, 76}
	for i, tone := range tones {
		if got := abstractIndex(t, tone); got != want[i] {
			t.Errorf("tone %d index %d, want %d", i, got, want[i])
		}
	}
}
