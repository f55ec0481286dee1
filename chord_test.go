package viritys_test

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/viritys/viritys"
)

func TestChordPatternRequiresRoot(t *testing.T) {
	registry := newTestRegistry(t)

	if _, err := viritys.ChordPatternFromOffsets(nil, "12tet", registry); !errors.Is(err, viritys.ErrEmptyPattern) {
		t.Errorf("expected ErrEmptyPattern, got %v", err)
	}
	if _, err := viritys.ChordPatternFromOffsets([]int{4, 7}, "12tet", registry); !errors.Is(err, viritys.ErrMissingRootInterval) {
		t.Errorf("expected ErrMissingRootInterval, got %v", err)
	}

	fifth, err := viritys.IntervalFromRatio(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := viritys.NewChordPattern([]viritys.Interval{fifth}); !errors.Is(err, viritys.ErrMissingRootInterval) {
		t.Errorf("leading non-identity interval accepted: %v", err)
	}
	if _, err := viritys.NewChordPattern([]viritys.Interval{viritys.Identity(), fifth}); err != nil {
		t.Errorf("valid pattern rejected: %v", err)
	}
}

func TestChordTones(t *testing.T) {
	registry := newTestRegistry(t)
	chord, err := viritys.ChordFromOffsets(60, "12tet", []int{0, 4, 7}, registry)
	if err != nil {
		t.Fatal(err)
	}
	tones, err := chord.Tones(registry)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{60, 64, 67}
	if len(tones) != len(want) {
		t.Fatalf("%d tones, want %d", len(tones), len(want))
	}
	for i, tone := range tones {
		if got := abstractIndex(t, tone); got != want[i] {
			t.Errorf("tone %d index %d, want %d", i, got, want[i])
		}
	}
}

func TestChordToneLookup(t *testing.T) {
	registry := newTestRegistry(t)
	chord, err := viritys.ChordFromOffsets(60, "12tet", []int{0, 4, 7}, registry)
	if err != nil {
		t.Fatal(err)
	}
	tone, ok, err := chord.Tone(2, registry)
	if err != nil || !ok {
		t.Fatalf("Tone(2) failed: %v %v", ok, err)
	}
	if got := abstractIndex(t, tone); got != 67 {
		t.Errorf("tone 2 index %d, want 67", got)
	}
	if _, ok, _ := chord.Tone(3, registry); ok {
		t.Error("out-of-range tone unexpectedly present")
	}
}

func TestStepOffsetsRoundTrip(t *testing.T) {
	registry := newTestRegistry(t)
	pattern, err := viritys.ChordPatternFromOffsets([]int{0, 3, 7, 10}, "12tet", registry)
	if err != nil {
		t.Fatal(err)
	}
	offsets, ok := pattern.StepOffsets()
	if !ok {
		t.Fatal("offsets irrecoverable from same-system pattern")
	}
	want := []int{0, 3, 7, 10}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("offsets %v, want %v", offsets, want)
		}
	}
}

func TestStepOffsetsLostForRatioIntervals(t *testing.T) {
	third, err := viritys.IntervalFromRatio(1.25)
	if err != nil {
		t.Fatal(err)
	}
	pattern, err := viritys.NewChordPattern([]viritys.Interval{viritys.Identity(), third})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pattern.StepOffsets(); ok {
		t.Error("ratio-only pattern must report irrecoverable offsets")
	}
}

func TestQualityCatalogRoundTrip(t *testing.T) {
	registry := newTestRegistry(t)
	qualities := []viritys.ChordQuality{
		viritys.MajorTriad, viritys.MinorTriad, viritys.DiminishedTriad,
		viritys.AugmentedTriad, viritys.SuspendedSecond, viritys.SuspendedFourth,
		viritys.DominantSeventh, viritys.MajorSeventh, viritys.MinorSeventh,
		viritys.MinorMajorSeventh, viritys.HalfDiminishedSeventh, viritys.DiminishedSeventh,
		viritys.Add9, viritys.Dominant9, viritys.Major9, viritys.Minor9,
		viritys.Dominant11, viritys.Major11, viritys.Minor11,
		viritys.Dominant13, viritys.Major13, viritys.Minor13,
	}
	for _, quality := range qualities {
		pattern, err := quality.BuildPattern("12tet", registry)
		if err != nil {
			t.Fatalf("%v: %v", quality, err)
		}
		if got := viritys.ClassifyChordPattern(pattern); got != quality {
			t.Errorf("%v classified as %v", quality, got)
		}
		if pattern.Len() != quality.ToneCount() {
			t.Errorf("%v pattern has %d tones, want %d", quality, pattern.Len(), quality.ToneCount())
		}
	}
}

func TestQualityProperties(t *testing.T) {
	if !viritys.DominantSeventh.IsSeventh() {
		t.Error("dominant seventh not recognized as a seventh chord")
	}
	if viritys.MajorTriad.IsSeventh() {
		t.Error("major triad misreported as a seventh chord")
	}
	if got := viritys.ClassifyOffsets([]int{0, 1, 2}); got != viritys.QualityUnknown {
		t.Errorf("nonsense offsets classified as %v", got)
	}
}

func TestDiatonicTriadQualities(t *testing.T) {
	registry := newTestRegistry(t)
	scale := majorScaleAt(t, 60, registry)

	triads, err := viritys.DiatonicTriads(scale, registry)
	if err != nil {
		t.Fatal(err)
	}
	want := []viritys.ChordQuality{
		viritys.MajorTriad, viritys.MinorTriad, viritys.MinorTriad,
		viritys.MajorTriad, viritys.MajorTriad, viritys.MinorTriad,
		viritys.DiminishedTriad,
	}
	if len(triads) != len(want) {
		t.Fatalf("%d triads, want %d", len(triads), len(want))
	}
	for i, triad := range triads {
		if triad.Quality != want[i] {
			t.Errorf("degree %d quality %v, want %v", i, triad.Quality, want[i])
		}
		if triad.Degree != i {
			t.Errorf("triad %d reports degree %d", i, triad.Degree)
		}
	}
}

func TestDiatonicSeventhQualities(t *testing.T) {
	registry := newTestRegistry(t)
	scale := majorScaleAt(t, 60, registry)

	for _, tc := range []struct {
		degree int
		want   viritys.ChordQuality
	}{
		{0, viritys.MajorSeventh},
		{1, viritys.MinorSeventh},
		{4, viritys.DominantSeventh},
		{6, viritys.HalfDiminishedSeventh},
	} {
		seventh, err := viritys.DiatonicSeventh(scale, tc.degree, registry)
		if err != nil {
			t.Fatalf("degree %d: %v", tc.degree, err)
		}
		if seventh.Quality != tc.want {
			t.Errorf("degree %d quality %v, want %v", tc.degree, seventh.Quality, tc.want)
		}
	}
}

func TestDiatonicDegreeWraps(t *testing.T) {
	registry := newTestRegistry(t)
	scale := majorScaleAt(t, 60, registry)

	wrapped, err := viritys.DiatonicTriad(scale, 7, registry)
	if err != nil {
		t.Fatal(err)
	}
	if wrapped.Degree != 0 {
		t.Errorf("degree 7 reduced to %d, want 0", wrapped.Degree)
	}
	if wrapped.Quality != viritys.MajorTriad {
		t.Errorf("wrapped triad quality %v", wrapped.Quality)
	}
}

func TestChordInversion(t *testing.T) {
	registry := newTestRegistry(t)
	chord, err := viritys.ChordFromOffsets(60, "12tet", []int{0, 4, 7}, registry)
	if err != nil {
		t.Fatal(err)
	}

	first, ok, err := chord.Invert(viritys.FirstInversion, registry)
	if err != nil || !ok {
		t.Fatalf("first inversion failed: %v %v", ok, err)
	}
	if got := abstractIndex(t, first.Root()); got != 64 {
		t.Errorf("first inversion bass index %d, want 64", got)
	}

	tones, err := first.Tones(registry)
	if err != nil {
		t.Fatal(err)
	}
	// E4, G4 and C5: the root wraps up an octave
	wantFreqs := []float32{329.62756, 391.99542, 523.2511}
	for i, tone := range tones {
		freq, err := tone.TryFreqHz(registry)
		if err != nil {
			t.Fatal(err)
		}
		if math32.Abs(freq-wantFreqs[i]) > 0.01 {
			t.Errorf("inverted tone %d at %v Hz, want %v", i, freq, wantFreqs[i])
		}
	}

	if _, ok, _ := chord.Invert(viritys.InversionFromBassIndex(5), registry); ok {
		t.Error("out-of-range inversion unexpectedly succeeded")
	}

	root, ok, err := chord.Invert(viritys.RootPosition, registry)
	if err != nil || !ok {
		t.Fatalf("root position inversion failed: %v %v", ok, err)
	}
	if got := abstractIndex(t, root.Root()); got != 60 {
		t.Errorf("root position changed the root to %d", got)
	}
}

func TestInversionNames(t *testing.T) {
	for _, tc := range []struct {
		inversion viritys.Inversion
		want      string
	}{
		{viritys.RootPosition, "root position"},
		{viritys.FirstInversion, "1st inversion"},
		{viritys.SecondInversion, "2nd inversion"},
		{viritys.ThirdInversion, "3rd inversion"},
		{viritys.InversionFromBassIndex(4), "4th inversion"},
	} {
		if got := tc.inversion.String(); got != tc.want {
			t.Errorf("inversion %d renders as %q, want %q", tc.inversion.BassIndex(), got, tc.want)
		}
	}
}
