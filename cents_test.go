package viritys_test

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/viritys/viritys"
	"github.com/viritys/viritys/systems"
)

func TestCentsFromRatios(t *testing.T) {
	cents := viritys.CentsFromRatios([]float32{1, 2, 0.5, 1.5})
	want := []float32{0, 1200, -1200, 701.955}
	if len(cents) != len(want) {
		t.Fatalf("%d results, want %d", len(cents), len(want))
	}
	for i := range want {
		if math32.Abs(cents[i]-want[i]) > 0.01 {
			t.Errorf("ratio %d measured %v cents, want %v", i, cents[i], want[i])
		}
	}
	if viritys.CentsFromRatios(nil) != nil {
		t.Error("empty input must return nil")
	}
}

func TestCentsOffsets(t *testing.T) {
	cents := viritys.CentsOffsets([]float32{440, 880, 220, 466.16378}, 440)
	want := []float32{0, 1200, -1200, 100}
	for i := range want {
		if math32.Abs(cents[i]-want[i]) > 0.01 {
			t.Errorf("frequency %d measured %v cents, want %v", i, cents[i], want[i])
		}
	}
}

func TestCentsTableBetweenTemperaments(t *testing.T) {
	twelve := systems.TwelveTETA440()
	twentyFour := systems.TwentyFourTETA440()

	table := viritys.CentsTable(twelve, twentyFour, 69, 71)
	want := []float32{0, 50, 100}
	if len(table) != len(want) {
		t.Fatalf("%d entries, want %d", len(table), len(want))
	}
	for i := range want {
		if math32.Abs(table[i]-want[i]) > 0.05 {
			t.Errorf("index %d offset %v cents, want %v", 69+i, table[i], want[i])
		}
	}
	if viritys.CentsTable(twelve, twentyFour, 5, 4) != nil {
		t.Error("inverted range must return nil")
	}
}

func TestFrequencyTable(t *testing.T) {
	twelve := systems.TwelveTETA440()
	freqs := viritys.FrequencyTable(twelve, 69, 81)
	if len(freqs) != 13 {
		t.Fatalf("%d entries, want 13", len(freqs))
	}
	if freqs[0] != 440 {
		t.Errorf("first entry %v, want 440", freqs[0])
	}
	if math32.Abs(freqs[12]-880) > 0.001 {
		t.Errorf("last entry %v, want 880", freqs[12])
	}
}
