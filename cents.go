package viritys

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// centsPerLn converts natural logarithms of frequency ratios to cents.
var centsPerLn = 1200 / math32.Log(2)

// CentsFromRatios converts frequency ratios to cents in one pass. Ratios
// must be positive.
func CentsFromRatios(ratios []float32) []float32 {
	if len(ratios) == 0 {
		return nil
	}
	cents := vek32.Log(ratios)
	vek32.MulNumber_Inplace(cents, centsPerLn)
	return cents
}

// CentsOffsets measures every frequency against a common reference,
// returning the signed offsets in cents. Frequencies and the reference
// must be positive.
func CentsOffsets(freqs []float32, reference float32) []float32 {
	if len(freqs) == 0 {
		return nil
	}
	ratios := vek32.DivNumber(freqs, reference)
	vek32.Log_Inplace(ratios)
	vek32.MulNumber_Inplace(ratios, centsPerLn)
	return ratios
}

// CentsTable compares two tuning systems over the index range [lo, hi],
// returning the offset of a's pitch from b's pitch in cents at every
// index. An empty slice is returned when lo > hi.
func CentsTable(a, b TuningSystem, lo, hi int) []float32 {
	if lo > hi {
		return nil
	}
	n := hi - lo + 1
	fa := make([]float32, n)
	fb := make([]float32, n)
	for i := 0; i < n; i++ {
		fa[i] = a.ToFrequency(lo + i)
		fb[i] = b.ToFrequency(lo + i)
	}
	vek32.Div_Inplace(fa, fb)
	vek32.Log_Inplace(fa)
	vek32.MulNumber_Inplace(fa, centsPerLn)
	return fa
}

// FrequencyTable resolves a contiguous index range of a tuning system.
func FrequencyTable(system TuningSystem, lo, hi int) []float32 {
	if lo > hi {
		return nil
	}
	freqs := make([]float32, hi-lo+1)
	for i := range freqs {
		freqs[i] = system.ToFrequency(lo + i)
	}
	return freqs
}
