package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-radix2/dsp/fft"
)

// ErrEmptySignal is returned when Compute receives no samples.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// split unpacks bins into pooled re/im slices. The caller must release buf.
func split(bins []fft.Complex) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(bins))
	for i, c := range bins {
		re[i] = c.Re
		im[i] = c.Im
	}
	return re, im, buf
}

// Compute returns the full complex spectrum of a real signal.
//
// The signal is zero-padded to the next power of 2, so the result has
// fft.NextPowerOfTwo(len(samples)) bins. samples is not modified.
func Compute(samples []float64) ([]fft.Complex, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}

	data, n, err := fft.CoerceRadix2(fft.FromReals(samples), len(samples))
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	if err := fft.Forward(data, n, n); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return data, nil
}

// OneSided returns the non-negative frequency bins 0..n/2 of a spectrum of a
// real signal. The returned slice aliases bins.
func OneSided(bins []fft.Complex) []fft.Complex {
	if len(bins) < 2 {
		return bins
	}
	return bins[:len(bins)/2+1]
}

// Magnitude returns |X[k]| for each bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(bins []fft.Complex) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := split(bins)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(bins []fft.Complex) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := split(bins)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each bin in radians.
func Phase(bins []fft.Complex) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = math.Atan2(c.Im, c.Re)
	}
	return out
}

// MagnitudeDB returns 20*log10(|X[k]|) for each bin, clamped from below at
// floorDB so that empty bins stay finite.
func MagnitudeDB(bins []fft.Complex, floorDB float64) []float64 {
	out := Magnitude(bins)
	for i, m := range out {
		db := math.Inf(-1)
		if m > 0 {
			db = 20 * math.Log10(m)
		}
		out[i] = math.Max(db, floorDB)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// BinFrequency returns the center frequency in Hz of bin k of a size-point
// transform sampled at sampleRate. Bins above size/2 map to negative
// frequencies.
func BinFrequency(k, size int, sampleRate float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("spectrum: size must be > 0: %d", size)
	}
	if k < 0 || k >= size {
		return 0, fmt.Errorf("spectrum: bin %d out of range [0,%d)", k, size)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("spectrum: sampleRate must be > 0: %f", sampleRate)
	}
	if k > size/2 {
		k -= size
	}
	return float64(k) * sampleRate / float64(size), nil
}
