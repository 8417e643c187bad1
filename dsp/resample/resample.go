package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-radix2/dsp/fft"
)

var (
	// ErrEmptyInput indicates an input block without samples.
	ErrEmptyInput = errors.New("resample: empty input")
	// ErrInvalidFactor indicates an upsampling factor that is not a power of 2.
	ErrInvalidFactor = errors.New("resample: invalid factor")
)

type config struct {
	padded bool
	gain   float64
}

// Option configures the upsampler.
type Option func(*config)

// WithPaddedOutput keeps the samples produced for the zero padding instead of
// trimming the output to factor*len(input).
func WithPaddedOutput() Option {
	return func(cfg *config) {
		cfg.padded = true
	}
}

// WithGain applies a linear output gain.
func WithGain(g float64) Option {
	return func(cfg *config) {
		cfg.gain = g
	}
}

func defaultConfig() config {
	return config{gain: 1}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Upsample2x doubles the sample rate of input by spectral interpolation.
func Upsample2x(input []float64, opts ...Option) ([]float64, error) {
	return UpsampleBy(input, 2, opts...)
}

// UpsampleBy raises the sample rate of input by factor, which must be a power
// of 2. Each doubling is one spectral interpolation pass.
func UpsampleBy(input []float64, factor int, opts ...Option) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	if !fft.IsPowerOfTwo(factor) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	if !fits(len(input), factor) {
		return nil, fmt.Errorf("resample: %w: factor %d for %d samples", fft.ErrAllocation, factor, len(input))
	}

	cfg := applyOptions(opts)

	data := fft.FromReals(input)
	n := len(data)

	for f := factor; f > 1; f >>= 1 {
		var err error

		data, n, err = fft.InterpolateByTwo(data, n)
		if err != nil {
			return nil, fmt.Errorf("resample: %w", err)
		}
	}

	out := fft.Reals(data[:n])
	if !cfg.padded {
		out = out[:factor*len(input)]
	}

	if cfg.gain != 1 {
		vecmath.ScaleBlock(out, out, cfg.gain)
	}

	return out, nil
}

// PredictOutputLen returns the number of samples UpsampleBy produces for an
// input of inputLen samples.
//
// It returns 0 if inputLen < 1, if factor is not a power of 2, or if the
// padded output would exceed fft.MaxLength.
func PredictOutputLen(inputLen, factor int, opts ...Option) int {
	if inputLen <= 0 || !fft.IsPowerOfTwo(factor) || !fits(inputLen, factor) {
		return 0
	}

	if applyOptions(opts).padded {
		return factor * fft.NextPowerOfTwo(inputLen)
	}

	return factor * inputLen
}

// fits reports whether factor*NextPowerOfTwo(inputLen) stays within
// fft.MaxLength.
func fits(inputLen, factor int) bool {
	padded := fft.NextPowerOfTwo(inputLen)
	return padded != 0 && padded <= fft.MaxLength && factor <= fft.MaxLength/padded
}
