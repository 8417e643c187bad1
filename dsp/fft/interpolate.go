package fft

import "fmt"

// InterpolateByTwo doubles the sample count of data[:length] by zero-insertion
// in the frequency domain (band-limited interpolation).
//
// The input is zero-padded to a power of 2 (oldLength), transformed, and its
// spectrum is spread over a buffer of 2*oldLength: the Nyquist bin is split
// evenly between its positive and negative positions, the upper half of the
// spectrum moves to the top of the new buffer and the gap stays zero. The
// spectrum is scaled by 2 and inverse transformed.
//
// It returns a newly allocated sequence of newLength = 2*oldLength samples
// whose even indices approximate the (padded) input. data is not modified.
func InterpolateByTwo(data []Complex, length int) ([]Complex, int, error) {
	if err := checkBuffer(data, length); err != nil {
		return nil, 0, err
	}

	// Padding to oldLength happens in place of CoerceRadix2: the input is
	// copied straight into the doubled buffer, whose tail is already zero.
	oldLength := NextPowerOfTwo(length)
	if oldLength == 0 || oldLength > MaxLength>>1 {
		return nil, 0, fmt.Errorf("%w: cannot double %d samples", ErrAllocation, length)
	}

	newLength := oldLength << 1

	spectrum, err := allocate(newLength)
	if err != nil {
		return nil, 0, err
	}

	copy(spectrum, data[:length])

	if err := Forward(spectrum, oldLength, oldLength); err != nil {
		return nil, 0, err
	}

	spreadSpectrum(spectrum, oldLength)
	scaleInPlace(spectrum, 2)

	if err := Inverse(spectrum, newLength, newLength); err != nil {
		return nil, 0, err
	}

	return spectrum, newLength, nil
}

// spreadSpectrum rearranges an oldLength-point spectrum held in the first half
// of spectrum into the layout of a 2*oldLength-point spectrum.
func spreadSpectrum(spectrum []Complex, oldLength int) {
	nyquist := oldLength / 2
	upper := 3 * oldLength / 2

	center := spectrum[nyquist].Scale(0.5)
	spectrum[nyquist] = center
	spectrum[upper] = center

	for k := 1; k < nyquist; k++ {
		spectrum[upper+k] = spectrum[nyquist+k]
		spectrum[nyquist+k] = Complex{}
	}
}
