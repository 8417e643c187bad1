// Package fft provides an in-place radix-2 Cooley-Tukey transform for complex
// sequences whose length is a power of two, and a spectral 2x interpolator built
// on top of it.
//
// Sequences are plain []Complex slices with an explicit length argument. The
// transform acts on data[:length] and never reallocates; only CoerceRadix2 and
// InterpolateByTwo return new storage, and callers must switch to the returned
// slice.
//
// Typical workflow:
//
//	data := fft.FromReals(samples)
//	data, n, err := fft.CoerceRadix2(data, len(data))
//	if err != nil {
//	    return err
//	}
//	if err := fft.Forward(data, n, n); err != nil {
//	    return err
//	}
//
// The kernel generates twiddle factors with a per-stage sine recurrence instead
// of a precomputed table, so no plan or scratch memory is needed.
package fft
