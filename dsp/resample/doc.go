// Package resample provides band-limited upsampling by powers of two using
// frequency-domain zero insertion.
//
// The input block is treated as one period of a periodic signal: it is padded
// to a power of 2, transformed, its spectrum is spread over twice as many bins
// and transformed back. Even output samples reproduce the input exactly (up to
// rounding); odd samples are band-limited interpolants.
//
// Common workflows:
//   - Upsample2x(input, opts...)
//   - UpsampleBy(input, factor, opts...) for factor 1, 2, 4, 8, ...
//
// Output is trimmed to factor*len(input) unless WithPaddedOutput is given.
package resample
