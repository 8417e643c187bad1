package fft

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxLength is the largest sequence length a resize will allocate: 2^32
// elements on 64-bit platforms and 2^26 on 32-bit ones. Both stay below the
// runtime's slice size limit for 16-byte elements, so larger requests fail
// with ErrAllocation instead of panicking in make.
const MaxLength = 1 << min(32, bits.UintSize-6)

// IsPowerOfTwo reports whether n is a positive power of 2.
func IsPowerOfTwo(n int) bool {
	return n >= 1 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of 2 that is >= n.
// Powers of 2 are returned unchanged and n <= 0 yields 1.
// It returns 0 if the result does not fit in an int.
func NextPowerOfTwo(n int) int {
	if IsPowerOfTwo(n) {
		return n
	}

	if n > math.MaxInt>>1+1 {
		return 0
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// CoerceRadix2 pads data[:length] with zeros up to the next power of 2.
//
// If length is already a power of 2, data is returned as-is without
// allocating. Otherwise a new slice is returned whose first length elements
// equal the input and whose remainder is zero; the input is left untouched
// and should no longer be used in place of the result.
func CoerceRadix2(data []Complex, length int) ([]Complex, int, error) {
	if err := checkBuffer(data, length); err != nil {
		return data, length, err
	}

	if IsPowerOfTwo(length) {
		return data, length, nil
	}

	padded, err := allocate(NextPowerOfTwo(length))
	if err != nil {
		return data, length, err
	}

	copy(padded, data[:length])

	return padded, len(padded), nil
}

// checkBuffer validates the slice reference and that length fits inside it.
func checkBuffer(data []Complex, length int) error {
	if data == nil {
		return ErrNilSequence
	}

	if length < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	if length > len(data) {
		return fmt.Errorf("%w: length %d, buffer %d", ErrLengthMismatch, length, len(data))
	}

	return nil
}

// allocate returns a zeroed sequence of n elements or ErrAllocation.
func allocate(n int) ([]Complex, error) {
	if n < 1 || n > MaxLength {
		return nil, fmt.Errorf("%w: %d elements", ErrAllocation, n)
	}

	return make([]Complex, n), nil
}
