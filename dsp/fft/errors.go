package fft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrNilSequence is returned when a nil slice is passed to an operation.
	ErrNilSequence = errors.New("fft: nil sequence")

	// ErrInvalidLength is returned when the length is < 1 or not a power of 2.
	ErrInvalidLength = errors.New("fft: invalid length")

	// ErrLengthMismatch is returned when length exceeds the slice it refers to.
	ErrLengthMismatch = errors.New("fft: length exceeds sequence")

	// ErrInvalidMaxFrequency is returned when maxFrequency is outside [1, length].
	ErrInvalidMaxFrequency = errors.New("fft: invalid max frequency")

	// ErrAllocation is returned when a resize would exceed MaxLength.
	ErrAllocation = errors.New("fft: allocation too large")
)
