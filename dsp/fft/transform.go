package fft

import (
	"fmt"
	"math"
)

// Signed half-turn angles selecting the transform direction.
const (
	forwardAngle = -math.Pi
	inverseAngle = math.Pi
)

// Forward computes the unnormalized forward DFT of data[:length] in place.
//
// length must be a power of 2 and fit inside data. maxFrequency bounds the
// number of butterfly stages to ceil(log2(maxFrequency)) and must lie in
// [1, length]; pass length for a complete transform. Smaller values produce a
// partial transform whose output has no further guarantees.
//
// On error data is not modified.
func Forward(data []Complex, length, maxFrequency int) error {
	if err := validate(data, length, maxFrequency); err != nil {
		return err
	}

	seq := data[:length]
	BitReverse(seq)
	butterflies(seq, forwardAngle, maxFrequency)

	return nil
}

// Inverse computes the inverse DFT of data[:length] in place, including the
// 1/length normalization. Arguments follow Forward.
//
// On error data is not modified.
func Inverse(data []Complex, length, maxFrequency int) error {
	if err := validate(data, length, maxFrequency); err != nil {
		return err
	}

	seq := data[:length]
	BitReverse(seq)
	butterflies(seq, inverseAngle, maxFrequency)
	scaleInverse(seq)

	return nil
}

// FFT computes the complete forward transform of data in place.
func FFT(data []Complex) error {
	return Forward(data, len(data), len(data))
}

// IFFT computes the complete normalized inverse transform of data in place.
func IFFT(data []Complex) error {
	return Inverse(data, len(data), len(data))
}

func validate(data []Complex, length, maxFrequency int) error {
	if err := checkBuffer(data, length); err != nil {
		return err
	}

	if !IsPowerOfTwo(length) {
		return fmt.Errorf("%w: %d is not a power of 2", ErrInvalidLength, length)
	}

	if maxFrequency < 1 || maxFrequency > length {
		return fmt.Errorf("%w: %d (length %d)", ErrInvalidMaxFrequency, maxFrequency, length)
	}

	return nil
}

// butterflies runs the decimation-in-time stages over bit-reversed data.
//
// Each stage derives the rotation exp(i*angle/step) from a half-angle sine,
// m = (-2*sin^2(angle/2step), sin(angle/step)), and advances the twiddle with
// w = m*w + w between groups.
func butterflies(data []Complex, angle float64, maxFrequency int) {
	n := len(data)

	for step := 1; step < maxFrequency; step <<= 1 {
		sine := math.Sin(angle / float64(step) * 0.5)
		multiplier := Complex{Re: -2 * sine * sine, Im: math.Sin(angle / float64(step))}
		twiddle := Complex{Re: 1}

		for group := range step {
			for pair := group; pair < n; pair += step << 1 {
				match := pair + step
				product := twiddle.Mul(data[match])
				data[match] = data[pair].Sub(product)
				data[pair] = data[pair].Add(product)
			}

			twiddle = multiplier.Mul(twiddle).Add(twiddle)
		}
	}
}
