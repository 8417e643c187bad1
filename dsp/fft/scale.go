package fft

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"
)

// interleaved views data as re0, im0, re1, im1, ... without copying.
func interleaved(data []Complex) []float64 {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice(&data[0].Re, 2*len(data))
}

// scaleInPlace multiplies every element of data by k.
func scaleInPlace(data []Complex, k float64) {
	if k == 1 {
		return
	}

	view := interleaved(data)
	vecmath.ScaleBlock(view, view, k)
}

// scaleInverse applies the 1/N normalization of the inverse transform.
func scaleInverse(data []Complex) {
	scaleInPlace(data, 1/float64(len(data)))
}
