package fft

// Number is the set of primitive numeric types a sequence can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FromReals returns a new sequence whose real parts are src converted to
// float64 and whose imaginary parts are zero. A nil src yields nil.
func FromReals[T Number](src []T) []Complex {
	if src == nil {
		return nil
	}

	out := make([]Complex, len(src))
	for i, v := range src {
		out[i].Re = float64(v)
	}

	return out
}

// FromComplex128s converts a builtin complex slice into a new sequence.
func FromComplex128s(src []complex128) []Complex {
	if src == nil {
		return nil
	}

	out := make([]Complex, len(src))
	for i, c := range src {
		out[i] = FromComplex128(c)
	}

	return out
}

// ToComplex128s converts data into a new builtin complex slice.
func ToComplex128s(data []Complex) []complex128 {
	if data == nil {
		return nil
	}

	out := make([]complex128, len(data))
	for i, c := range data {
		out[i] = c.Complex128()
	}

	return out
}

// Reals returns the real parts of data.
func Reals(data []Complex) []float64 {
	out := make([]float64, len(data))
	for i, c := range data {
		out[i] = c.Re
	}

	return out
}

// Imags returns the imaginary parts of data.
func Imags(data []Complex) []float64 {
	out := make([]float64, len(data))
	for i, c := range data {
		out[i] = c.Im
	}

	return out
}

// ReverseCopy returns a new sequence holding data in reverse order.
func ReverseCopy(data []Complex) []Complex {
	n := len(data)
	out := make([]Complex, n)

	for i, c := range data {
		out[n-1-i] = c
	}

	return out
}
