package fft

// Complex is a double-precision complex value with explicit real and
// imaginary parts. Arithmetic methods return new values.
//
// The layout is two consecutive float64 fields, so a []Complex can be viewed
// as an interleaved re/im []float64.
type Complex struct {
	Re float64
	Im float64
}

// FromReal returns (r, 0).
func FromReal(r float64) Complex {
	return Complex{Re: r}
}

// FromComponents returns (re, im).
func FromComponents(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts c to the builtin complex128 type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns c + b.
func (c Complex) Add(b Complex) Complex {
	return Complex{Re: c.Re + b.Re, Im: c.Im + b.Im}
}

// Sub returns c - b.
func (c Complex) Sub(b Complex) Complex {
	return Complex{Re: c.Re - b.Re, Im: c.Im - b.Im}
}

// Mul returns the complex product c * b.
func (c Complex) Mul(b Complex) Complex {
	return Complex{
		Re: c.Re*b.Re - c.Im*b.Im,
		Im: c.Re*b.Im + c.Im*b.Re,
	}
}

// Scale returns c with both parts multiplied by k.
func (c Complex) Scale(k float64) Complex {
	return Complex{Re: c.Re * k, Im: c.Im * k}
}
