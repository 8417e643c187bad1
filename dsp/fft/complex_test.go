package fft

import "testing"

func TestComplexArithmetic(t *testing.T) {
	t.Parallel()

	a := FromComponents(1, 2)
	b := FromComponents(3, -4)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"from real", FromReal(2.5), Complex{Re: 2.5}},
		{"sum", a.Add(b), Complex{Re: 4, Im: -2}},
		{"difference", a.Sub(b), Complex{Re: -2, Im: 6}},
		{"product", a.Mul(b), Complex{Re: 11, Im: 2}},
		{"product by i", a.Mul(FromComponents(0, 1)), Complex{Re: -2, Im: 1}},
		{"scale", a.Scale(-0.5), Complex{Re: -0.5, Im: -1}},
		{"scale zero", b.Scale(0), Complex{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Fatalf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestComplexMatchesBuiltin(t *testing.T) {
	t.Parallel()

	a := 1.25 - 0.5i
	b := -3 + 2i

	got := FromComplex128(a).Mul(FromComplex128(b)).Complex128()
	if got != a*b {
		t.Fatalf("Mul = %v, want %v", got, a*b)
	}

	got = FromComplex128(a).Add(FromComplex128(b)).Complex128()
	if got != a+b {
		t.Fatalf("Add = %v, want %v", got, a+b)
	}
}

func TestComplexValueSemantics(t *testing.T) {
	t.Parallel()

	a := FromComponents(1, 1)
	_ = a.Add(FromReal(5))
	_ = a.Scale(3)

	if a != FromComponents(1, 1) {
		t.Fatalf("arithmetic mutated receiver: %+v", a)
	}
}
