package fft

import (
	"errors"
	"math"
	"math/bits"
	"testing"
	"unsafe"
)

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
		{0, 1},
		{-7, 1},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNextPowerOfTwoMinimal(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5000; n++ {
		p := NextPowerOfTwo(n)
		if !IsPowerOfTwo(p) {
			t.Fatalf("NextPowerOfTwo(%d) = %d is not a power of 2", n, p)
		}

		if p < n {
			t.Fatalf("NextPowerOfTwo(%d) = %d < n", n, p)
		}

		if p > 1 && p/2 >= n {
			t.Fatalf("NextPowerOfTwo(%d) = %d is not minimal", n, p)
		}
	}
}

func TestNextPowerOfTwoOverflow(t *testing.T) {
	t.Parallel()

	if got := NextPowerOfTwo(math.MaxInt); got != 0 {
		t.Fatalf("NextPowerOfTwo(MaxInt) = %d, want 0", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 64, 1 << 20} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false", n)
		}
	}

	for _, n := range []int{0, -1, -8, 3, 6, 12, 1<<20 + 1} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true", n)
		}
	}
}

func TestCoerceRadix2Unchanged(t *testing.T) {
	t.Parallel()

	data := []Complex{{1, 2}, {3, 4}, {5, 6}, {7, 8}}

	out, n, err := CoerceRadix2(data, len(data))
	if err != nil {
		t.Fatalf("CoerceRadix2() error = %v", err)
	}

	if n != 4 || len(out) != 4 {
		t.Fatalf("length = %d (slice %d), want 4", n, len(out))
	}

	if &out[0] != &data[0] {
		t.Fatal("expected the input slice to be returned without reallocation")
	}
}

func TestCoerceRadix2Pads(t *testing.T) {
	t.Parallel()

	data := []Complex{{1, -1}, {2, -2}, {3, -3}, {4, -4}, {5, -5}}
	orig := append([]Complex(nil), data...)

	out, n, err := CoerceRadix2(data, len(data))
	if err != nil {
		t.Fatalf("CoerceRadix2() error = %v", err)
	}

	if n != 8 || len(out) != 8 {
		t.Fatalf("length = %d (slice %d), want 8", n, len(out))
	}

	for i := range orig {
		if out[i] != orig[i] {
			t.Fatalf("out[%d] = %+v, want %+v", i, out[i], orig[i])
		}
	}

	for i := len(orig); i < n; i++ {
		if out[i] != (Complex{}) {
			t.Fatalf("out[%d] = %+v, want zero padding", i, out[i])
		}
	}

	for i := range orig {
		if data[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestCoerceRadix2UsesLengthPrefix(t *testing.T) {
	t.Parallel()

	data := []Complex{{1, 0}, {2, 0}, {3, 0}, {99, 99}, {99, 99}}

	out, n, err := CoerceRadix2(data, 3)
	if err != nil {
		t.Fatalf("CoerceRadix2() error = %v", err)
	}

	want := []Complex{{1, 0}, {2, 0}, {3, 0}, {}}
	if n != len(want) {
		t.Fatalf("length = %d, want %d", n, len(want))
	}

	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestCoerceRadix2Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []Complex
		length int
		want   error
	}{
		{"nil", nil, 4, ErrNilSequence},
		{"zero length", make([]Complex, 4), 0, ErrInvalidLength},
		{"negative length", make([]Complex, 4), -3, ErrInvalidLength},
		{"length exceeds buffer", make([]Complex, 3), 5, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := CoerceRadix2(tt.data, tt.length)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CoerceRadix2() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaxLengthFitsRuntimeLimit(t *testing.T) {
	t.Parallel()

	if !IsPowerOfTwo(MaxLength) {
		t.Fatalf("MaxLength = %d, want a power of 2", MaxLength)
	}

	// 2^48 bytes is the makeslice limit on 64-bit platforms, 2^31 on 32-bit.
	limit := uint64(1) << 48
	if bits.UintSize == 32 {
		limit = 1 << 31
	}

	if bytes := uint64(MaxLength) * uint64(unsafe.Sizeof(Complex{})); bytes > limit {
		t.Fatalf("MaxLength needs %d bytes, runtime allows %d", bytes, limit)
	}
}

func TestAllocateRejectsOversize(t *testing.T) {
	t.Parallel()

	// Sizes between MaxLength and the runtime limit must fail with an error,
	// not a makeslice panic.
	for _, n := range []int{MaxLength + 1, MaxLength << 1, MaxLength << 4} {
		if _, err := allocate(n); !errors.Is(err, ErrAllocation) {
			t.Fatalf("allocate(%d) error = %v, want ErrAllocation", n, err)
		}
	}

	if _, err := allocate(0); !errors.Is(err, ErrAllocation) {
		t.Fatalf("allocate(0) error = %v, want ErrAllocation", err)
	}
}
