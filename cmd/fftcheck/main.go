// Command fftcheck measures the accuracy and speed of the radix-2 transform
// against the algo-fft planner.
//
// Usage:
//
//	fftcheck [flags]
//
// Examples:
//
//	fftcheck
//	fftcheck -sizes 256,4096 -iters 200
//	fftcheck -seed 7 -cpu=false
package main

import (
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-radix2/dsp/fft"
)

type checkResult struct {
	size        int
	maxErr      float64
	roundTrip   float64
	radix2NsOp  float64
	plannerNsOp float64
}

func main() {
	sizes := flag.String("sizes", "8,64,1024,16384", "comma-separated transform sizes (powers of 2)")
	iters := flag.Int("iters", 50, "timing iterations per size")
	seed := flag.Int64("seed", 1, "random seed for the input data")
	showCPU := flag.Bool("cpu", true, "print detected CPU features")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftcheck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares the radix-2 transform with the algo-fft planner.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftcheck -sizes 256,4096 -iters 200\n")
		fmt.Fprintf(os.Stderr, "  fftcheck -seed 7 -cpu=false\n")
	}
	flag.Parse()

	list, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *iters < 1 {
		fmt.Fprintf(os.Stderr, "error: -iters must be at least 1\n")
		os.Exit(1)
	}

	if *showCPU {
		printFeatures(os.Stdout, cpu.DetectFeatures())
	}

	rng := rand.New(rand.NewSource(*seed))

	results := make([]checkResult, 0, len(list))
	for _, n := range list {
		res, err := runCheck(n, *iters, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: size %d: %v\n", n, err)
			os.Exit(1)
		}
		results = append(results, res)
	}

	printResults(os.Stdout, results)
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		if !fft.IsPowerOfTwo(n) {
			return nil, fmt.Errorf("size %d is not a power of 2", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func runCheck(n, iters int, rng *rand.Rand) (checkResult, error) {
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return checkResult{}, fmt.Errorf("planner: %w", err)
	}

	want := make([]complex128, n)
	if err := plan.Forward(want, src); err != nil {
		return checkResult{}, fmt.Errorf("planner forward: %w", err)
	}

	data := fft.FromComplex128s(src)
	if err := fft.FFT(data); err != nil {
		return checkResult{}, err
	}
	got := fft.ToComplex128s(data)

	res := checkResult{size: n}
	res.maxErr = maxAbsDiff(got, want)

	if err := fft.IFFT(data); err != nil {
		return checkResult{}, err
	}
	res.roundTrip = maxAbsDiff(fft.ToComplex128s(data), src)

	work := make([]fft.Complex, n)
	start := time.Now()
	for range iters {
		copy(work, data)
		if err := fft.FFT(work); err != nil {
			return checkResult{}, err
		}
	}
	res.radix2NsOp = float64(time.Since(start).Nanoseconds()) / float64(iters)

	start = time.Now()
	for range iters {
		if err := plan.Forward(want, src); err != nil {
			return checkResult{}, fmt.Errorf("planner forward: %w", err)
		}
	}
	res.plannerNsOp = float64(time.Since(start).Nanoseconds()) / float64(iters)

	return res, nil
}

func maxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}
	return worst
}

func printFeatures(w io.Writer, f cpu.Features) {
	fmt.Fprintf(w, "arch=%s sse2=%t avx2=%t neon=%t generic=%t\n\n",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON, f.ForceGeneric)
}

func printResults(w io.Writer, results []checkResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Size\tMaxErr\tRoundTrip\tRadix2 ns/op\tPlanner ns/op\tRatio\n")
	fmt.Fprintf(tw, "----\t------\t---------\t------------\t-------------\t-----\n")
	for _, r := range results {
		ratio := 0.0
		if r.plannerNsOp > 0 {
			ratio = r.radix2NsOp / r.plannerNsOp
		}
		fmt.Fprintf(tw, "%d\t%.3g\t%.3g\t%.0f\t%.0f\t%.2f\n",
			r.size, r.maxErr, r.roundTrip, r.radix2NsOp, r.plannerNsOp, ratio)
	}
	tw.Flush()
}
