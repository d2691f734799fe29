package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const peak = 255.

var ErrLengthMismatch = errors.New("buffers differ in length")

// Report summarises the distortion between a carrier and its stego copy.
type Report struct {
	MSE     float64
	PSNR    float64 // +Inf for identical buffers
	Changed int     // channel values that differ
}

// Compare measures how far stego drifted from original.
func Compare(original, stego []uint8) (Report, error) {
	if len(original) != len(stego) {
		return Report{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(original), len(stego))
	}
	if len(original) == 0 {
		return Report{PSNR: math.Inf(1)}, nil
	}
	a, b := toFloat(original), toFloat(stego)
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)

	var r Report
	for _, d := range diff {
		if d != 0 {
			r.Changed++
		}
	}
	floats.Mul(diff, diff)
	r.MSE = stat.Mean(diff, nil)
	r.PSNR = psnr(r.MSE)
	return r, nil
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(peak*peak/mse)
}

func toFloat(v []uint8) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = float64(v[i])
	}
	return out
}
