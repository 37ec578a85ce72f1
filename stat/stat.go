package stat

import (
	"fmt"
	"math"

	"github.com/revelaction/cohmetrix/errs"
)

// Type selects the statistics computed by Describe.
type Type string

const (
	Mean Type = "mean"
	Std  Type = "std"
	All  Type = "all"
)

// ParseType returns the Type named s.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Mean, Std, All:
		return t, nil
	}
	return "", fmt.Errorf("statistic type %q, want mean, std or all: %w", s, errs.ErrInvalidConfiguration)
}

// Result holds the statistics of a sample. Fields not selected by the Type
// are NaN.
type Result struct {
	Mean float64
	Std  float64
}

// Describe computes the mean and the population standard deviation of
// sample.
func Describe(sample []float64, t Type) (Result, error) {
	if _, err := ParseType(string(t)); err != nil {
		return Result{}, err
	}
	if len(sample) == 0 {
		return Result{Mean: math.NaN(), Std: math.NaN()}, fmt.Errorf("statistic over an empty sample: %w", errs.ErrUndefinedStatistic)
	}

	r := Result{Mean: math.NaN(), Std: math.NaN()}
	m := mean(sample)
	if t == Mean || t == All {
		r.Mean = m
	}
	if t == Std || t == All {
		r.Std = pstdev(sample, m)
	}
	return r, nil
}

// Running accumulates the mean and the population variance of a sample
// one value at a time, without keeping the values.
type Running struct {
	n    int
	mean float64
	m2   float64
}

// Add adds x to the sample.
func (r *Running) Add(x float64) {
	r.n++
	d := x - r.mean
	r.mean += d / float64(r.n)
	r.m2 += d * (x - r.mean)
}

// Len returns the number of values added.
func (r *Running) Len() int {
	return r.n
}

// Result returns the statistics selected by t, like Describe.
func (r *Running) Result(t Type) (Result, error) {
	if _, err := ParseType(string(t)); err != nil {
		return Result{}, err
	}
	if r.n == 0 {
		return Result{Mean: math.NaN(), Std: math.NaN()}, fmt.Errorf("statistic over an empty sample: %w", errs.ErrUndefinedStatistic)
	}

	res := Result{Mean: math.NaN(), Std: math.NaN()}
	if t == Mean || t == All {
		res.Mean = r.mean
	}
	if t == Std || t == All {
		res.Std = math.Sqrt(r.m2 / float64(r.n))
	}
	return res, nil
}

// Ints converts an integer sample.
func Ints(v []int) []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return f
}

func mean(sample []float64) float64 {
	var sum float64
	for _, x := range sample {
		sum += x
	}
	return sum / float64(len(sample))
}

func pstdev(sample []float64, m float64) float64 {
	if len(sample) == 1 {
		return 0
	}
	var ss float64
	for _, x := range sample {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(sample)))
}
