/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ecdf implements the empirical cumulative distribution function of a finite
// sample of real-valued observations.
package ecdf

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/telescope-array/shiftanal/internal"
)

// ranks are rounded to this many parts when converting to a natural rank, so that
// values like 0.3*10 land on 3 rather than 3.0000000000000004.
const tailRoundingFactor = 1e7

var (
	ErrEmpty              = errors.New("empirical CDF is undefined for an empty sample")
	ErrNaN                = errors.New("empirical CDF is undefined for NaN")
	ErrInvalidRank        = errors.New("normalized rank must be between 0 and 1 inclusive")
	ErrNaNInSplitPoints   = errors.New("NaN in split points")
	ErrInvalidSplitPoints = errors.New("values must be unique and monotonically increasing")
)

// Point is one step of the empirical CDF: Fraction of the sample is <= Value.
type Point struct {
	Value    float64
	Fraction float64
}

// ECDF is the sorted view of a sample. It is immutable once built and may be shared
// between goroutines.
type ECDF struct {
	sorted []float64
}

// New builds the empirical CDF of sample. The sample is copied; the caller's slice is
// never reordered.
func New(sample []float64) (*ECDF, error) {
	if len(sample) == 0 {
		return nil, ErrEmpty
	}
	sorted := make([]float64, len(sample))
	for i, v := range sample {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("sample[%d]: %w", i, ErrNaN)
		}
		sorted[i] = v
	}
	slices.Sort(sorted)
	return &ECDF{sorted: sorted}, nil
}

// Evaluate returns the fraction of sample that is <= x.
func Evaluate(sample []float64, x float64) (float64, error) {
	e, err := New(sample)
	if err != nil {
		return 0, err
	}
	return e.Rank(x)
}

// EvaluateWithCurve is Evaluate that also returns the full step function.
func EvaluateWithCurve(sample []float64, x float64) (float64, []Point, error) {
	e, err := New(sample)
	if err != nil {
		return 0, nil, err
	}
	rank, err := e.Rank(x)
	if err != nil {
		return 0, nil, err
	}
	return rank, e.Curve(), nil
}

// N returns the sample size.
func (e *ECDF) N() int {
	return len(e.sorted)
}

// Min returns the smallest observation.
func (e *ECDF) Min() float64 {
	return e.sorted[0]
}

// Max returns the largest observation.
func (e *ECDF) Max() float64 {
	return e.sorted[len(e.sorted)-1]
}

// Values returns a copy of the observations in ascending order.
func (e *ECDF) Values() []float64 {
	return slices.Clone(e.sorted)
}

// Rank returns the fraction of the sample that is <= x. It is 0 below the minimum and
// 1 at or above the maximum.
func (e *ECDF) Rank(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, ErrNaN
	}
	return e.rank(x), nil
}

// rank assumes x is not NaN.
func (e *ECDF) rank(x float64) float64 {
	n := len(e.sorted)
	index := internal.FindWithInequality(e.sorted, 0, n-1, x, internal.InequalityLE)
	if index == -1 {
		return 0 // x < min
	}
	return float64(index+1) / float64(n)
}

// SquaredDifference sums (F_e(v) - F_other(v))² over every observation v of e,
// repeated values included.
func (e *ECDF) SquaredDifference(other *ECDF) float64 {
	var sum float64
	for _, v := range e.sorted {
		d := e.rank(v) - other.rank(v)
		sum += d * d
	}
	return sum
}

// Curve returns the step function as (k-th smallest value, k/n) for k = 1..n. Repeated
// values appear once per occurrence. The returned slice is owned by the caller.
func (e *ECDF) Curve() []Point {
	n := float64(len(e.sorted))
	curve := make([]Point, len(e.sorted))
	for i, v := range e.sorted {
		curve[i] = Point{Value: v, Fraction: float64(i+1) / n}
	}
	return curve
}

// Quantile returns the smallest observation whose cumulative fraction is >= rank.
func (e *ECDF) Quantile(rank float64) (float64, error) {
	if math.IsNaN(rank) || rank < 0 || rank > 1 {
		return 0, ErrInvalidRank
	}
	naturalRank := getNaturalRank(rank, len(e.sorted))
	if naturalRank <= 1 {
		return e.sorted[0], nil
	}
	return e.sorted[naturalRank-1], nil
}

// CDF returns the fraction of the sample <= each split point, followed by a final 1.
// Split points must be unique and strictly increasing.
func (e *ECDF) CDF(splitPoints []float64) ([]float64, error) {
	if err := validateSplitPoints(splitPoints); err != nil {
		return nil, err
	}
	ranks := make([]float64, 0, len(splitPoints)+1)
	for _, sp := range splitPoints {
		ranks = append(ranks, e.rank(sp))
	}
	ranks = append(ranks, 1)
	return ranks, nil
}

// PMF returns the fraction of the sample in each interval delimited by the split
// points: (-inf, sp[0]], (sp[0], sp[1]], ..., (sp[last], +inf).
func (e *ECDF) PMF(splitPoints []float64) ([]float64, error) {
	buckets, err := e.CDF(splitPoints)
	if err != nil {
		return nil, err
	}
	for i := len(splitPoints); i > 0; i-- {
		buckets[i] -= buckets[i-1]
	}
	return buckets, nil
}

// String returns a human-readable summary.
func (e *ECDF) String() string {
	var sb strings.Builder
	sb.WriteString("### Empirical CDF summary:\n")
	sb.WriteString(fmt.Sprintf("   N   : %d\n", e.N()))
	sb.WriteString(fmt.Sprintf("   Min : %v\n", e.Min()))
	sb.WriteString(fmt.Sprintf("   Max : %v\n", e.Max()))
	sb.WriteString("### End empirical CDF summary\n")
	return sb.String()
}

func getNaturalRank(normalizedRank float64, n int) int {
	naturalRank := normalizedRank * float64(n)
	if n <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	return int(math.Ceil(naturalRank))
}

func validateSplitPoints(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) {
			return ErrNaNInSplitPoints
		}
	}
	for i := 1; i < len(values); i++ {
		if !(values[i-1] < values[i]) {
			return ErrInvalidSplitPoints
		}
	}
	return nil
}
