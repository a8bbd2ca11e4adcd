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

// Package cvm implements the two-sample Cramér–von Mises goodness-of-fit test, used to
// compare a measured Xmax distribution against a Monte Carlo prediction.
//
// The statistic is
//
//	T = N·M/(N+M)² · Σ_{e ∈ X ∪ Y} (F_X(e) − F_Y(e))²
//
// where F_X and F_Y are the empirical CDFs of the two samples. Its p-value is read from
// the tabulated limiting distribution of T.
package cvm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/telescope-array/shiftanal/ecdf"
)

var (
	// ErrEmpty is returned when either sample is empty. It is the same value as
	// ecdf.ErrEmpty.
	ErrEmpty = ecdf.ErrEmpty
	// ErrNaN is returned when either sample contains NaN.
	ErrNaN = ecdf.ErrNaN

	// ErrOutOfTableRange is returned for statistics or probabilities the limiting
	// distribution table does not cover.
	ErrOutOfTableRange = errors.New("value outside the limiting distribution table")
	// ErrInvalidSize is returned when null moments are requested for an empty sample.
	ErrInvalidSize = errors.New("sample sizes must be at least 1")
)

// Result holds the outcome of one test.
type Result struct {
	// Statistic is the raw two-sample statistic T.
	Statistic float64
	// LimitStatistic is T rescaled to the limiting distribution.
	LimitStatistic float64
	// PValue is the probability under the null hypothesis of a statistic at least as
	// large as Statistic.
	PValue float64
	// N and M are the sizes of the data and Monte Carlo samples.
	N int
	M int
}

// Reject reports whether the null hypothesis is rejected at significance level alpha.
func (r Result) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// Tester compares Monte Carlo samples against a fixed data sample. The data side is
// sorted once at construction. A Tester is immutable and safe for concurrent use.
type Tester struct {
	data   *ecdf.ECDF
	logger *zap.Logger
	strict bool
}

// NewTester builds a Tester for the given data sample. The sample is copied.
func NewTester(data []float64, opts ...Option) (*Tester, error) {
	options := newTesterOptions(opts)
	e, err := ecdf.New(data)
	if err != nil {
		return nil, fmt.Errorf("data sample: %w", err)
	}
	return &Tester{
		data:   e,
		logger: options.logger,
		strict: options.strict,
	}, nil
}

// Test runs the two-sample test of x against y with default options.
func Test(x, y []float64) (Result, error) {
	tester, err := NewTester(x)
	if err != nil {
		return Result{}, err
	}
	return tester.Compare(y)
}

// N returns the size of the data sample.
func (t *Tester) N() int {
	return t.data.N()
}

// Compare runs the test of the data sample against mc.
func (t *Tester) Compare(mc []float64) (Result, error) {
	mcECDF, err := ecdf.New(mc)
	if err != nil {
		return Result{}, fmt.Errorf("monte carlo sample: %w", err)
	}
	n := t.data.N()
	m := mcECDF.N()

	sum := t.data.SquaredDifference(mcECDF) + mcECDF.SquaredDifference(t.data)

	fn := float64(n)
	fm := float64(m)
	statistic := fn * fm / ((fn + fm) * (fn + fm)) * sum

	moments, err := NullMoments(n, m)
	if err != nil {
		return Result{}, err
	}
	if moments.degenerate() {
		t.logger.Warn("null variance is zero, limit statistic is shifted only",
			zap.Int("n", n),
			zap.Int("m", m))
	}
	limit := moments.normalize(statistic)

	var pValue float64
	if t.strict {
		pValue, err = strictPValue(statistic)
		if err != nil {
			return Result{}, err
		}
	} else {
		pValue = PValue(statistic)
	}

	t.logger.Debug("compared samples",
		zap.Int("n", n),
		zap.Int("m", m),
		zap.Float64("statistic", statistic),
		zap.Float64("limit_statistic", limit),
		zap.Float64("p_value", pValue))

	return Result{
		Statistic:      statistic,
		LimitStatistic: limit,
		PValue:         pValue,
		N:              n,
		M:              m,
	}, nil
}
