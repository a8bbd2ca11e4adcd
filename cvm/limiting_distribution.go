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

package cvm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// limitingDistribution tabulates the asymptotic distribution of the Cramér–von Mises
// statistic: each row is (z, P(T <= z)) for n -> infinity, after Anderson & Darling
// (1952). Rows are strictly increasing in both columns.
var limitingDistribution = [...][2]float64{
	{0.00000, 0.00},
	{0.02480, 0.01},
	{0.02878, 0.02},
	{0.03177, 0.03},
	{0.03430, 0.04},
	{0.03656, 0.05},
	{0.03865, 0.06},
	{0.04061, 0.07},
	{0.04247, 0.08},
	{0.04427, 0.09},
	{0.04601, 0.10},
	{0.04772, 0.11},
	{0.04939, 0.12},
	{0.05103, 0.13},
	{0.05265, 0.14},
	{0.05426, 0.15},
	{0.05586, 0.16},
	{0.05746, 0.17},
	{0.05904, 0.18},
	{0.06063, 0.19},
	{0.06222, 0.20},
	{0.06381, 0.21},
	{0.06541, 0.22},
	{0.06702, 0.23},
	{0.06863, 0.24},
	{0.07026, 0.25},
	{0.07189, 0.26},
	{0.07354, 0.27},
	{0.07521, 0.28},
	{0.07690, 0.29},
	{0.07860, 0.30},
	{0.08032, 0.31},
	{0.08206, 0.32},
	{0.08383, 0.33},
	{0.08562, 0.34},
	{0.08744, 0.35},
	{0.08928, 0.36},
	{0.09115, 0.37},
	{0.09306, 0.38},
	{0.09499, 0.39},
	{0.09696, 0.40},
	{0.09896, 0.41},
	{0.10100, 0.42},
	{0.10308, 0.43},
	{0.10520, 0.44},
	{0.10736, 0.45},
	{0.10956, 0.46},
	{0.11182, 0.47},
	{0.11412, 0.48},
	{0.11647, 0.49},
	{0.11888, 0.50},
	{0.12134, 0.51},
	{0.12387, 0.52},
	{0.12646, 0.53},
	{0.12911, 0.54},
	{0.13183, 0.55},
	{0.13463, 0.56},
	{0.13751, 0.57},
	{0.14046, 0.58},
	{0.14350, 0.59},
	{0.14663, 0.60},
	{0.14986, 0.61},
	{0.15319, 0.62},
	{0.15663, 0.63},
	{0.16018, 0.64},
	{0.16385, 0.65},
	{0.16765, 0.66},
	{0.17159, 0.67},
	{0.17568, 0.68},
	{0.17992, 0.69},
	{0.18433, 0.70},
	{0.18892, 0.71},
	{0.19371, 0.72},
	{0.19870, 0.73},
	{0.20392, 0.74},
	{0.20939, 0.75},
	{0.21512, 0.76},
	{0.22114, 0.77},
	{0.22748, 0.78},
	{0.23417, 0.79},
	{0.24124, 0.80},
	{0.24873, 0.81},
	{0.25670, 0.82},
	{0.26520, 0.83},
	{0.27429, 0.84},
	{0.28406, 0.85},
	{0.29460, 0.86},
	{0.30603, 0.87},
	{0.31849, 0.88},
	{0.33217, 0.89},
	{0.34730, 0.90},
	{0.36421, 0.91},
	{0.38331, 0.92},
	{0.40520, 0.93},
	{0.43076, 0.94},
	{0.46136, 0.95},
	{0.49929, 0.96},
	{0.54885, 0.97},
	{0.61981, 0.98},
	{0.74346, 0.99},
	{1.16786, 0.999},
}

// MaxTabulatedStatistic is the 0.999 quantile of the limiting distribution, the last
// tabulated z.
const MaxTabulatedStatistic = 1.16786

// MaxTabulatedProbability is the cumulative probability of the last tabulated row.
const MaxTabulatedProbability = 0.999

var (
	// forward maps z to P(T <= z).
	forward interp.PiecewiseLinear
	// inverse maps P(T <= z) back to z.
	inverse interp.PiecewiseLinear
)

func init() {
	zs, ps := limitingColumns()
	if err := validateTable(zs, ps); err != nil {
		panic(fmt.Sprintf("cvm: limiting distribution: %v", err))
	}
	if err := forward.Fit(zs, ps); err != nil {
		panic(fmt.Sprintf("cvm: limiting distribution z column: %v", err))
	}
	if err := inverse.Fit(ps, zs); err != nil {
		panic(fmt.Sprintf("cvm: limiting distribution probability column: %v", err))
	}
}

func limitingColumns() (zs []float64, ps []float64) {
	zs = make([]float64, len(limitingDistribution))
	ps = make([]float64, len(limitingDistribution))
	for i, row := range limitingDistribution {
		zs[i] = row[0]
		ps[i] = row[1]
	}
	return zs, ps
}

// validateTable reports whether the table is usable for interpolation.
func validateTable(zs, ps []float64) error {
	if len(zs) != len(ps) || len(zs) < 2 {
		return fmt.Errorf("table columns have lengths %d and %d", len(zs), len(ps))
	}
	for i := 1; i < len(zs); i++ {
		if !(zs[i-1] < zs[i]) || !(ps[i-1] < ps[i]) {
			return fmt.Errorf("table row %d is not strictly increasing", i)
		}
	}
	if floats.Max(zs) != MaxTabulatedStatistic || floats.Max(ps) != MaxTabulatedProbability {
		return fmt.Errorf("table ends at (%v, %v)", floats.Max(zs), floats.Max(ps))
	}
	return nil
}

// LimitingCDF returns P(T <= z) under the limiting distribution, by linear interpolation
// between tabulated rows. It is 0 for z <= 0 and 1 for z >= MaxTabulatedStatistic.
func LimitingCDF(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return math.NaN()
	case z <= 0:
		return 0
	case z >= MaxTabulatedStatistic:
		return 1
	}
	return forward.Predict(z)
}

// LimitingQuantile returns the z with P(T <= z) = p. Only probabilities covered by the
// table, 0 through MaxTabulatedProbability, are accepted.
func LimitingQuantile(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > MaxTabulatedProbability {
		return 0, fmt.Errorf("probability %v: %w", p, ErrOutOfTableRange)
	}
	return inverse.Predict(p), nil
}

// PValue returns the probability of a statistic at least as large as t under the null
// hypothesis. Statistics at or beyond the 0.999 quantile give 0.
func PValue(t float64) float64 {
	return 1 - LimitingCDF(t)
}

func strictPValue(t float64) (float64, error) {
	if math.IsNaN(t) || t < 0 || t >= MaxTabulatedStatistic {
		return 0, fmt.Errorf("statistic %v: %w", t, ErrOutOfTableRange)
	}
	return PValue(t), nil
}
