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
)

// Moments are the mean and variance of the two-sample statistic T under the null
// hypothesis that both samples come from the same continuous distribution.
type Moments struct {
	Mean     float64
	Variance float64
}

// NullMoments returns the exact moments of T for sample sizes n and m.
func NullMoments(n, m int) (Moments, error) {
	if n < 1 || m < 1 {
		return Moments{}, fmt.Errorf("sample sizes %d and %d: %w", n, m, ErrInvalidSize)
	}
	fn := float64(n)
	fm := float64(m)
	sum := fn + fm
	prod := fn * fm

	mean := 1.0/6 + 1.0/(6*sum)
	variance := (1.0 / 45) * (sum + 1) / (sum * sum) *
		(4*prod*sum - 3*(fm*fm+fn*fn) - 2*prod) / (4 * prod)
	return Moments{Mean: mean, Variance: variance}, nil
}

// Normalize rescales T for sample sizes n and m onto the scale of the limiting
// distribution, matching its mean 1/6 and variance 1/45.
//
// For n = m = 1 the null variance is 0; the result is then only shifted, T - E[T] + 1/6.
func Normalize(t float64, n, m int) (float64, error) {
	moments, err := NullMoments(n, m)
	if err != nil {
		return 0, err
	}
	return moments.normalize(t), nil
}

func (mo Moments) normalize(t float64) float64 {
	if mo.degenerate() {
		return t - mo.Mean + 1.0/6
	}
	return (t-mo.Mean)/math.Sqrt(45*mo.Variance) + 1.0/6
}

func (mo Moments) degenerate() bool {
	return !(mo.Variance > 0)
}
