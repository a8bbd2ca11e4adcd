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

package internal

import "golang.org/x/exp/constraints"

type Inequality int64

const (
	InequalityLT Inequality = iota
	InequalityLE
	InequalityGE
	InequalityGT
)

func (c Inequality) String() string {
	switch c {
	case InequalityLT:
		return "LT"
	case InequalityLE:
		return "LE"
	case InequalityGE:
		return "GE"
	case InequalityGT:
		return "GT"
	}
	return "unknown"
}

// FindWithInequality searches the ascending slice arr[low:high+1] for v.
//
// For LT and LE it returns the index of the rightmost element that is < v (resp. <= v).
// For GE and GT it returns the index of the leftmost element that is >= v (resp. > v).
// It returns -1 if no element satisfies the criterion.
func FindWithInequality[T constraints.Ordered](arr []T, low int, high int, v T, crit Inequality) int {
	if len(arr) == 0 || low > high {
		return -1
	}
	lo := low
	hi := high
	for lo <= hi {
		if hi-lo <= 1 {
			return resolve(arr, lo, hi, v, crit)
		}
		mid := lo + (hi-lo)/2
		switch compare(arr, mid, mid+1, v, crit) {
		case -1:
			hi = mid
		case 1:
			lo = mid + 1
		default:
			return getIndex(mid, mid+1, crit)
		}
	}
	return -1
}

func satisfies[T constraints.Ordered](a T, v T, crit Inequality) bool {
	switch crit {
	case InequalityLT:
		return a < v
	case InequalityLE:
		return a <= v
	case InequalityGE:
		return a >= v
	case InequalityGT:
		return a > v
	}
	panic("invalid inequality")
}

// resolve picks the answer once the search window is down to one or two elements.
func resolve[T constraints.Ordered](arr []T, lo int, hi int, v T, crit Inequality) int {
	switch crit {
	case InequalityLT, InequalityLE:
		if satisfies(arr[hi], v, crit) {
			return hi
		}
		if satisfies(arr[lo], v, crit) {
			return lo
		}
	case InequalityGE, InequalityGT:
		if satisfies(arr[lo], v, crit) {
			return lo
		}
		if satisfies(arr[hi], v, crit) {
			return hi
		}
	default:
		panic("invalid inequality")
	}
	return -1
}

// compare reports whether the answer lies left of a (-1), right of b (1), or at the
// a/b boundary (0).
func compare[T constraints.Ordered](arr []T, a int, b int, v T, crit Inequality) int {
	switch crit {
	case InequalityLT, InequalityGE:
		if v <= arr[a] {
			return -1
		}
		if arr[b] < v {
			return 1
		}
	case InequalityLE, InequalityGT:
		if v < arr[a] {
			return -1
		}
		if arr[b] <= v {
			return 1
		}
	default:
		panic("invalid inequality")
	}
	return 0
}

func getIndex(a int, b int, crit Inequality) int {
	switch crit {
	case InequalityLT, InequalityLE:
		return a
	case InequalityGE, InequalityGT:
		return b
	}
	panic("invalid inequality")
}
