// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workload

import (
	"math"
	"math/rand"
)

// Ascending inserts keys in increasing order, the classic worst case for an
// unbalanced search tree.
type Ascending struct{}

func (Ascending) Name() string        { return "ascending" }
func (Ascending) Description() string { return "0, 1, 2, ... n-1" }

func (Ascending) Keys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

type Descending struct{}

func (Descending) Name() string        { return "descending" }
func (Descending) Description() string { return "n-1, n-2, ... 0" }

func (Descending) Keys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n - 1 - i
	}
	return keys
}

// Random is a seeded shuffle. Two calls with the same n on the same value
// return the same permutation.
type Random struct {
	seed int64
}

func NewRandom(seed int64) Random {
	return Random{seed: seed}
}

func (Random) Name() string        { return "random" }
func (Random) Description() string { return "seeded random permutation" }

func (r Random) Keys(n int) []int {
	rng := rand.New(rand.NewSource(r.seed))
	return rng.Perm(n)
}

// ZigZag alternates between the smallest and largest remaining key.
type ZigZag struct{}

func (ZigZag) Name() string        { return "zigzag" }
func (ZigZag) Description() string { return "0, n-1, 1, n-2, ..." }

func (ZigZag) Keys(n int) []int {
	keys := make([]int, 0, n)
	lo, hi := 0, n-1
	for lo <= hi {
		keys = append(keys, lo)
		if lo != hi {
			keys = append(keys, hi)
		}
		lo++
		hi--
	}
	return keys
}

// Sawtooth emits ascending runs of length sqrt(n), the runs themselves in
// descending order.
type Sawtooth struct{}

func (Sawtooth) Name() string        { return "sawtooth" }
func (Sawtooth) Description() string { return "descending blocks of ascending runs" }

func (Sawtooth) Keys(n int) []int {
	if n == 0 {
		return []int{}
	}
	run := int(math.Sqrt(float64(n)))
	if run < 1 {
		run = 1
	}

	keys := make([]int, 0, n)
	for start := (n - 1) / run * run; start >= 0; start -= run {
		for k := start; k < start+run && k < n; k++ {
			keys = append(keys, k)
		}
	}
	return keys
}
