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

package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/workload"
)

var errStressMismatch = errors.New("tree disagrees with reference map")

type StressReport struct {
	Operations int
	Inserts    int
	Removes    int
	Lookups    int
	MaxHeight  int
	FinalSize  int
}

// RunStress preloads the tree with the keys of w, then applies random
// insert, remove and lookup operations, checking the tree against a plain map
// and verifying every invariant after each step.
func RunStress(config StressConfig, w workload.Workload, bar *progressbar.ProgressBar) (StressReport, error) {
	var report StressReport
	if config.KeySpace <= 0 {
		return report, fmt.Errorf("key space must be positive, got %d", config.KeySpace)
	}

	rng := rand.New(rand.NewSource(config.Seed))
	tree := avl.New[int, int]()
	model := make(map[int]int)

	check := func(step int, what string) error {
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("step %d (%s): %w", step, what, err)
		}
		if tree.Size() != len(model) {
			return fmt.Errorf("step %d (%s): size %d, want %d: %w", step, what, tree.Size(), len(model), errStressMismatch)
		}
		if h := tree.Height(); h > report.MaxHeight {
			report.MaxHeight = h
		}
		return nil
	}

	if w != nil {
		for _, k := range w.Keys(config.KeySpace / 2) {
			tree.Insert(k, k)
			model[k] = k
			report.Inserts++
		}
		if err := check(0, "preload "+w.Name()); err != nil {
			return report, err
		}
	}

	for step := 1; step <= config.Operations; step++ {
		key := rng.Intn(config.KeySpace)
		roll := rng.Float64()

		var what string
		switch {
		case roll < config.RemoveRatio:
			what = fmt.Sprintf("remove %d", key)
			want, existed := model[key]
			got, removed := tree.Remove(key)
			if removed != existed || (existed && got != want) {
				return report, fmt.Errorf("step %d (%s): got %d/%t, want %d/%t: %w", step, what, got, removed, want, existed, errStressMismatch)
			}
			delete(model, key)
			report.Removes++
		case roll < config.RemoveRatio+(1-config.RemoveRatio)/2:
			what = fmt.Sprintf("insert %d", key)
			_, existed := model[key]
			if added := tree.Insert(key, step); added == existed {
				return report, fmt.Errorf("step %d (%s): added=%t for existing=%t: %w", step, what, added, existed, errStressMismatch)
			}
			model[key] = step
			report.Inserts++
		default:
			what = fmt.Sprintf("get %d", key)
			want, existed := model[key]
			got, ok := tree.Get(key)
			if ok != existed || got != want || tree.Contains(key) != existed {
				return report, fmt.Errorf("step %d (%s): got %d/%t, want %d/%t: %w", step, what, got, ok, want, existed, errStressMismatch)
			}
			report.Lookups++
		}

		if err := check(step, what); err != nil {
			return report, err
		}
		report.Operations = step
		if bar != nil && step%1000 == 0 {
			bar.Set(step)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	for k, v := range tree.All() {
		if mv, ok := model[k]; !ok || mv != v {
			return report, fmt.Errorf("final scan: key %d=%d, want %d/%t: %w", k, v, mv, ok, errStressMismatch)
		}
	}

	report.FinalSize = tree.Size()
	return report, nil
}
