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
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/workload"
)

type BenchResult struct {
	Workload  string
	Size      int
	Height    int
	Bound     int
	Insert    time.Duration
	Lookup    time.Duration
	Remove    time.Duration
	MapInsert time.Duration
	MapLookup time.Duration
	MapRemove time.Duration
}

type CorpusBenchResult struct {
	Words      int
	Distinct   int
	SetHeight  int
	SetBuild   time.Duration
	TreeBuild  time.Duration
	MapBuild   time.Duration
	SetLookups time.Duration
}

// heightBound is the worst-case AVL height for n keys, rounded up.
func heightBound(n int) int {
	return int(math.Ceil(1.45 * math.Log2(float64(n+2))))
}

func benchTree(keys []int) (insert, lookup, remove time.Duration, height int) {
	tree := avl.New[int, int]()

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	insert = time.Since(start)
	height = tree.Height()

	start = time.Now()
	for _, k := range keys {
		tree.Contains(k)
	}
	lookup = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		tree.Remove(k)
	}
	remove = time.Since(start)
	return
}

func benchMap(keys []int) (insert, lookup, remove time.Duration) {
	m := make(map[int]int)

	start := time.Now()
	for _, k := range keys {
		m[k] = k
	}
	insert = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		_ = m[k]
	}
	lookup = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		delete(m, k)
	}
	remove = time.Since(start)
	return
}

// RunBench times every workload at every size on the tree and on a builtin
// map baseline.
func RunBench(manager *workload.Manager, names []string, sizes []int, bar *progressbar.ProgressBar) ([]BenchResult, error) {
	results := make([]BenchResult, 0, len(names)*len(sizes))
	for _, name := range names {
		w, err := manager.Get(name)
		if err != nil {
			return nil, err
		}
		for _, n := range sizes {
			if n < 0 {
				return nil, fmt.Errorf("invalid benchmark size %d", n)
			}
			keys := w.Keys(n)

			r := BenchResult{Workload: name, Size: n, Bound: heightBound(n)}
			r.Insert, r.Lookup, r.Remove, r.Height = benchTree(keys)
			r.MapInsert, r.MapLookup, r.MapRemove = benchMap(keys)
			results = append(results, r)

			if bar != nil {
				bar.Add(1)
			}
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return results, nil
}

// BenchCorpus compares a word set, a word counting tree and a builtin map
// over the same tokenised text.
func BenchCorpus(words []string) CorpusBenchResult {
	r := CorpusBenchResult{Words: len(words)}

	start := time.Now()
	set := avl.NewSet[string]()
	for _, w := range words {
		set.Add(w)
	}
	r.SetBuild = time.Since(start)
	r.Distinct = set.Size()
	r.SetHeight = set.Height()

	start = time.Now()
	for _, w := range words {
		set.Contains(w)
	}
	r.SetLookups = time.Since(start)

	start = time.Now()
	CountWords(words, nil)
	r.TreeBuild = time.Since(start)

	start = time.Now()
	m := make(map[string]int)
	for _, w := range words {
		m[w]++
	}
	r.MapBuild = time.Since(start)

	return r
}

func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return (d / time.Duration(n)).String()
}

func renderBenchReport(w io.Writer, results []BenchResult, styles *Styles) {
	headers := []string{"Workload", "Keys", "Height", "Bound", "Insert/op", "Lookup/op", "Remove/op", "Map insert/op", "Map lookup/op", "Map remove/op"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		height := strconv.Itoa(r.Height)
		if r.Height > r.Bound {
			height = styles.ErrorMessage.Render(height)
		}
		rows = append(rows, []string{
			r.Workload,
			strconv.Itoa(r.Size),
			height,
			strconv.Itoa(r.Bound),
			perOp(r.Insert, r.Size),
			perOp(r.Lookup, r.Size),
			perOp(r.Remove, r.Size),
			perOp(r.MapInsert, r.Size),
			perOp(r.MapLookup, r.Size),
			perOp(r.MapRemove, r.Size),
		})
	}
	fmt.Fprintln(w, newReportTable(styles, headers, rows))
}

func renderCorpusReport(w io.Writer, r CorpusBenchResult, styles *Styles) {
	headers := []string{"Structure", "Build", "Build/word"}
	rows := [][]string{
		{"avl.Set", r.SetBuild.String(), perOp(r.SetBuild, r.Words)},
		{"avl.Tree counts", r.TreeBuild.String(), perOp(r.TreeBuild, r.Words)},
		{"map counts", r.MapBuild.String(), perOp(r.MapBuild, r.Words)},
	}
	fmt.Fprintf(w, "📖 %d words, %d distinct, set height %d (bound %d), lookups %s\n",
		r.Words, r.Distinct, r.SetHeight, heightBound(r.Distinct), r.SetLookups)
	fmt.Fprintln(w, newReportTable(styles, headers, rows))
}
