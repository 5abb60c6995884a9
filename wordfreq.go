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
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

type WordCount struct {
	Word  string
	Count int
}

type WordFreqReport struct {
	TotalWords    int
	DistinctWords int
	Height        int
	Elapsed       time.Duration
	Top           []WordCount
}

// newProgressBar returns nil when quiet, callers must nil-check.
func newProgressBar(total int, description string, quiet bool) *progressbar.ProgressBar {
	if quiet {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

// CountWords builds a word to frequency map.
func CountWords(words []string, bar *progressbar.ProgressBar) *avl.Tree[string, int] {
	freq := avl.New[string, int]()
	for i, w := range words {
		n, _ := freq.Get(w)
		freq.Insert(w, n+1)
		if bar != nil && i%1024 == 0 {
			bar.Set(i)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return freq
}

// TopWords returns the n most frequent words, ties in alphabetical order.
func TopWords(freq *avl.Tree[string, int], n int) []WordCount {
	counts := make([]WordCount, 0, freq.Size())
	for w, c := range freq.All() {
		counts = append(counts, WordCount{Word: w, Count: c})
	}
	// in-order input already sorts ties alphabetically
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

func AnalyzeWords(words []string, top int, quiet bool) (*avl.Tree[string, int], WordFreqReport) {
	start := time.Now()
	freq := CountWords(words, newProgressBar(len(words), "🔤 Counting words...", quiet))
	elapsed := time.Since(start)

	return freq, WordFreqReport{
		TotalWords:    len(words),
		DistinctWords: freq.Size(),
		Height:        freq.Height(),
		Elapsed:       elapsed,
		Top:           TopWords(freq, top),
	}
}

func renderWordFreqReport(w io.Writer, report WordFreqReport, styles *Styles) {
	fmt.Fprintf(w, "📖 Total words:    %d\n", report.TotalWords)
	fmt.Fprintf(w, "🔑 Distinct words: %d\n", report.DistinctWords)
	fmt.Fprintf(w, "🌳 Tree height:    %d\n", report.Height)
	fmt.Fprintf(w, "⏱️  Elapsed:        %s\n\n", report.Elapsed.Round(time.Microsecond))

	if len(report.Top) == 0 {
		return
	}

	rows := make([][]string, 0, len(report.Top))
	for i, wc := range report.Top {
		rows = append(rows, []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
	}
	fmt.Fprintln(w, newReportTable(styles, []string{"#", "Word", "Count"}, rows))
}

func newReportTable(styles *Styles, headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
