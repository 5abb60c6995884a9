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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name   string
		config func(*CorpusConfig)
		text   string
		want   []string
	}{
		{
			name:   "lowercases and splits on punctuation",
			config: func(c *CorpusConfig) {},
			text:   "It is a truth, universally acknowledged!\nThat a single-man",
			want:   []string{"it", "is", "a", "truth", "universally", "acknowledged", "that", "a", "single", "man"},
		},
		{
			name:   "keeps apostrophes inside words",
			config: func(c *CorpusConfig) {},
			text:   "'Tis Mr. Darcy's 'own' house",
			want:   []string{"tis", "mr", "darcy's", "own", "house"},
		},
		{
			name:   "minimum length",
			config: func(c *CorpusConfig) { c.MinWordLength = 3 },
			text:   "it is a truth universally acknowledged",
			want:   []string{"truth", "universally", "acknowledged"},
		},
		{
			name:   "skips stopwords",
			config: func(c *CorpusConfig) { c.SkipStopwords = true },
			text:   "It is a truth universally acknowledged that a single man",
			want:   []string{"truth", "universally", "acknowledged", "single", "man"},
		},
		{
			name:   "case sensitive",
			config: func(c *CorpusConfig) { c.Lowercase = false },
			text:   "Elizabeth elizabeth",
			want:   []string{"Elizabeth", "elizabeth"},
		},
		{
			name:   "digits are separators",
			config: func(c *CorpusConfig) {},
			text:   "chapter 12 begins",
			want:   []string{"chapter", "begins"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig().Corpus
			tc.config(&cfg)
			got, err := NewTokenizer(cfg).Tokenize(strings.NewReader(tc.text))
			if err != nil {
				t.Fatalf("Tokenize returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %q; want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	// a tiny filter saturates quickly, the exact set must still reject
	cfg := CorpusConfig{Lowercase: true, Stopwords: []string{"the", "and", "of"}, BloomSize: 8, BloomHashes: 2}
	tok := NewTokenizer(cfg)

	for _, w := range []string{"the", "The", "and", "of"} {
		if !tok.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false; want true", w)
		}
	}
	for _, w := range []string{"pride", "prejudice", "bennet", "darcy", "pemberley"} {
		if tok.IsStopword(w) {
			t.Errorf("IsStopword(%q) = true; want false", w)
		}
	}
}

func TestLoadCorpusUsesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("one two three two"), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}

	c := NewCorpusCache()
	tok := NewTokenizer(defaultConfig().Corpus)

	words, cached, err := LoadCorpus(c, path, tok)
	if err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}
	if cached {
		t.Errorf("first load reported a cache hit")
	}
	if len(words) != 4 {
		t.Fatalf("LoadCorpus = %q; want 4 words", words)
	}
	if c.ItemCount() != 1 {
		t.Errorf("cache holds %d items; want 1", c.ItemCount())
	}

	again, cached, err := LoadCorpus(c, path, tok)
	if err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}
	if !cached {
		t.Errorf("second load missed the cache")
	}
	if !reflect.DeepEqual(words, again) {
		t.Errorf("cached corpus %q differs from %q", again, words)
	}
	if c.ItemCount() != 1 {
		t.Errorf("cache holds %d items after reload; want 1", c.ItemCount())
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, _, err := LoadCorpus(NewCorpusCache(), filepath.Join(t.TempDir(), "absent.txt"), NewTokenizer(defaultConfig().Corpus))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("LoadCorpus error = %v; want not found", err)
	}
}

func TestLoadCorpusStopwordChangeMissesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("the pride and the prejudice"), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}

	c := NewCorpusCache()
	cfg := defaultConfig().Corpus
	cfg.SkipStopwords = true
	cfg.Stopwords = []string{"the"}
	if _, _, err := LoadCorpus(c, path, NewTokenizer(cfg)); err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}

	cfg.Stopwords = []string{"the", "and"}
	words, cached, err := LoadCorpus(c, path, NewTokenizer(cfg))
	if err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}
	if cached {
		t.Errorf("changed stopword list reused the cached words")
	}
	if !reflect.DeepEqual(words, []string{"pride", "prejudice"}) {
		t.Errorf("LoadCorpus = %q; want [pride prejudice]", words)
	}
}
