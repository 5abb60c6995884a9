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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
)

// Tokenizer splits text into words. Stopwords are screened with a bloom
// filter first and confirmed against an exact set, so false positives never
// drop a real word.
type Tokenizer struct {
	config      CorpusConfig
	bloomFilter *bloom.BloomFilter
	stopwords   *avl.Set[string]
}

func NewTokenizer(config CorpusConfig) *Tokenizer {
	size, hashes := config.BloomSize, config.BloomHashes
	if size == 0 {
		size = 1024
	}
	if hashes == 0 {
		hashes = 3
	}

	tok := &Tokenizer{
		config:      config,
		bloomFilter: bloom.New(size, hashes),
		stopwords:   avl.NewSet[string](),
	}
	for _, w := range config.Stopwords {
		w = tok.normalize(w)
		tok.bloomFilter.AddString(w)
		tok.stopwords.Add(w)
	}
	return tok
}

func (tok *Tokenizer) normalize(word string) string {
	if tok.config.Lowercase {
		return strings.ToLower(word)
	}
	return word
}

func (tok *Tokenizer) IsStopword(word string) bool {
	word = tok.normalize(word)
	if !tok.bloomFilter.TestString(word) {
		return false
	}
	return tok.stopwords.Contains(word)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}

// Tokenize reads r line by line and returns its words in order of appearance.
func (tok *Tokenizer) Tokenize(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long unwrapped paragraphs
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		for _, field := range strings.FieldsFunc(scanner.Text(), func(r rune) bool { return !isWordRune(r) }) {
			word := tok.normalize(strings.Trim(field, "'"))
			if len([]rune(word)) < tok.config.MinWordLength || word == "" {
				continue
			}
			if tok.config.SkipStopwords && tok.IsStopword(word) {
				continue
			}
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	return words, nil
}

// LoadCorpus tokenises the file at path, reusing a cached result when the
// file and tokenizer settings are unchanged. It reports whether the words
// came from the cache.
func LoadCorpus(c *cache.Cache, path string, tok *Tokenizer) ([]string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, fmt.Errorf("corpus file %s not found", path)
		}
		return nil, false, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, false, err
	}

	key := corpusKey(path, stat.ModTime(), stat.Size(), tok.config)
	if words, ok := GetCorpus(c, key); ok {
		return words, true, nil
	}

	words, err := tok.Tokenize(file)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}

	CacheCorpus(c, key, words)
	return words, false, nil
}
