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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Tokenised corpora are large, keep them only for the life of a run
	corpusCacheExpiration = 10 * time.Minute
	corpusCacheCleanup    = 5 * time.Minute
)

// NewCorpusCache creates a cache for tokenised word lists
func NewCorpusCache() *cache.Cache {
	return cache.New(corpusCacheExpiration, corpusCacheCleanup)
}

// corpusKey identifies a file version together with the tokenizer settings
// that produced its words.
func corpusKey(path string, modTime time.Time, size int64, cfg CorpusConfig) string {
	return fmt.Sprintf("%s|%d|%d|%t|%d|%t|%s|%d|%d", path, modTime.UnixNano(), size,
		cfg.Lowercase, cfg.MinWordLength, cfg.SkipStopwords,
		strings.Join(cfg.Stopwords, ","), cfg.BloomSize, cfg.BloomHashes)
}

func CacheCorpus(c *cache.Cache, key string, words []string) {
	c.Set(key, words, corpusCacheExpiration)
}

func GetCorpus(c *cache.Cache, key string) ([]string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	words, ok := val.([]string)
	return words, ok
}
