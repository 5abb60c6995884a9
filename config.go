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
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type CorpusConfig struct {
	Lowercase     bool     `yaml:"lowercase"`
	MinWordLength int      `yaml:"min_word_length"`
	SkipStopwords bool     `yaml:"skip_stopwords"`
	Stopwords     []string `yaml:"stopwords"`
	BloomSize     uint     `yaml:"bloom_size"`
	BloomHashes   uint     `yaml:"bloom_hashes"`
}

type StressConfig struct {
	Operations  int     `yaml:"operations"`
	KeySpace    int     `yaml:"key_space"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	Seed        int64   `yaml:"seed"`
}

type BenchConfig struct {
	Sizes     []int    `yaml:"sizes"`
	Workloads []string `yaml:"workloads"`
	Seed      int64    `yaml:"seed"`
}

type ExplorerConfig struct {
	ShowValues   bool   `yaml:"show_values"`
	FillWorkload string `yaml:"fill_workload"`
}

type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Stress   StressConfig   `yaml:"stress"`
	Bench    BenchConfig    `yaml:"bench"`
	Explorer ExplorerConfig `yaml:"explorer"`
	Quiet    bool           `yaml:"quiet"`
}

func defaultConfig() Config {
	return Config{
		Corpus: CorpusConfig{
			Lowercase:     true,
			MinWordLength: 1,
			SkipStopwords: false,
			Stopwords: []string{
				"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
				"from", "had", "has", "have", "he", "her", "his", "i", "in", "is",
				"it", "its", "not", "of", "on", "or", "she", "so", "that", "the",
				"their", "there", "they", "this", "to", "was", "were", "which", "with", "you",
			},
			BloomSize:   4096,
			BloomHashes: 4,
		},
		Stress: StressConfig{
			Operations:  100000,
			KeySpace:    5000,
			RemoveRatio: 0.4,
			Seed:        42,
		},
		Bench: BenchConfig{
			Sizes:     []int{1000, 10000, 100000},
			Workloads: []string{"ascending", "descending", "random", "zigzag", "sawtooth"},
			Seed:      42,
		},
		Explorer: ExplorerConfig{
			ShowValues:   true,
			FillWorkload: "random",
		},
	}
}

// LoadConfig reads ~/.avltree.yaml. A missing or unreadable file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return &config, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom is LoadConfig for an explicit path. Only a malformed file
// is an error.
func LoadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		defaults := defaultConfig()
		return &defaults, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	fileLock := flock.New(configPath + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	if !locked {
		return fmt.Errorf("config file %s is being written by another process", configPath)
	}
	defer func() {
		fileLock.Unlock()
		os.Remove(configPath + ".lock")
	}()

	// another process may have finished first
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Print(formatSettings(config))

	fmt.Printf("💡 Edit %s to change these values. Missing keys fall back to the defaults.\n", configPath)
	return nil
}

func formatSettings(config *Config) string {
	var sb strings.Builder
	field := func(name string, value any) {
		fmt.Fprintf(&sb, "  • %s%s%s: %v\n", Green, name, Reset, value)
	}

	fmt.Fprintf(&sb, "📚 %sCorpus:%s\n", Green, Reset)
	field("lowercase", config.Corpus.Lowercase)
	field("min_word_length", config.Corpus.MinWordLength)
	field("skip_stopwords", config.Corpus.SkipStopwords)
	field("stopwords", len(config.Corpus.Stopwords))
	field("bloom_size", config.Corpus.BloomSize)
	field("bloom_hashes", config.Corpus.BloomHashes)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "🧪 %sStress check:%s\n", Green, Reset)
	field("operations", config.Stress.Operations)
	field("key_space", config.Stress.KeySpace)
	field("remove_ratio", config.Stress.RemoveRatio)
	field("seed", config.Stress.Seed)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "⏱️  %sBenchmark:%s\n", Green, Reset)
	field("sizes", config.Bench.Sizes)
	field("workloads", strings.Join(config.Bench.Workloads, ", "))
	field("seed", config.Bench.Seed)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "🌳 %sExplorer:%s\n", Green, Reset)
	field("show_values", config.Explorer.ShowValues)
	field("fill_workload", config.Explorer.FillWorkload)
	sb.WriteString("\n")

	field("quiet", config.Quiet)
	sb.WriteString("\n")
	return sb.String()
}
