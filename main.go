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
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/workload"
)

var version = "0.3.0"

func loadConfig(cmd *cobra.Command) *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		config.Quiet = true
	}
	return config
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing search trees you can watch, measure and verify [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	// shared by every command that tokenises a corpus in this process
	corpusCache := NewCorpusCache()

	explore := func(cmd *cobra.Command, args []string) error {
		config := loadConfig(cmd)
		return runExplorer(config, workload.NewManager(time.Now().UnixNano()), corpusCache)
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI to insert, remove and look up keys while the tree redraws`),
		Args:  cobra.NoArgs,
		RunE:  explore,
	}

	var cmdWordFreq = &cobra.Command{
		Use:   "wordfreq FILE",
		Short: "Count word frequencies of a text file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Wordfreq tokenises a text file and counts every word in an AVL map`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig(cmd)
			if cmd.Flags().Changed("skip-stopwords") {
				config.Corpus.SkipStopwords, _ = cmd.Flags().GetBool("skip-stopwords")
			}
			top, _ := cmd.Flags().GetInt("top")
			word, _ := cmd.Flags().GetString("word")

			words, _, err := LoadCorpus(corpusCache, args[0], NewTokenizer(config.Corpus))
			if err != nil {
				return err
			}

			freq, report := AnalyzeWords(words, top, config.Quiet)
			renderWordFreqReport(os.Stdout, report, NewStyles())

			if word != "" {
				tok := NewTokenizer(config.Corpus)
				key := tok.normalize(word)
				n, _ := freq.Get(key)
				fmt.Printf("🔍 %s%s%s appears %d times\n", Green, key, Reset, n)
			}
			return nil
		},
	}
	cmdWordFreq.Flags().Int("top", 20, "number of most frequent words to list")
	cmdWordFreq.Flags().String("word", "", "report the count of a single word")
	cmdWordFreq.Flags().Bool("skip-stopwords", false, "drop stopwords listed in the configuration")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the tree against a builtin map",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench times insert, lookup and remove for each key workload and size, and checks tree height against the AVL bound`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig(cmd)
			if cmd.Flags().Changed("sizes") {
				config.Bench.Sizes, _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("workloads") {
				config.Bench.Workloads, _ = cmd.Flags().GetStringSlice("workloads")
			}
			if cmd.Flags().Changed("seed") {
				config.Bench.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			styles := NewStyles()

			manager := workload.NewManager(config.Bench.Seed)
			bar := newProgressBar(len(config.Bench.Sizes)*len(config.Bench.Workloads), "⏱️  Benchmarking...", config.Quiet)
			results, err := RunBench(manager, config.Bench.Workloads, config.Bench.Sizes, bar)
			if err != nil {
				return err
			}
			renderBenchReport(os.Stdout, results, styles)

			corpus, _ := cmd.Flags().GetString("corpus")
			if corpus != "" {
				words, _, err := LoadCorpus(corpusCache, corpus, NewTokenizer(config.Corpus))
				if err != nil {
					return err
				}
				renderCorpusReport(os.Stdout, BenchCorpus(words), styles)
			}
			return nil
		},
	}
	cmdBench.Flags().IntSlice("sizes", nil, "key counts to benchmark (default from config)")
	cmdBench.Flags().StringSlice("workloads", nil, "workloads to run (default from config)")
	cmdBench.Flags().Int64("seed", 0, "seed for the random workload")
	cmdBench.Flags().String("corpus", "", "text file for an additional word set run")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Stress test the tree invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check runs random inserts, removes and lookups against a reference map and verifies ordering, balance, heights and size after every step`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig(cmd)
			if cmd.Flags().Changed("ops") {
				config.Stress.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("keys") {
				config.Stress.KeySpace, _ = cmd.Flags().GetInt("keys")
			}
			if cmd.Flags().Changed("seed") {
				config.Stress.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			name, _ := cmd.Flags().GetString("workload")

			w, err := workload.NewManager(config.Stress.Seed).Get(name)
			if err != nil {
				return err
			}

			bar := newProgressBar(config.Stress.Operations, "🧪 Checking invariants...", config.Quiet)
			report, err := RunStress(config.Stress, w, bar)
			if err != nil {
				fmt.Printf("%s❌ Invariant check failed after %d operations%s\n", Error, report.Operations, Reset)
				return err
			}

			fmt.Printf("%s✅ %d operations verified%s\n", Green, report.Operations, Reset)
			fmt.Printf("   inserts %d, removes %d, lookups %d\n", report.Inserts, report.Removes, report.Lookups)
			fmt.Printf("   final size %d, max height %d (bound %d)\n", report.FinalSize, report.MaxHeight, heightBound(config.Stress.KeySpace))
			return nil
		},
	}
	cmdCheck.Flags().Int("ops", 0, "number of random operations (default from config)")
	cmdCheck.Flags().Int("keys", 0, "size of the key space (default from config)")
	cmdCheck.Flags().Int64("seed", 0, "random seed (default from config)")
	cmdCheck.Flags().String("workload", "random", "workload used to preload the tree")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the current configuration and creates ~/.avltree.yaml with defaults when it is missing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avltree",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		// Default to explore when no subcommand is provided
		RunE: explore,
	}
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress bars")
	rootCmd.AddCommand(cmdExplore, cmdWordFreq, cmdBench, cmdCheck, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
