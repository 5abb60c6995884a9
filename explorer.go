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
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/workload"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

const maxFill = 100000

const explorerHelp = `# Explorer commands

| Command | Effect |
|---|---|
| ` + "`insert <key> [value]`" + ` | add a key, or overwrite its value |
| ` + "`remove <key>`" + ` | delete a key |
| ` + "`get <key>`" + ` | look a key up |
| ` + "`min`" + ` / ` + "`max`" + ` | smallest and largest key |
| ` + "`range <lo> <hi>`" + ` | keys with lo <= key < hi |
| ` + "`fill <n> [workload]`" + ` | insert keys 0..n-1 in workload order |
| ` + "`clear`" + ` | drop every key |
| ` + "`copy`" + ` | copy the in-order keys to the clipboard |
| ` + "`words <file> [word]`" + ` | count the words of a text file in a string tree |
| ` + "`values`" + ` | toggle values in the drawing |
| ` + "`help`" + ` | show this page |

Values with spaces can be quoted: ` + "`insert 7 \"seven samurai\"`" + `
`

// explorerSession executes explorer command lines against one tree.
type explorerSession struct {
	tree       *avl.Tree[int, string]
	workloads  *workload.Manager
	fill       string
	showValues bool
	copyFn     func(string) error
	showHelp   bool

	// corpora stay tokenised for the whole session
	corpusCache *cache.Cache
	tokenizer   *Tokenizer
}

func newExplorerSession(config *Config, workloads *workload.Manager, corpusCache *cache.Cache) *explorerSession {
	return &explorerSession{
		tree:        avl.New[int, string](),
		workloads:   workloads,
		fill:        config.Explorer.FillWorkload,
		showValues:  config.Explorer.ShowValues,
		copyFn:      clipboard.WriteAll,
		corpusCache: corpusCache,
		tokenizer:   NewTokenizer(config.Corpus),
	}
}

func parseKey(arg string) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("key %q is not an integer", arg)
	}
	return k, nil
}

// Execute runs one command line and returns the message for the status line.
func (s *explorerSession) Execute(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}
	s.showHelp = false

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "i", "add":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: insert <key> [value]", errUsage)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		value := args[0]
		if len(args) == 2 {
			value = args[1]
		}
		if s.tree.Insert(key, value) {
			return fmt.Sprintf("inserted %d", key), nil
		}
		return fmt.Sprintf("updated %d", key), nil

	case "remove", "rm", "delete", "del":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: remove <key>", errUsage)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		if v, ok := s.tree.Remove(key); ok {
			return fmt.Sprintf("removed %d → %s", key, v), nil
		}
		return fmt.Sprintf("%d not present", key), nil

	case "get", "find":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: get <key>", errUsage)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		if v, ok := s.tree.Get(key); ok {
			return fmt.Sprintf("%d → %s", key, v), nil
		}
		return fmt.Sprintf("%d not present", key), nil

	case "min", "max":
		var key int
		if cmd == "min" {
			key, err = s.tree.Min()
		} else {
			key, err = s.tree.Max()
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %d", cmd, key), nil

	case "range":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: range <lo> <hi>", errUsage)
		}
		lo, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		hi, err := parseKey(args[1])
		if err != nil {
			return "", err
		}
		var keys []string
		for k := range s.tree.Range(lo, hi) {
			keys = append(keys, strconv.Itoa(k))
		}
		if len(keys) == 0 {
			return fmt.Sprintf("no keys in [%d, %d)", lo, hi), nil
		}
		return fmt.Sprintf("[%d, %d): %s", lo, hi, strings.Join(keys, " ")), nil

	case "fill":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: fill <n> [%s]", errUsage, strings.Join(s.workloads.Names(), "|"))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > maxFill {
			return "", fmt.Errorf("fill count must be between 0 and %d", maxFill)
		}
		name := s.fill
		if len(args) == 2 {
			name = args[1]
		}
		w, err := s.workloads.Get(name)
		if err != nil {
			return "", err
		}
		added := 0
		for _, k := range w.Keys(n) {
			if s.tree.Insert(k, strconv.Itoa(k)) {
				added++
			}
		}
		return fmt.Sprintf("inserted %d keys (%s)", added, w.Name()), nil

	case "clear":
		s.tree.Clear()
		return "cleared", nil

	case "copy":
		keys := s.tree.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = strconv.Itoa(k)
		}
		if err := s.copyFn(strings.Join(parts, " ")); err != nil {
			return "", fmt.Errorf("failed to copy: %w", err)
		}
		return fmt.Sprintf("copied %d keys to clipboard", len(keys)), nil

	case "words":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: words <file> [word]", errUsage)
		}
		return s.countWords(args[0], args[1:])

	case "values":
		s.showValues = !s.showValues
		if s.showValues {
			return "values shown", nil
		}
		return "values hidden", nil

	case "help", "?":
		s.showHelp = true
		return "help", nil
	}

	return "", fmt.Errorf("%w %q, try help", errUnknownCommand, cmd)
}

// Drawing renders the current tree, or a placeholder when it is empty.
func (s *explorerSession) Drawing() string {
	if s.tree.IsEmpty() {
		return "(empty tree, try: fill 15)"
	}
	var sb strings.Builder
	s.tree.Render(&sb, s.showValues)
	return sb.String()
}

func (s *explorerSession) Status() string {
	return fmt.Sprintf("size %d │ height %d │ bst %t │ balanced %t",
		s.tree.Size(), s.tree.Height(), s.tree.IsBST(), s.tree.IsBalanced())
}

// countWords tokenises path through the session cache and summarises its
// word frequency tree, plus the count of one word when asked.
func (s *explorerSession) countWords(path string, word []string) (string, error) {
	words, cached, err := LoadCorpus(s.corpusCache, path, s.tokenizer)
	if err != nil {
		return "", err
	}

	freq := CountWords(words, nil)
	msg := fmt.Sprintf("%s: %d words, %d distinct, height %d", path, len(words), freq.Size(), freq.Height())
	if len(word) == 1 {
		key := s.tokenizer.normalize(word[0])
		n, _ := freq.Get(key)
		msg += fmt.Sprintf(", %q × %d", key, n)
	}
	if cached {
		msg += " (cached)"
	}
	return msg, nil
}
