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
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/workload"
)

func newTestSession() (*explorerSession, *string) {
	config := defaultConfig()
	s := newExplorerSession(&config, workload.NewManager(1), NewCorpusCache())
	copied := new(string)
	s.copyFn = func(text string) error {
		*copied = text
		return nil
	}
	return s, copied
}

func TestExplorerSessionCommands(t *testing.T) {
	s, copied := newTestSession()

	steps := []struct {
		line    string
		want    string
		wantErr error
	}{
		{"min", "", avl.ErrEmptyTree},
		{"insert 5", "inserted 5", nil},
		{"insert 2 two", "inserted 2", nil},
		{`insert 8 "eight ball"`, "inserted 8", nil},
		{"insert 5 five", "updated 5", nil},
		{"get 8", "8 → eight ball", nil},
		{"get 9", "9 not present", nil},
		{"min", "min 2", nil},
		{"max", "max 8", nil},
		{"range 2 8", "[2, 8): 2 5", nil},
		{"range 9 20", "no keys in [9, 20)", nil},
		{"remove 2", "removed 2 → two", nil},
		{"remove 2", "2 not present", nil},
		{"copy", "copied 2 keys to clipboard", nil},
		{"insert x", "", nil},
		{"remove", "", errUsage},
		{"dance", "", errUnknownCommand},
		{"fill 5 spiral", "", workload.ErrUnknownWorkload},
		{"help", "help", nil},
	}

	for _, step := range steps {
		got, err := s.Execute(step.line)
		if step.wantErr != nil {
			if !errors.Is(err, step.wantErr) {
				t.Errorf("Execute(%q) error = %v; want %v", step.line, err, step.wantErr)
			}
			continue
		}
		if step.want == "" {
			if err == nil {
				t.Errorf("Execute(%q) succeeded; want an error", step.line)
			}
			continue
		}
		if err != nil {
			t.Errorf("Execute(%q) returned error: %v", step.line, err)
			continue
		}
		if got != step.want {
			t.Errorf("Execute(%q) = %q; want %q", step.line, got, step.want)
		}
	}

	if *copied != "5 8" {
		t.Errorf("clipboard = %q; want %q", *copied, "5 8")
	}
	if !s.showHelp {
		t.Errorf("help flag not set after help command")
	}
}

func TestExplorerSessionFill(t *testing.T) {
	s, _ := newTestSession()

	msg, err := s.Execute("fill 10 ascending")
	if err != nil {
		t.Fatalf("fill returned error: %v", err)
	}
	if msg != "inserted 10 keys (ascending)" {
		t.Errorf("fill message = %q", msg)
	}
	if s.tree.Size() != 10 || s.tree.Height() > 4 {
		t.Errorf("size %d height %d after fill 10", s.tree.Size(), s.tree.Height())
	}

	// default workload from config
	if msg, _ := s.Execute("fill 12"); msg != "inserted 2 keys (random)" {
		t.Errorf("second fill message = %q", msg)
	}

	if _, err := s.Execute("fill -1"); err == nil {
		t.Errorf("fill -1 succeeded")
	}

	if !strings.Contains(s.Status(), "size 12") || !strings.Contains(s.Status(), "balanced true") {
		t.Errorf("status = %q", s.Status())
	}

	s.Execute("clear")
	if !s.tree.IsEmpty() {
		t.Errorf("tree not empty after clear")
	}
	if !strings.Contains(s.Drawing(), "empty") {
		t.Errorf("drawing of empty tree = %q", s.Drawing())
	}
}

func TestExplorerSessionDrawing(t *testing.T) {
	s, _ := newTestSession()
	s.Execute("insert 1 one")
	s.Execute("insert 2 two")

	if !strings.Contains(s.Drawing(), "two") {
		t.Errorf("drawing hides values:\n%s", s.Drawing())
	}
	if msg, _ := s.Execute("values"); msg != "values hidden" {
		t.Errorf("values toggle message = %q", msg)
	}
	if strings.Contains(s.Drawing(), "two") {
		t.Errorf("drawing shows values after toggle:\n%s", s.Drawing())
	}
}

func TestModelUpdate(t *testing.T) {
	config := defaultConfig()
	m := InitialModel(&config, workload.NewManager(1), NewCorpusCache())
	m.session.copyFn = func(string) error { return nil }

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	if !m.ready {
		t.Fatalf("model not ready after window size message")
	}

	m.commandInput.SetValue("fill 7 ascending")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.session.tree.Size() != 7 {
		t.Errorf("tree size = %d; want 7", m.session.tree.Size())
	}
	if m.commandInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.commandInput.Value())
	}
	if m.isError {
		t.Errorf("unexpected error message %q", m.message)
	}

	m.commandInput.SetValue("bogus")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.isError {
		t.Errorf("bogus command did not report an error")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.commandInput.Value() != "bogus" {
		t.Errorf("history recall = %q; want bogus", m.commandInput.Value())
	}

	view := m.View()
	if !strings.Contains(view, "size 7") {
		t.Errorf("view does not show the status bar:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Errorf("esc did not return a quit command")
	}
}

func TestExplorerSessionWordsReusesCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pride.txt")
	text := "It is a truth universally acknowledged, that a single man in possession of a good fortune"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}

	s, _ := newTestSession()

	first, err := s.Execute("words " + path)
	if err != nil {
		t.Fatalf("words returned error: %v", err)
	}
	if !strings.Contains(first, "16 words, 14 distinct") {
		t.Errorf("words summary = %q", first)
	}
	if strings.Contains(first, "cached") {
		t.Errorf("first load reported a cache hit: %q", first)
	}

	second, err := s.Execute("words " + path + " A")
	if err != nil {
		t.Fatalf("words returned error: %v", err)
	}
	if !strings.Contains(second, "(cached)") {
		t.Errorf("second load missed the session cache: %q", second)
	}
	if !strings.Contains(second, `"a" × 3`) {
		t.Errorf("single word count missing: %q", second)
	}
	if s.corpusCache.ItemCount() != 1 {
		t.Errorf("cache holds %d corpora; want 1", s.corpusCache.ItemCount())
	}

	if _, err := s.Execute("words"); !errors.Is(err, errUsage) {
		t.Errorf("words without a file: error = %v; want usage", err)
	}
	if _, err := s.Execute("words " + filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Errorf("words on a missing file succeeded")
	}
}
