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

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/workload"
)

// Model represents the Bubble Tea explorer state
type Model struct {
	ready bool

	commandInput textinput.Model
	treeViewport viewport.Model

	session *explorerSession

	// State
	focusOnTree bool
	message     string
	isError     bool
	history     []string
	historyPos  int

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// InitialModel creates the initial explorer model
func InitialModel(config *Config, workloads *workload.Manager, corpusCache *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42, remove 7, fill 31 zigzag, help..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	vp := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		commandInput:    ti,
		treeViewport:    vp,
		session:         newExplorerSession(config, workloads, corpusCache),
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		message:         "type help for the command list",
	}
	m.commandInput.PromptStyle = m.styles.InputPrompt
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.commandInput.Blur()
			} else {
				m.commandInput.Focus()
			}
			return m, nil
		case "enter":
			if !m.focusOnTree {
				m.execute(m.commandInput.Value())
				m.commandInput.SetValue("")
				return m, nil
			}
		case "pgup":
			m.treeViewport.LineUp(m.treeViewport.Height)
			return m, nil
		case "pgdown":
			m.treeViewport.LineDown(m.treeViewport.Height)
			return m, nil
		case "home":
			if m.focusOnTree {
				m.treeViewport.GotoTop()
				return m, nil
			}
		case "end":
			if m.focusOnTree {
				m.treeViewport.GotoBottom()
				return m, nil
			}
		case "up":
			if !m.focusOnTree {
				m.recall(-1)
				return m, nil
			}
		case "down":
			if !m.focusOnTree {
				m.recall(1)
				return m, nil
			}
		}

		if m.focusOnTree {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		} else {
			m.commandInput, cmd = m.commandInput.Update(msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	msg, err := m.session.Execute(line)
	if err != nil {
		m.message, m.isError = err.Error(), true
	} else {
		m.message, m.isError = msg, false
	}
	m.refreshTree()
}

// recall walks the command history like a shell
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.commandInput.SetValue("")
		return
	}
	m.historyPos = pos
	m.commandInput.SetValue(m.history[pos])
	m.commandInput.CursorEnd()
}

func (m *Model) refreshTree() {
	if m.session.showHelp {
		content := explorerHelp
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(explorerHelp); err == nil {
				content = rendered
			}
		}
		m.treeViewport.SetContent(content)
		m.treeViewport.GotoTop()
		return
	}
	m.treeViewport.SetContent(m.session.Drawing())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	m.treeViewport.Width = m.width - 4
	m.treeViewport.Height = m.height - 11
	if m.treeViewport.Height < 1 {
		m.treeViewport.Height = 1
	}
	m.commandInput.Width = m.width - 10
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	treeStyle, inputStyle := m.styles.BorderBlurred, m.styles.BorderFocused
	treeTitle, inputTitle := " 🌳 Tree ", " ⌨️  Command (Active) "
	if m.focusOnTree {
		treeStyle, inputStyle = m.styles.BorderFocused, m.styles.BorderBlurred
		treeTitle, inputTitle = " 🌳 Tree (Active) ", " ⌨️  Command "
	}

	treeBox := treeStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	inputBox := inputStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(inputTitle),
			m.commandInput.View(),
		))

	message := m.styles.SuccessMessage.Render(m.message)
	if m.isError {
		message = m.styles.ErrorMessage.Render(m.message)
	}

	status := m.styles.StatusBar.Width(m.width).Render(m.session.Status())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		treeBox,
		inputBox,
		" "+message,
		status,
		m.renderHelp(),
	)
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "↑/↓", "pgup/pgdown", "esc"}
	descs := []string{"run command", "switch focus", "history / scroll", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 1).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea explorer
func runExplorer(config *Config, workloads *workload.Manager, corpusCache *cache.Cache) error {
	model := InitialModel(config, workloads, corpusCache)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
