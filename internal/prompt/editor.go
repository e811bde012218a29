// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tfctl/confkit/internal/log"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Result summarizes an editing session.
type Result struct {
	// Changed counts the fields given a new value.
	Changed int

	// Aborted is set when the user left before the last field.
	Aborted bool
}

// editorModel represents the Bubble Tea model of the field editor.
type editorModel struct {
	items  []Item
	idx    int
	input  textinput.Model
	apply  Apply
	errMsg string
	result Result
}

func newEditorModel(items []Item, apply Apply) editorModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 72
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorBlink)

	m := editorModel{items: items, input: ti, apply: apply}
	m.load()
	return m
}

// load prepares the input for the current item.
func (m *editorModel) load() {
	m.input.SetValue("")
	if m.idx < len(m.items) {
		m.input.Placeholder = m.items[m.idx].Current
	}
}

func (m editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.result.Aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			item := m.items[m.idx]
			text := m.input.Value()

			// Empty input keeps the current value.
			if strings.TrimSpace(text) != "" {
				if err := m.apply(item.Path, text); err != nil {
					log.Debugf("prompt: %s rejected %q: %v", item.Path, text, err)
					m.errMsg = err.Error()
					return m, nil
				}
				m.result.Changed++
			}

			m.errMsg = ""
			m.idx++
			if m.idx >= len(m.items) {
				return m, tea.Quit
			}
			m.load()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.idx >= len(m.items) {
		return ""
	}
	item := m.items[m.idx]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		dimStyle.Render(fmt.Sprintf("[%d/%d]", m.idx+1, len(m.items))),
		labelStyle.Render(item.Label),
		dimStyle.Render("("+item.Path+", "+item.Type+")"))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("ENTER: keep or accept, CTRL+C: stop"))
	b.WriteString("\n")
	return b.String()
}

// Edit runs the interactive editor over items. Values are stored through
// apply as soon as each one is accepted.
func Edit(items []Item, apply Apply) (Result, error) {
	if len(items) == 0 {
		return Result{}, nil
	}

	p := tea.NewProgram(newEditorModel(items, apply))
	m, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	return m.(editorModel).result, nil
}
