// Package picker provides the interactive document selector shown
// when no files are given on the command line: a multi-select list
// over the documents of a directory, plus a prompt for the rank
// cutoff.
package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts selection.
var ErrCancelled = errors.New("selection cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type fileModel struct {
	files     []string
	cursor    int
	selected  map[int]struct{}
	confirmed bool
	quit      bool
}

func newFileModel(files []string) fileModel {
	return fileModel{
		files:    files,
		selected: make(map[int]struct{}),
	}
}

func (m fileModel) Init() tea.Cmd {
	return nil
}

func (m fileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case " ":
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case "a":
		for i := range m.files {
			m.selected[i] = struct{}{}
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

func (m fileModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select documents to analyze"))
	b.WriteString("\n\n")

	for i, f := range m.files {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		mark := "[ ]"
		style := normalStyle
		if _, ok := m.selected[i]; ok {
			mark = "[x]"
			style = selectedStyle
		}

		b.WriteString(cursor + mark + " " + style.Render(filepath.Base(f)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("[j/k] Navigate  [Space] Toggle  [a] All  [Enter] Confirm  [q] Quit"))
	b.WriteString("\n")

	return b.String()
}

// ChooseDocuments shows the multi-select list and returns the chosen
// files in directory order. ErrCancelled means the user backed out or
// confirmed an empty selection.
func ChooseDocuments(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrCancelled
	}

	final, err := tea.NewProgram(newFileModel(files)).Run()
	if err != nil {
		return nil, fmt.Errorf("run selector: %w", err)
	}

	m := final.(fileModel)
	if m.quit || len(m.selected) == 0 {
		return nil, ErrCancelled
	}

	var chosen []string
	for i, f := range files {
		if _, ok := m.selected[i]; ok {
			chosen = append(chosen, f)
		}
	}
	return chosen, nil
}

type topNModel struct {
	input    textinput.Model
	def      int
	value    int
	errMsg   string
	done     bool
	canceled bool
}

func newTopNModel(def int) topNModel {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(def)
	ti.CharLimit = 8
	ti.Width = 10
	ti.Focus()
	return topNModel{input: ti, def: def}
}

func (m topNModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m topNModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.value = m.def
				m.done = true
				return m, tea.Quit
			}
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				m.errMsg = "enter a non-negative whole number (0 = no limit)"
				return m, nil
			}
			m.value = n
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m topNModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("How many top-frequency words to fit C on (Enter = %d, 0 = no limit)\n", m.def))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// PromptTopN asks for the rank cutoff, defaulting to def on an empty
// answer. Non-numeric and negative answers are rejected before they
// can reach the analysis core.
func PromptTopN(def int) (int, error) {
	final, err := tea.NewProgram(newTopNModel(def)).Run()
	if err != nil {
		return 0, fmt.Errorf("run prompt: %w", err)
	}

	m := final.(topNModel)
	if m.canceled {
		return 0, ErrCancelled
	}
	return m.value, nil
}
