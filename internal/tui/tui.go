package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ferrolis/solresol/internal/dict"
	"github.com/ferrolis/solresol/internal/glyph"
	"github.com/ferrolis/solresol/internal/sol"
	"github.com/mattn/go-runewidth"
)

var syntaxes = []sol.Syntax{sol.SyntaxFull, sol.SyntaxSes, sol.SyntaxNumeric}

// Model is the transcoder TUI: type a phrase in any syntax, see every
// other representation live.
type Model struct {
	input  textinput.Model
	syntax int // index into syntaxes
	width  int

	// dictionary may be nil when none is configured.
	dictionary dict.Dictionary
}

// New creates the TUI model. The dictionary may be nil.
func New(d dict.Dictionary) Model {
	ti := textinput.New()
	ti.Placeholder = "dore milasi domi"
	ti.Focus()
	ti.CharLimit = 256
	return Model{input: ti, dictionary: d, width: 80}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.syntax = (m.syntax + 1) % len(syntaxes)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("solresol"))
	b.WriteString("  ")
	b.WriteString(m.syntaxTabs())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.resultPanel())
	b.WriteString(helpStyle.Render("tab: input syntax • esc: quit"))
	return b.String()
}

func (m Model) syntaxTabs() string {
	parts := make([]string, len(syntaxes))
	for i, sy := range syntaxes {
		if i == m.syntax {
			parts[i] = syntaxActiveStyle.Render("[" + sy.String() + "]")
		} else {
			parts[i] = syntaxStyle.Render(" " + sy.String() + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) resultPanel() string {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return panelStyle.Render(syntaxStyle.Render("type a phrase to transcode")) + "\n"
	}

	p, err := sol.ParsePhrase(text, syntaxes[m.syntax])
	if err != nil {
		return panelStyle.Render(errorStyle.Render(err.Error())) + "\n"
	}

	rows := []struct {
		label string
		value string
	}{
		{"full", p.String()},
		{"ses", p.Ses()},
		{"num", digitList(p)},
		{"packed", packedView(p)},
		{"gloss", m.gloss(p)},
		{"glyphs", ""},
	}

	var b strings.Builder
	for _, row := range rows {
		if row.label == "glyphs" {
			b.WriteString(labelStyle.Render(row.label))
			b.WriteString("\n")
			b.WriteString(valueStyle.Render(glyph.Blocks(p, min(m.width-8, 72))))
			continue
		}
		b.WriteString(labelStyle.Render(runewidth.FillRight(row.label, 8)))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String()) + "\n"
}

func digitList(p sol.Phrase) string {
	parts := make([]string, p.Len())
	for i, w := range p.Words() {
		parts[i] = w.Digits()
	}
	return strings.Join(parts, " ")
}

func packedView(p sol.Phrase) string {
	v, err := p.Packed()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("%s (0o%s)", v.String(), v.Text(8))
}

func (m Model) gloss(p sol.Phrase) string {
	if m.dictionary == nil {
		return syntaxStyle.Render("no dictionary configured")
	}
	out, err := dict.Translate(p, m.dictionary, dict.TranslateOptions{})
	if errors.Is(err, dict.ErrNotFound) {
		return syntaxStyle.Render(err.Error())
	}
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return out
}
