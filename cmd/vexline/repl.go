package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsynacek/vex"
	"github.com/jsynacek/vex/buffer"
	"github.com/jsynacek/vex/mapping"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type replModel struct {
	input    textinput.Model
	hist     *history
	buf      *buffer.LineBuffer
	mappings *mapping.Store
	anchor   int
	lastMsg  string
	lastErr  bool
	quit     bool
}

func newReplModel(buf *buffer.LineBuffer, mappings *mapping.Store) replModel {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "ex command"
	ti.Focus()
	return replModel{
		input:    ti,
		hist:     newHistory(),
		buf:      buf,
		mappings: mappings,
		anchor:   1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.hist.push(line)
			m.evaluate(line)
			m.input.SetValue("")
			return m, nil
		case "up":
			if v, ok := m.hist.prev(); ok {
				m.input.SetValue(v)
			}
			return m, nil
		case "down":
			if v, ok := m.hist.next(); ok {
				m.input.SetValue(v)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) evaluate(line string) {
	pc, ok := vex.Parse(line)
	if !ok {
		m.lastErr = true
		m.lastMsg = fmt.Sprintf("not an editor command: %q", line)
		return
	}

	if pc.CommandID == "goto" && pc.Range != nil && pc.Range.Left != nil {
		if n, err := m.buf.Resolve(pc.Range.Left, m.anchor); err == nil {
			m.anchor = n
		}
	}

	if pc.CommandID == "map" || pc.CommandID == "abbreviate" {
		m.evaluateMapping(pc)
		return
	}

	data, _ := json.Marshal(pc)
	m.lastErr = len(pc.ParseErrors) > 0
	m.lastMsg = string(data)
}

// evaluateMapping dispatches a :map or :abbreviate command: it tokenizes
// the lhs/rhs definition and records it in the REPL's mapping.Store,
// persisting to disk so it survives the session.
func (m *replModel) evaluateMapping(pc *vex.ParsedCommand) {
	e, err := mapping.ParseDefinition(pc.Args["definition"], pc.CommandID == "abbreviate")
	if err != nil {
		m.lastErr = true
		m.lastMsg = err.Error()
		return
	}
	m.mappings.Put(e)
	if err := m.mappings.Save(m.mappings.Path()); err != nil {
		m.lastErr = true
		m.lastMsg = fmt.Sprintf("mapped %s -> %s but failed to save: %v", e.Lhs, e.Rhs, err)
		return
	}
	m.lastErr = false
	m.lastMsg = fmt.Sprintf("mapped %s -> %s", e.Lhs, e.Rhs)
}

func (m replModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.input.View()))
	b.WriteByte('\n')
	if m.lastMsg != "" {
		style := okStyle
		if m.lastErr {
			style = errStyle
		}
		b.WriteString(style.Render(m.lastMsg))
		b.WriteByte('\n')
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("line %d/%d  (ctrl+c to quit)", m.anchor, len(m.buf.Lines))))
	return b.String()
}

func runRepl(cfg config, seedFile string) error {
	var lines []string
	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("vexline: reading seed file: %w", err)
		}
		lines = strings.Split(string(data), "\n")
	} else {
		lines = []string{""}
	}

	store := mapping.NewStore()
	if err := store.Load(cfg.MappingPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("vexline: loading mappings: %w", err)
	}

	m := newReplModel(buffer.NewLineBuffer(lines), store)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
