// Package tui implements the interactive roster-entry interface: player
// names are typed one at a time, then balanced on demand with the
// result rendered inline.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamsmith/teamsmith/internal/config"
	"github.com/teamsmith/teamsmith/internal/engine"
	"github.com/teamsmith/teamsmith/internal/ratings"
	"github.com/teamsmith/teamsmith/internal/tui/styles"
	"github.com/teamsmith/teamsmith/internal/tui/view"
)

// Model is the bubbletea model for interactive roster entry.
type Model struct {
	input  textinput.Model
	src    *ratings.Source
	cfg    *config.Config
	policy ratings.Policy

	names  []string
	result string
	status string
	quit   bool
}

// NewModel creates the interactive model. The ratings source and config
// are read-only collaborators; balancing runs locally on Enter.
func NewModel(src *ratings.Source, cfg *config.Config, policy ratings.Policy) Model {
	ti := textinput.New()
	ti.Placeholder = "player name (empty to balance)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		input:  ti,
		src:    src,
		cfg:    cfg,
		policy: policy,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles Enter: a non-empty line adds a roster name, an empty
// line runs the balance over everything entered so far.
func (m Model) submit() Model {
	name := strings.TrimSpace(m.input.Value())
	if name != "" {
		for _, existing := range m.names {
			if strings.EqualFold(existing, name) {
				m.status = fmt.Sprintf("%q is already on the roster", name)
				m.input.SetValue("")
				return m
			}
		}
		m.names = append(m.names, name)
		if rec, ok := m.src.Lookup(name); ok {
			m.status = fmt.Sprintf("added %s (skill %.2f)", rec.Name, rec.Skill)
		} else {
			m.status = fmt.Sprintf("added %s (unrated)", name)
		}
		m.input.SetValue("")
		return m
	}

	if len(m.names) == 0 {
		m.status = "enter at least one player first"
		return m
	}

	res := ratings.Resolve(m.names, m.src, m.policy, m.cfg.Ratings.DefaultSkill)
	if len(res.Players) == 0 {
		m.status = "no rated players to balance"
		return m
	}

	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	if m.cfg.Balance.Seed != 0 {
		src = rand.New(rand.NewSource(m.cfg.Balance.Seed))
	}

	p, cost, err := engine.Balance(res.Players, m.cfg.Balance.TeamCount,
		engine.WithMaxTrials(m.cfg.Balance.MaxTrials),
		engine.WithSource(src),
		engine.WithLabels(m.cfg.Balance.TeamNames),
	)
	if err != nil {
		m.status = err.Error()
		return m
	}

	m.result = view.Render(p, cost, res.Unrated)
	m.status = ""
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("teamsmith — interactive roster entry"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	if len(m.names) > 0 {
		sb.WriteString(styles.Muted.Render(fmt.Sprintf("roster: %s", strings.Join(m.names, ", "))))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(styles.Warning.Render(m.status))
		sb.WriteString("\n")
	}
	if m.result != "" {
		sb.WriteString("\n")
		sb.WriteString(m.result)
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("enter: add player · empty enter: balance · esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the interactive program and blocks until the user quits.
func Run(src *ratings.Source, cfg *config.Config, policy ratings.Policy) error {
	p := tea.NewProgram(NewModel(src, cfg, policy))
	_, err := p.Run()
	return err
}
