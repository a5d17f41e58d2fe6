// Package view renders balanced partitions for the terminal: one
// bordered block per team with member skills, totals and averages,
// followed by a cost summary and any unrated-player report.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teamsmith/teamsmith/internal/engine"
	"github.com/teamsmith/teamsmith/internal/tui/styles"
)

// Render formats a partition and its cost as styled terminal output.
// unrated lists roster names excluded under the report policy; pass nil
// when there are none.
func Render(p *engine.Partition, cost float64, unrated []string) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("Balanced %d players into %d teams", p.PlayerCount(), len(p.Teams))))
	sb.WriteString("\n\n")

	blocks := make([]string, 0, len(p.Teams))
	for _, t := range p.Teams {
		blocks = append(blocks, renderTeam(t))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	sb.WriteString("\n")

	sb.WriteString(styles.CostLine.Render(fmt.Sprintf("Cost (stddev of team averages): %.4f", cost)))
	sb.WriteString("\n")

	if len(unrated) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.UnratedHeader.Render(fmt.Sprintf("Unrated players (%d, excluded):", len(unrated))))
		sb.WriteString("\n")
		for _, name := range unrated {
			sb.WriteString(styles.Muted.Render("  - " + name))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func renderTeam(t *engine.Team) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s  (%d players, total %.2f, avg %.2f)",
		t.Label, t.Size(), t.TotalSkill, t.AverageSkill())
	sb.WriteString(styles.TeamHeader.Render(header))
	sb.WriteString("\n")

	if len(t.Members) == 0 {
		sb.WriteString(styles.Muted.Render("  (empty)"))
	}
	for i, m := range t.Members {
		sb.WriteString(fmt.Sprintf("  %-24s %8.2f", m.Name, m.Skill))
		if i < len(t.Members)-1 {
			sb.WriteString("\n")
		}
	}

	return styles.TeamBlock.Render(sb.String())
}
