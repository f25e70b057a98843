package tui

import (
	"fmt"
	"strings"

	"odgen/pkg/roster"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// RenderSummary formats roster statistics for the terminal.
func RenderSummary(s roster.Summary) string {
	var b strings.Builder

	b.WriteString(accentStyle.Render("\n--- 📊 Roster Statistics ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total participants: %s\n", countStyle.Render(fmt.Sprint(s.Total)))

	writeCounts(&b, "By branch", s.Branches)
	writeCounts(&b, "By semester", s.Semesters)

	b.WriteString("\n")
	return b.String()
}

func writeCounts(b *strings.Builder, title string, counts []roster.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", labelStyle.Render(title))
	for _, c := range counts {
		fmt.Fprintf(b, "  • %s: %s\n", c.Label, countStyle.Render(fmt.Sprint(c.Count)))
	}
}
