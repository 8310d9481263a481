package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/pricing"
	"github.com/rzacher/sitebook/internal/punch"
	"github.com/rzacher/sitebook/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StatePunch:
		content = m.punchBoard.View()
	case StateProjects:
		content = m.projectBoard.View()
	case StateConfirmAdvance:
		content = m.form.View()
	}

	footer := m.help.View(m)
	if m.statusMsg != "" {
		footer = faintStyle.Render(m.statusMsg) + "\n" + footer
	}
	if m.validationWarning != "" {
		footer = warnStyle.Render(m.validationWarning) + "\n" + footer
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		footer,
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Punch List", "Projects"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	open, overdue := 0, 0
	for _, item := range m.items {
		if item.Status == models.PunchOpen || item.Status == models.PunchInProgress {
			open++
		}
		if punch.IsOverdue(item.DueDate, item.Status) {
			overdue++
		}
	}

	active := 0
	var budget, spent float64
	for _, p := range m.projects {
		if p.Status == models.ProjectActive {
			active++
		}
		budget += p.Budget
		spent += p.Spent
	}

	var pipeline float64
	pending := 0
	for _, e := range m.estimates {
		if e.Status == models.EstimateSent {
			pending++
			pipeline += pricing.GrandTotal(e.LineItems)
		}
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("Active projects: %d", active)),
		statStyle.Render(fmt.Sprintf("Open items: %d", open)),
		statStyle.Render(fmt.Sprintf("Overdue: %d", overdue)),
		statStyle.Render(fmt.Sprintf("Pending estimates: %d (%s)", pending, report.Currency(pipeline))),
	)
	b.WriteString(stats + "\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("Budget %s  Spent %s  Remaining %s",
		report.Currency(budget), report.Currency(spent), report.Currency(budget-spent))) + "\n\n")

	b.WriteString("Needs attention\n")
	attention := punch.AttentionSet(m.items, 5)
	if len(attention) == 0 {
		b.WriteString(faintStyle.Render("  Nothing urgent.") + "\n")
	}
	for _, item := range attention {
		marker := "  "
		if punch.IsOverdue(item.DueDate, item.Status) {
			marker = warnStyle.Render("! ")
		}
		fmt.Fprintf(&b, "%s[%-6s] %-14s %s\n", marker, item.Priority,
			models.ProjectName(item.ProjectID, m.projects), item.Description)
	}

	return docStyle.Render(b.String())
}
