// Package projectboard lists projects with budget utilization.
package projectboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/rzacher/sitebook/internal/models"
)

type Item struct {
	Project   models.Project
	OpenItems int
}

func (i Item) Title() string {
	title := fmt.Sprintf("[%s] %s", i.Project.Status, i.Project.Name)
	if i.Project.Spent > i.Project.Budget {
		title = "⚠ " + title
	}
	return title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("$%s of $%s spent",
		humanize.CommafWithDigits(i.Project.Spent, 0),
		humanize.CommafWithDigits(i.Project.Budget, 0))
	if i.OpenItems > 0 {
		desc += fmt.Sprintf(" | %d open punch items", i.OpenItems)
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.Project.Name + " " + i.Project.Client
}

type Model struct {
	list list.Model
}

func New(projects []models.Project, items []models.PunchItem, width, height int) Model {
	l := list.New(toItems(projects, items), list.NewDefaultDelegate(), width, height)
	l.Title = "Projects"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

func toItems(projects []models.Project, items []models.PunchItem) []list.Item {
	open := make(map[string]int)
	for _, item := range items {
		if item.Status == models.PunchOpen || item.Status == models.PunchInProgress {
			open[item.ProjectID]++
		}
	}

	out := make([]list.Item, len(projects))
	for i, p := range projects {
		out[i] = Item{Project: p, OpenItems: open[p.ID]}
	}
	return out
}

func (m *Model) SetProjects(projects []models.Project, items []models.PunchItem) {
	m.list.SetItems(toItems(projects, items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
