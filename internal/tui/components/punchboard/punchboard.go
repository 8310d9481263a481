// Package punchboard is the interactive punch list: items in canonical
// order with overdue markers, advanced one status step with a key.
package punchboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/punch"
)

// AdvanceMsg asks the parent model to advance one punch item.
type AdvanceMsg struct {
	ID string
}

type Item struct {
	PunchItem   models.PunchItem
	ProjectName string
	SubName     string
}

func (i Item) Title() string {
	title := fmt.Sprintf("[%s] %s", i.PunchItem.Priority, i.PunchItem.Description)
	if punch.IsOverdue(i.PunchItem.DueDate, i.PunchItem.Status) {
		title = "⚠ " + title
	}
	return title
}

func (i Item) Description() string {
	parts := []string{string(i.PunchItem.Status), i.PunchItem.Trade.Label(), i.ProjectName}
	if i.PunchItem.DueDate != "" {
		parts = append(parts, "due "+i.PunchItem.DueDate)
	}
	parts = append(parts, i.SubName)
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string {
	return i.PunchItem.Description + " " + i.ProjectName
}

type KeyMap struct {
	Advance key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "advance status"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.PunchItem, projects []models.Project, subs []models.SubContractor, width, height int) Model {
	l := list.New(toItems(items, projects, subs), list.NewDefaultDelegate(), width, height)
	l.Title = "Punch List"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally by the parent model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Advance}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Advance}
	}

	return Model{list: l, keys: keys}
}

func toItems(items []models.PunchItem, projects []models.Project, subs []models.SubContractor) []list.Item {
	sorted := punch.Sort(items)
	out := make([]list.Item, len(sorted))
	for i, item := range sorted {
		out[i] = Item{
			PunchItem:   item,
			ProjectName: models.ProjectName(item.ProjectID, projects),
			SubName:     models.SubName(item.AssignedTo, subs),
		}
	}
	return out
}

func (m *Model) SetItems(items []models.PunchItem, projects []models.Project, subs []models.SubContractor) {
	m.list.SetItems(toItems(items, projects, subs))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the punch item under the cursor, if any.
func (m Model) Selected() (models.PunchItem, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.PunchItem{}, false
	}
	return item.PunchItem, true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Advance) {
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg { return AdvanceMsg{ID: item.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
