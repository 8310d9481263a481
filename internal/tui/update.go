package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rzacher/sitebook/internal/tui/components/punchboard"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.punchBoard.SetSize(msg.Width, msg.Height-4)
		m.projectBoard.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case punchboard.AdvanceMsg:
		item, ok := m.punchBoard.Selected()
		if !ok {
			return m, nil
		}
		m.pendingAdvance = item
		m.confirmAdvance = new(bool)
		m.form = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Advance \"" + item.Description + "\"?").
				Description("Status moves one step forward and cannot be advanced back.").
				Value(m.confirmAdvance),
		))
		m.previousState = m.state
		m.state = StateConfirmAdvance
		return m, m.form.Init()

	case tea.KeyMsg:
		if m.state == StateConfirmAdvance {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			m.punchBoard.SetItems(m.items, m.projects, m.subs)
			m.projectBoard.SetProjects(m.projects, m.items)
			m.statusMsg = "reloaded"
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePunch:
		m.punchBoard, cmd = m.punchBoard.Update(msg)
	case StateProjects:
		m.projectBoard, cmd = m.projectBoard.Update(msg)
	case StateConfirmAdvance:
		form, formCmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmd = formCmd
		if m.form.State == huh.StateCompleted {
			if m.confirmAdvance != nil && *m.confirmAdvance {
				m.advanceItem(m.pendingAdvance.ID)
				m.punchBoard.SetItems(m.items, m.projects, m.subs)
			}
			m.form = nil
			m.state = m.previousState
		}
	}

	return m, cmd
}
