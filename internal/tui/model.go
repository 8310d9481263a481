// Package tui is the interactive dashboard: a tabbed view over the
// attention set, the punch list, and the project ledger. It is a
// read-mostly surface; the only mutation it performs is advancing a
// punch item one lifecycle step.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/punch"
	"github.com/rzacher/sitebook/internal/storage"
	"github.com/rzacher/sitebook/internal/tui/components/projectboard"
	"github.com/rzacher/sitebook/internal/tui/components/punchboard"
	"github.com/rzacher/sitebook/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StatePunch
	StateProjects
	StateConfirmAdvance
)

const tabCount = 3

type Model struct {
	store         storage.Provider
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	punchBoard   punchboard.Model
	projectBoard projectboard.Model

	projects  []models.Project
	items     []models.PunchItem
	subs      []models.SubContractor
	estimates []models.Estimate

	form           *huh.Form
	confirmAdvance *bool
	pendingAdvance models.PunchItem

	validationWarning string
	statusMsg         string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	m.reload()
	m.punchBoard = punchboard.New(m.items, m.projects, m.subs, 0, 0)
	m.projectBoard = projectboard.New(m.projects, m.items, 0, 0)

	return m
}

// reload pulls every collection the dashboard shows. Store errors
// degrade to empty views rather than aborting the TUI.
func (m *Model) reload() {
	m.projects, _ = m.store.GetProjects()
	m.items, _ = m.store.GetPunchItems()
	m.subs, _ = m.store.GetSubs()
	m.estimates, _ = m.store.GetEstimates()
	m.updateValidationStatus()
}

func (m *Model) updateValidationStatus() {
	signatures, _ := m.store.GetSignatures()
	result := validation.New().ValidateAll(validation.Data{
		Projects:   m.projects,
		PunchItems: m.items,
		Subs:       m.subs,
		Estimates:  m.estimates,
		Signatures: signatures,
	})
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

// advanceItem moves one punch item a single lifecycle step and saves
// the whole collection back.
func (m *Model) advanceItem(id string) {
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if _, ok := punch.NextStatus(m.items[i].Status); !ok {
			m.statusMsg = fmt.Sprintf("%q is already %s", m.items[i].Description, m.items[i].Status)
			return
		}
		m.items[i] = punch.Advance(m.items[i])
		if err := m.store.SavePunchItems(m.items); err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", err)
			return
		}
		m.statusMsg = fmt.Sprintf("%q is now %s", m.items[i].Description, m.items[i].Status)
		return
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StatePunch {
		keys = append(keys, m.keys.Advance)
	}
	keys = append(keys, m.keys.Refresh)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StatePunch {
		actions = []key.Binding{m.keys.Advance}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
