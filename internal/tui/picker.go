// Package tui holds the interactive backup picker the restore command
// falls back to when no backup name is given on the command line.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item string

func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return string(i) }

type model struct {
	list   list.Model
	choice string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = string(it)
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Pick shows options under the given title and blocks until the user
// selects one or aborts. ok is false on abort.
func Pick(title string, options []string) (choice string, ok bool, err error) {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = item(o)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	lst := list.New(items, delegate, 0, 0)
	lst.Title = title
	lst.SetFilteringEnabled(false)

	res, err := tea.NewProgram(model{list: lst}, tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}
	final := res.(model)
	return final.choice, final.choice != "", nil
}
