package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		width := typed.Width - 4
		if width > 56 {
			width = 56
		}
		height := typed.Height - 6
		if height < 3 {
			height = 3
		}
		m.rows.SetSize(width, height)
		return m, nil
	case tea.KeyMsg:
		if m.Prompt.IsOpen() {
			return m.handlePromptKey(typed)
		}
		if m.Confirm.Active {
			return m.handleConfirmKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		return m.handleListKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Add):
		cmd := m.openAddPrompt()
		return m, cmd
	case key.Matches(msg, m.Keys.Edit):
		cmd := m.openEditPrompt()
		return m, cmd
	case key.Matches(msg, m.Keys.Delete):
		m.requestDelete()
	case key.Matches(msg, m.Keys.Up):
		m.rows.CursorUp()
	case key.Matches(msg, m.Keys.Down):
		m.rows.CursorDown()
	case key.Matches(msg, m.Keys.Reload):
		if err := m.reload(); err == nil {
			m.setStatus(fmt.Sprintf("reloaded %d task(s)", len(m.Tasks)))
		}
	case key.Matches(msg, m.Keys.Copy):
		m.copySelected()
	case key.Matches(msg, m.Keys.Palette):
		cmd := m.openPalette()
		return m, cmd
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	side := ""
	switch {
	case m.Prompt.IsOpen():
		side = m.renderPrompt()
	case m.Confirm.Active:
		side = m.renderConfirm()
	case m.Palette.Active:
		side = m.renderCommandPalette()
	case m.HelpVisible:
		side = m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("Task List | %d task(s)", len(m.Tasks)),
		MainPane:   views.RenderTaskListPanel(views.TaskListPanelData{ListView: m.rows.View(), Count: len(m.Tasks)}),
		SidePane:   side,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.renderFooter(),
	})
}
