package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m *Model) openAddPrompt() tea.Cmd {
	m.Prompt = PromptState{Intent: AddIntent{}}
	m.promptInput.Reset()
	m.promptInput.Placeholder = "New Task"
	return m.promptInput.Focus()
}

func (m *Model) openEditPrompt() tea.Cmd {
	row := m.SelectedRow()
	if row < 0 {
		return nil
	}
	task := m.Tasks[row]
	m.Prompt = PromptState{Intent: EditIntent{TaskID: task.ID, Row: row}}
	m.promptInput.Placeholder = ""
	m.promptInput.SetValue(task.Title)
	m.promptInput.CursorEnd()
	return m.promptInput.Focus()
}

func (m *Model) closePrompt() {
	m.Prompt = PromptState{}
	m.promptInput.Reset()
	m.promptInput.Blur()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		m.submitPrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// submitPrompt closes the prompt and applies its intent. Empty text behaves
// like cancel.
func (m *Model) submitPrompt() {
	intent := m.Prompt.Intent
	text := m.promptInput.Value()
	m.closePrompt()
	if err := model.ValidateTitle(text); err != nil {
		return
	}
	switch in := intent.(type) {
	case AddIntent:
		_, _ = m.addTask(text)
	case EditIntent:
		row := model.IndexOf(m.Tasks, in.TaskID)
		if row < 0 {
			row = in.Row
		}
		_, _ = m.renameAt(row, text)
	}
}

func (m *Model) requestDelete() {
	row := m.SelectedRow()
	if row < 0 {
		return
	}
	m.Confirm = ConfirmState{Active: true, Row: row, TaskID: m.Tasks[row].ID}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y", "enter":
		row := model.IndexOf(m.Tasks, m.Confirm.TaskID)
		m.Confirm = ConfirmState{}
		if row >= 0 {
			_ = m.deleteAt(row)
		}
	case "n", "N", "esc":
		m.Confirm = ConfirmState{}
	}
	return m
}

func (m Model) renderPrompt() string {
	title := "New Task"
	if _, ok := m.Prompt.Intent.(EditIntent); ok {
		title = "Edit Task"
	}
	return views.RenderPromptPanel(views.PromptPanelData{
		Title:     title,
		Message:   "What do you want to do?",
		InputView: m.promptInput.View(),
	})
}

func (m Model) renderConfirm() string {
	row := model.IndexOf(m.Tasks, m.Confirm.TaskID)
	if row < 0 {
		return ""
	}
	return views.RenderConfirmPanel(views.ConfirmPanelData{
		TaskTitle: m.Tasks[row].Title,
		Row:       row + 1,
	})
}
