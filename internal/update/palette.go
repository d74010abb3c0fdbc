package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m *Model) openPalette() tea.Cmd {
	m.Palette = CommandPaletteState{Active: true}
	m.commandInput.SetValue("")
	return m.commandInput.Focus()
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.setStatus("command palette closed")
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// executePaletteCommand routes typed commands through the same add, rename
// and delete paths as the prompt and the delete confirmation.
func (m Model) executePaletteCommand() Model {
	raw := m.Palette.Input
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := m.addTask(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added %q", task.Title)}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			if err := m.checkRow(r.Row); err != nil {
				return commands.Result{}, err
			}
			task, err := m.renameAt(r.Row-1, r.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("renamed #%d to %q", r.Row, task.Title)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			if err := m.checkRow(d.Row); err != nil {
				return commands.Result{}, err
			}
			title := m.Tasks[d.Row-1].Title
			if err := m.deleteAt(d.Row - 1); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted %q", title)}, nil
		},
		Reload: func() (commands.Result, error) {
			if err := m.reload(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("reloaded %d task(s)", len(m.Tasks))}, nil
		},
	})
	if err != nil {
		// store failures already set the status and LastError
		if !m.Status.IsError {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m
	}
	m.setStatus(res.Message)
	return m
}

func (m Model) checkRow(row int) error {
	if row < 1 || row > len(m.Tasks) {
		return &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("row %d out of range (1-%d)", row, len(m.Tasks)),
		}
	}
	return nil
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
