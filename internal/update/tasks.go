package update

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sandeepkv93/tasklist/internal/model"
)

var errNoSuchRow = errors.New("no task at that row")

// reload replaces the mirror and every row with the store's contents. On
// failure the current mirror is kept as is.
func (m *Model) reload() error {
	tasks, err := m.store.FetchAll(m.ctx)
	if err != nil {
		m.fail("load tasks", err)
		return err
	}
	m.Tasks = tasks
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	_ = m.rows.SetItems(items)
	m.clampSelection()
	return nil
}

func (m *Model) addTask(title string) (model.Task, error) {
	task, err := m.store.Add(m.ctx, title)
	if err != nil {
		m.fail("add task", err)
		return model.Task{}, err
	}
	m.Tasks = append(m.Tasks, task)
	row := len(m.Tasks) - 1
	_ = m.rows.InsertItem(row, taskItem{task: task})
	m.rows.Select(row)
	m.setStatus(fmt.Sprintf("added %q", task.Title))
	return task, nil
}

func (m *Model) renameAt(row int, title string) (model.Task, error) {
	if row < 0 || row >= len(m.Tasks) {
		m.fail("rename task", errNoSuchRow)
		return model.Task{}, errNoSuchRow
	}
	updated, err := m.store.Rename(m.ctx, m.Tasks[row], title)
	if err != nil {
		m.fail("rename task", err)
		m.reconcile()
		return model.Task{}, err
	}
	m.Tasks = slices.Clone(m.Tasks)
	m.Tasks[row] = updated
	_ = m.rows.SetItem(row, taskItem{task: updated})
	m.setStatus(fmt.Sprintf("renamed to %q", updated.Title))
	return updated, nil
}

// deleteAt drops the row from the mirror and the display before asking the
// store to remove it. A failed remove reloads from the store.
func (m *Model) deleteAt(row int) error {
	if row < 0 || row >= len(m.Tasks) {
		m.fail("delete task", errNoSuchRow)
		return errNoSuchRow
	}
	task := m.Tasks[row]
	next := make([]model.Task, 0, len(m.Tasks)-1)
	next = append(next, m.Tasks[:row]...)
	m.Tasks = append(next, m.Tasks[row+1:]...)
	m.rows.RemoveItem(row)
	m.clampSelection()

	if err := m.store.Remove(m.ctx, task); err != nil {
		m.fail("delete task", err)
		m.reconcile()
		return err
	}
	m.setStatus(fmt.Sprintf("deleted %q", task.Title))
	return nil
}

// reconcile reloads after a failed write. The write error stays on the
// status bar unless the reload fails too.
func (m *Model) reconcile() {
	status, lastErr := m.Status, m.LastError
	if err := m.reload(); err != nil {
		return
	}
	m.Status, m.LastError = status, lastErr
}

func (m *Model) clampSelection() {
	n := len(m.rows.Items())
	if n == 0 {
		return
	}
	if idx := m.rows.Index(); idx >= n {
		m.rows.Select(n - 1)
	} else if idx < 0 {
		m.rows.Select(0)
	}
}

// SelectedRow returns the highlighted row index, or -1 with no tasks.
func (m Model) SelectedRow() int {
	if len(m.Tasks) == 0 {
		return -1
	}
	return m.rows.Index()
}

// RowTitles returns what each displayed row shows, in order.
func (m Model) RowTitles() []string {
	items := m.rows.Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if ti, ok := item.(taskItem); ok {
			out = append(out, ti.task.Title)
		}
	}
	return out
}

func (m *Model) copySelected() {
	row := m.SelectedRow()
	if row < 0 {
		return
	}
	if err := m.copyText(m.Tasks[row].Title); err != nil {
		m.fail("copy title", err)
		return
	}
	m.setStatus("title copied")
}

func (m *Model) setStatus(text string) {
	m.Status = StatusBar{Text: text, IsError: false}
}

func (m *Model) fail(op string, err error) {
	wrapped := fmt.Errorf("%s: %w", op, err)
	m.LastError = wrapped
	m.Status = StatusBar{Text: wrapped.Error(), IsError: true}
	m.logger.Error(op+" failed", "err", err)
}
