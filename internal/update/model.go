package update

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklist/internal/config"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/model"
)

// TaskStore is the persistence the list controller drives. Calls are
// synchronous; the controller updates its mirror only after they return.
type TaskStore interface {
	FetchAll(ctx context.Context) ([]model.Task, error)
	Add(ctx context.Context, title string) (model.Task, error)
	Rename(ctx context.Context, task model.Task, newTitle string) (model.Task, error)
	Remove(ctx context.Context, task model.Task) error
}

// Intent is what a confirmed prompt will do: AddIntent or EditIntent.
type Intent interface {
	isIntent()
}

type AddIntent struct{}

type EditIntent struct {
	TaskID string
	Row    int
}

func (AddIntent) isIntent()  {}
func (EditIntent) isIntent() {}

// PromptState is idle when Intent is nil.
type PromptState struct {
	Intent Intent
}

func (p PromptState) IsOpen() bool { return p.Intent != nil }

type ConfirmState struct {
	Active bool
	Row    int
	TaskID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Up      key.Binding
	Down    key.Binding
	Reload  key.Binding
	Copy    key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:     key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new task")),
		Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit task")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete task")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete},
		{k.Up, k.Down, k.Reload, k.Copy},
		{k.Palette, k.Help, k.Quit},
	}
}

type Model struct {
	// Tasks mirrors the store in display order. rows holds one item per task.
	Tasks       []model.Task
	Prompt      PromptState
	Confirm     ConfirmState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error

	ctx          context.Context
	store        TaskStore
	logger       *slog.Logger
	copyText     func(string) error
	rows         list.Model
	promptInput  textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copyText = write
		}
	}
}

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return "" }

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel builds the controller and loads the mirror from the store. A load
// failure leaves the list empty and is reported on the status bar.
func NewModel(ctx context.Context, store TaskStore, cfg config.RuntimeConfig, opts ...Option) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Keys:     DefaultKeyMap(),
		ctx:      ctx,
		store:    store,
		logger:   logging.Discard(),
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents(cfg)
	if err := m.reload(); err == nil {
		m.logger.Info("task list loaded", "count", len(m.Tasks))
	}
	return m
}

func (m *Model) initBubbleComponents(cfg config.RuntimeConfig) {
	height := cfg.ListHeight
	if height <= 0 {
		height = config.DefaultListHeight
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	m.rows = list.New([]list.Item{}, delegate, 56, height)
	m.rows.Title = "Task List"
	m.rows.SetShowTitle(false)
	m.rows.SetShowHelp(false)
	m.rows.SetShowStatusBar(false)
	m.rows.SetFilteringEnabled(false)

	m.promptInput = textinput.New()
	m.promptInput.Prompt = "> "
	m.promptInput.CharLimit = 0
	m.promptInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 0
	m.commandInput.Width = 42

	m.helpModel = help.New()
}
