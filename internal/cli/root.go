package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/config"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/update"
	"github.com/spf13/cobra"
)

// RootCommand wires configuration, the task store and the TUI together.
type RootCommand struct {
	cmd    *cobra.Command
	config config.RuntimeConfig
	runTUI func(ctx context.Context, m tea.Model) error
}

func NewRootCommand(cfg config.RuntimeConfig) *RootCommand {
	root := &RootCommand{
		config: cfg,
		runTUI: runProgram,
	}

	root.cmd = &cobra.Command{
		Use:   "tasklist",
		Short: "A single-screen terminal task list",
		Long: `tasklist keeps a list of text tasks in a local SQLite database.

Run without arguments for the interactive list, or use the subcommands to
script it.

CONFIGURATION:
  Flags override environment variables, which override defaults.
    TASKLIST_DB_PATH       database file (default: $XDG_DATA_HOME/tasklist/tasks.db)
    TASKLIST_DB_DRIVER     sqlite3 (cgo) or sqlite (pure Go)
    TASKLIST_LOG_FILE      log file; logging is off when unset
    TASKLIST_DEBUG         log at debug level
    TASKLIST_LIST_HEIGHT   visible rows in the list`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withStore(cmd.Context(), func(store *storage.TaskStore, logger *slog.Logger) error {
				m := update.NewModel(cmd.Context(), store, root.config, update.WithLogger(logger))
				return root.runTUI(cmd.Context(), m)
			})
		},
	}

	flags := root.cmd.PersistentFlags()
	flags.String("db", "", "database file (overrides TASKLIST_DB_PATH)")
	flags.String("driver", "", "sqlite driver: sqlite3 or sqlite (overrides TASKLIST_DB_DRIVER)")
	flags.String("log", "", "log file (overrides TASKLIST_LOG_FILE)")
	flags.Bool("debug", false, "log at debug level (overrides TASKLIST_DEBUG)")

	root.cmd.AddCommand(root.listCommand(), root.addCommand(), root.renameCommand(), root.removeCommand())
	return root
}

func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("db") {
		v, _ := flags.GetString("db")
		r.config.DBPath = v
	}
	if flags.Changed("driver") {
		v, _ := flags.GetString("driver")
		r.config.DBDriver = v
	}
	if flags.Changed("log") {
		v, _ := flags.GetString("log")
		r.config.LogFile = v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		r.config.Debug = v
	}
	if r.config.DBDriver != "" && !storage.IsSupportedDriver(r.config.DBDriver) {
		return fmt.Errorf("%w: %q", storage.ErrUnsupportedDriver, r.config.DBDriver)
	}
	return nil
}

func (r *RootCommand) withStore(ctx context.Context, fn func(*storage.TaskStore, *slog.Logger) error) error {
	logger, closeLog, err := logging.New(r.config.LogFile, r.config.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	store, err := storage.Open(ctx, storage.Options{
		Driver: r.config.DBDriver,
		Path:   r.config.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer store.Close()

	return fn(store, logger)
}

func (r *RootCommand) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every task as id<TAB>title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withStore(cmd.Context(), func(store *storage.TaskStore, _ *slog.Logger) error {
				tasks, err := store.FetchAll(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, task := range tasks {
					fmt.Fprintf(out, "%s\t%s\n", task.ID, task.Title)
				}
				return nil
			})
		},
	}
}

func (r *RootCommand) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add a task and print its id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if err := model.ValidateTitle(title); err != nil {
				return err
			}
			return r.withStore(cmd.Context(), func(store *storage.TaskStore, _ *slog.Logger) error {
				task, err := store.Add(cmd.Context(), title)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), task.ID)
				return nil
			})
		},
	}
}

func (r *RootCommand) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID TITLE...",
		Short: "Change a task's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args[1:], " ")
			if err := model.ValidateTitle(title); err != nil {
				return err
			}
			return r.withStore(cmd.Context(), func(store *storage.TaskStore, _ *slog.Logger) error {
				task, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = store.Rename(cmd.Context(), task, title)
				return err
			})
		},
	}
}

func (r *RootCommand) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withStore(cmd.Context(), func(store *storage.TaskStore, _ *slog.Logger) error {
				task, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return store.Remove(cmd.Context(), task)
			})
		},
	}
}

func runProgram(ctx context.Context, m tea.Model) error {
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
