package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/config"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, cfg config.RuntimeConfig, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(cfg)
	var out bytes.Buffer
	root.cmd.SetOut(&out)
	root.cmd.SetErr(&out)
	root.cmd.SetArgs(args)
	err := root.Execute(t.Context())
	return out.String(), err
}

func testConfig(t *testing.T) config.RuntimeConfig {
	t.Helper()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "tasks.db")
	return cfg
}

func TestHeadlessCommandsRoundTrip(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "add", "Walk", "dog")
	require.NoError(t, err)
	walkID := strings.TrimSpace(out)
	require.NotEmpty(t, walkID)

	_, err = runCLI(t, cfg, "add", "Buy milk")
	require.NoError(t, err)

	out, err = runCLI(t, cfg, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, walkID+"\tWalk dog", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "\tBuy milk"))

	_, err = runCLI(t, cfg, "rename", walkID, "Walk", "the", "dog")
	require.NoError(t, err)
	_, err = runCLI(t, cfg, "rm", strings.SplitN(lines[1], "\t", 2)[0])
	require.NoError(t, err)

	out, err = runCLI(t, cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, walkID+"\tWalk the dog\n", out)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	cfg := testConfig(t)
	_, err := runCLI(t, cfg, "add", "")
	require.ErrorIs(t, err, model.ErrEmptyTitle)

	out, err := runCLI(t, cfg, "list")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCLI(t, cfg, "add", "  ")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	out, err = runCLI(t, cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, id+"\t  \n", out)
}

func TestRenameAndRemoveUnknownID(t *testing.T) {
	cfg := testConfig(t)
	_, err := runCLI(t, cfg, "rename", "missing", "title")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = runCLI(t, cfg, "rm", "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "bogus"
	override := filepath.Join(t.TempDir(), "nested", "other.db")

	_, err := runCLI(t, cfg, "--db", override, "--driver", storage.DriverPure, "add", "pure go")
	require.NoError(t, err)

	store, err := storage.Open(t.Context(), storage.Options{Driver: storage.DriverPure, Path: override})
	require.NoError(t, err)
	defer store.Close()
	tasks, err := store.FetchAll(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "pure go", tasks[0].Title)
}

func TestUnsupportedDriverFails(t *testing.T) {
	cfg := testConfig(t)
	_, err := runCLI(t, cfg, "--driver", "postgres", "list")
	require.ErrorIs(t, err, storage.ErrUnsupportedDriver)
}

func TestRootRunsTUIWithLoadedModel(t *testing.T) {
	cfg := testConfig(t)
	_, err := runCLI(t, cfg, "add", "Walk dog")
	require.NoError(t, err)

	root := NewRootCommand(cfg)
	var got update.Model
	root.runTUI = func(_ context.Context, m tea.Model) error {
		got = m.(update.Model)
		return nil
	}
	root.cmd.SetArgs([]string{"--log", filepath.Join(t.TempDir(), "tasklist.log"), "--debug"})
	require.NoError(t, root.Execute(t.Context()))

	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Walk dog", got.Tasks[0].Title)
}

func TestOpenFailureIsReported(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg := config.Default()
	cfg.DBPath = filepath.Join(blocker, "tasks.db")
	_, err := runCLI(t, cfg, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open task store")
}
