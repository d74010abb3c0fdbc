package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultDriver     = "sqlite3"
	DefaultListHeight = 14
)

type RuntimeConfig struct {
	DBPath     string
	DBDriver   string
	LogFile    string
	Debug      bool
	ListHeight int
}

func Default() RuntimeConfig {
	return RuntimeConfig{
		DBPath:     DefaultDBPath(),
		DBDriver:   DefaultDriver,
		ListHeight: DefaultListHeight,
	}
}

// DefaultDBPath follows the XDG base directory layout, falling back to the
// working directory when no home can be resolved.
func DefaultDBPath() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dir != "" {
		return filepath.Join(dir, "tasklist", "tasks.db")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "tasks.db"
	}
	return filepath.Join(home, ".local", "share", "tasklist", "tasks.db")
}

func FromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DB_DRIVER")); v != "" {
		cfg.DBDriver = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TASKLIST_DEBUG"); ok {
		cfg.Debug = v
	}
	if v, ok := getEnvInt("TASKLIST_LIST_HEIGHT"); ok && v > 0 {
		cfg.ListHeight = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
