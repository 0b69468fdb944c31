package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danieljhkim/backupscope/internal/clock"
	"github.com/danieljhkim/backupscope/internal/config"
	"github.com/danieljhkim/backupscope/internal/engine"
	"github.com/danieljhkim/backupscope/internal/fsops"
	"github.com/danieljhkim/backupscope/internal/logging"
	"github.com/danieljhkim/backupscope/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	fs := fsops.NewRealFS()
	if err := paths.EnsureDirectories(fs); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(configFile, paths)
	if err != nil {
		return nil, err
	}
	if treeRoot != "" {
		abs, err := filepath.Abs(treeRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tree root: %w", err)
		}
		cfg.TreeRoot = abs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	store := state.NewStore(state.NewFileOptionStore(fs, cfg.OptionsFile))
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}

	return engine.New(fs, store, clock.System{}, cfg, paths, log), nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
