// Package config manages backupscope configuration and filesystem paths.
//
// The data directory defaults to ~/.backupscope and can be moved with the
// BACKUPSCOPE_HOME environment variable. It holds config.yaml and the
// persisted option store.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/backupscope/internal/fsops"
)

// Paths contains all the filesystem paths used by backupscope.
type Paths struct {
	// Root is the base directory for all backupscope data (default: ~/.backupscope)
	Root string

	// State is the directory holding persisted options
	State string

	// Options is the JSON option store file
	Options string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for backupscope.
// Paths can be overridden with environment variables:
// - BACKUPSCOPE_HOME: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("BACKUPSCOPE_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".backupscope")
	}

	return PathsAt(root), nil
}

// PathsAt lays out the data directory under root.
func PathsAt(root string) *Paths {
	state := filepath.Join(root, "state")
	return &Paths{
		Root:    root,
		State:   state,
		Options: filepath.Join(state, "options.json"),
		Config:  filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories(fs fsops.FS) error {
	for _, dir := range []string{p.Root, p.State} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
