// Package engine provides the core business logic for backupscope operations.
//
// The engine package is the orchestration layer between CLI commands and the
// lower-level packages. It walks the configured tree, commits snapshots into
// the state store and answers state queries.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Scan: Produces the ordered snapshot with current effective states
//   - Commit: Reduces a snapshot to sparse overrides and persists them
//   - State/Status/Clear: Queries and maintenance of the committed overrides
package engine

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/backupscope/internal/clock"
	"github.com/danieljhkim/backupscope/internal/config"
	"github.com/danieljhkim/backupscope/internal/fsops"
	"github.com/danieljhkim/backupscope/internal/scope"
	"github.com/danieljhkim/backupscope/internal/state"
	"github.com/danieljhkim/backupscope/internal/walk"
)

// Engine orchestrates all backupscope operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	walker *walk.Walker
	store  *state.Store
	clock  clock.Clock
	cfg    *config.Config
	paths  *config.Paths
	log    logrus.FieldLogger

	// commitMu serializes commits; resolution never takes it
	commitMu sync.Mutex
}

// New creates a new Engine with the given dependencies.
// The store is expected to be loaded already.
func New(
	fs fsops.FS,
	store *state.Store,
	clk clock.Clock,
	cfg *config.Config,
	paths *config.Paths,
	log logrus.FieldLogger,
) *Engine {
	return &Engine{
		fs:     fs,
		walker: walk.NewWalker(fs),
		store:  store,
		clock:  clk,
		cfg:    cfg,
		paths:  paths,
		log:    log,
	}
}

// TreeRoot returns the classified tree root as a tree path.
func (e *Engine) TreeRoot() string {
	return scope.FromOS(e.cfg.TreeRoot, true)
}

// ignore builds the scan predicate: configured patterns plus the data
// directory and the option file, wherever it lives.
func (e *Engine) ignore() *walk.Ignore {
	return walk.NewIgnore(e.cfg.TreeRoot, e.cfg.Ignore, e.paths.Root, e.cfg.OptionsFile)
}
