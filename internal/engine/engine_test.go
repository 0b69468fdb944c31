package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/backupscope/internal/clock"
	"github.com/danieljhkim/backupscope/internal/config"
	"github.com/danieljhkim/backupscope/internal/fsops"
	"github.com/danieljhkim/backupscope/internal/logging"
	"github.com/danieljhkim/backupscope/internal/scope"
	"github.com/danieljhkim/backupscope/internal/state"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	engine  *Engine
	store   *state.Store
	options *state.MemoryOptionStore
	root    string // OS path of the tree root
}

// tree returns the tree path for a root-relative OS path.
func (env *testEnv) tree(rel string, isDir bool) string {
	return scope.FromOS(filepath.Join(env.root, rel), isDir)
}

// newTestEnv builds an engine over a temporary tree:
//
//	a.txt
//	b.txt
//	d/x.txt
//	d/y/z.txt
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	for _, rel := range []string{"a.txt", "b.txt", "d/x.txt", "d/y/z.txt"} {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(p, []byte(rel), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	paths := config.PathsAt(filepath.Join(t.TempDir(), "home"))
	cfg := config.DefaultConfig(paths)
	cfg.TreeRoot = root

	options := state.NewMemoryOptionStore()
	store := state.NewStore(options)

	eng := New(fsops.NewRealFS(), store, clock.NewFixed(testNow), cfg, paths, logging.Discard())
	return &testEnv{engine: eng, store: store, options: options, root: root}
}

func encodeSnapshot(t *testing.T, entries []scope.Entry) []byte {
	t.Helper()
	data, err := scope.EncodeSnapshot(entries)
	if err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	return data
}
