package integration

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/backupscope/internal/clock"
	"github.com/danieljhkim/backupscope/internal/config"
	"github.com/danieljhkim/backupscope/internal/engine"
	"github.com/danieljhkim/backupscope/internal/logging"
	"github.com/danieljhkim/backupscope/internal/state"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

// addFile creates path and all of its parent directories.
func (fs *testFS) addFile(path string, content string) {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = []byte(content)
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) Lstat(path string) (os.FileInfo, error) {
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content))}, nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ReadDir(path string) ([]os.DirEntry, error) {
	if !fs.dirs[path] {
		return nil, os.ErrNotExist
	}

	prefix := strings.TrimSuffix(path, "/") + "/"
	var entries []os.DirEntry
	add := func(p string, isDir bool) {
		if !strings.HasPrefix(p, prefix) || strings.Contains(p[len(prefix):], "/") || len(p) <= len(prefix) {
			return
		}
		entries = append(entries, fs.dirEntry(p, isDir))
	}
	for p := range fs.dirs {
		add(p, true)
	}
	for p := range fs.files {
		add(p, false)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (fs *testFS) dirEntry(path string, isDir bool) os.DirEntry {
	return iofs.FileInfoToDirEntry(&mockFileInfo{name: filepath.Base(path), isDir: isDir})
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		fs.dirs[p] = true
		if p == filepath.Dir(p) {
			return nil
		}
	}
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if !fs.dirs[filepath.Dir(path)] {
		return os.ErrNotExist
	}
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string { return m.name }
func (m *mockFileInfo) Size() int64  { return m.size }
func (m *mockFileInfo) Mode() os.FileMode {
	if m.isDir {
		return os.ModeDir | 0755
	}
	return 0644
}
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// setupTestEngine builds an engine over an in-memory tree rooted at /home/user,
// persisting overrides to /data/state/options.json on the same filesystem.
func setupTestEngine(t *testing.T, mfs *testFS) *engine.Engine {
	t.Helper()

	paths := config.PathsAt("/data")
	if err := paths.EnsureDirectories(mfs); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	cfg := config.DefaultConfig(paths)
	cfg.TreeRoot = "/home/user"

	store := state.NewStore(state.NewFileOptionStore(mfs, cfg.OptionsFile))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	return engine.New(mfs, store, clock.NewFixed(testNow), cfg, paths, logging.Discard())
}
