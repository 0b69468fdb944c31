// Package walk produces the ordered snapshot a commit consumes.
//
// The Walker lists every path beneath a tree root, directories marked with
// a trailing separator, skipping anything the Ignore predicate matches, and
// returns the paths in lexicographic order so every directory precedes its
// descendants.
package walk

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/danieljhkim/backupscope/internal/fsops"
	"github.com/danieljhkim/backupscope/internal/scope"
)

// Walker enumerates a tree through an fsops.FS.
type Walker struct {
	fs fsops.FS
}

// NewWalker creates a Walker.
func NewWalker(fs fsops.FS) *Walker {
	return &Walker{fs: fs}
}

// Walk returns the sorted tree paths beneath root, excluding root itself.
// Symlinks are listed as files and never followed.
func (w *Walker) Walk(ctx context.Context, root string, ign *Ignore) ([]string, error) {
	info, err := w.fs.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tree root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tree root %q is not a directory", root)
	}

	var paths []string
	if err := w.walkDir(ctx, filepath.Clean(root), ign, &paths); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (w *Walker) walkDir(ctx context.Context, dir string, ign *Ignore, out *[]string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		osPath := filepath.Join(dir, entry.Name())
		p := scope.FromOS(osPath, entry.IsDir())
		if ign.Match(p) {
			continue
		}
		*out = append(*out, p)

		if entry.IsDir() {
			if err := w.walkDir(ctx, osPath, ign, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Snapshot pairs each path with the state resolve assigns it.
func Snapshot(paths []string, resolve func(string) scope.State) []scope.Entry {
	entries := make([]scope.Entry, len(paths))
	for i, p := range paths {
		entries[i] = scope.Entry{Path: p, State: resolve(p)}
	}
	return entries
}
