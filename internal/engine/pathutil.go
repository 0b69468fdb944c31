package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/backupscope/internal/fsops"
	"github.com/danieljhkim/backupscope/internal/scope"
)

// resolveToTreePath resolves a user-provided path (absolute, relative, or containing "..")
// to a clean tree path. A path typed with a trailing separator, or naming an existing
// directory, gains the trailing separator; anything else is treated as a file.
func resolveToTreePath(fs fsops.FS, userPath, cwd string) (string, error) {
	if userPath == "" {
		return "", fmt.Errorf("%w: %w: empty path", ErrValidation, scope.ErrPathDomain)
	}

	var absPath string
	if filepath.IsAbs(userPath) {
		absPath = userPath
	} else {
		if !filepath.IsAbs(cwd) {
			return "", fmt.Errorf("%w: %w: cannot resolve %q against non-absolute directory %q", ErrValidation, scope.ErrPathDomain, userPath, cwd)
		}
		absPath = filepath.Join(cwd, userPath)
	}
	absPath = filepath.Clean(absPath)

	// Clean drops the separator, so a directory that no longer exists is
	// only recognizable by how it was typed.
	isDir := strings.HasSuffix(userPath, "/") || strings.HasSuffix(userPath, string(filepath.Separator))
	if info, err := fs.Lstat(absPath); err == nil {
		isDir = isDir || info.IsDir()
	}
	return scope.FromOS(absPath, isDir), nil
}
