package scope

import (
	"path"
	"path/filepath"
	"strings"
)

// Separator terminates every directory path.
const Separator = "/"

// IsDir reports whether p names a directory.
func IsDir(p string) bool {
	return strings.HasSuffix(p, Separator)
}

// DirPath returns p with exactly one trailing separator.
func DirPath(p string) string {
	if IsDir(p) {
		return p
	}
	return p + Separator
}

// FromOS converts an OS path into a tree path, marking directories.
func FromOS(osPath string, isDir bool) string {
	p := filepath.ToSlash(filepath.Clean(osPath))
	if isDir {
		return DirPath(p)
	}
	return p
}

// IsAncestor reports whether a is a strict ancestor of b.
func IsAncestor(a, b string) bool {
	return IsDir(a) && len(b) > len(a) && strings.HasPrefix(b, a)
}

// Within reports whether p is root itself or lies beneath it.
func Within(root, p string) bool {
	root = DirPath(root)
	return p == root || IsAncestor(root, p)
}

// Parent returns the directory containing p, or "" for the filesystem root.
func Parent(p string) string {
	trimmed := strings.TrimSuffix(p, Separator)
	i := strings.LastIndex(trimmed, Separator)
	if i < 0 {
		return ""
	}
	return trimmed[:i+1]
}

// Ancestors returns the ancestors of p, nearest first.
func Ancestors(p string) []string {
	var out []string
	for a := Parent(p); a != ""; a = Parent(a) {
		out = append(out, a)
	}
	return out
}

// ValidatePath checks that p is a normalized absolute tree path.
func ValidatePath(p string) error {
	if p == "" {
		return pathErr("validate", p, ErrPathDomain, "empty path")
	}
	if !strings.HasPrefix(p, Separator) {
		return pathErr("validate", p, ErrPathDomain, "path must be absolute")
	}
	if p == Separator {
		return nil
	}
	trimmed := strings.TrimSuffix(p, Separator)
	if trimmed == "" || trimmed == Separator || path.Clean(trimmed) != trimmed {
		return pathErr("validate", p, ErrPathDomain, "path is not normalized")
	}
	return nil
}
