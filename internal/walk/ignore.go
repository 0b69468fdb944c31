package walk

import (
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// Ignore decides which paths never reach classification.
type Ignore struct {
	root     string
	prefixes []string
	matcher  *ignore.GitIgnore
}

// NewIgnore builds a predicate for the tree at root. Patterns use gitignore
// syntax relative to root. Each builtin is an absolute OS path, file or
// directory, that is skipped together with everything beneath it, typically
// the tool's own data directory and option file.
func NewIgnore(root string, patterns []string, builtin ...string) *Ignore {
	i := &Ignore{root: scope.FromOS(root, true)}
	for _, b := range builtin {
		if b != "" {
			i.prefixes = append(i.prefixes, scope.FromOS(b, false))
		}
	}
	if len(patterns) > 0 {
		i.matcher = ignore.CompileIgnoreLines(patterns...)
	}
	return i
}

// Match reports whether the tree path p is ignored.
func (i *Ignore) Match(p string) bool {
	if i == nil {
		return false
	}
	for _, prefix := range i.prefixes {
		dir := scope.DirPath(prefix)
		if p == prefix || p == dir || scope.IsAncestor(dir, p) {
			return true
		}
	}
	if i.matcher == nil || !scope.IsAncestor(i.root, p) {
		return false
	}
	return i.matcher.MatchesPath(strings.TrimPrefix(p, i.root))
}
