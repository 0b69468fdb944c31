package scope

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode indicates malformed snapshot or override input.
	ErrDecode = errors.New("decode failed")

	// ErrPathDomain indicates a path that is syntactically invalid or lies
	// outside the tree root.
	ErrPathDomain = errors.New("path outside domain")

	// ErrPrecondition indicates a snapshot that is not ordered with every
	// directory ahead of its descendants.
	ErrPrecondition = errors.New("snapshot precondition violated")
)

// PathError records a failure tied to a single path.
type PathError struct {
	// Op is the operation that failed (e.g. "commit", "resolve")
	Op string

	// Path is the offending path
	Path string

	// Reason describes the failure
	Reason string

	// Err is one of the package sentinels
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %v: %s", e.Op, e.Path, e.Err, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func pathErr(op, path string, sentinel error, format string, args ...any) error {
	return &PathError{Op: op, Path: path, Reason: fmt.Sprintf(format, args...), Err: sentinel}
}
