package engine

// ScanRequest represents a request to walk the tree.
type ScanRequest struct{}

// CommitRequest represents a request to commit a snapshot.
type CommitRequest struct {
	// Snapshot is the JSON-encoded ordered [path, state] records
	Snapshot []byte

	// DryRun computes the overrides without persisting them
	DryRun bool
}

// StateRequest represents a request to resolve path states.
type StateRequest struct {
	// CWD is the current working directory
	CWD string

	// Paths is the list of paths to resolve (relative to CWD, absolute, or containing "..")
	Paths []string
}

// StatusRequest represents a request for the committed overrides.
type StatusRequest struct{}

// ClearRequest represents a request to drop every override.
type ClearRequest struct {
	// DryRun reports what would be cleared without clearing it
	DryRun bool
}
