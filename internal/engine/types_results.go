package engine

import (
	"time"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// ScanResult represents the walked tree with current effective states.
type ScanResult struct {
	// TreeRoot is the scanned root, with trailing separator
	TreeRoot string `json:"treeRoot"`

	// Entries is the ordered snapshot
	Entries []scope.Entry `json:"entries"`
}

// CommitResult represents the outcome of a commit.
type CommitResult struct {
	// Entries is the number of snapshot records processed
	Entries int `json:"entries"`

	// Excluded lists the stored exclusion roots
	Excluded []string `json:"excluded"`

	// Partial lists the stored partial paths
	Partial []string `json:"partial"`

	// CommittedAt is when the overrides were computed
	CommittedAt time.Time `json:"committedAt"`

	// DryRun is set when nothing was persisted
	DryRun bool `json:"dryRun"`
}

// PathState is the resolved state of one queried path.
type PathState struct {
	// Input is the path as given by the caller
	Input string `json:"input"`

	// Path is the normalized tree path that was resolved
	Path string `json:"path"`

	// State is the effective state
	State scope.State `json:"state"`
}

// StateResult represents resolved states in request order.
type StateResult struct {
	States []PathState `json:"states"`
}

// StatusResult represents the committed overrides.
type StatusResult struct {
	// TreeRoot is the configured tree root
	TreeRoot string `json:"treeRoot"`

	// OptionsFile is where overrides are persisted
	OptionsFile string `json:"optionsFile"`

	// Excluded lists the stored exclusion roots
	Excluded []string `json:"excluded"`

	// Partial lists the stored partial paths
	Partial []string `json:"partial"`
}

// ClearResult represents the outcome of a clear.
type ClearResult struct {
	// Removed is the number of overrides dropped (or that would be)
	Removed int `json:"removed"`

	// DryRun is set when nothing was changed
	DryRun bool `json:"dryRun"`
}
