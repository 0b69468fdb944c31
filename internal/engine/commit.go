package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// Commit reduces a snapshot to sparse overrides and installs them.
//
// The snapshot must be complete and ordered; any violation leaves the
// committed overrides untouched. Commits are serialized.
func (e *Engine) Commit(ctx context.Context, req *CommitRequest) (*CommitResult, error) {
	if len(req.Snapshot) == 0 {
		return nil, ErrEmptySnapshot
	}

	entries, err := scope.DecodeSnapshot(req.Snapshot)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.commitMu.Lock()
	defer e.commitMu.Unlock()

	overrides, err := scope.Commit(e.TreeRoot(), entries)
	if err != nil {
		return nil, err
	}

	result := &CommitResult{
		Entries:     len(entries),
		Excluded:    overrides.Excluded(),
		Partial:     overrides.Partial(),
		CommittedAt: e.clock.Now(),
		DryRun:      req.DryRun,
	}

	log := e.log.WithFields(logrus.Fields{
		"entries":  result.Entries,
		"excluded": len(result.Excluded),
		"partial":  len(result.Partial),
	})
	if req.DryRun {
		log.Info("commit dry run")
		return result, nil
	}

	if err := e.store.Replace(overrides); err != nil {
		return nil, fmt.Errorf("failed to persist overrides: %w", err)
	}
	log.Info("committed snapshot")

	return result, nil
}
