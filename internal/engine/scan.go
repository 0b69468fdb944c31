package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/backupscope/internal/walk"
)

// Scan walks the tree root and pairs every path with its current effective state.
// The result is a valid commit snapshot.
func (e *Engine) Scan(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	paths, err := e.walker.Walk(ctx, e.cfg.TreeRoot, e.ignore())
	if err != nil {
		return nil, fmt.Errorf("failed to scan tree: %w", err)
	}

	current := e.store.Current()
	entries := walk.Snapshot(paths, current.Resolve)

	e.log.WithFields(logrus.Fields{
		"root":    e.TreeRoot(),
		"entries": len(entries),
	}).Debug("scanned tree")

	return &ScanResult{
		TreeRoot: e.TreeRoot(),
		Entries:  entries,
	}, nil
}
