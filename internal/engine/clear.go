package engine

import (
	"context"
	"fmt"
)

// Clear drops every override so the whole tree resolves to included again.
func (e *Engine) Clear(ctx context.Context, req *ClearRequest) (*ClearResult, error) {
	e.commitMu.Lock()
	defer e.commitMu.Unlock()

	result := &ClearResult{
		Removed: e.store.Current().Len(),
		DryRun:  req.DryRun,
	}
	if req.DryRun {
		return result, nil
	}

	if err := e.store.Clear(); err != nil {
		return nil, fmt.Errorf("failed to clear overrides: %w", err)
	}
	e.log.WithField("removed", result.Removed).Info("cleared overrides")
	return result, nil
}
