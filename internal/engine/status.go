package engine

import "context"

// Status returns the committed overrides.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	current := e.store.Current()
	return &StatusResult{
		TreeRoot:    e.TreeRoot(),
		OptionsFile: e.cfg.OptionsFile,
		Excluded:    current.Excluded(),
		Partial:     current.Partial(),
	}, nil
}
