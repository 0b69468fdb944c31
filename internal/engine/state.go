package engine

import (
	"context"
	"fmt"
)

// State resolves the effective state of each requested path, in request order.
// Paths outside the tree root carry no override and resolve to included.
func (e *Engine) State(ctx context.Context, req *StateRequest) (*StateResult, error) {
	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("%w: no paths given", ErrValidation)
	}

	result := &StateResult{States: make([]PathState, 0, len(req.Paths))}
	for _, userPath := range req.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := resolveToTreePath(e.fs, userPath, req.CWD)
		if err != nil {
			return nil, err
		}
		s, err := e.store.Resolve(p)
		if err != nil {
			return nil, err
		}
		result.States = append(result.States, PathState{
			Input: userPath,
			Path:  p,
			State: s,
		})
	}
	return result, nil
}
