package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/danieljhkim/backupscope/internal/scope"
	"github.com/danieljhkim/backupscope/internal/state"
)

func TestCommit_PersistsOverrides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snapshot := encodeSnapshot(t, []scope.Entry{
		{Path: env.tree("a.txt", false), State: scope.Included},
		{Path: env.tree("b.txt", false), State: scope.Excluded},
		{Path: env.tree("d", true), State: scope.Partial},
		{Path: env.tree("d/x.txt", false), State: scope.Included},
		{Path: env.tree("d/y", true), State: scope.Excluded},
		{Path: env.tree("d/y/z.txt", false), State: scope.Included},
	})

	result, err := env.engine.Commit(ctx, &CommitRequest{Snapshot: snapshot})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	wantExcluded := []string{env.tree("b.txt", false), env.tree("d/y", true)}
	wantPartial := []string{env.tree("d", true)}
	if !reflect.DeepEqual(result.Excluded, wantExcluded) {
		t.Errorf("Excluded = %v, want %v", result.Excluded, wantExcluded)
	}
	if !reflect.DeepEqual(result.Partial, wantPartial) {
		t.Errorf("Partial = %v, want %v", result.Partial, wantPartial)
	}
	if result.Entries != 6 {
		t.Errorf("Entries = %d, want 6", result.Entries)
	}
	if !result.CommittedAt.Equal(testNow) {
		t.Errorf("CommittedAt = %v, want %v", result.CommittedAt, testNow)
	}

	// The record reaches the option store and survives a reload.
	reloaded := state.NewStore(env.options)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reloaded.Current().Equal(env.store.Current()) {
		t.Errorf("reloaded overrides differ: excluded=%v partial=%v",
			reloaded.Current().Excluded(), reloaded.Current().Partial())
	}
}

func TestCommit_DryRunDoesNotPersist(t *testing.T) {
	env := newTestEnv(t)

	snapshot := encodeSnapshot(t, []scope.Entry{
		{Path: env.tree("a.txt", false), State: scope.Excluded},
	})
	result, err := env.engine.Commit(context.Background(), &CommitRequest{Snapshot: snapshot, DryRun: true})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if !result.DryRun || len(result.Excluded) != 1 {
		t.Errorf("result = %+v, want dry run with one exclusion", result)
	}
	if env.store.Current().Len() != 0 {
		t.Errorf("store has %d overrides after dry run, want 0", env.store.Current().Len())
	}
	if _, ok, _ := env.options.Get(state.FileListKey); ok {
		t.Error("dry run wrote the file list")
	}
}

func TestCommit_FailureKeepsPreviousOverrides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := encodeSnapshot(t, []scope.Entry{
		{Path: env.tree("a.txt", false), State: scope.Excluded},
	})
	if _, err := env.engine.Commit(ctx, &CommitRequest{Snapshot: first}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	tests := []struct {
		name     string
		snapshot []byte
		wantErr  error
	}{
		{
			name:     "empty request",
			snapshot: nil,
			wantErr:  ErrEmptySnapshot,
		},
		{
			name:     "malformed json",
			snapshot: []byte(`[["/x", 0]`),
			wantErr:  scope.ErrDecode,
		},
		{
			name:     "unknown state",
			snapshot: []byte(`[["` + env.tree("a.txt", false) + `", 7]]`),
			wantErr:  scope.ErrDecode,
		},
		{
			name:     "outside tree root",
			snapshot: []byte(`[["/elsewhere/file", 0]]`),
			wantErr:  scope.ErrPathDomain,
		},
		{
			name: "descendant before ancestor",
			snapshot: encodeSnapshot(t, []scope.Entry{
				{Path: env.tree("d/x.txt", false), State: scope.Included},
				{Path: env.tree("d", true), State: scope.Excluded},
			}),
			wantErr: scope.ErrPrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.engine.Commit(ctx, &CommitRequest{Snapshot: tt.snapshot})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Commit() error = %v, want %v", err, tt.wantErr)
			}
			got := env.store.Current().Excluded()
			want := []string{env.tree("a.txt", false)}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Excluded after failed commit = %v, want %v", got, want)
			}
		})
	}
}

func TestCommit_ScanRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snapshot := encodeSnapshot(t, []scope.Entry{
		{Path: env.tree("a.txt", false), State: scope.Included},
		{Path: env.tree("b.txt", false), State: scope.Included},
		{Path: env.tree("d", true), State: scope.Excluded},
		{Path: env.tree("d/x.txt", false), State: scope.Included},
		{Path: env.tree("d/y", true), State: scope.Included},
		{Path: env.tree("d/y/z.txt", false), State: scope.Included},
	})
	if _, err := env.engine.Commit(ctx, &CommitRequest{Snapshot: snapshot}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	before := env.store.Current()

	scan, err := env.engine.Scan(ctx, &ScanRequest{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, err := env.engine.Commit(ctx, &CommitRequest{Snapshot: encodeSnapshot(t, scan.Entries)}); err != nil {
		t.Fatalf("re-Commit() error = %v", err)
	}
	if !env.store.Current().Equal(before) {
		t.Errorf("recommitting a scan changed overrides: excluded=%v partial=%v",
			env.store.Current().Excluded(), env.store.Current().Partial())
	}
}
