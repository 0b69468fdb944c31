package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// failingOptionStore rejects every write.
type failingOptionStore struct {
	*MemoryOptionStore
}

func (s failingOptionStore) Set(key string, value []byte) error {
	return errors.New("disk full")
}

func mustCommit(t *testing.T, entries []scope.Entry) *scope.Overrides {
	t.Helper()
	o, err := scope.Commit("/r/", entries)
	require.NoError(t, err)
	return o
}

func TestStore_ReplaceAndLoad(t *testing.T) {
	options := NewMemoryOptionStore()
	store := NewStore(options)

	o := mustCommit(t, []scope.Entry{
		{Path: "/r/d/", State: scope.Partial},
		{Path: "/r/d/x.txt", State: scope.Included},
		{Path: "/r/d/y/", State: scope.Excluded},
		{Path: "/r/d/y/z.txt", State: scope.Included},
	})
	require.NoError(t, store.Replace(o))

	raw, ok, err := options.Get(FileListKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[["/r/d/"],["/r/d/y/"]]`, string(raw))

	// a fresh store over the same options sees the same overrides
	reloaded := NewStore(options)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Current().Equal(o))

	state, err := reloaded.Resolve("/r/d/y/added-later.txt")
	require.NoError(t, err)
	assert.Equal(t, scope.Excluded, state)

	state, err = reloaded.Resolve("/r/d/x.txt")
	require.NoError(t, err)
	assert.Equal(t, scope.Included, state)
}

func TestStore_LoadWithoutRecord(t *testing.T) {
	store := NewStore(NewMemoryOptionStore())
	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Current().Len())

	state, err := store.Resolve("/anything")
	require.NoError(t, err)
	assert.Equal(t, scope.Included, state)
}

func TestStore_LoadCorruptRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `nope`},
		{name: "single list", raw: `[["/r/a"]]`},
		{name: "overlapping sets", raw: `[["/r/a/"],["/r/a/"]]`},
		{name: "nested exclusions", raw: `[[],["/r/a/","/r/a/b"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := NewMemoryOptionStore()
			require.NoError(t, options.Set(FileListKey, []byte(tt.raw)))

			err := NewStore(options).Load()
			assert.ErrorIs(t, err, scope.ErrDecode)
		})
	}
}

func TestStore_ReplaceIsAllOrNothing(t *testing.T) {
	options := failingOptionStore{NewMemoryOptionStore()}
	store := NewStore(options)
	before := store.Current()

	o := mustCommit(t, []scope.Entry{{Path: "/r/b.txt", State: scope.Excluded}})
	err := store.Replace(o)
	require.Error(t, err)

	assert.Same(t, before, store.Current())
	state, err := store.Resolve("/r/b.txt")
	require.NoError(t, err)
	assert.Equal(t, scope.Included, state)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(NewMemoryOptionStore())
	require.NoError(t, store.Replace(mustCommit(t, []scope.Entry{{Path: "/r/b.txt", State: scope.Excluded}})))
	require.NoError(t, store.Clear())

	state, err := store.Resolve("/r/b.txt")
	require.NoError(t, err)
	assert.Equal(t, scope.Included, state)
}

func TestStore_ResolveRejectsInvalidPaths(t *testing.T) {
	store := NewStore(NewMemoryOptionStore())
	for _, p := range []string{"", "relative/path", "/r//x"} {
		_, err := store.Resolve(p)
		assert.ErrorIs(t, err, scope.ErrPathDomain, "path %q", p)
	}
	assert.Error(t, store.Replace(nil))
}

func TestStore_ConcurrentResolveDuringReplace(t *testing.T) {
	store := NewStore(NewMemoryOptionStore())
	excludeAll := mustCommit(t, []scope.Entry{{Path: "/r/d/", State: scope.Excluded}})
	includeAll := scope.Empty()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				state, err := store.Resolve("/r/d/file.txt")
				if err != nil || (state != scope.Included && state != scope.Excluded) {
					t.Errorf("unexpected resolve result %v, %v", state, err)
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		next := excludeAll
		if j%2 == 1 {
			next = includeAll
		}
		require.NoError(t, store.Replace(next))
	}
	wg.Wait()
}
