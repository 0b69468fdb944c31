package scope

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildTree turns random codes into a complete, sorted snapshot under /r/.
// Each code picks a parent among the directories created so far, a kind
// and a requested state.
func buildTree(codes []int) []Entry {
	dirs := []string{"/r/"}
	entries := make([]Entry, 0, len(codes))
	for i, c := range codes {
		parent := dirs[c%len(dirs)]
		state := State((c / 7) % 3)
		if (c/3)%2 == 0 {
			p := fmt.Sprintf("%sd%d/", parent, i)
			dirs = append(dirs, p)
			entries = append(entries, Entry{p, state})
		} else {
			entries = append(entries, Entry{fmt.Sprintf("%sf%d", parent, i), state})
		}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Path < entries[b].Path })
	return entries
}

// referenceStates computes effective states directly: the outermost
// ancestor requesting Included or Excluded decides, otherwise the entry does.
func referenceStates(entries []Entry) map[string]State {
	desired := make(map[string]State, len(entries))
	for _, e := range entries {
		desired[e.Path] = e.State
	}

	out := make(map[string]State, len(entries))
	for _, e := range entries {
		eff := e.State
		anc := Ancestors(e.Path)
		for i := len(anc) - 1; i >= 0; i-- {
			if s, ok := desired[anc[i]]; ok && s.Forcing() {
				eff = s
				break
			}
		}
		out[e.Path] = eff
	}
	return out
}

func Test_CommitProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	codes := gen.SliceOf(gen.IntRange(0, 10000))

	properties.Property("commit is lossless for every snapshot entry", prop.ForAll(
		func(codes []int) bool {
			entries := buildTree(codes)
			o, err := Commit("/r/", entries)
			if err != nil {
				return false
			}
			want := referenceStates(entries)
			for _, e := range entries {
				if o.Resolve(e.Path) != want[e.Path] {
					return false
				}
			}
			return true
		},
		codes,
	))

	properties.Property("recommitting resolved states is idempotent", prop.ForAll(
		func(codes []int) bool {
			entries := buildTree(codes)
			o, err := Commit("/r/", entries)
			if err != nil {
				return false
			}
			resolved := make([]Entry, len(entries))
			for i, e := range entries {
				resolved[i] = Entry{e.Path, o.Resolve(e.Path)}
			}
			again, err := Commit("/r/", resolved)
			return err == nil && again.Equal(o)
		},
		codes,
	))

	properties.Property("only topmost exclusions are stored", prop.ForAll(
		func(codes []int) bool {
			entries := buildTree(codes)
			o, err := Commit("/r/", entries)
			if err != nil {
				return false
			}
			if _, err := NewOverrides(o.Excluded(), o.Partial()); err != nil {
				return false
			}
			want := referenceStates(entries)
			stored := make(map[string]bool)
			for _, p := range o.Excluded() {
				stored[p] = true
			}
			for _, e := range entries {
				for _, a := range Ancestors(e.Path) {
					if s, ok := want[a]; ok && s == Excluded && stored[e.Path] {
						return false
					}
				}
			}
			return true
		},
		codes,
	))

	properties.Property("unseen paths inherit exclusion only", prop.ForAll(
		func(codes []int) bool {
			entries := buildTree(codes)
			o, err := Commit("/r/", entries)
			if err != nil {
				return false
			}
			if o.Resolve("/r/zz-unseen") != Included {
				return false
			}
			want := referenceStates(entries)
			for _, e := range entries {
				if !IsDir(e.Path) {
					continue
				}
				got := o.Resolve(e.Path + "zz-unseen")
				if want[e.Path] == Excluded && got != Excluded {
					return false
				}
				if want[e.Path] != Excluded && got != Included {
					return false
				}
			}
			return true
		},
		codes,
	))

	properties.Property("partial directories do not propagate", prop.ForAll(
		func(codes []int) bool {
			entries := buildTree(codes)
			o, err := Commit("/r/", entries)
			if err != nil {
				return false
			}
			want := referenceStates(entries)
			for _, e := range entries {
				parent := Parent(e.Path)
				if s, ok := want[parent]; ok && s == Partial {
					if o.Resolve(e.Path) != e.State {
						return false
					}
				}
			}
			return true
		},
		codes,
	))

	properties.TestingRun(t)
}
