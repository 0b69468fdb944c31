package scope

import (
	"fmt"
	"sort"
)

// Overrides is the sparse record of non-default states produced by Commit.
// It is immutable once built, so concurrent Resolve calls are safe.
//
// Invariants:
//   - excluded and partial are disjoint
//   - no excluded path lies beneath another excluded path
type Overrides struct {
	excluded map[string]struct{}
	partial  map[string]struct{}
}

// Empty returns overrides under which every path is Included.
func Empty() *Overrides {
	return &Overrides{
		excluded: map[string]struct{}{},
		partial:  map[string]struct{}{},
	}
}

// NewOverrides builds overrides from stored path lists, checking the
// invariants Commit guarantees. Violations wrap ErrDecode.
func NewOverrides(excluded, partial []string) (*Overrides, error) {
	o := Empty()
	for _, p := range excluded {
		if err := ValidatePath(p); err != nil {
			return nil, fmt.Errorf("%w: excluded entry: %v", ErrDecode, err)
		}
		o.excluded[p] = struct{}{}
	}
	for _, p := range partial {
		if err := ValidatePath(p); err != nil {
			return nil, fmt.Errorf("%w: partial entry: %v", ErrDecode, err)
		}
		if _, ok := o.excluded[p]; ok {
			return nil, fmt.Errorf("%w: %q is both excluded and partial", ErrDecode, p)
		}
		o.partial[p] = struct{}{}
	}
	for p := range o.excluded {
		if a, ok := o.excludedAncestor(p); ok {
			return nil, fmt.Errorf("%w: excluded %q is already covered by %q", ErrDecode, p, a)
		}
	}
	return o, nil
}

// Resolve returns the effective state of p. Exact entries win; otherwise
// the nearest excluded ancestor excludes p. Partial entries never propagate.
func (o *Overrides) Resolve(p string) State {
	if _, ok := o.excluded[p]; ok {
		return Excluded
	}
	if _, ok := o.partial[p]; ok {
		return Partial
	}
	if _, ok := o.excludedAncestor(p); ok {
		return Excluded
	}
	return Included
}

func (o *Overrides) excludedAncestor(p string) (string, bool) {
	for a := Parent(p); a != ""; a = Parent(a) {
		if _, ok := o.excluded[a]; ok {
			return a, true
		}
	}
	return "", false
}

// Excluded returns the stored excluded paths in sorted order.
func (o *Overrides) Excluded() []string {
	return sortedKeys(o.excluded)
}

// Partial returns the stored partial paths in sorted order.
func (o *Overrides) Partial() []string {
	return sortedKeys(o.partial)
}

// Len returns the number of stored entries.
func (o *Overrides) Len() int {
	return len(o.excluded) + len(o.partial)
}

// Equal reports whether both overrides store the same paths.
func (o *Overrides) Equal(other *Overrides) bool {
	if other == nil {
		return false
	}
	return sameSet(o.excluded, other.excluded) && sameSet(o.partial, other.partial)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
