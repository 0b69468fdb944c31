package scope

// frame is an open directory during the commit pass.
type frame struct {
	dir string

	// forcing is set when dir or one of its ancestors forces a state
	forcing bool
	force   State
}

// committer carries the bookkeeping for one Commit pass.
type committer struct {
	root  string
	stack []frame

	seen   map[string]struct{}
	under  map[string]struct{} // ancestors of every entry seen so far
	closed map[string]struct{} // directories whose subtree has been left
}

// Commit reduces an ordered snapshot to the minimal Overrides that resolve
// every entry to its effective state.
//
// Entries must be ordered so each directory precedes its descendants and
// each subtree is contiguous; lexicographic order satisfies both. The
// nearest directory whose effective state is Included or Excluded forces
// that state on everything beneath it, whatever the descendants request.
// Only independent decisions are recorded: an Excluded path under an
// excluding ancestor is implied and skipped.
func Commit(root string, entries []Entry) (*Overrides, error) {
	if err := ValidatePath(root); err != nil {
		return nil, err
	}

	c := &committer{
		root:   DirPath(root),
		seen:   make(map[string]struct{}, len(entries)),
		under:  make(map[string]struct{}),
		closed: make(map[string]struct{}),
	}

	out := Empty()
	for _, e := range entries {
		if err := c.check(e); err != nil {
			return nil, err
		}

		for len(c.stack) > 0 && !IsAncestor(c.stack[len(c.stack)-1].dir, e.Path) {
			c.closed[c.stack[len(c.stack)-1].dir] = struct{}{}
			c.stack = c.stack[:len(c.stack)-1]
		}
		if err := c.checkContiguous(e.Path); err != nil {
			return nil, err
		}

		effective, inherited := e.State, false
		if n := len(c.stack); n > 0 && c.stack[n-1].forcing {
			effective, inherited = c.stack[n-1].force, true
		}

		if !inherited {
			switch effective {
			case Excluded:
				out.excluded[e.Path] = struct{}{}
			case Partial:
				out.partial[e.Path] = struct{}{}
			}
		}

		if IsDir(e.Path) {
			c.stack = append(c.stack, frame{
				dir:     e.Path,
				forcing: inherited || effective.Forcing(),
				force:   effective,
			})
		}

		c.seen[e.Path] = struct{}{}
		for _, a := range Ancestors(e.Path) {
			c.under[a] = struct{}{}
		}
	}

	return out, nil
}

func (c *committer) check(e Entry) error {
	if !e.State.Valid() {
		return pathErr("commit", e.Path, ErrDecode, "invalid state %d", uint8(e.State))
	}
	if err := ValidatePath(e.Path); err != nil {
		return err
	}
	if !Within(c.root, e.Path) {
		return pathErr("commit", e.Path, ErrPathDomain, "not within root %q", c.root)
	}
	if _, dup := c.seen[e.Path]; dup {
		return pathErr("commit", e.Path, ErrPrecondition, "duplicate entry")
	}
	if _, ok := c.under[e.Path]; ok && IsDir(e.Path) {
		return pathErr("commit", e.Path, ErrPrecondition, "directory follows its descendants")
	}
	return nil
}

// checkContiguous rejects an entry that re-enters a directory already left.
func (c *committer) checkContiguous(p string) error {
	for _, a := range Ancestors(p) {
		if _, ok := c.closed[a]; ok {
			return pathErr("commit", p, ErrPrecondition, "subtree of %q is not contiguous", a)
		}
	}
	return nil
}
