// Package scope computes and answers inclusion state for paths in a tree.
//
// Every path in the tree is Included, Excluded or Partial. A full, ordered
// snapshot of desired states is reduced by Commit into a sparse Overrides set,
// and Resolve answers the effective state of any path afterwards, including
// paths that did not exist when the snapshot was taken.
//
// Key concepts:
//   - Forcing ancestor: a directory whose effective state is Included or
//     Excluded overrides every path beneath it
//   - Partial: a directory state that never propagates to descendants
//   - Sparse overrides: only Excluded roots and Partial directories are stored;
//     absence means Included
//
// Paths are absolute and slash-separated. Directories carry a trailing "/".
package scope
