// Package state holds the committed overrides and persists them.
//
// The state package keeps the current scope.Overrides behind an atomic
// pointer so resolution never observes a half-applied commit, and writes the
// overrides through an OptionStore, a small key/value collaborator.
//
// Key concepts:
//   - Store: the live overrides plus Resolve, Replace and Clear
//   - OptionStore: get/set persistence keyed by a well-known name
//   - FileListKey: the single record holding [partial, excluded]
package state
