package scope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Entry pairs a path with the state requested for it.
// Its JSON form is the two-element array [path, state].
type Entry struct {
	Path  string
	State State
}

// MarshalJSON encodes the entry as [path, state].
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Path, e.State})
}

// UnmarshalJSON decodes a [path, state] record.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return fmt.Errorf("%w: entry must be a [path, state] array, got %s", ErrDecode, string(data))
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: entry must have 2 elements, got %d", ErrDecode, len(raw))
	}

	var p string
	if err := json.Unmarshal(raw[0], &p); err != nil || bytes.Equal(bytes.TrimSpace(raw[0]), []byte("null")) {
		return fmt.Errorf("%w: entry path must be a string, got %s", ErrDecode, string(raw[0]))
	}

	var s State
	if err := json.Unmarshal(raw[1], &s); err != nil {
		return err
	}

	e.Path = p
	e.State = s
	return nil
}

// DecodeSnapshot parses a JSON snapshot. All failures wrap ErrDecode.
func DecodeSnapshot(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: snapshot must be a JSON array", ErrDecode)
	}

	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// EncodeSnapshot renders entries in the form DecodeSnapshot accepts.
func EncodeSnapshot(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}
