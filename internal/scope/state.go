package scope

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State is the inclusion state of a path.
type State uint8

// The numeric values are the wire codes shared with existing snapshot producers.
const (
	Excluded State = 0
	Included State = 1
	Partial  State = 2
)

var stateNames = map[State]string{
	Excluded: "excluded",
	Included: "included",
	Partial:  "partial",
}

// Valid reports whether s is one of the three known states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// Forcing reports whether a directory in state s overrides its descendants.
func (s State) Forcing() bool {
	return s == Included || s == Excluded
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState parses a state tag, ignoring case.
func ParseState(tag string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "included":
		return Included, nil
	case "excluded":
		return Excluded, nil
	case "partial":
		return Partial, nil
	}
	return 0, fmt.Errorf("%w: unknown state %q", ErrDecode, tag)
}

// MarshalJSON writes the integer wire code.
func (s State) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: invalid state %d", ErrDecode, uint8(s))
	}
	return json.Marshal(uint8(s))
}

// UnmarshalJSON accepts either the integer wire code or a state tag.
func (s *State) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		parsed, err := ParseState(tag)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var code json.Number
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: state must be an integer or tag, got %s", ErrDecode, string(data))
	}
	n, err := code.Int64()
	if err != nil || n < 0 || n > int64(Partial) {
		return fmt.Errorf("%w: state code %s out of range", ErrDecode, code)
	}
	*s = State(n)
	return nil
}
