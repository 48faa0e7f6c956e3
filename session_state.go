package pll

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State is the lifecycle stage of a Session.
type State int

const (
	AwaitingInput State = iota + 1 // A case is shown; its key is not yet typed.
	Terminated                     // The user quit. Absorbing.
)

var (
	_ fmt.Stringer             = State(0)
	_ json.Marshaler           = State(0)
	_ json.Unmarshaler         = (*State)(nil)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

func (s State) name() (string, bool) {
	switch s {
	case AwaitingInput:
		return "AwaitingInput", true
	case Terminated:
		return "Terminated", true
	}
	return "", false
}

func parseState(name string) (State, bool) {
	for s := AwaitingInput; s <= Terminated; s++ {
		if n, _ := s.name(); n == name {
			return s, true
		}
	}
	return 0, false
}

// String returns "AwaitingInput" or "Terminated", and "State(n)" otherwise.
func (s State) String() string {
	if n, ok := s.name(); ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	n, ok := s.name()
	if !ok {
		return nil, fmt.Errorf("pll: session state %d has no name", int(s))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	v, ok := parseState(string(text))
	if !ok {
		return fmt.Errorf("pll: unknown session state %q", text)
	}
	*s = v
	return nil
}

// MarshalJSON writes the state name as a JSON string.
func (s State) MarshalJSON() ([]byte, error) {
	n, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON accepts only the string form written by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var n string
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pll: session state must be a JSON string: %s", data)
	}
	return s.UnmarshalText([]byte(n))
}
