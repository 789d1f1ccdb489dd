package trace

import "fmt"

// Kind represents the type of event
type Kind uint8

const (
	KindEnter Kind = iota + 1
	KindLine
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindLine:
		return "line"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindEnter && k <= KindExit
}

// MarshalText writes the kind by name, so JSON traces stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid event kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "enter":
		*k = KindEnter
	case "line":
		*k = KindLine
	case "exit":
		*k = KindExit
	default:
		return fmt.Errorf("invalid event kind %q", text)
	}
	return nil
}

// Event represents a single traced event
type Event struct {
	Seq    uint64 `json:"seq"`
	Kind   Kind   `json:"kind"`
	Lesson string `json:"lesson,omitempty"`
	Text   string `json:"text,omitempty"` // Output for line events, newline included
}
