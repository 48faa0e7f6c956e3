package pll

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Sticker is one colour of the fixed last-layer palette.
type Sticker int

const (
	Orange Sticker = iota + 1
	Blue
	Red
	Green
	Yellow // Top face; never appears on a side sticker.
)

var (
	stickerNames  = [...]string{Orange: "Orange", Blue: "Blue", Red: "Red", Green: "Green", Yellow: "Yellow"}
	stickerHex    = [...]string{Orange: "#ff8300", Blue: "#07347c", Red: "#a31010", Green: "#76ff00", Yellow: "#ffff00"}
	stickerByName = map[string]Sticker{
		"Orange": Orange,
		"Blue":   Blue,
		"Red":    Red,
		"Green":  Green,
		"Yellow": Yellow,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Sticker(0)
	_ json.Marshaler           = Sticker(0)
	_ json.Unmarshaler         = (*Sticker)(nil)
	_ encoding.TextMarshaler   = Sticker(0)
	_ encoding.TextUnmarshaler = (*Sticker)(nil)
)

// IsValid reports whether s is one of the five palette colours.
func (s Sticker) IsValid() bool {
	return s >= Orange && s <= Yellow
}

// String returns the colour name ("Orange", "Blue", ...).
// For invalid values it returns "Sticker(n)".
func (s Sticker) String() string {
	if s.IsValid() {
		return stickerNames[s]
	}
	return fmt.Sprintf("Sticker(%d)", int(s))
}

// Hex returns the display colour as "#rrggbb", or "" for invalid values.
func (s Sticker) Hex() string {
	if !s.IsValid() {
		return ""
	}
	return stickerHex[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Sticker) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSticker, int(s))
	}
	return []byte(stickerNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sticker) UnmarshalText(text []byte) error {
	v, ok := stickerByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSticker, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. Sticker serializes as a JSON string.
func (s Sticker) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *Sticker) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSticker, data)
	}
	return s.UnmarshalText([]byte(str))
}
