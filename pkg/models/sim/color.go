package sim

import (
	"errors"
	"strings"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is the state of a single edge. The numeric values are part of the
// packed State encoding and must not change.
type Color uint8

const (
	None Color = iota
	Red
	Blue
)

// Other returns the opponent of c. None has no opponent.
func (c Color) Other() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return None
}

func (c Color) Valid() bool {
	return c <= Blue
}

func (c Color) String() string {
	switch c {
	case None:
		return "None"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	}
	return ""
}

// Rune is the single character used by State.String.
func (c Color) Rune() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	}
	return '.'
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "blue", "b":
		return Blue, nil
	case "none", ".":
		return None, nil
	}
	return None, ErrUnknownColor
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

func (c *Color) UnmarshalText(text []byte) (err error) {
	*c, err = ParseColor(string(text))
	return
}
