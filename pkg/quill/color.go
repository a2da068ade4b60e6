package quill

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// fallbackHex is substituted when a HexColor is constructed from an
// invalid value.
const fallbackHex = "FFFFFF"

// HexColor represents a six-digit HEX color code without the leading
// '#'. Alpha is not supported.
type HexColor struct {
	value string
}

// NewHexColor builds a color from a HEX code. Invalid input silently
// falls back to the default color; use Set to get an error instead.
func NewHexColor(value string) HexColor {
	if err := checkHex(value); err != nil {
		return HexColor{value: fallbackHex}
	}
	return HexColor{value: value}
}

// DefaultHexColor returns the fallback color.
func DefaultHexColor() HexColor {
	return HexColor{value: fallbackHex}
}

// Value returns the HEX code.
func (c HexColor) Value() string {
	return c.value
}

// Set changes the HEX code. Unlike NewHexColor, invalid input returns an
// error and leaves the current value untouched.
func (c *HexColor) Set(value string) error {
	if err := checkHex(value); err != nil {
		return err
	}
	c.value = value
	return nil
}

func checkHex(value string) error {
	err := validation.Validate(value,
		validation.Required,
		validation.Length(6, 6),
		is.Hexadecimal,
	)
	if err != nil {
		return &InvalidHexError{Value: value}
	}
	return nil
}

// HighlightPalette is one of the predefined text highlighting colors.
// Custom highlight coloring is not part of the format; shading covers
// that instead.
type HighlightPalette int

const (
	HighlightYellow HighlightPalette = iota
	HighlightDarkYellow
	HighlightGreen
	HighlightDarkGreen
	HighlightCyan
	HighlightDarkCyan
	HighlightMagenta
	HighlightDarkMagenta
	HighlightBlue
	HighlightDarkBlue
	HighlightRed
	HighlightDarkRed
	HighlightBlack
	HighlightWhite
)

var highlightTable = newWireTable(HighlightWhite, map[HighlightPalette]string{
	HighlightYellow:      "yellow",
	HighlightDarkYellow:  "darkYellow",
	HighlightGreen:       "green",
	HighlightDarkGreen:   "darkGreen",
	HighlightCyan:        "cyan",
	HighlightDarkCyan:    "darkCyan",
	HighlightMagenta:     "magenta",
	HighlightDarkMagenta: "darkMagenta",
	HighlightBlue:        "blue",
	HighlightDarkBlue:    "darkBlue",
	HighlightRed:         "red",
	HighlightDarkRed:     "darkRed",
	HighlightBlack:       "black",
	HighlightWhite:       "white",
})

func (h HighlightPalette) String() string {
	return highlightTable.token(h)
}

// ParseHighlightPalette maps a wire token to its palette entry. Unknown
// tokens fall back to white.
func ParseHighlightPalette(token string) HighlightPalette {
	return highlightTable.parse(token)
}
