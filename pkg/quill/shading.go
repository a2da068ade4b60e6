package quill

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// StripePattern is one of the predefined shading stripe patterns.
type StripePattern int

const (
	StripeClear StripePattern = iota
	StripeHorizontal
	StripeVertical
	StripeDiagonal
	StripeReverseDiagonal
	StripeHorizontalCross
	StripeDiagonalCross
	StripeThinHorizontal
	StripeThinVertical
	StripeThinDiagonal
	StripeThinReverseDiagonal
	StripeThinHorizontalCross
	StripeThinDiagonalCross
	StripeSmallGrid
	StripeLargeGrid
	StripeDottedGrid
)

var stripePatternTable = newWireTable(StripeClear, map[StripePattern]string{
	StripeClear:               "clear",
	StripeHorizontal:          "horzStripe",
	StripeVertical:            "vertStripe",
	StripeDiagonal:            "diagStripe",
	StripeReverseDiagonal:     "reverseDiagStripe",
	StripeHorizontalCross:     "horzCross",
	StripeDiagonalCross:       "diagCross",
	StripeThinHorizontal:      "thinHorzStripe",
	StripeThinVertical:        "thinVertStripe",
	StripeThinDiagonal:        "thinDiagStripe",
	StripeThinReverseDiagonal: "thinReverseDiagStripe",
	StripeThinHorizontalCross: "thinHorzCross",
	StripeThinDiagonalCross:   "thinDiagCross",
	StripeSmallGrid:           "smGrid",
	StripeLargeGrid:           "lgGrid",
	StripeDottedGrid:          "dotGrid",
})

func (s StripePattern) String() string {
	return stripePatternTable.token(s)
}

// ParseStripePattern maps a wire token to its pattern. Unknown tokens
// fall back to clear.
func ParseStripePattern(token string) StripePattern {
	return stripePatternTable.parse(token)
}

// Shading is the background shading of a paragraph. Val holds the raw
// pattern token ("clear", a "pctNN" percentage, or a stripe pattern
// token) so any decoded value survives a re-encode verbatim. Color is
// the pattern foreground and is ignored for clear shading; Fill is the
// background.
type Shading struct {
	Val   string
	Color *HexColor
	Fill  *HexColor
}

// NewClearShading returns a solid-color shading with the given fill.
func NewClearShading(fill HexColor) Shading {
	return Shading{Val: "clear", Fill: &fill}
}

// NewPercentShading returns a shading whose foreground covers the given
// percentage of the background. Percent must be in [0, 100].
func NewPercentShading(percent int, color, fill HexColor) (Shading, error) {
	err := validation.Validate(percent, validation.Min(0), validation.Max(100))
	if err != nil {
		return Shading{}, err
	}
	return Shading{
		Val:   fmt.Sprintf("pct%d", percent),
		Color: &color,
		Fill:  &fill,
	}, nil
}

// NewPatternShading returns a stripe-patterned shading.
func NewPatternShading(pattern StripePattern, color, fill HexColor) Shading {
	return Shading{
		Val:   pattern.String(),
		Color: &color,
		Fill:  &fill,
	}
}
