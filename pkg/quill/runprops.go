package quill

import "reflect"

// VerticalAlignValue positions run text relative to the baseline.
type VerticalAlignValue int

const (
	AlignBaseline VerticalAlignValue = iota
	AlignSuperscript
	AlignSubscript
)

var verticalAlignTable = newWireTable(AlignBaseline, map[VerticalAlignValue]string{
	AlignBaseline:    "baseline",
	AlignSuperscript: "superscript",
	AlignSubscript:   "subscript",
})

func (v VerticalAlignValue) String() string {
	return verticalAlignTable.token(v)
}

// ParseVerticalAlign maps a wire token to its value. Unknown tokens fall
// back to baseline.
func ParseVerticalAlign(token string) VerticalAlignValue {
	return verticalAlignTable.parse(token)
}

// RunProperties is the character-level formatting of a Run. The zero
// value means unformatted; HasFormatting reports whether any field
// deviates from it. Size and Spacing are in half-points and twentieths
// of a point respectively, kept as raw wire units.
type RunProperties struct {
	Bold          bool
	Italic        bool
	Strike        bool
	DoubleStrike  bool
	Underline     *UnderlineStyle
	Color         *HexColor
	Size          *int
	Fonts         *FontSet
	Highlight     *HighlightPalette
	VerticalAlign *VerticalAlignValue
	Spacing       *int
}

// HasFormatting reports whether any property deviates from the default.
// The encoder omits the whole properties element when this is false.
func (p RunProperties) HasFormatting() bool {
	return !reflect.DeepEqual(p, RunProperties{})
}

// SetUnderline applies an underline style.
func (p *RunProperties) SetUnderline(style UnderlineStyle) {
	p.Underline = &style
}

// SetColor applies a text color.
func (p *RunProperties) SetColor(color HexColor) {
	p.Color = &color
}

// SetSize sets the font size in half-points.
func (p *RunProperties) SetSize(halfPoints int) {
	p.Size = &halfPoints
}

// SetHighlight applies a highlight color.
func (p *RunProperties) SetHighlight(color HighlightPalette) {
	p.Highlight = &color
}

// SetVerticalAlign positions the run relative to the baseline.
func (p *RunProperties) SetVerticalAlign(align VerticalAlignValue) {
	p.VerticalAlign = &align
}

// SetSpacing sets the character spacing in twentieths of a point.
func (p *RunProperties) SetSpacing(twips int) {
	p.Spacing = &twips
}
