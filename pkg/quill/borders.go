package quill

// BorderStyle is the line style of a paragraph border side.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderDashed
	BorderNil
)

var borderStyleTable = newWireTable(BorderSingle, map[BorderStyle]string{
	BorderSingle: "single",
	BorderDouble: "double",
	BorderDashed: "dashed",
	BorderNil:    "nil",
})

func (b BorderStyle) String() string {
	return borderStyleTable.token(b)
}

// ParseBorderStyle maps a wire token to its style. Unknown tokens fall
// back to a single line.
func ParseBorderStyle(token string) BorderStyle {
	return borderStyleTable.parse(token)
}

// BorderSide describes one edge of a paragraph border. Size is in
// eighths of a point, Space is the padding in points.
type BorderSide struct {
	Style BorderStyle
	Size  *int
	Space *int
	Color *HexColor
}

// ParagraphBorders holds the border definitions of a paragraph. Nil
// sides are not drawn. Between is the border drawn between consecutive
// paragraphs with identical border settings.
type ParagraphBorders struct {
	Top     *BorderSide
	Bottom  *BorderSide
	Left    *BorderSide
	Right   *BorderSide
	Between *BorderSide
}

// NewBoxBorders returns borders with the same side definition on all
// four outer edges.
func NewBoxBorders(side BorderSide) *ParagraphBorders {
	top, bottom, left, right := side, side, side, side
	return &ParagraphBorders{
		Top:    &top,
		Bottom: &bottom,
		Left:   &left,
		Right:  &right,
	}
}
