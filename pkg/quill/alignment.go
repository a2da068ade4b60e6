package quill

// JustificationValue is the horizontal alignment of a paragraph.
type JustificationValue int

const (
	JustifyLeft JustificationValue = iota
	JustifyCenter
	JustifyRight
	JustifyBoth
	JustifyMediumKashida
	JustifyDistributedKashida
	JustifyNumTab
	JustifyHighKashida
	JustifyLowKashida
	JustifyThaiDistributed
)

var justificationTable = newWireTable(JustifyLeft, map[JustificationValue]string{
	JustifyLeft:               "left",
	JustifyCenter:             "center",
	JustifyRight:              "right",
	JustifyBoth:               "both",
	JustifyMediumKashida:      "mediumKashida",
	JustifyDistributedKashida: "distributedKashida",
	JustifyNumTab:             "numTab",
	JustifyHighKashida:        "highKashida",
	JustifyLowKashida:         "lowKashida",
	JustifyThaiDistributed:    "thaiDistributed",
})

func (j JustificationValue) String() string {
	return justificationTable.token(j)
}

// ParseJustification maps a wire token to its value. Unknown tokens fall
// back to left alignment.
func ParseJustification(token string) JustificationValue {
	return justificationTable.parse(token)
}

// TextDirectionValue is the flow direction of paragraph text.
type TextDirectionValue int

const (
	DirectionLrTb TextDirectionValue = iota
	DirectionTbRl
	DirectionBtLr
	DirectionTbLrTbRl
	DirectionTbRlTbLr
	DirectionLr
	DirectionLrTbBidi
)

var textDirectionTable = newWireTable(DirectionLrTb, map[TextDirectionValue]string{
	DirectionLrTb:     "lrTb",
	DirectionTbRl:     "tbRl",
	DirectionBtLr:     "btLr",
	DirectionTbLrTbRl: "tbLrTbRl",
	DirectionTbRlTbLr: "tbRlTbLr",
	DirectionLr:       "lr",
	DirectionLrTbBidi: "lrTbBidi",
})

func (d TextDirectionValue) String() string {
	return textDirectionTable.token(d)
}

// ParseTextDirection maps a wire token to its value. Unknown tokens fall
// back to left-to-right, top-to-bottom.
func ParseTextDirection(token string) TextDirectionValue {
	return textDirectionTable.parse(token)
}

// TextAlignmentValue is the vertical alignment of characters on a line.
type TextAlignmentValue int

const (
	TextAlignAuto TextAlignmentValue = iota
	TextAlignTop
	TextAlignCenter
	TextAlignBaseline
	TextAlignBottom
)

var textAlignmentTable = newWireTable(TextAlignAuto, map[TextAlignmentValue]string{
	TextAlignAuto:     "auto",
	TextAlignTop:      "top",
	TextAlignCenter:   "center",
	TextAlignBaseline: "baseline",
	TextAlignBottom:   "bottom",
})

func (a TextAlignmentValue) String() string {
	return textAlignmentTable.token(a)
}

// ParseTextAlignment maps a wire token to its value. Unknown tokens fall
// back to automatic alignment.
func ParseTextAlignment(token string) TextAlignmentValue {
	return textAlignmentTable.parse(token)
}

// TightWrapValue controls how tightly text boxes wrap around the
// paragraph.
type TightWrapValue int

const (
	TightWrapNone TightWrapValue = iota
	TightWrapAllLines
	TightWrapFirstAndLastLine
	TightWrapFirstLineOnly
	TightWrapLastLineOnly
)

var tightWrapTable = newWireTable(TightWrapNone, map[TightWrapValue]string{
	TightWrapNone:             "none",
	TightWrapAllLines:         "allLines",
	TightWrapFirstAndLastLine: "firstAndLastLine",
	TightWrapFirstLineOnly:    "firstLineOnly",
	TightWrapLastLineOnly:     "lastLineOnly",
})

func (w TightWrapValue) String() string {
	return tightWrapTable.token(w)
}

// ParseTightWrap maps a wire token to its value. Unknown tokens fall
// back to no tight wrapping.
func ParseTightWrap(token string) TightWrapValue {
	return tightWrapTable.parse(token)
}
