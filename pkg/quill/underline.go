package quill

// UnderlineStyle is the style of a run's underline. Absence of an
// underline is modeled as a nil *UnderlineStyle on RunProperties.
type UnderlineStyle int

const (
	UnderlineSingle UnderlineStyle = iota
	UnderlineWords
	UnderlineDouble
	UnderlineThick
	UnderlineDotted
	UnderlineDottedHeavy
	UnderlineDash
	UnderlineDashedHeavy
	UnderlineDashLong
	UnderlineDashLongHeavy
	UnderlineDotDash
	UnderlineDashDotHeavy
	UnderlineDotDotDash
	UnderlineDashDotDotHeavy
	UnderlineWave
	UnderlineWavyHeavy
	UnderlineWavyDouble
)

var underlineTable = newWireTable(UnderlineSingle, map[UnderlineStyle]string{
	UnderlineSingle:          "single",
	UnderlineWords:           "words",
	UnderlineDouble:          "double",
	UnderlineThick:           "thick",
	UnderlineDotted:          "dotted",
	UnderlineDottedHeavy:     "dottedHeavy",
	UnderlineDash:            "dash",
	UnderlineDashedHeavy:     "dashedHeavy",
	UnderlineDashLong:        "dashLong",
	UnderlineDashLongHeavy:   "dashLongHeavy",
	UnderlineDotDash:         "dotDash",
	UnderlineDashDotHeavy:    "dashDotHeavy",
	UnderlineDotDotDash:      "dotDotDash",
	UnderlineDashDotDotHeavy: "dashDotDotHeavy",
	UnderlineWave:            "wave",
	UnderlineWavyHeavy:       "wavyHeavy",
	UnderlineWavyDouble:      "wavyDouble",
})

func (u UnderlineStyle) String() string {
	return underlineTable.token(u)
}

// ParseUnderlineStyle maps a wire token to its style. Unknown tokens
// fall back to single.
func ParseUnderlineStyle(token string) UnderlineStyle {
	return underlineTable.parse(token)
}
