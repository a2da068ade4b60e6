package quill

// ParagraphIndentation holds paragraph indentation offsets in twentieths
// of a point, with the Chars variants in hundredths of a character unit.
// FirstLine and Hanging cannot both be set: the first pushes the first
// line inward, the second pushes every line but the first.
type ParagraphIndentation struct {
	Left           *int
	LeftChars      *int
	Right          *int
	RightChars     *int
	FirstLine      *int
	FirstLineChars *int
	Hanging        *int
	HangingChars   *int
	Start          *int
	End            *int
}

// NewParagraphIndentation validates and returns the given indentation.
// It fails when both first-line and hanging indentation are set.
func NewParagraphIndentation(ind ParagraphIndentation) (*ParagraphIndentation, error) {
	if ind.FirstLine != nil && ind.Hanging != nil {
		return nil, &MutuallyExclusiveError{First: "hanging", Second: "firstLine"}
	}
	return &ind, nil
}

// SetFirstLine sets the first-line indentation. It fails when hanging
// indentation is already set.
func (i *ParagraphIndentation) SetFirstLine(twips int) error {
	if i.Hanging != nil {
		return &MutuallyExclusiveError{First: "hanging", Second: "firstLine"}
	}
	i.FirstLine = &twips
	return nil
}

// SetHanging sets the hanging indentation. It fails when first-line
// indentation is already set.
func (i *ParagraphIndentation) SetHanging(twips int) error {
	if i.FirstLine != nil {
		return &MutuallyExclusiveError{First: "hanging", Second: "firstLine"}
	}
	i.Hanging = &twips
	return nil
}
