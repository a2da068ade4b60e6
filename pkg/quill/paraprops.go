package quill

import "reflect"

// NumberingReference points a paragraph into a numbering definition
// part. Level is the indentation level within the definition, ID is the
// definition instance. Both are opaque references; the definition part
// itself is not modeled.
type NumberingReference struct {
	Level int
	ID    int
}

// ParagraphProperties is the paragraph-level formatting of a Paragraph.
// The zero value means unformatted. Boolean flags serialize as bare
// marker elements when true; nil structured fields are omitted
// entirely. RunDefaults holds the default character formatting for runs
// of the paragraph.
type ParagraphProperties struct {
	KeepNext            bool
	KeepLines           bool
	PageBreakBefore     bool
	WidowControl        bool
	SuppressLineNumbers bool
	SuppressAutoHyphens bool
	WordWrap            bool
	TopLinePunct        bool
	AutoSpaceDE         bool
	AutoSpaceDN         bool
	Bidi                bool
	SnapToGrid          bool
	ContextualSpacing   bool
	MirrorIndents       bool
	SuppressOverlap     bool
	Borders             *ParagraphBorders
	Shading             *Shading
	Tabs                []TabStop
	Numbering           *NumberingReference
	Spacing             *ParagraphSpacing
	Indentation         *ParagraphIndentation
	Justification       *JustificationValue
	TextDirection       *TextDirectionValue
	TextAlignment       *TextAlignmentValue
	TightWrap           *TightWrapValue
	OutlineLevel        *int
	RunDefaults         *RunProperties
}

// HasFormatting reports whether any property deviates from the default.
// The encoder omits the whole properties element when this is false.
func (p ParagraphProperties) HasFormatting() bool {
	return !reflect.DeepEqual(p, ParagraphProperties{})
}

// ParagraphPropertiesBuilder assembles a ParagraphProperties value one
// field at a time.
type ParagraphPropertiesBuilder struct {
	inner ParagraphProperties
}

// NewParagraphProperties starts a builder with every property at its
// default.
func NewParagraphProperties() *ParagraphPropertiesBuilder {
	return &ParagraphPropertiesBuilder{}
}

// Build returns the assembled properties.
func (b *ParagraphPropertiesBuilder) Build() ParagraphProperties {
	return b.inner
}

func (b *ParagraphPropertiesBuilder) KeepNext(v bool) *ParagraphPropertiesBuilder {
	b.inner.KeepNext = v
	return b
}

func (b *ParagraphPropertiesBuilder) KeepLines(v bool) *ParagraphPropertiesBuilder {
	b.inner.KeepLines = v
	return b
}

func (b *ParagraphPropertiesBuilder) PageBreakBefore(v bool) *ParagraphPropertiesBuilder {
	b.inner.PageBreakBefore = v
	return b
}

func (b *ParagraphPropertiesBuilder) WidowControl(v bool) *ParagraphPropertiesBuilder {
	b.inner.WidowControl = v
	return b
}

func (b *ParagraphPropertiesBuilder) SuppressLineNumbers(v bool) *ParagraphPropertiesBuilder {
	b.inner.SuppressLineNumbers = v
	return b
}

func (b *ParagraphPropertiesBuilder) SuppressAutoHyphens(v bool) *ParagraphPropertiesBuilder {
	b.inner.SuppressAutoHyphens = v
	return b
}

func (b *ParagraphPropertiesBuilder) WordWrap(v bool) *ParagraphPropertiesBuilder {
	b.inner.WordWrap = v
	return b
}

func (b *ParagraphPropertiesBuilder) TopLinePunct(v bool) *ParagraphPropertiesBuilder {
	b.inner.TopLinePunct = v
	return b
}

func (b *ParagraphPropertiesBuilder) AutoSpaceDE(v bool) *ParagraphPropertiesBuilder {
	b.inner.AutoSpaceDE = v
	return b
}

func (b *ParagraphPropertiesBuilder) AutoSpaceDN(v bool) *ParagraphPropertiesBuilder {
	b.inner.AutoSpaceDN = v
	return b
}

func (b *ParagraphPropertiesBuilder) Bidi(v bool) *ParagraphPropertiesBuilder {
	b.inner.Bidi = v
	return b
}

func (b *ParagraphPropertiesBuilder) SnapToGrid(v bool) *ParagraphPropertiesBuilder {
	b.inner.SnapToGrid = v
	return b
}

func (b *ParagraphPropertiesBuilder) ContextualSpacing(v bool) *ParagraphPropertiesBuilder {
	b.inner.ContextualSpacing = v
	return b
}

func (b *ParagraphPropertiesBuilder) MirrorIndents(v bool) *ParagraphPropertiesBuilder {
	b.inner.MirrorIndents = v
	return b
}

func (b *ParagraphPropertiesBuilder) SuppressOverlap(v bool) *ParagraphPropertiesBuilder {
	b.inner.SuppressOverlap = v
	return b
}

func (b *ParagraphPropertiesBuilder) Borders(v *ParagraphBorders) *ParagraphPropertiesBuilder {
	b.inner.Borders = v
	return b
}

func (b *ParagraphPropertiesBuilder) Shading(v Shading) *ParagraphPropertiesBuilder {
	b.inner.Shading = &v
	return b
}

func (b *ParagraphPropertiesBuilder) Tabs(v ...TabStop) *ParagraphPropertiesBuilder {
	b.inner.Tabs = v
	return b
}

func (b *ParagraphPropertiesBuilder) Numbering(level, id int) *ParagraphPropertiesBuilder {
	b.inner.Numbering = &NumberingReference{Level: level, ID: id}
	return b
}

func (b *ParagraphPropertiesBuilder) Spacing(v ParagraphSpacing) *ParagraphPropertiesBuilder {
	b.inner.Spacing = &v
	return b
}

func (b *ParagraphPropertiesBuilder) Indentation(v *ParagraphIndentation) *ParagraphPropertiesBuilder {
	b.inner.Indentation = v
	return b
}

func (b *ParagraphPropertiesBuilder) Justification(v JustificationValue) *ParagraphPropertiesBuilder {
	b.inner.Justification = &v
	return b
}

func (b *ParagraphPropertiesBuilder) TextDirection(v TextDirectionValue) *ParagraphPropertiesBuilder {
	b.inner.TextDirection = &v
	return b
}

func (b *ParagraphPropertiesBuilder) TextAlignment(v TextAlignmentValue) *ParagraphPropertiesBuilder {
	b.inner.TextAlignment = &v
	return b
}

func (b *ParagraphPropertiesBuilder) TightWrap(v TightWrapValue) *ParagraphPropertiesBuilder {
	b.inner.TightWrap = &v
	return b
}

func (b *ParagraphPropertiesBuilder) OutlineLevel(v int) *ParagraphPropertiesBuilder {
	b.inner.OutlineLevel = &v
	return b
}

func (b *ParagraphPropertiesBuilder) RunDefaults(v RunProperties) *ParagraphPropertiesBuilder {
	b.inner.RunDefaults = &v
	return b
}
