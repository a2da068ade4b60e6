package quill

import "strings"

// Document is an ordered sequence of paragraphs. It owns its whole
// subtree; nothing inside it is shared.
type Document struct {
	Paragraphs []Paragraph
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph to the document.
func (d *Document) AddParagraph(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// PlainText concatenates the text of every run in document order, one
// line per paragraph.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for i, p := range d.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.PlainText())
	}
	return sb.String()
}

// Paragraph is paragraph-level formatting plus an ordered sequence of
// runs and hyperlinks. Child order is reading order.
type Paragraph struct {
	Properties ParagraphProperties
	Children   []ParagraphChild
}

// NewParagraph returns an empty unformatted paragraph.
func NewParagraph() Paragraph {
	return Paragraph{}
}

// NewTextParagraph returns a paragraph holding a single plain run.
func NewTextParagraph(text string) Paragraph {
	return Paragraph{Children: []ParagraphChild{NewRun(text)}}
}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r Run) {
	p.Children = append(p.Children, r)
}

// AddHyperlink appends a hyperlink to the paragraph.
func (p *Paragraph) AddHyperlink(h Hyperlink) {
	p.Children = append(p.Children, h)
}

// Runs returns the paragraph's direct child runs, excluding runs inside
// hyperlinks.
func (p *Paragraph) Runs() []Run {
	var runs []Run
	for _, child := range p.Children {
		if r, ok := child.(Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// PlainText concatenates the text of every run in the paragraph,
// including hyperlink labels.
func (p *Paragraph) PlainText() string {
	var sb strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case Run:
			sb.WriteString(c.Text)
		case Hyperlink:
			for _, r := range c.Runs {
				sb.WriteString(r.Text)
			}
		}
	}
	return sb.String()
}

// ParagraphChild is either a Run or a Hyperlink. Hyperlinks sit next to
// runs as paragraph children and never nest.
type ParagraphChild interface {
	isParagraphChild()
}

// Run is a contiguous span of text sharing one set of character
// formatting. PreserveSpace keeps leading and trailing whitespace
// through serialization, which would otherwise collapse it.
type Run struct {
	Properties    RunProperties
	Text          string
	PreserveSpace bool
}

func (Run) isParagraphChild() {}

// NewRun returns an unformatted run with the given text.
func NewRun(text string) Run {
	return Run{Text: text}
}

// NewFormattedRun returns a run with the given text and formatting.
func NewFormattedRun(text string, props RunProperties) Run {
	return Run{Properties: props, Text: text}
}

// Hyperlink references an external target through a relationship id and
// holds the formatted label runs shown in its place.
type Hyperlink struct {
	ID   string
	Runs []Run
}

func (Hyperlink) isParagraphChild() {}

// NewHyperlink registers target in the registry and returns a hyperlink
// carrying the generated relationship id and the given label runs.
func NewHyperlink(rels *Relationships, target string, runs ...Run) Hyperlink {
	return Hyperlink{ID: rels.GenerateID(target), Runs: runs}
}

// NewHyperlinkWithText registers target and returns a hyperlink labeled
// with a single plain run.
func NewHyperlinkWithText(rels *Relationships, target, text string) Hyperlink {
	return NewHyperlink(rels, target, NewRun(text))
}

// PlainText concatenates the text of the label runs.
func (h *Hyperlink) PlainText() string {
	var sb strings.Builder
	for _, r := range h.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
