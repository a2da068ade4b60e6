package quill

import (
	"strconv"
	"strings"
)

const (
	xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n"

	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relationshipNS   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Encode serializes a document to the main-part markup. The output is
// deterministic: encoding the same document twice yields identical
// bytes, and decoding the output reproduces the document for any value
// built from the modeled constructors.
func Encode(doc *Document) (string, error) {
	if doc == nil {
		return "", NewStructureError("cannot encode a nil document")
	}
	var e encoder
	e.sb.WriteString(`<w:document xmlns:w="` + wordprocessingNS + `" xmlns:r="` + relationshipNS + `">`)
	e.sb.WriteString("<w:body>")
	for i := range doc.Paragraphs {
		e.paragraph(&doc.Paragraphs[i])
	}
	e.sb.WriteString("</w:body>")
	e.sb.WriteString("</w:document>")
	return e.sb.String(), nil
}

type encoder struct {
	sb strings.Builder
}

type xmlAttr struct {
	name  string
	value string
}

func (e *encoder) open(name string, attrs ...xmlAttr) {
	e.sb.WriteString("<" + name)
	for _, a := range attrs {
		e.sb.WriteString(" " + a.name + `="`)
		escapeAttr(&e.sb, a.value)
		e.sb.WriteString(`"`)
	}
	e.sb.WriteString(">")
}

func (e *encoder) close(name string) {
	e.sb.WriteString("</" + name + ">")
}

func (e *encoder) empty(name string, attrs ...xmlAttr) {
	e.sb.WriteString("<" + name)
	for _, a := range attrs {
		e.sb.WriteString(" " + a.name + `="`)
		escapeAttr(&e.sb, a.value)
		e.sb.WriteString(`"`)
	}
	e.sb.WriteString("/>")
}

// valElem emits an empty element carrying a single w:val attribute.
func (e *encoder) valElem(name, value string) {
	e.empty(name, xmlAttr{"w:val", value})
}

func (e *encoder) paragraph(p *Paragraph) {
	e.open("w:p")
	if p.Properties.HasFormatting() {
		e.paragraphProperties(&p.Properties)
	}
	for _, child := range p.Children {
		switch c := child.(type) {
		case Run:
			e.run(&c)
		case Hyperlink:
			e.hyperlink(&c)
		}
	}
	e.close("w:p")
}

func (e *encoder) hyperlink(h *Hyperlink) {
	e.open("w:hyperlink", xmlAttr{"r:id", h.ID})
	for i := range h.Runs {
		e.run(&h.Runs[i])
	}
	e.close("w:hyperlink")
}

func (e *encoder) run(r *Run) {
	e.open("w:r")
	if r.Properties.HasFormatting() {
		e.runProperties(&r.Properties)
	}
	if r.PreserveSpace {
		e.open("w:t", xmlAttr{"xml:space", "preserve"})
	} else {
		e.open("w:t")
	}
	escapeText(&e.sb, r.Text)
	e.close("w:t")
	e.close("w:r")
}

func (e *encoder) runProperties(p *RunProperties) {
	e.open("w:rPr")
	for _, flag := range []struct {
		on   bool
		name string
	}{
		{p.Bold, "w:b"},
		{p.Italic, "w:i"},
		{p.Strike, "w:strike"},
		{p.DoubleStrike, "w:dstrike"},
	} {
		if flag.on {
			e.empty(flag.name)
		}
	}
	if p.Underline != nil {
		e.valElem("w:u", p.Underline.String())
	}
	if p.Color != nil {
		e.valElem("w:color", p.Color.Value())
	}
	if p.Size != nil {
		e.valElem("w:sz", strconv.Itoa(*p.Size))
	}
	if p.Fonts != nil && p.Fonts.Hint != SlotDefault {
		if name, err := p.Fonts.Resolve(); err == nil {
			e.empty("w:rFonts", xmlAttr{"w:" + p.Fonts.Hint.String(), name})
		}
	}
	if p.Highlight != nil {
		e.valElem("w:highlight", p.Highlight.String())
	}
	if p.VerticalAlign != nil {
		e.valElem("w:vertAlign", p.VerticalAlign.String())
	}
	if p.Spacing != nil {
		e.valElem("w:spacing", strconv.Itoa(*p.Spacing))
	}
	e.close("w:rPr")
}

func (e *encoder) paragraphProperties(p *ParagraphProperties) {
	e.open("w:pPr")
	for _, flag := range []struct {
		on   bool
		name string
	}{
		{p.KeepNext, "w:keepNext"},
		{p.KeepLines, "w:keepLines"},
		{p.PageBreakBefore, "w:pageBreakBefore"},
		{p.WidowControl, "w:widowControl"},
		{p.SuppressLineNumbers, "w:suppressLineNumbers"},
		{p.SuppressAutoHyphens, "w:suppressAutoHyphens"},
		{p.WordWrap, "w:wordWrap"},
		{p.TopLinePunct, "w:topLinePunct"},
		{p.AutoSpaceDE, "w:autoSpaceDE"},
		{p.AutoSpaceDN, "w:autoSpaceDN"},
		{p.Bidi, "w:bidi"},
		{p.SnapToGrid, "w:snapToGrid"},
		{p.ContextualSpacing, "w:contextualSpacing"},
		{p.MirrorIndents, "w:mirrorIndents"},
		{p.SuppressOverlap, "w:suppressOverlap"},
	} {
		if flag.on {
			e.empty(flag.name)
		}
	}
	if p.Borders != nil {
		e.borders(p.Borders)
	}
	if p.Shading != nil {
		attrs := []xmlAttr{{"w:val", p.Shading.Val}}
		if p.Shading.Color != nil {
			attrs = append(attrs, xmlAttr{"w:color", p.Shading.Color.Value()})
		}
		if p.Shading.Fill != nil {
			attrs = append(attrs, xmlAttr{"w:fill", p.Shading.Fill.Value()})
		}
		e.empty("w:shd", attrs...)
	}
	if p.Tabs != nil {
		e.open("w:tabs")
		for _, tab := range p.Tabs {
			attrs := []xmlAttr{
				{"w:val", tab.Alignment.String()},
				{"w:pos", strconv.Itoa(tab.Position)},
			}
			if tab.Leader != nil {
				attrs = append(attrs, xmlAttr{"w:leader", tab.Leader.String()})
			}
			e.empty("w:tab", attrs...)
		}
		e.close("w:tabs")
	}
	if p.Numbering != nil {
		e.open("w:numPr")
		e.valElem("w:ilvl", strconv.Itoa(p.Numbering.Level))
		e.valElem("w:numId", strconv.Itoa(p.Numbering.ID))
		e.close("w:numPr")
	}
	if p.Spacing != nil {
		e.spacing(p.Spacing)
	}
	if p.Indentation != nil {
		e.indentation(p.Indentation)
	}
	if p.Justification != nil {
		e.valElem("w:jc", p.Justification.String())
	}
	if p.TextDirection != nil {
		e.valElem("w:textDirection", p.TextDirection.String())
	}
	if p.TextAlignment != nil {
		e.valElem("w:textAlignment", p.TextAlignment.String())
	}
	if p.TightWrap != nil {
		e.valElem("w:textboxTightWrap", p.TightWrap.String())
	}
	if p.OutlineLevel != nil {
		e.valElem("w:outlineLvl", strconv.Itoa(*p.OutlineLevel))
	}
	if p.RunDefaults != nil {
		e.runProperties(p.RunDefaults)
	}
	e.close("w:pPr")
}

func (e *encoder) borders(b *ParagraphBorders) {
	e.open("w:pBdr")
	for _, side := range []struct {
		name string
		side *BorderSide
	}{
		{"w:top", b.Top},
		{"w:bottom", b.Bottom},
		{"w:left", b.Left},
		{"w:right", b.Right},
		{"w:between", b.Between},
	} {
		if side.side == nil {
			continue
		}
		attrs := []xmlAttr{{"w:val", side.side.Style.String()}}
		if side.side.Color != nil {
			attrs = append(attrs, xmlAttr{"w:color", side.side.Color.Value()})
		}
		if side.side.Size != nil {
			attrs = append(attrs, xmlAttr{"w:sz", strconv.Itoa(*side.side.Size)})
		}
		if side.side.Space != nil {
			attrs = append(attrs, xmlAttr{"w:space", strconv.Itoa(*side.side.Space)})
		}
		e.empty(side.name, attrs...)
	}
	e.close("w:pBdr")
}

func (e *encoder) spacing(s *ParagraphSpacing) {
	var attrs []xmlAttr
	if s.Before != nil {
		attrs = append(attrs, xmlAttr{"w:before", strconv.Itoa(*s.Before)})
	}
	if s.After != nil {
		attrs = append(attrs, xmlAttr{"w:after", strconv.Itoa(*s.After)})
	}
	if s.BeforeAutospacing != nil {
		attrs = append(attrs, xmlAttr{"w:beforeAutospacing", strconv.FormatBool(*s.BeforeAutospacing)})
	}
	if s.AfterAutospacing != nil {
		attrs = append(attrs, xmlAttr{"w:afterAutospacing", strconv.FormatBool(*s.AfterAutospacing)})
	}
	if s.Line != nil {
		attrs = append(attrs, xmlAttr{"w:line", strconv.Itoa(*s.Line)})
	}
	if s.Rule != nil {
		attrs = append(attrs, xmlAttr{"w:lineRule", s.Rule.String()})
	}
	e.empty("w:spacing", attrs...)
}

func (e *encoder) indentation(ind *ParagraphIndentation) {
	var attrs []xmlAttr
	for _, field := range []struct {
		name  string
		value *int
	}{
		{"w:firstLine", ind.FirstLine},
		{"w:firstLineChars", ind.FirstLineChars},
		{"w:right", ind.Right},
		{"w:rightChars", ind.RightChars},
		{"w:left", ind.Left},
		{"w:leftChars", ind.LeftChars},
		{"w:hanging", ind.Hanging},
		{"w:hangingChars", ind.HangingChars},
		{"w:start", ind.Start},
		{"w:end", ind.End},
	} {
		if field.value != nil {
			attrs = append(attrs, xmlAttr{field.name, strconv.Itoa(*field.value)})
		}
	}
	e.empty("w:ind", attrs...)
}

// escapeText writes s with the markup-significant characters escaped.
// Only the minimal set is replaced so decoded text re-encodes verbatim.
func escapeText(sb *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteRune(r)
		}
	}
}

// escapeAttr writes s escaped for use inside a double-quoted attribute.
func escapeAttr(sb *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteRune(r)
		}
	}
}
