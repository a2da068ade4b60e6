package quill

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// decodeState names a scope the decoder can be inside. The decoder
// keeps a stack of these so containment checks are explicit instead of
// scattered boolean bookkeeping.
type decodeState int

const (
	stateParagraph decodeState = iota
	stateParagraphProps
	stateHyperlink
	stateRun
	stateRunProps
	stateBorders
	stateTabs
	stateNumbering
)

// Decode parses main-part markup into a Document in a single pass.
// Unknown markers are skipped unless strict mode is enabled in the
// global configuration. Markup syntax errors and numeric attribute
// failures abort the decode; there is no partial-document recovery.
func Decode(content string) (*Document, error) {
	return decode(content, GetGlobalConfig().StrictMode)
}

// DecodeStrict parses like Decode but fails on any marker the model
// does not cover, regardless of the configured mode.
func DecodeStrict(content string) (*Document, error) {
	return decode(content, true)
}

func decode(content string, strict bool) (*Document, error) {
	d := &decoder{strict: strict, log: GetLogger()}
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewMarkupError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := d.openElement(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			d.closeElement(t)
		case xml.CharData:
			d.text(string(t))
		}
	}
	d.closeParagraph()
	doc := d.doc
	return &doc, nil
}

// decoder holds the in-progress document plus one scratch slot per
// structure that can be under construction. The tokenizer reports
// self-closing elements as an open immediately followed by a close, so
// bare markers and attribute-only markers share the open handlers.
type decoder struct {
	doc      Document
	par      *Paragraph
	parProps *ParagraphProperties
	link     *Hyperlink
	run      *Run
	runProps *RunProperties

	// redirected marks a run-properties scope opened inside
	// paragraph-properties scope; it fills the paragraph's default run
	// properties instead of a run's own.
	redirected bool

	borders   *ParagraphBorders
	tabs      []TabStop
	numbering *NumberingReference

	stack  []decodeState
	strict bool
	log    *Logger
}

func (d *decoder) push(s decodeState) {
	d.stack = append(d.stack, s)
}

func (d *decoder) pop(s decodeState) {
	if n := len(d.stack); n > 0 && d.stack[n-1] == s {
		d.stack = d.stack[:n-1]
	}
}

func (d *decoder) in(s decodeState) bool {
	for i := len(d.stack) - 1; i >= 0; i-- {
		if d.stack[i] == s {
			return true
		}
	}
	return false
}

func (d *decoder) inRunProps() bool {
	return d.in(stateRunProps) && d.runProps != nil
}

func (d *decoder) inParProps() bool {
	return d.in(stateParagraphProps) && !d.in(stateRunProps) && d.parProps != nil
}

// text appends character data to the open run. Text outside a run has
// no defined meaning and is dropped.
func (d *decoder) text(s string) {
	if d.run != nil {
		d.run.Text += s
	}
}

func (d *decoder) openElement(t xml.StartElement) error {
	switch t.Name.Local {
	case "document", "body":
		return nil

	case "t":
		if d.run != nil {
			if v, ok := findAttr(t, "space"); ok && v == "preserve" {
				d.run.PreserveSpace = true
			}
		}
		return nil

	case "p":
		if d.par != nil {
			d.doc.Paragraphs = append(d.doc.Paragraphs, *d.par)
		}
		d.par = &Paragraph{}
		d.parProps = &ParagraphProperties{}
		d.push(stateParagraph)
		return nil

	case "pPr":
		d.push(stateParagraphProps)
		return nil

	case "hyperlink":
		// Hyperlinks sit next to runs as paragraph children, so a
		// pending bare run is flushed into the paragraph first.
		// Hyperlinks do not nest.
		if d.run != nil {
			if d.par != nil {
				d.par.Children = append(d.par.Children, *d.run)
			}
			d.run = nil
			d.runProps = nil
		}
		link := &Hyperlink{}
		if v, ok := findAttr(t, "id"); ok {
			link.ID = v
		}
		d.link = link
		d.push(stateHyperlink)
		return nil

	case "r":
		if d.run != nil {
			if d.link != nil {
				d.link.Runs = append(d.link.Runs, *d.run)
			} else if d.par != nil {
				d.par.Children = append(d.par.Children, *d.run)
			}
		}
		d.run = &Run{}
		d.runProps = &RunProperties{}
		d.push(stateRun)
		return nil

	case "rPr":
		if d.in(stateParagraphProps) {
			d.runProps = &RunProperties{}
			d.redirected = true
		}
		d.push(stateRunProps)
		return nil

	case "b":
		if d.inRunProps() {
			d.runProps.Bold = boolAttr(t)
		}
		return nil
	case "i":
		if d.inRunProps() {
			d.runProps.Italic = boolAttr(t)
		}
		return nil
	case "strike":
		if d.inRunProps() {
			d.runProps.Strike = boolAttr(t)
		}
		return nil
	case "dstrike":
		if d.inRunProps() {
			d.runProps.DoubleStrike = boolAttr(t)
		}
		return nil
	case "u":
		if d.inRunProps() {
			if v, ok := findAttr(t, "val"); ok {
				d.runProps.SetUnderline(ParseUnderlineStyle(v))
			}
		}
		return nil
	case "color":
		if d.inRunProps() {
			if v, ok := findAttr(t, "val"); ok {
				d.runProps.SetColor(NewHexColor(v))
			}
		}
		return nil
	case "sz":
		if d.inRunProps() {
			n, err := intAttr(t, "val")
			if err != nil {
				return err
			}
			d.runProps.Size = n
		}
		return nil
	case "rFonts":
		if d.inRunProps() {
			d.fontSet(t)
		}
		return nil
	case "highlight":
		if d.inRunProps() {
			if v, ok := findAttr(t, "val"); ok {
				d.runProps.SetHighlight(ParseHighlightPalette(v))
			}
		}
		return nil
	case "vertAlign", "valign":
		if d.inRunProps() {
			if v, ok := findAttr(t, "val"); ok {
				d.runProps.SetVerticalAlign(ParseVerticalAlign(v))
			}
		}
		return nil
	case "spacing":
		if d.inRunProps() {
			n, err := intAttr(t, "val")
			if err != nil {
				return err
			}
			d.runProps.Spacing = n
			return nil
		}
		if d.inParProps() {
			return d.paragraphSpacing(t)
		}
		return nil

	case "keepNext":
		if d.inParProps() {
			d.parProps.KeepNext = boolAttr(t)
		}
		return nil
	case "keepLines":
		if d.inParProps() {
			d.parProps.KeepLines = boolAttr(t)
		}
		return nil
	case "pageBreakBefore":
		if d.inParProps() {
			d.parProps.PageBreakBefore = boolAttr(t)
		}
		return nil
	case "widowControl", "windowControl":
		if d.inParProps() {
			d.parProps.WidowControl = boolAttr(t)
		}
		return nil
	case "suppressLineNumbers":
		if d.inParProps() {
			d.parProps.SuppressLineNumbers = boolAttr(t)
		}
		return nil
	case "suppressAutoHyphens":
		if d.inParProps() {
			d.parProps.SuppressAutoHyphens = boolAttr(t)
		}
		return nil
	case "wordWrap":
		if d.inParProps() {
			d.parProps.WordWrap = boolAttr(t)
		}
		return nil
	case "topLinePunct", "toplinePunct":
		if d.inParProps() {
			d.parProps.TopLinePunct = boolAttr(t)
		}
		return nil
	case "autoSpaceDE":
		if d.inParProps() {
			d.parProps.AutoSpaceDE = boolAttr(t)
		}
		return nil
	case "autoSpaceDN":
		if d.inParProps() {
			d.parProps.AutoSpaceDN = boolAttr(t)
		}
		return nil
	case "bidi":
		if d.inParProps() {
			d.parProps.Bidi = boolAttr(t)
		}
		return nil
	case "snapToGrid":
		if d.inParProps() {
			d.parProps.SnapToGrid = boolAttr(t)
		}
		return nil
	case "contextualSpacing":
		if d.inParProps() {
			d.parProps.ContextualSpacing = boolAttr(t)
		}
		return nil
	case "mirrorIndents":
		if d.inParProps() {
			d.parProps.MirrorIndents = boolAttr(t)
		}
		return nil
	case "suppressOverlap":
		if d.inParProps() {
			d.parProps.SuppressOverlap = boolAttr(t)
		}
		return nil

	case "pBdr":
		if d.inParProps() {
			d.borders = &ParagraphBorders{}
			d.push(stateBorders)
		}
		return nil
	case "top", "bottom", "left", "right", "between":
		if d.in(stateBorders) && d.borders != nil {
			return d.borderSide(t)
		}
		return nil
	case "shd":
		if d.inParProps() {
			d.shading(t)
		}
		return nil
	case "tabs":
		if d.inParProps() {
			d.tabs = nil
			d.push(stateTabs)
		}
		return nil
	case "tab":
		if d.in(stateTabs) {
			return d.tabStop(t)
		}
		return nil
	case "numPr":
		if d.inParProps() {
			d.numbering = &NumberingReference{}
			d.push(stateNumbering)
		}
		return nil
	case "ilvl":
		if d.in(stateNumbering) && d.numbering != nil {
			n, err := intAttr(t, "val")
			if err != nil {
				return err
			}
			if n != nil {
				d.numbering.Level = *n
			}
		}
		return nil
	case "numId":
		if d.in(stateNumbering) && d.numbering != nil {
			n, err := intAttr(t, "val")
			if err != nil {
				return err
			}
			if n != nil {
				d.numbering.ID = *n
			}
		}
		return nil
	case "ind":
		if d.inParProps() {
			return d.indentation(t)
		}
		return nil
	case "jc":
		if d.inParProps() {
			if v, ok := findAttr(t, "val"); ok {
				j := ParseJustification(v)
				d.parProps.Justification = &j
			}
		}
		return nil
	case "textDirection", "textFlow":
		if d.inParProps() {
			if v, ok := findAttr(t, "val"); ok {
				dir := ParseTextDirection(v)
				d.parProps.TextDirection = &dir
			}
		}
		return nil
	case "textAlignment":
		if d.inParProps() {
			if v, ok := findAttr(t, "val"); ok {
				a := ParseTextAlignment(v)
				d.parProps.TextAlignment = &a
			}
		}
		return nil
	case "textboxTightWrap":
		if d.inParProps() {
			if v, ok := findAttr(t, "val"); ok {
				w := ParseTightWrap(v)
				d.parProps.TightWrap = &w
			}
		}
		return nil
	case "outlineLvl":
		// Lenient on purpose: a non-numeric outline level degrades to 0
		// instead of aborting the decode.
		if d.inParProps() {
			if v, ok := findAttr(t, "val"); ok {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					n = 0
				}
				d.parProps.OutlineLevel = &n
			}
		}
		return nil

	default:
		if d.strict {
			return NewUnsupportedError(t.Name.Local)
		}
		d.log.Debug("skipping unsupported element <%s>", t.Name.Local)
		return nil
	}
}

func (d *decoder) closeElement(t xml.EndElement) {
	switch t.Name.Local {
	case "p":
		d.pop(stateParagraph)
		d.closeParagraph()

	case "pPr":
		d.pop(stateParagraphProps)
		if d.par != nil && d.parProps != nil {
			d.par.Properties = *d.parProps
		}
		d.parProps = nil

	case "rPr":
		d.pop(stateRunProps)
		if d.redirected {
			if d.parProps != nil && d.runProps != nil {
				d.parProps.RunDefaults = d.runProps
			}
			d.runProps = nil
			d.redirected = false
		}

	case "r":
		d.pop(stateRun)
		if d.run != nil {
			if d.runProps != nil {
				d.run.Properties = *d.runProps
				d.runProps = nil
			}
			if d.link != nil {
				d.link.Runs = append(d.link.Runs, *d.run)
			} else if d.par != nil {
				d.par.Children = append(d.par.Children, *d.run)
			}
			d.run = nil
		}

	case "hyperlink":
		d.pop(stateHyperlink)
		if d.link != nil {
			if d.run != nil {
				if d.runProps != nil {
					d.run.Properties = *d.runProps
					d.runProps = nil
				}
				d.link.Runs = append(d.link.Runs, *d.run)
				d.run = nil
			}
			if d.par != nil {
				d.par.Children = append(d.par.Children, *d.link)
			}
			d.link = nil
		}

	case "pBdr":
		d.pop(stateBorders)
		if d.parProps != nil {
			d.parProps.Borders = d.borders
		}
		d.borders = nil

	case "tabs":
		d.pop(stateTabs)
		if d.parProps != nil {
			d.parProps.Tabs = d.tabs
		}
		d.tabs = nil

	case "numPr":
		d.pop(stateNumbering)
		if d.parProps != nil {
			d.parProps.Numbering = d.numbering
		}
		d.numbering = nil
	}
}

// closeParagraph folds a still-open hyperlink, then a still-open bare
// run, into the paragraph and pushes it into the document. It runs on
// every paragraph close and once at end of input, so trailing content
// of a truncated document is never dropped.
func (d *decoder) closeParagraph() {
	if d.par == nil {
		d.link = nil
		d.run = nil
		d.runProps = nil
		d.parProps = nil
		return
	}
	if d.link != nil {
		if d.run != nil {
			d.link.Runs = append(d.link.Runs, *d.run)
			d.run = nil
		}
		d.par.Children = append(d.par.Children, *d.link)
		d.link = nil
	} else if d.run != nil {
		d.par.Children = append(d.par.Children, *d.run)
		d.run = nil
	}
	d.doc.Paragraphs = append(d.doc.Paragraphs, *d.par)
	d.par = nil
	d.parProps = nil
	d.runProps = nil
}

func (d *decoder) fontSet(t xml.StartElement) {
	f := d.runProps.Fonts
	if f == nil {
		f = &FontSet{}
	}
	hintSeen := false
	for _, a := range t.Attr {
		switch a.Name.Local {
		case "hint":
			f.Hint = ParseFontSlot(a.Value)
			hintSeen = true
		case "ascii":
			f.ASCII = a.Value
		case "hAnsi":
			f.HighANSI = a.Value
		case "eastAsia":
			f.EastAsian = a.Value
		case "cs":
			f.ComplexScript = a.Value
		case "asciiTheme":
			f.ASCIITheme = a.Value
		case "hAnsiTheme":
			f.HighANSITheme = a.Value
		case "eastAsiaTheme":
			f.EastAsianTheme = a.Value
		case "csTheme":
			f.ComplexScriptTheme = a.Value
		}
	}
	// The serialized form carries only the hint-selected slot, often
	// without an explicit hint attribute. A single populated slot then
	// identifies the hint unambiguously.
	if !hintSeen && f.Hint == SlotDefault {
		if slots := f.populatedSlots(); len(slots) == 1 {
			f.Hint = slots[0]
		}
	}
	d.runProps.Fonts = f
}

func (d *decoder) borderSide(t xml.StartElement) error {
	side := &BorderSide{}
	if v, ok := findAttr(t, "val"); ok {
		side.Style = ParseBorderStyle(v)
	}
	if v, ok := findAttr(t, "color"); ok {
		c := NewHexColor(v)
		side.Color = &c
	}
	var err error
	if side.Size, err = intAttr(t, "sz"); err != nil {
		return err
	}
	if side.Space, err = intAttr(t, "space"); err != nil {
		return err
	}
	switch t.Name.Local {
	case "top":
		d.borders.Top = side
	case "bottom":
		d.borders.Bottom = side
	case "left":
		d.borders.Left = side
	case "right":
		d.borders.Right = side
	case "between":
		d.borders.Between = side
	}
	return nil
}

func (d *decoder) shading(t xml.StartElement) {
	sh := Shading{}
	if v, ok := findAttr(t, "val"); ok {
		sh.Val = v
	}
	if v, ok := findAttr(t, "color"); ok {
		c := NewHexColor(v)
		sh.Color = &c
	}
	if v, ok := findAttr(t, "fill"); ok {
		c := NewHexColor(v)
		sh.Fill = &c
	}
	d.parProps.Shading = &sh
}

func (d *decoder) tabStop(t xml.StartElement) error {
	tab := TabStop{}
	if v, ok := findAttr(t, "val"); ok {
		tab.Alignment = ParseTabAlignment(v)
	}
	pos, err := intAttr(t, "pos")
	if err != nil {
		return err
	}
	if pos != nil {
		tab.Position = *pos
	}
	if v, ok := findAttr(t, "leader"); ok {
		l := ParseTabLeader(v)
		tab.Leader = &l
	}
	d.tabs = append(d.tabs, tab)
	return nil
}

func (d *decoder) paragraphSpacing(t xml.StartElement) error {
	sp := ParagraphSpacing{}
	var err error
	if sp.Before, err = intAttr(t, "before"); err != nil {
		return err
	}
	if sp.After, err = intAttr(t, "after"); err != nil {
		return err
	}
	sp.BeforeAutospacing = boolPtrAttr(t, "beforeAutospacing")
	sp.AfterAutospacing = boolPtrAttr(t, "afterAutospacing")
	if sp.Line, err = intAttr(t, "line"); err != nil {
		return err
	}
	if v, ok := findAttr(t, "lineRule"); ok {
		r := ParseLineRule(v)
		sp.Rule = &r
	}
	d.parProps.Spacing = &sp
	return nil
}

func (d *decoder) indentation(t xml.StartElement) error {
	ind := ParagraphIndentation{}
	var err error
	for _, field := range []struct {
		name string
		dest **int
	}{
		{"left", &ind.Left},
		{"leftChars", &ind.LeftChars},
		{"right", &ind.Right},
		{"rightChars", &ind.RightChars},
		{"firstLine", &ind.FirstLine},
		{"firstLineChars", &ind.FirstLineChars},
		{"hanging", &ind.Hanging},
		{"hangingChars", &ind.HangingChars},
		{"start", &ind.Start},
		{"end", &ind.End},
	} {
		if *field.dest, err = intAttr(t, field.name); err != nil {
			return err
		}
	}
	validated, err := NewParagraphIndentation(ind)
	if err != nil {
		return err
	}
	d.parProps.Indentation = validated
	return nil
}

func findAttr(t xml.StartElement, name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// boolAttr decodes a bare boolean marker: an explicit off/0/false value
// means false; any other value, or no value attribute at all, means
// true.
func boolAttr(t xml.StartElement) bool {
	v, ok := findAttr(t, "val")
	if !ok {
		return true
	}
	switch v {
	case "off", "0", "false":
		return false
	default:
		return true
	}
}

func boolPtrAttr(t xml.StartElement, name string) *bool {
	v, ok := findAttr(t, name)
	if !ok {
		return nil
	}
	b := parseBool(v)
	return &b
}

func intAttr(t xml.StartElement, name string) (*int, error) {
	v, ok := findAttr(t, name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, NewAttributeError(t.Name.Local, name, err)
	}
	return &n, nil
}
