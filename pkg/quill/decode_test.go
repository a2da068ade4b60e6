package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapBody(body string) string {
	return `<w:document xmlns:w="` + wordprocessingNS + `" xmlns:r="` + relationshipNS + `">` +
		`<w:body>` + body + `</w:body></w:document>`
}

func singleRun(t *testing.T, doc *Document) Run {
	t.Helper()
	require.Len(t, doc.Paragraphs, 1)
	require.Len(t, doc.Paragraphs[0].Children, 1)
	run, ok := doc.Paragraphs[0].Children[0].(Run)
	require.True(t, ok)
	return run
}

func TestDecodeBooleanMarkers(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   bool
	}{
		{"bare marker is on", `<w:b/>`, true},
		{"explicit off", `<w:b w:val="off"/>`, false},
		{"explicit zero", `<w:b w:val="0"/>`, false},
		{"explicit false", `<w:b w:val="false"/>`, false},
		{"explicit one", `<w:b w:val="1"/>`, true},
		{"unrecognized value is on", `<w:b w:val="banana"/>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(wrapBody(`<w:p><w:r><w:rPr>` + tt.marker + `</w:rPr><w:t>x</w:t></w:r></w:p>`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, singleRun(t, doc).Properties.Bold)
		})
	}
}

func TestDecodePreservedWhitespace(t *testing.T) {
	doc, err := Decode(wrapBody(`<w:p><w:r><w:t xml:space="preserve"> </w:t></w:r></w:p>`))
	require.NoError(t, err)

	run := singleRun(t, doc)
	assert.Equal(t, " ", run.Text)
	assert.True(t, run.PreserveSpace)
}

func TestDecodeHyperlinkThenRun(t *testing.T) {
	doc, err := Decode(wrapBody(
		`<w:p>` +
			`<w:hyperlink r:id="rId1"><w:r><w:t>link</w:t></w:r></w:hyperlink>` +
			`<w:r><w:t> after</w:t></w:r>` +
			`</w:p>`))
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 1)
	children := doc.Paragraphs[0].Children
	require.Len(t, children, 2)

	link, ok := children[0].(Hyperlink)
	require.True(t, ok)
	assert.Equal(t, "rId1", link.ID)
	require.Len(t, link.Runs, 1)
	assert.Equal(t, "link", link.Runs[0].Text)

	run, ok := children[1].(Run)
	require.True(t, ok)
	assert.Equal(t, " after", run.Text)
}

func TestDecodeRunDefaultsInParagraphProperties(t *testing.T) {
	doc, err := Decode(wrapBody(
		`<w:p><w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:pPr>` +
			`<w:r><w:t>x</w:t></w:r></w:p>`))
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 1)
	defaults := doc.Paragraphs[0].Properties.RunDefaults
	require.NotNil(t, defaults)
	assert.True(t, defaults.Bold)
	require.NotNil(t, defaults.Size)
	assert.Equal(t, 28, *defaults.Size)

	run := singleRun(t, doc)
	assert.False(t, run.Properties.HasFormatting(), "paragraph defaults must not leak into runs")
}

func TestDecodeOutlineLevelIsLenient(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"numeric", "3", 3},
		{"non-numeric degrades to zero", "deep", 0},
		{"negative degrades to zero", "-2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(wrapBody(`<w:p><w:pPr><w:outlineLvl w:val="` + tt.value + `"/></w:pPr></w:p>`))
			require.NoError(t, err)
			require.Len(t, doc.Paragraphs, 1)
			lvl := doc.Paragraphs[0].Properties.OutlineLevel
			require.NotNil(t, lvl)
			assert.Equal(t, tt.want, *lvl)
		})
	}
}

func TestDecodeNumericAttributeFailure(t *testing.T) {
	_, err := Decode(wrapBody(`<w:p><w:r><w:rPr><w:sz w:val="big"/></w:rPr><w:t>x</w:t></w:r></w:p>`))
	require.Error(t, err)
	assert.True(t, IsAttributeError(err))
}

func TestDecodeUnknownMarker(t *testing.T) {
	content := wrapBody(`<w:p><w:r><w:rPr><w:shadow/></w:rPr><w:t>x</w:t></w:r></w:p>`)

	doc, err := Decode(content)
	require.NoError(t, err)
	assert.Equal(t, "x", singleRun(t, doc).Text)

	_, err = DecodeStrict(content)
	require.Error(t, err)
	assert.True(t, IsUnsupportedError(err))
}

func TestDecodeLegacyMarkerNames(t *testing.T) {
	doc, err := Decode(wrapBody(
		`<w:p><w:pPr>` +
			`<w:windowControl/>` +
			`<w:toplinePunct/>` +
			`<w:textFlow w:val="tbRl"/>` +
			`</w:pPr>` +
			`<w:r><w:rPr><w:valign w:val="superscript"/></w:rPr><w:t>x</w:t></w:r></w:p>`))
	require.NoError(t, err)

	props := doc.Paragraphs[0].Properties
	assert.True(t, props.WidowControl)
	assert.True(t, props.TopLinePunct)
	require.NotNil(t, props.TextDirection)
	assert.Equal(t, DirectionTbRl, *props.TextDirection)

	run := singleRun(t, doc)
	require.NotNil(t, run.Properties.VerticalAlign)
	assert.Equal(t, AlignSuperscript, *run.Properties.VerticalAlign)
}

func TestDecodeFontHintInference(t *testing.T) {
	doc, err := Decode(wrapBody(`<w:p><w:r><w:rPr><w:rFonts w:eastAsia="MS Mincho"/></w:rPr><w:t>x</w:t></w:r></w:p>`))
	require.NoError(t, err)

	fonts := singleRun(t, doc).Properties.Fonts
	require.NotNil(t, fonts)
	assert.Equal(t, SlotEastAsian, fonts.Hint)
	assert.Equal(t, "MS Mincho", fonts.EastAsian)
}

func TestDecodeExplicitFontHintWins(t *testing.T) {
	doc, err := Decode(wrapBody(
		`<w:p><w:r><w:rPr><w:rFonts w:hint="cs" w:ascii="Arial" w:cs="David"/></w:rPr><w:t>x</w:t></w:r></w:p>`))
	require.NoError(t, err)

	fonts := singleRun(t, doc).Properties.Fonts
	require.NotNil(t, fonts)
	assert.Equal(t, SlotComplexScript, fonts.Hint)

	name, err := fonts.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "David", name)
}

func TestDecodeIndentationExclusivity(t *testing.T) {
	_, err := Decode(wrapBody(`<w:p><w:pPr><w:ind w:firstLine="240" w:hanging="240"/></w:pPr></w:p>`))
	require.Error(t, err)
	assert.True(t, IsMutuallyExclusiveError(err))
}

func TestDecodeTextOutsideRunIsDropped(t *testing.T) {
	doc, err := Decode(wrapBody(`<w:p>stray<w:r><w:t>kept</w:t></w:r></w:p>`))
	require.NoError(t, err)
	assert.Equal(t, "kept", doc.PlainText())
}

func TestDecodeMalformedMarkup(t *testing.T) {
	_, err := Decode(`<w:document><w:body><w:p><w:r>`)
	require.Error(t, err)
	assert.True(t, IsMarkupError(err))
}

func TestDecodeEmptyBody(t *testing.T) {
	doc, err := Decode(wrapBody(``))
	require.NoError(t, err)
	assert.Empty(t, doc.Paragraphs)
}

func TestDecodeParagraphProperties(t *testing.T) {
	doc, err := Decode(wrapBody(
		`<w:p><w:pPr>` +
			`<w:keepNext/>` +
			`<w:pBdr><w:top w:val="double" w:sz="4" w:space="1" w:color="FF0000"/></w:pBdr>` +
			`<w:shd w:val="pct50" w:fill="FFF700"/>` +
			`<w:tabs><w:tab w:val="right" w:pos="9360" w:leader="dot"/></w:tabs>` +
			`<w:numPr><w:ilvl w:val="1"/><w:numId w:val="7"/></w:numPr>` +
			`<w:spacing w:before="120" w:after="240" w:line="360" w:lineRule="auto"/>` +
			`<w:ind w:left="720" w:firstLine="240"/>` +
			`<w:jc w:val="both"/>` +
			`</w:pPr><w:r><w:t>x</w:t></w:r></w:p>`))
	require.NoError(t, err)

	props := doc.Paragraphs[0].Properties
	assert.True(t, props.KeepNext)

	require.NotNil(t, props.Borders)
	require.NotNil(t, props.Borders.Top)
	assert.Equal(t, BorderDouble, props.Borders.Top.Style)
	assert.Equal(t, 4, *props.Borders.Top.Size)
	assert.Equal(t, "FF0000", props.Borders.Top.Color.Value())

	require.NotNil(t, props.Shading)
	assert.Equal(t, "pct50", props.Shading.Val)
	assert.Equal(t, "FFF700", props.Shading.Fill.Value())

	require.Len(t, props.Tabs, 1)
	assert.Equal(t, TabRight, props.Tabs[0].Alignment)
	assert.Equal(t, 9360, props.Tabs[0].Position)
	assert.Equal(t, LeaderDot, *props.Tabs[0].Leader)

	assert.Equal(t, &NumberingReference{Level: 1, ID: 7}, props.Numbering)

	require.NotNil(t, props.Spacing)
	assert.Equal(t, 120, *props.Spacing.Before)
	assert.Equal(t, RuleAuto, *props.Spacing.Rule)

	require.NotNil(t, props.Indentation)
	assert.Equal(t, 720, *props.Indentation.Left)
	assert.Equal(t, 240, *props.Indentation.FirstLine)

	require.NotNil(t, props.Justification)
	assert.Equal(t, JustifyBoth, *props.Justification)
}
