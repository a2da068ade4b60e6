package quill

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	pkg := NewPackageWithFs(afero.NewMemMapFs())
	doc := buildMixedDocument(t)

	require.NoError(t, pkg.Save(doc, nil, "out.docx"))

	loaded, err := pkg.Load("out.docx")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSaveWritesAllParts(t *testing.T) {
	pkg := NewPackageWithFs(afero.NewMemMapFs())
	require.NoError(t, pkg.Save(NewDocument(), nil, "out.docx"))

	names, err := pkg.Parts("out.docx")
	require.NoError(t, err)
	assert.Equal(t, []string{
		contentTypesPath,
		packageRelsPath,
		documentRelsPath,
		DocumentPath,
	}, names)
}

func TestLoadSeedsHyperlinkRelationships(t *testing.T) {
	fs := afero.NewMemMapFs()
	pkg := NewPackageWithFs(fs)

	rels := NewRelationships()
	doc := NewDocument()
	p := NewParagraph()
	p.AddHyperlink(NewHyperlinkWithText(rels, "https://example.com", "link"))
	doc.AddParagraph(p)
	require.NoError(t, pkg.Save(doc, rels, "out.docx"))

	loaded, loadedRels, err := pkg.LoadWithRelationships("out.docx")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	target, ok := loadedRels.Target("rId1")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", target)
	assert.Equal(t, "rId2", loadedRels.GenerateID("https://example.com/more"),
		"ids generated after a load must not collide with existing ones")
}

func TestLoadMissingFile(t *testing.T) {
	pkg := NewPackageWithFs(afero.NewMemMapFs())

	_, err := pkg.Load("absent.docx")
	require.Error(t, err)
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "load", docErr.Operation)
	assert.Equal(t, "absent.docx", docErr.Path)
}

func TestLoadMissingDocumentPart(t *testing.T) {
	fs := afero.NewMemMapFs()

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	w, err := archive.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<other/>"))
	require.NoError(t, err)
	require.NoError(t, archive.Close())
	require.NoError(t, afero.WriteFile(fs, "broken.docx", buf.Bytes(), 0o644))

	_, err = NewPackageWithFs(fs).Load("broken.docx")
	require.Error(t, err)
	assert.True(t, IsMissingPartError(err))
}

func TestLoadNotAnArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain.docx", []byte("not a zip"), 0o644))

	_, err := NewPackageWithFs(fs).Load("plain.docx")
	require.Error(t, err)
	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestRewriteIsByteStable(t *testing.T) {
	pkg := NewPackageWithFs(afero.NewMemMapFs())
	doc := buildMixedDocument(t)
	require.NoError(t, pkg.Save(doc, nil, "first.docx"))

	loaded, rels, err := pkg.LoadWithRelationships("first.docx")
	require.NoError(t, err)
	require.NoError(t, pkg.Save(loaded, rels, "second.docx"))

	first := documentPart(t, pkg.fs, "first.docx")
	second := documentPart(t, pkg.fs, "second.docx")
	assert.Equal(t, first, second)
}

func documentPart(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	part := findPart(archive, DocumentPath)
	require.NotNil(t, part)
	content, err := readPart(part)
	require.NoError(t, err)
	return content
}
