package quill

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"sort"

	"github.com/spf13/afero"
)

// Fixed part paths inside the document container.
const (
	DocumentPath     = "word/document.xml"
	packageRelsPath  = "_rels/.rels"
	contentTypesPath = "[Content_Types].xml"
	documentRelsPath = "word/_rels/document.xml.rels"
)

// Static boilerplate parts. Only the document relationships part is
// generated; everything else is fixed.
const (
	packageRelsContent = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	contentTypesContent = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
    <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
    <Default Extension="xml" ContentType="application/xml"/>
    <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
)

// Package reads and writes document containers. The filesystem is
// pluggable so tests can run against an in-memory one.
type Package struct {
	fs afero.Fs
}

// NewPackage returns a package backed by the operating system
// filesystem.
func NewPackage() *Package {
	return &Package{fs: afero.NewOsFs()}
}

// NewPackageWithFs returns a package backed by the given filesystem.
func NewPackageWithFs(fs afero.Fs) *Package {
	return &Package{fs: fs}
}

// Load opens the container at path and decodes its main document part.
func (p *Package) Load(path string) (*Document, error) {
	doc, _, err := p.LoadWithRelationships(path)
	return doc, err
}

// LoadWithRelationships loads the document and a registry seeded with
// the hyperlink relationships already recorded in the container, so
// that ids generated afterwards never collide with existing ones.
func (p *Package) LoadWithRelationships(path string) (*Document, *Relationships, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, nil, NewDocumentError("load", path, err)
	}
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, NewDocumentError("load", path, err)
	}

	part := findPart(archive, DocumentPath)
	if part == nil {
		return nil, nil, NewMissingPartError(DocumentPath)
	}
	content, err := readPart(part)
	if err != nil {
		return nil, nil, NewDocumentError("load", path, err)
	}
	doc, err := Decode(content)
	if err != nil {
		return nil, nil, err
	}

	rels := NewRelationships()
	if relsPart := findPart(archive, documentRelsPath); relsPart != nil {
		relsContent, err := readPart(relsPart)
		if err != nil {
			return nil, nil, NewDocumentError("load", path, err)
		}
		seedRelationships(rels, []byte(relsContent))
	}

	GetLogger().Debug("loaded %d paragraphs and %d relationships from %s",
		len(doc.Paragraphs), rels.Len(), path)
	return doc, rels, nil
}

// Save encodes the document and writes a fresh container to path. The
// registry provides the hyperlink relationships part; nil means no
// hyperlink relationships.
func (p *Package) Save(doc *Document, rels *Relationships, path string) error {
	if rels == nil {
		rels = NewRelationships()
	}
	content, err := Encode(doc)
	if err != nil {
		return err
	}

	file, err := p.fs.Create(path)
	if err != nil {
		return NewDocumentError("save", path, err)
	}
	defer file.Close()

	archive := zip.NewWriter(file)
	parts := []struct {
		name    string
		content string
	}{
		{packageRelsPath, packageRelsContent},
		{contentTypesPath, contentTypesContent},
		{documentRelsPath, rels.RelationshipsXML()},
		{DocumentPath, xmlHeader + content},
	}
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err == nil {
			_, err = w.Write([]byte(part.content))
		}
		if err != nil {
			archive.Close()
			return NewDocumentError("save", path, err)
		}
	}
	if err := archive.Close(); err != nil {
		return NewDocumentError("save", path, err)
	}

	GetLogger().Debug("saved %d paragraphs to %s", len(doc.Paragraphs), path)
	return nil
}

// Parts lists the part names of the container at path in sorted order.
func (p *Package) Parts(path string) ([]string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, NewDocumentError("inspect", path, err)
	}
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewDocumentError("inspect", path, err)
	}
	names := make([]string, 0, len(archive.File))
	for _, f := range archive.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the container at path from the operating system filesystem
// and decodes its main document part.
func Load(path string) (*Document, error) {
	return NewPackage().Load(path)
}

// Save writes the document as a fresh container at path on the
// operating system filesystem.
func Save(doc *Document, rels *Relationships, path string) error {
	return NewPackage().Save(doc, rels, path)
}

func findPart(archive *zip.Reader, name string) *zip.File {
	for _, f := range archive.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readPart(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type relationshipEntry struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type relationshipsPart struct {
	XMLName      xml.Name            `xml:"Relationships"`
	Relationship []relationshipEntry `xml:"Relationship"`
}

// seedRelationships records the hyperlink entries of an existing
// relationships part. Other relationship types (styles, numbering,
// images) stay out of the registry; they are regenerated as boilerplate
// or not modeled at all. An unparseable part is skipped rather than
// failing the load.
func seedRelationships(rels *Relationships, data []byte) {
	var part relationshipsPart
	if err := xml.Unmarshal(data, &part); err != nil {
		GetLogger().Warn("skipping unparseable relationships part: %v", err)
		return
	}
	for _, rel := range part.Relationship {
		if rel.Type == hyperlinkRelationType {
			rels.Add(rel.ID, rel.Target)
		}
	}
}
