// Package quill reads and writes DOCX word-processing documents.
//
// A DOCX file is a zip container holding a handful of XML parts. quill
// models the main document part (word/document.xml) as a tree of
// paragraphs, runs and hyperlinks with their formatting properties,
// decodes that part into the model, and encodes the model back into
// conformant XML wrapped in a fresh container.
//
// The typical round trip:
//
//	pkg := quill.NewPackage()
//	doc, rels, err := pkg.LoadWithRelationships("report.docx")
//	// ... inspect or mutate doc ...
//	err = pkg.Save(doc, rels, "report-out.docx")
//
// Decode and Encode operate on the raw document XML without touching the
// container, for callers that manage packaging themselves.
//
// Tables, images and the style/numbering definition parts are not
// modeled; numbering definitions are referenced only by their numeric
// ids. Unknown markup is skipped during decode so that documents using
// unmodeled features still load.
package quill
