package quill

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const hyperlinkRelationType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"

// Relationships allocates relationship ids and records id-to-target
// mappings for a single document. It is not safe for concurrent use;
// callers sharing one instance across goroutines must serialize access
// themselves. Two independent instances never interfere.
type Relationships struct {
	counter int
	links   map[string]string
}

// NewRelationships returns an empty registry whose first generated id
// will be "rId1".
func NewRelationships() *Relationships {
	return &Relationships{links: make(map[string]string)}
}

// GenerateID allocates the next sequential id, records the target under
// it and returns it. Each call yields a new id; it is never idempotent.
func (r *Relationships) GenerateID(target string) string {
	r.counter++
	id := fmt.Sprintf("rId%d", r.counter)
	r.links[id] = target
	return id
}

// Add seeds the registry with an existing mapping, typically while
// loading a document. Ids matching the sequential pattern advance the
// counter so that later generated ids never collide; other ids are
// recorded as-is.
func (r *Relationships) Add(id, target string) {
	if n, ok := sequentialSuffix(id); ok && n > r.counter {
		r.counter = n
	}
	r.links[id] = target
}

func sequentialSuffix(id string) (int, bool) {
	numStr, ok := strings.CutPrefix(id, "rId")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(numStr)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Len returns the number of recorded relationships.
func (r *Relationships) Len() int {
	return len(r.links)
}

// Target returns the target recorded under id.
func (r *Relationships) Target(id string) (string, bool) {
	target, ok := r.links[id]
	return target, ok
}

// Snapshot returns a copy of the full id-to-target mapping.
func (r *Relationships) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(r.links))
	for id, target := range r.links {
		snapshot[id] = target
	}
	return snapshot
}

// sortedIDs returns all recorded ids, sequential ids first in numeric
// order, then the rest lexically. The ordering keeps the generated
// relationships part stable across saves.
func (r *Relationships) sortedIDs() []string {
	ids := make([]string, 0, len(r.links))
	for id := range r.links {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, iok := sequentialSuffix(ids[i])
		nj, jok := sequentialSuffix(ids[j])
		if iok && jok {
			return ni < nj
		}
		if iok != jok {
			return iok
		}
		return ids[i] < ids[j]
	})
	return ids
}

// RelationshipsXML renders the document relationships part, one
// external hyperlink entry per recorded link.
func (r *Relationships) RelationshipsXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, id := range r.sortedIDs() {
		sb.WriteString(`<Relationship Id="`)
		escapeAttr(&sb, id)
		sb.WriteString(`" Type="` + hyperlinkRelationType + `" Target="`)
		escapeAttr(&sb, r.links[id])
		sb.WriteString(`" TargetMode="External"/>`)
	}
	sb.WriteString("</Relationships>")
	return sb.String()
}
