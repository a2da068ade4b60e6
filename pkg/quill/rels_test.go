package quill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDSequence(t *testing.T) {
	rels := NewRelationships()

	assert.Equal(t, "rId1", rels.GenerateID("https://example.com/a"))
	assert.Equal(t, "rId2", rels.GenerateID("https://example.com/b"))
	assert.Equal(t, "rId3", rels.GenerateID("https://example.com/c"))

	assert.Equal(t, map[string]string{
		"rId1": "https://example.com/a",
		"rId2": "https://example.com/b",
		"rId3": "https://example.com/c",
	}, rels.Snapshot())
}

func TestRegistriesDoNotInterfere(t *testing.T) {
	first := NewRelationships()
	first.GenerateID("https://example.com/a")
	first.GenerateID("https://example.com/b")

	second := NewRelationships()
	assert.Equal(t, "rId1", second.GenerateID("https://example.com/c"))
}

func TestAddAdvancesCounter(t *testing.T) {
	rels := NewRelationships()
	rels.Add("rId5", "https://example.com")

	assert.Equal(t, "rId6", rels.GenerateID("https://example.com/next"))

	target, ok := rels.Target("rId5")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", target)
}

func TestAddNonSequentialID(t *testing.T) {
	rels := NewRelationships()
	rels.Add("customId", "https://example.com")

	assert.Equal(t, "rId1", rels.GenerateID("https://example.com/next"))
	assert.Equal(t, 2, rels.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	rels := NewRelationships()
	rels.GenerateID("https://example.com")

	snapshot := rels.Snapshot()
	snapshot["rId1"] = "tampered"

	target, ok := rels.Target("rId1")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", target)
}

func TestRelationshipsXML(t *testing.T) {
	rels := NewRelationships()
	rels.Add("rId10", "https://example.com/ten")
	rels.Add("rId2", "https://example.com/two?a=1&b=2")

	xml := rels.RelationshipsXML()

	assert.True(t, strings.HasPrefix(xml, xmlHeader))
	assert.Contains(t, xml, `Id="rId2"`)
	assert.Contains(t, xml, `Target="https://example.com/two?a=1&amp;b=2"`)
	assert.Contains(t, xml, `TargetMode="External"`)
	assert.Less(t, strings.Index(xml, `Id="rId2"`), strings.Index(xml, `Id="rId10"`),
		"sequential ids must be ordered numerically, not lexically")

	assert.Equal(t, xml, rels.RelationshipsXML(), "output must be deterministic")
}

func TestRelationshipsXMLEmpty(t *testing.T) {
	xml := NewRelationships().RelationshipsXML()

	assert.Contains(t, xml, "</Relationships>")
	assert.NotContains(t, xml, "rId")
}
