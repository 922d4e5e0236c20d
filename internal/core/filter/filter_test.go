package filter

import (
	"encoding/json"
	"testing"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structured = `{
	"topic_1": {
		"title": "Hiking",
		"original_transcript": "Alice: I love hiking. Bob: Me too, especially in the mountains.",
		"schema_type": "narrative",
		"schema_selection": {"selected_schema": "narrative", "confidence": "high", "reasoning": "..."},
		"topic": "Hiking",
		"nodes": [
			{"id": "node_1", "type": "CHARACTER", "content": "Alice"},
			{"id": "node_2", "type": "CHARACTER", "content": "Bob"}
		],
		"connections": [
			{"id": "conn_1", "type": "ACTION_RELATION", "source_node_id": "node_1", "target_node_id": "node_2"}
		]
	},
	"topic_2": {
		"title": "Broken",
		"original_transcript": "...",
		"error": "boom",
		"nodes": [],
		"connections": []
	}
}`

func TestFilterJSON(t *testing.T) {
	doc, err := FilterJSON([]byte(structured))
	require.NoError(t, err)

	got, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"topic_1": {
			"title": "Hiking",
			"nodes": [
				{"id": "node_1", "content": "Alice", "speaker": ""},
				{"id": "node_2", "content": "Bob", "speaker": ""}
			],
			"connections": [
				{"id": "conn_1", "content": "", "source_node_id": "node_1", "target_node_id": "node_2"}
			]
		},
		"topic_2": {"title": "Broken", "nodes": [], "connections": []}
	}`, string(got))
	assert.Equal(t, []string{"topic_1", "topic_2"}, doc.Keys())
}

func TestFilterIsIdempotent(t *testing.T) {
	once, err := FilterJSON([]byte(structured))
	require.NoError(t, err)
	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice, err := FilterJSON(onceJSON)
	require.NoError(t, err)
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)

	assert.Equal(t, string(onceJSON), string(twiceJSON))
}

func TestFilterToleratesMalformedEntries(t *testing.T) {
	doc, err := FilterJSON([]byte(`{
		"topic_1": {"nodes": [{"id": 7, "speaker": null}, "junk"], "connections": {"id": "x"}},
		"topic_2": "not an object"
	}`))
	require.NoError(t, err)

	t1, _ := doc.Get("topic_1")
	assert.Equal(t, "", t1.Title)
	assert.Equal(t, []model.FilteredNode{{ID: "7"}, {}}, t1.Nodes)
	assert.Empty(t, t1.Connections)

	t2, _ := doc.Get("topic_2")
	assert.Equal(t, model.FilteredTopic{Nodes: []model.FilteredNode{}, Connections: []model.FilteredConnection{}}, t2)
}

func TestFilterJSONRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "{", "[1,2]", `"text"`} {
		_, err := FilterJSON([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidDocument, in)
	}
}

func TestFilterTypedMatchesJSON(t *testing.T) {
	var doc model.StructuredDocument
	require.NoError(t, json.Unmarshal([]byte(structured), &doc))

	filtered := Filter(&doc)
	typed, err := json.Marshal(filtered)
	require.NoError(t, err)

	raw, err := FilterJSON([]byte(structured))
	require.NoError(t, err)
	require.Equal(t, raw.Keys(), filtered.Keys())
	for _, key := range raw.Keys() {
		want, _ := raw.Get(key)
		got, _ := filtered.Get(key)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-json +typed):\n%s", key, diff)
		}
	}
	fromRaw, err := json.Marshal(raw)
	require.NoError(t, err)

	assert.Equal(t, string(fromRaw), string(typed))
	assert.Equal(t, Stats{Topics: 2, Nodes: 2, Connections: 1}, Count(raw))
}
