package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/core/selection"
	"github.com/agenthands/schemagraph/internal/core/taxonomy"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hiking = "Alice: I love hiking. Bob: Me too, especially in the mountains."

func narrativeSelection() selection.Result {
	return selection.Result{
		Selection: model.Selection{SelectedSchema: "narrative", Confidence: "high", Reasoning: "..."},
		Schema:    taxonomy.Narrative,
		Conversation: []llm.Message{
			llm.System("pick a schema"),
			llm.User("chunk"),
			llm.Assistant(`{"selected_schema":"narrative"}`),
		},
	}
}

func TestExtract(t *testing.T) {
	m := llm.NewMockClient(`Here you go: {
		"topic": "Hiking",
		"nodes": [
			{"id": "node_1", "type": "CHARACTER", "content": "Alice", "speaker": "Alice", "text_reference": "Alice: I love hiking."},
			{"id": "node_2", "type": "CHARACTER", "content": "Bob", "speaker": "Bob", "text_reference": "Bob: Me too,"}
		],
		"connections": [
			{"id": "conn_1", "type": "ACTION_RELATION", "content": "agrees", "source_node_id": "node_1", "target_node_id": "node_2"}
		]
	}`)
	ex := NewExtractor(m, config.Default(), nil)

	st, warnings, err := ex.Extract(context.Background(), model.Topic{Title: "Hiking", Transcript: hiking}, narrativeSelection())
	require.NoError(t, err)
	// CHARACTER -> CHARACTER is not an example pair for ACTION_RELATION.
	assert.Equal(t, []model.WarningKind{model.WarnUnlistedNodePair}, kinds(warnings))
	assert.Equal(t, "Hiking", st.Topic)
	require.Len(t, st.Nodes, 2)
	assert.Equal(t, "Bob", st.Nodes[1].Content)
	require.Len(t, st.Connections, 1)
	assert.Equal(t, "node_2", st.Connections[0].TargetNodeID)

	msgs := m.Requests[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Schema Type: narrative")
	assert.Contains(t, msgs[0].Content, `"CHARACTER"`)
	assert.NotContains(t, msgs[0].Content, `"CLAIM"`)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
	assert.Equal(t, llm.RoleUser, msgs[3].Role)
	assert.Contains(t, msgs[3].Content, hiking)
	assert.Contains(t, msgs[3].Content, `"topic": "Hiking"`)
}

func TestExtractDefaultsTopicAndSlices(t *testing.T) {
	m := llm.NewMockClient(`{"nodes": null}`)
	st, _, err := NewExtractor(m, config.Default(), nil).Extract(context.Background(),
		model.Topic{Title: "Quiet", Transcript: "..."}, narrativeSelection())
	require.NoError(t, err)
	assert.Equal(t, "Quiet", st.Topic)
	assert.NotNil(t, st.Nodes)
	assert.NotNil(t, st.Connections)
}

func TestExtractReadsNonStringScalars(t *testing.T) {
	m := llm.NewMockClient(`{
		"topic": "T",
		"nodes": [
			{"id": 1, "type": "CHARACTER", "content": "Alice", "speaker": null},
			{"id": 2, "type": "OBJECT", "content": 42, "text_reference": false}
		],
		"connections": [
			{"id": "c1", "type": "ACTION_RELATION", "source_node_id": 1, "target_node_id": 2}
		]
	}`)

	st, warnings, err := NewExtractor(m, config.Default(), nil).Extract(context.Background(),
		model.Topic{Title: "T", Transcript: hiking}, narrativeSelection())
	require.NoError(t, err)
	require.Len(t, st.Nodes, 2)
	assert.Equal(t, model.Node{ID: "1", Type: "CHARACTER", Content: "Alice"}, st.Nodes[0])
	assert.Equal(t, "2", st.Nodes[1].ID)
	assert.Equal(t, "42", st.Nodes[1].Content)
	require.Len(t, st.Connections, 1)
	assert.Equal(t, "1", st.Connections[0].SourceNodeID)
	assert.Equal(t, "2", st.Connections[0].TargetNodeID)
	assert.NotContains(t, kinds(warnings), model.WarnDanglingReference)
}

func TestExtractToleratesOddLists(t *testing.T) {
	m := llm.NewMockClient(`{"nodes": {"id": "x"}, "connections": ["junk"]}`)
	st, _, err := NewExtractor(m, config.Default(), nil).Extract(context.Background(),
		model.Topic{Title: "T", Transcript: "x"}, narrativeSelection())
	require.NoError(t, err)
	assert.Empty(t, st.Nodes)
	assert.Equal(t, []model.Connection{{}}, st.Connections)
}

func TestExtractErrors(t *testing.T) {
	topic := model.Topic{Title: "T", Transcript: "x"}

	_, _, err := NewExtractor(llm.NewMockClient("nope"), config.Default(), nil).Extract(context.Background(), topic, narrativeSelection())
	assert.ErrorIs(t, err, ErrMalformedResponse)

	boom := errors.New("boom")
	_, _, err = NewExtractor((&llm.MockClient{}).PushErr(boom), config.Default(), nil).Extract(context.Background(), topic, narrativeSelection())
	assert.ErrorIs(t, err, boom)
}

func kinds(ws []model.Warning) []model.WarningKind {
	var out []model.WarningKind
	for _, w := range ws {
		out = append(out, w.Kind)
	}
	return out
}

func TestValidate(t *testing.T) {
	s := schema.MustGet(taxonomy.Narrative)

	st := model.Structure{
		Nodes: []model.Node{
			{ID: "n1", Type: "CHARACTER", TextReference: "Alice:  I love"},
			{ID: "n1", Type: "CHARACTER"},
			{ID: "n2", Type: "CLAIM"},
			{ID: "n3", Type: "LOCATION", TextReference: "in the desert"},
		},
		Connections: []model.Connection{
			{ID: "c1", Type: "ACTION_RELATION", SourceNodeID: "n1", TargetNodeID: "ghost"},
			{ID: "c2", Type: "SUPPORTS", SourceNodeID: "n1", TargetNodeID: "n2"},
		},
	}

	got := kinds(Validate(s, hiking, st))
	assert.Contains(t, got, model.WarnDuplicateID)
	assert.Contains(t, got, model.WarnUnknownNodeType)
	assert.Contains(t, got, model.WarnUnknownConnectionType)
	assert.Contains(t, got, model.WarnDanglingReference)
	assert.Contains(t, got, model.WarnIsolatedNode)
	assert.Contains(t, got, model.WarnDisconnectedGraph)
	assert.Contains(t, got, model.WarnTextReferenceNotFound)
}

func TestValidateUnlistedPair(t *testing.T) {
	s := schema.MustGet(taxonomy.Narrative)
	pairs := taxonomy.AllowedNodePairs(taxonomy.ActionRelation)
	require.NotEmpty(t, pairs)

	var unlisted [2]taxonomy.NodeType
	found := false
	for _, a := range s.AllowedNodeTypes() {
		for _, b := range s.AllowedNodeTypes() {
			if !taxonomy.PairListed(taxonomy.ActionRelation, a, b) {
				unlisted, found = [2]taxonomy.NodeType{a, b}, true
			}
		}
	}
	require.True(t, found)

	st := model.Structure{
		Nodes: []model.Node{{ID: "a", Type: string(unlisted[0])}, {ID: "b", Type: string(unlisted[1])}},
		Connections: []model.Connection{
			{ID: "c", Type: string(taxonomy.ActionRelation), SourceNodeID: "a", TargetNodeID: "b"},
		},
	}
	assert.Equal(t, []model.WarningKind{model.WarnUnlistedNodePair}, kinds(Validate(s, "", st)))

	st.Nodes[0].Type, st.Nodes[1].Type = string(pairs[0].Source), string(pairs[0].Target)
	assert.Empty(t, Validate(s, "", st))
}
