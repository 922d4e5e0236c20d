package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	hikingTranscript = "Alice: I love hiking. Bob: Me too, especially in the mountains."

	narrativeSelection = `{"selected_schema":"narrative","confidence":"high","reasoning":"..."}`

	hikingStructure = `{
		"topic": "Hiking",
		"nodes": [
			{"id": "node_1", "type": "CHARACTER", "content": "Alice"},
			{"id": "node_2", "type": "CHARACTER", "content": "Bob"}
		],
		"connections": [
			{"id": "conn_1", "type": "ACTION_RELATION", "source_node_id": "node_1", "target_node_id": "node_2"}
		]
	}`
)

func topicsOf(pairs ...string) *model.Topics {
	topics := model.NewOrdered[model.Topic]()
	for i := 0; i+1 < len(pairs); i += 2 {
		topics.Set(model.TopicKey(topics.Len()+1), model.Topic{Title: pairs[i], Transcript: pairs[i+1]})
	}
	return topics
}

func TestRunEndToEnd(t *testing.T) {
	m := llm.NewMockClient(
		`{"topic_1": {"title": "Hiking", "transcript": "`+hikingTranscript+`"}}`,
		narrativeSelection,
		hikingStructure,
	)
	p := NewPipeline(m, config.Default(), nil)

	res, err := p.Run(context.Background(), hikingTranscript)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 3, m.Calls())

	structured, ok := res.Structured.Get("topic_1")
	require.True(t, ok)
	assert.Equal(t, "narrative", structured.SchemaType)
	assert.Equal(t, "high", structured.SchemaSelection.Confidence)
	assert.Equal(t, hikingTranscript, structured.OriginalTranscript)

	filtered, ok := res.Filtered.Get("topic_1")
	require.True(t, ok)
	got, err := json.Marshal(filtered)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "Hiking",
		"nodes": [
			{"id": "node_1", "content": "Alice", "speaker": ""},
			{"id": "node_2", "content": "Bob", "speaker": ""}
		],
		"connections": [
			{"id": "conn_1", "content": "", "source_node_id": "node_1", "target_node_id": "node_2"}
		]
	}`, string(got))

	assert.Equal(t, Summary{
		Topics:       1,
		Nodes:        2,
		Connections:  1,
		Warnings:     len(structured.Warnings),
		SchemaCounts: map[string]int{"narrative": 1},
	}, res.Summary)
}

func TestStructureIsolatesFailures(t *testing.T) {
	boom := errors.New("extraction exploded")
	m := llm.NewMockClient(narrativeSelection, hikingStructure, narrativeSelection).
		PushErr(boom).
		Push(narrativeSelection).
		Push(hikingStructure)
	p := NewPipeline(m, config.Default(), nil)

	doc, summary, err := p.Structure(context.Background(), topicsOf("One", "a", "Two", "b", "Three", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"topic_1", "topic_2", "topic_3"}, doc.Keys())

	one, _ := doc.Get("topic_1")
	two, _ := doc.Get("topic_2")
	three, _ := doc.Get("topic_3")
	assert.False(t, one.Failed())
	assert.Len(t, one.Nodes, 2)
	assert.True(t, two.Failed())
	assert.Contains(t, two.Error, "extraction exploded")
	assert.Equal(t, "b", two.OriginalTranscript)
	assert.Empty(t, two.Nodes)
	assert.False(t, three.Failed())

	assert.Equal(t, 3, summary.Topics)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 4, summary.Nodes)

	raw, err := json.Marshal(two)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Two", "original_transcript": "b", "error": "failed to generate structure: extraction exploded", "nodes": [], "connections": []}`, string(raw))
}

func TestStructureFallsBackToInformative(t *testing.T) {
	m := llm.NewMockClient(
		`{"selected_schema":"nonexistent","confidence":"low","reasoning":"?"}`,
		`{"topic": "T", "nodes": [], "connections": []}`,
	)
	p := NewPipeline(m, config.Default(), nil)

	doc, _, err := p.Structure(context.Background(), topicsOf("T", "some facts"))
	require.NoError(t, err)

	r, _ := doc.Get("topic_1")
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "informative", r.SchemaType)
	assert.Equal(t, "nonexistent", r.SchemaSelection.SelectedSchema)
	assert.Contains(t, m.Requests[1].Messages[0].Content, "Schema Type: informative")
}

func TestStructureKeepsOddlyTypedReplies(t *testing.T) {
	m := llm.NewMockClient(
		`{"selected_schema": 3, "confidence": "low", "reasoning": ""}`,
		`{"topic": "T", "nodes": [{"id": 1, "type": "FACT", "content": "water boils"}], "connections": []}`,
	)
	p := NewPipeline(m, config.Default(), nil)

	doc, summary, err := p.Structure(context.Background(), topicsOf("T", "water boils at 100 degrees"))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Failed)

	r, _ := doc.Get("topic_1")
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "informative", r.SchemaType)
	assert.Equal(t, "3", r.SchemaSelection.SelectedSchema)
	require.Len(t, r.Nodes, 1)
	assert.Equal(t, "1", r.Nodes[0].ID)
}

func TestStructureSkipsEmptyTopics(t *testing.T) {
	m := llm.NewMockClient(narrativeSelection, hikingStructure)
	p := NewPipeline(m, config.Default(), nil)

	doc, summary, err := p.Structure(context.Background(), topicsOf("Empty", "", "Hiking", hikingTranscript))
	require.NoError(t, err)
	assert.Equal(t, []string{"topic_2"}, doc.Keys())
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 2, m.Calls())
}

type panicky struct {
	next  llm.LLMClient
	calls int
}

func (p *panicky) Generate(ctx context.Context, req llm.Request) (string, error) {
	p.calls++
	if p.calls == 1 {
		panic("nil map write")
	}
	return p.next.Generate(ctx, req)
}

func TestStructureRecoversPanics(t *testing.T) {
	client := &panicky{next: llm.NewMockClient(narrativeSelection, hikingStructure)}
	p := NewPipeline(client, config.Default(), nil)

	doc, summary, err := p.Structure(context.Background(), topicsOf("Bad", "x", "Good", "y"))
	require.NoError(t, err)

	bad, _ := doc.Get("topic_1")
	assert.Equal(t, "panic: nil map write", bad.Error)
	good, _ := doc.Get("topic_2")
	assert.False(t, good.Failed())
	assert.Equal(t, 1, summary.Failed)
}

func TestStructureStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(llm.NewMockClient(), config.Default(), nil)
	doc, _, err := p.Structure(ctx, topicsOf("A", "a", "B", "b"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, doc.Len())
}

func TestRunSegmentationFailureIsFatal(t *testing.T) {
	m := llm.NewMockClient("sorry, no JSON today")
	p := NewPipeline(m, config.Default(), nil)

	_, err := p.Run(context.Background(), hikingTranscript)
	require.Error(t, err)
	assert.Equal(t, 1, m.Calls())
}

func TestSummaryPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Summary{
		Topics:       3,
		Failed:       1,
		Nodes:        5,
		Connections:  4,
		SchemaCounts: map[string]int{"narrative": 1, "argumentative": 1},
	}.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Total topics processed: 3")
	assert.Contains(t, out, "Failed topics: 1")
	assert.Contains(t, out, "Total nodes extracted: 5")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("argumentative")), bytes.Index(buf.Bytes(), []byte("narrative")))
}
