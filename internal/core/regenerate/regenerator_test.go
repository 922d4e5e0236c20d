package regenerate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *model.FilteredDocument {
	doc := model.NewOrdered[model.FilteredTopic]()
	doc.Set("topic_1", model.FilteredTopic{
		Title:       "Hiking",
		Nodes:       []model.FilteredNode{{ID: "node_1", Content: "Alice"}},
		Connections: []model.FilteredConnection{},
	})
	return doc
}

func TestRegenerate(t *testing.T) {
	m := llm.NewMockClient("  Alice\nI love hiking.\n\n")
	r := NewRegenerator(m, config.Default(), nil)

	text, err := r.Regenerate(context.Background(), sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, "Alice\nI love hiking.\n", text)

	req := m.Requests[0]
	assert.False(t, req.JSON)
	assert.InDelta(t, 0.7, req.Temperature, 1e-6)
	assert.Contains(t, req.Messages[1].Content, `"title": "Hiking"`)
}

func TestRegenerateErrors(t *testing.T) {
	r := NewRegenerator(llm.NewMockClient("   "), config.Default(), nil)
	_, err := r.Regenerate(context.Background(), sampleDoc())
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)

	_, err = r.Regenerate(context.Background(), model.NewOrdered[model.FilteredTopic]())
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "regenerated_podcast.txt"), OutputPath("out"))
}
