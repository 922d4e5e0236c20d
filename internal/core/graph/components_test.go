package graph

import (
	"testing"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func nodes(ids ...string) []model.Node {
	out := make([]model.Node, len(ids))
	for i, id := range ids {
		out[i] = model.Node{ID: id}
	}
	return out
}

func TestComponents(t *testing.T) {
	conns := []model.Connection{
		{SourceNodeID: "1", TargetNodeID: "2"},
		{SourceNodeID: "3", TargetNodeID: "2"}, // direction does not matter
		{SourceNodeID: "4", TargetNodeID: "ghost"},
	}

	comps := Components(nodes("1", "2", "3", "4"), conns)

	assert.Len(t, comps, 2)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, comps[0])
	assert.Equal(t, []string{"4"}, comps[1])
}

func TestComponentsEmpty(t *testing.T) {
	assert.Empty(t, Components(nil, nil))
}

func TestIsolated(t *testing.T) {
	conns := []model.Connection{{SourceNodeID: "1", TargetNodeID: "2"}}
	assert.Equal(t, []string{"3"}, Isolated(nodes("1", "2", "3"), conns))
	assert.Empty(t, Isolated(nodes("1", "2"), conns))
}
