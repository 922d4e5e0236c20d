package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypesPartitionSchemas(t *testing.T) {
	all := NodeTypes()
	require.Len(t, all, 23)

	seen := make(map[NodeType]SchemaType)
	counts := map[SchemaType]int{}
	for _, s := range SchemaTypes() {
		owned := NodeTypesOf(s)
		assert.NotEmpty(t, owned, "schema %s owns no node types", s)
		for _, n := range owned {
			prev, dup := seen[n]
			assert.False(t, dup, "%s owned by both %s and %s", n, prev, s)
			seen[n] = s
		}
		counts[s] = len(owned)
	}

	assert.Len(t, seen, len(all))
	assert.Equal(t, map[SchemaType]int{
		Narrative: 4, Descriptive: 4, Informative: 5, Instructional: 6, Argumentative: 5,
	}, counts)
}

func TestConnectionTypesPartitionSchemas(t *testing.T) {
	all := ConnectionTypes()
	require.Len(t, all, 14)

	seen := make(map[ConnectionType]bool)
	counts := map[SchemaType]int{}
	for _, s := range SchemaTypes() {
		for _, c := range ConnectionTypesOf(s) {
			assert.False(t, seen[c], "%s listed twice", c)
			seen[c] = true
		}
		counts[s] = len(ConnectionTypesOf(s))
	}

	assert.Len(t, seen, len(all))
	assert.Equal(t, map[SchemaType]int{
		Narrative: 3, Descriptive: 2, Informative: 4, Instructional: 2, Argumentative: 3,
	}, counts)
}

func TestDefinitionOfIsTotal(t *testing.T) {
	for _, n := range NodeTypes() {
		def := NodeDefinitionOf(n)
		assert.NotEqual(t, UnknownNodeDefinition.Description, def.Description, n)
		assert.NotEmpty(t, def.Characteristics, n)
		assert.NotEmpty(t, def.Usage, n)
	}
	for _, c := range ConnectionTypes() {
		def := ConnectionDefinitionOf(c)
		assert.NotEqual(t, UnknownConnectionDefinition.Description, def.Description, c)
		assert.NotEmpty(t, def.Example, c)
		assert.Equal(t, Directed, DirectionalityOf(c))
		assert.NotEmpty(t, AllowedNodePairs(c), c)
	}

	unknownNode := NodeDefinitionOf(NodeType("EVENT"))
	assert.Equal(t, "No definition available", unknownNode.Description)
	assert.Equal(t, []string{}, unknownNode.Characteristics)
	assert.Equal(t, "Unknown usage", unknownNode.Usage)

	unknownConn := ConnectionDefinitionOf(ConnectionType("RELATED_TO"))
	assert.Equal(t, "No definition available", unknownConn.Description)
	assert.Equal(t, "No example available", unknownConn.Example)
	assert.Nil(t, AllowedNodePairs(ConnectionType("RELATED_TO")))
}

func TestDefinitionsAreCopies(t *testing.T) {
	def := NodeDefinitionOf(Character)
	def.Characteristics[0] = "mutated"
	assert.NotEqual(t, "mutated", NodeDefinitionOf(Character).Characteristics[0])
}

func TestParseIsCaseSensitive(t *testing.T) {
	s, ok := ParseSchemaType("narrative")
	assert.True(t, ok)
	assert.Equal(t, Narrative, s)

	_, ok = ParseSchemaType("Narrative")
	assert.False(t, ok)
	_, ok = ParseSchemaType("nonexistent")
	assert.False(t, ok)

	n, ok := ParseNodeType("COUNTER_ARGUMENT")
	assert.True(t, ok)
	assert.Equal(t, CounterArgument, n)
	_, ok = ParseNodeType("character")
	assert.False(t, ok)

	c, ok := ParseConnectionType("IS")
	assert.True(t, ok)
	assert.Equal(t, Is, c)
}

func TestCategories(t *testing.T) {
	s, ok := NodeCategory(Warning)
	assert.True(t, ok)
	assert.Equal(t, Instructional, s)

	s, ok = ConnectionCategory(IsExample)
	assert.True(t, ok)
	assert.Equal(t, Informative, s)

	_, ok = NodeCategory(NodeType("EVENT"))
	assert.False(t, ok)

	byCat := NodeTypesByCategory()
	assert.Equal(t, []NodeType{Character, Location, Object, Group}, byCat[Narrative])
	assert.Equal(t, []ConnectionType{Has, Is}, ConnectionTypesByCategory()[Descriptive])
}

func TestPairListed(t *testing.T) {
	assert.True(t, PairListed(ActionRelation, Character, Object))
	assert.False(t, PairListed(ActionRelation, Character, Character))
	assert.True(t, PairListed(SupportingRelation, Fact, Claim))
}

func TestAllDefinitionsKeyedByLiteral(t *testing.T) {
	nodes := AllNodeDefinitions()
	assert.Len(t, nodes, 23)
	assert.Contains(t, nodes, "GOAL")

	conns := AllConnectionDefinitions()
	assert.Len(t, conns, 14)
	assert.Contains(t, conns, "CONCLUSION_RELATION")
}
