// Package taxonomy holds the closed vocabulary used to describe a transcript
// as a graph: the five discourse schemas, the node types and the connection
// types each schema owns. All tables are fixed at init and never mutated.
package taxonomy

type SchemaType string

const (
	Narrative     SchemaType = "narrative"
	Descriptive   SchemaType = "descriptive"
	Informative   SchemaType = "informative"
	Instructional SchemaType = "instructional"
	Argumentative SchemaType = "argumentative"
)

// DefaultSchema is used whenever a classification does not name a known schema.
const DefaultSchema = Informative

var schemaTypes = []SchemaType{Narrative, Descriptive, Informative, Instructional, Argumentative}

// SchemaTypes returns every schema in declaration order.
func SchemaTypes() []SchemaType {
	return append([]SchemaType(nil), schemaTypes...)
}

// ParseSchemaType matches s exactly (case-sensitive) against the schema literals.
func ParseSchemaType(s string) (SchemaType, bool) {
	for _, t := range schemaTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (t SchemaType) Valid() bool {
	_, ok := ParseSchemaType(string(t))
	return ok
}

func (t SchemaType) String() string { return string(t) }

type NodeType string

const (
	Character NodeType = "CHARACTER"
	Location  NodeType = "LOCATION"
	Object    NodeType = "OBJECT"
	Group     NodeType = "GROUP"

	Subject   NodeType = "SUBJECT"
	Attribute NodeType = "ATTRIBUTE"
	Feature   NodeType = "FEATURE"
	Details   NodeType = "DETAILS"

	Concept     NodeType = "CONCEPT"
	Fact        NodeType = "FACT"
	Definition  NodeType = "DEFINITION"
	Example     NodeType = "EXAMPLE"
	Explanation NodeType = "EXPLANATION"

	Step      NodeType = "STEP"
	Action    NodeType = "ACTION"
	Tool      NodeType = "TOOL"
	Condition NodeType = "CONDITION"
	Warning   NodeType = "WARNING"
	Goal      NodeType = "GOAL"

	Claim           NodeType = "CLAIM"
	Argument        NodeType = "ARGUMENT"
	CounterArgument NodeType = "COUNTER_ARGUMENT"
	Evidence        NodeType = "EVIDENCE"
	Conclusion      NodeType = "CONCLUSION"
)

type ConnectionType string

const (
	ActionRelation   ConnectionType = "ACTION_RELATION"
	SpatialRelation  ConnectionType = "SPATIAL_RELATION"
	TemporalRelation ConnectionType = "TEMPORAL_RELATION"

	Has ConnectionType = "HAS"
	Is  ConnectionType = "IS"

	ConceptToConcept ConnectionType = "CONCEPT_TO_CONCEPT"
	IsDefinition     ConnectionType = "IS_DEFINITION"
	IsExample        ConnectionType = "IS_EXAMPLE"
	IsExplanation    ConnectionType = "IS_EXPLANATION"

	SequentialRelation  ConnectionType = "SEQUENTIAL_RELATION"
	ConditionalRelation ConnectionType = "CONDITIONAL_RELATION"

	SupportingRelation        ConnectionType = "SUPPORTING_RELATION"
	CounterSupportingRelation ConnectionType = "COUNTER_SUPPORTING_RELATION"
	ConclusionRelation        ConnectionType = "CONCLUSION_RELATION"
)

// Ownership of node and connection types. Each type belongs to exactly one
// schema; the order inside each slice is the order presented to the oracle.
var nodeCategories = map[SchemaType][]NodeType{
	Narrative:     {Character, Location, Object, Group},
	Descriptive:   {Subject, Attribute, Feature, Details},
	Informative:   {Concept, Fact, Definition, Example, Explanation},
	Instructional: {Step, Action, Tool, Condition, Warning, Goal},
	Argumentative: {Claim, Argument, CounterArgument, Evidence, Conclusion},
}

var connectionCategories = map[SchemaType][]ConnectionType{
	Narrative:     {ActionRelation, SpatialRelation, TemporalRelation},
	Descriptive:   {Has, Is},
	Informative:   {ConceptToConcept, IsDefinition, IsExample, IsExplanation},
	Instructional: {SequentialRelation, ConditionalRelation},
	Argumentative: {SupportingRelation, CounterSupportingRelation, ConclusionRelation},
}

// NodeTypes returns all node types grouped by schema, in schema order.
func NodeTypes() []NodeType {
	var out []NodeType
	for _, s := range schemaTypes {
		out = append(out, nodeCategories[s]...)
	}
	return out
}

// ConnectionTypes returns all connection types grouped by schema, in schema order.
func ConnectionTypes() []ConnectionType {
	var out []ConnectionType
	for _, s := range schemaTypes {
		out = append(out, connectionCategories[s]...)
	}
	return out
}

func ParseNodeType(s string) (NodeType, bool) {
	t := NodeType(s)
	_, ok := nodeDefinitions[t]
	return t, ok
}

func ParseConnectionType(s string) (ConnectionType, bool) {
	t := ConnectionType(s)
	_, ok := connectionDefinitions[t]
	return t, ok
}

func (t NodeType) Valid() bool {
	_, ok := nodeDefinitions[t]
	return ok
}

func (t ConnectionType) Valid() bool {
	_, ok := connectionDefinitions[t]
	return ok
}

// NodeTypesOf returns the node types owned by schema s. Unknown schemas own nothing.
func NodeTypesOf(s SchemaType) []NodeType {
	return append([]NodeType(nil), nodeCategories[s]...)
}

// ConnectionTypesOf returns the connection types owned by schema s.
func ConnectionTypesOf(s SchemaType) []ConnectionType {
	return append([]ConnectionType(nil), connectionCategories[s]...)
}

// NodeCategory reports which schema owns t.
func NodeCategory(t NodeType) (SchemaType, bool) {
	for _, s := range schemaTypes {
		for _, n := range nodeCategories[s] {
			if n == t {
				return s, true
			}
		}
	}
	return "", false
}

// ConnectionCategory reports which schema owns t.
func ConnectionCategory(t ConnectionType) (SchemaType, bool) {
	for _, s := range schemaTypes {
		for _, c := range connectionCategories[s] {
			if c == t {
				return s, true
			}
		}
	}
	return "", false
}

// NodeTypesByCategory is the introspection view of node ownership.
func NodeTypesByCategory() map[SchemaType][]NodeType {
	out := make(map[SchemaType][]NodeType, len(nodeCategories))
	for s := range nodeCategories {
		out[s] = NodeTypesOf(s)
	}
	return out
}

// ConnectionTypesByCategory is the introspection view of connection ownership.
func ConnectionTypesByCategory() map[SchemaType][]ConnectionType {
	out := make(map[SchemaType][]ConnectionType, len(connectionCategories))
	for s := range connectionCategories {
		out[s] = ConnectionTypesOf(s)
	}
	return out
}
