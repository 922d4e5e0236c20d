package taxonomy

type Directionality string

const (
	Directed   Directionality = "directed"
	Undirected Directionality = "undirected"
)

// NodePair is an illustrative (source, target) pairing for a connection type.
// Pairs are advisory; nothing rejects a connection whose endpoints are not listed.
type NodePair struct {
	Source NodeType `json:"source" yaml:"source" toml:"source"`
	Target NodeType `json:"target" yaml:"target" toml:"target"`
}

type ConnectionDefinition struct {
	Description     string   `json:"description" yaml:"description" toml:"description"`
	Characteristics []string `json:"characteristics" yaml:"characteristics" toml:"characteristics"`
	Usage           string   `json:"usage" yaml:"usage" toml:"usage"`
	Example         string   `json:"example" yaml:"example" toml:"example"`
}

var UnknownConnectionDefinition = ConnectionDefinition{
	Description:     "No definition available",
	Characteristics: []string{},
	Usage:           "Unknown usage",
	Example:         "No example available",
}

// ConnectionDefinitionOf never fails; see NodeDefinitionOf.
func ConnectionDefinitionOf(t ConnectionType) ConnectionDefinition {
	def, ok := connectionDefinitions[t]
	if !ok {
		def = UnknownConnectionDefinition
	}
	def.Characteristics = append([]string{}, def.Characteristics...)
	return def
}

func AllConnectionDefinitions() map[string]ConnectionDefinition {
	out := make(map[string]ConnectionDefinition, len(connectionDefinitions))
	for _, t := range ConnectionTypes() {
		out[string(t)] = ConnectionDefinitionOf(t)
	}
	return out
}

// DirectionalityOf is Directed for every connection type currently defined.
func DirectionalityOf(t ConnectionType) Directionality {
	return Directed
}

// AllowedNodePairs returns the example endpoint pairs for t, or nil.
func AllowedNodePairs(t ConnectionType) []NodePair {
	return append([]NodePair(nil), nodePairs[t]...)
}

// PairListed reports whether (source, target) appears in t's example pairs.
func PairListed(t ConnectionType, source, target NodeType) bool {
	for _, p := range nodePairs[t] {
		if p.Source == source && p.Target == target {
			return true
		}
	}
	return false
}

var connectionDefinitions = map[ConnectionType]ConnectionDefinition{
	ActionRelation: {
		Description: "Represents a relationship where one entity performs an action involving another entity",
		Characteristics: []string{
			"Subject-verb-object relationships",
			"Actions performed by characters",
			"Interactions between entities",
			"Agent-action-patient patterns",
		},
		Usage:   "Used in narrative schemas to connect characters/entities with their actions",
		Example: "CHARACTER --[ACTION_RELATION]--> OBJECT (e.g., 'John opened the door')",
	},
	SpatialRelation: {
		Description: "Represents spatial or locational relationships between entities",
		Characteristics: []string{
			"Location relationships (in, on, at, near)",
			"Spatial positioning",
			"Geographical relationships",
			"Where entities are located",
		},
		Usage:   "Used in narrative schemas to represent where entities are located",
		Example: "CHARACTER --[SPATIAL_RELATION]--> LOCATION (e.g., 'John is in the kitchen')",
	},
	TemporalRelation: {
		Description: "Represents temporal or time-based relationships between events or entities",
		Characteristics: []string{
			"Chronological sequences (before, after, during)",
			"Time-based ordering",
			"Temporal dependencies",
			"Event sequencing",
		},
		Usage:   "Used in narrative schemas to represent temporal ordering of events",
		Example: "EVENT1 --[TEMPORAL_RELATION]--> EVENT2 (e.g., 'Event A happened before Event B')",
	},

	Has: {
		Description: "Represents a possession or attribute relationship where one entity has a property",
		Characteristics: []string{
			"Possession relationships",
			"Attribute ownership",
			"Has-a relationships",
			"Property relationships",
		},
		Usage:   "Used in descriptive schemas to connect subjects with their attributes or features",
		Example: "SUBJECT --[HAS]--> ATTRIBUTE (e.g., 'The car has red color')",
	},
	Is: {
		Description: "Represents an identity or classification relationship",
		Characteristics: []string{
			"Identity relationships",
			"Classification (is-a relationships)",
			"Equivalence",
			"Type relationships",
		},
		Usage:   "Used in descriptive schemas to represent what something is or classify it",
		Example: "SUBJECT --[IS]--> FEATURE (e.g., 'The rose is a flower')",
	},

	ConceptToConcept: {
		Description: "Represents a relationship between two concepts",
		Characteristics: []string{
			"Conceptual relationships",
			"Related concepts",
			"Conceptual associations",
			"Topic relationships",
		},
		Usage:   "Used in informative schemas to connect related concepts",
		Example: "CONCEPT1 --[CONCEPT_TO_CONCEPT]--> CONCEPT2 (e.g., 'AI is related to Machine Learning')",
	},
	IsDefinition: {
		Description: "Represents a definition relationship where one entity defines another",
		Characteristics: []string{
			"Definition relationships",
			"What something means",
			"Term definitions",
			"Conceptual definitions",
		},
		Usage:   "Used in informative schemas to connect terms with their definitions",
		Example: "CONCEPT --[IS_DEFINITION]--> DEFINITION (e.g., 'AI is the simulation of human intelligence')",
	},
	IsExample: {
		Description: "Represents an example relationship where one entity exemplifies another",
		Characteristics: []string{
			"Example relationships",
			"Illustrative instances",
			"Concrete examples",
			"Instance-of relationships",
		},
		Usage:   "Used in informative schemas to connect concepts with examples",
		Example: "CONCEPT --[IS_EXAMPLE]--> EXAMPLE (e.g., 'ChatGPT is an example of AI')",
	},
	IsExplanation: {
		Description: "Represents an explanation relationship where one entity explains another",
		Characteristics: []string{
			"Explanation relationships",
			"Clarification relationships",
			"How/why explanations",
			"Elaboration relationships",
		},
		Usage:   "Used in informative schemas to connect concepts with their explanations",
		Example: "CONCEPT --[IS_EXPLANATION]--> EXPLANATION (e.g., 'Neural networks explain how AI learns')",
	},

	SequentialRelation: {
		Description: "Represents a sequential relationship where one step follows another",
		Characteristics: []string{
			"Step ordering (first, then, next)",
			"Sequential dependencies",
			"Procedural ordering",
			"Before/after in procedures",
		},
		Usage:   "Used in instructional schemas to represent the order of steps",
		Example: "STEP1 --[SEQUENTIAL_RELATION]--> STEP2 (e.g., 'Step 1 must be done before Step 2')",
	},
	ConditionalRelation: {
		Description: "Represents a conditional relationship where one entity depends on another",
		Characteristics: []string{
			"If-then relationships",
			"Dependencies",
			"Prerequisites",
			"Conditional logic",
		},
		Usage:   "Used in instructional schemas to represent conditions or prerequisites",
		Example: "ACTION --[CONDITIONAL_RELATION]--> CONDITION (e.g., 'You can proceed if the condition is met')",
	},

	SupportingRelation: {
		Description: "Represents a supporting relationship where one entity supports another",
		Characteristics: []string{
			"Support relationships",
			"Evidence supporting claims",
			"Arguments supporting positions",
			"Strengthening relationships",
		},
		Usage:   "Used in argumentative schemas to connect claims with supporting evidence or arguments",
		Example: "EVIDENCE --[SUPPORTING_RELATION]--> CLAIM (e.g., 'Data supports the claim')",
	},
	CounterSupportingRelation: {
		Description: "Represents a counter-supporting relationship where one entity opposes another",
		Characteristics: []string{
			"Opposition relationships",
			"Contradicting evidence",
			"Counterarguments",
			"Weakening relationships",
		},
		Usage:   "Used in argumentative schemas to connect claims with counterarguments or opposing evidence",
		Example: "COUNTER_ARGUMENT --[COUNTER_SUPPORTING_RELATION]--> CLAIM (e.g., 'This argument contradicts the claim')",
	},
	ConclusionRelation: {
		Description: "Represents a conclusion relationship where one entity leads to a conclusion",
		Characteristics: []string{
			"Conclusion relationships",
			"Logical conclusions",
			"Inference relationships",
			"Therefore relationships",
		},
		Usage:   "Used in argumentative schemas to connect arguments/evidence with conclusions",
		Example: "ARGUMENT --[CONCLUSION_RELATION]--> CONCLUSION (e.g., 'The argument leads to this conclusion')",
	},
}

var nodePairs = map[ConnectionType][]NodePair{
	ActionRelation:   {{Character, Object}, {Character, Location}, {Group, Object}},
	SpatialRelation:  {{Character, Location}, {Object, Location}, {Group, Location}},
	TemporalRelation: {{Character, Character}, {Object, Object}},

	Has: {{Subject, Attribute}, {Subject, Feature}, {Subject, Details}},
	Is:  {{Subject, Feature}, {Subject, Attribute}},

	ConceptToConcept: {{Concept, Concept}},
	IsDefinition:     {{Concept, Definition}},
	IsExample:        {{Concept, Example}, {Fact, Example}},
	IsExplanation:    {{Concept, Explanation}, {Fact, Explanation}},

	SequentialRelation:  {{Step, Step}, {Action, Action}},
	ConditionalRelation: {{Action, Condition}, {Step, Condition}, {Action, Tool}},

	SupportingRelation:        {{Evidence, Claim}, {Argument, Claim}, {Fact, Claim}},
	CounterSupportingRelation: {{CounterArgument, Claim}, {Evidence, Claim}},
	ConclusionRelation:        {{Argument, Conclusion}, {Evidence, Conclusion}, {Claim, Conclusion}},
}
