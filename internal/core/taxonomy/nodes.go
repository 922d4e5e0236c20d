package taxonomy

// NodeDefinition describes a node type to the oracle.
type NodeDefinition struct {
	Description     string   `json:"description" yaml:"description" toml:"description"`
	Characteristics []string `json:"characteristics" yaml:"characteristics" toml:"characteristics"`
	Usage           string   `json:"usage" yaml:"usage" toml:"usage"`
}

// UnknownNodeDefinition is returned for types outside the taxonomy.
var UnknownNodeDefinition = NodeDefinition{
	Description:     "No definition available",
	Characteristics: []string{},
	Usage:           "Unknown usage",
}

// NodeDefinitionOf never fails: unknown types get UnknownNodeDefinition so
// prompt construction keeps working if the vocabulary drifts.
func NodeDefinitionOf(t NodeType) NodeDefinition {
	def, ok := nodeDefinitions[t]
	if !ok {
		def = UnknownNodeDefinition
	}
	def.Characteristics = append([]string{}, def.Characteristics...)
	return def
}

// AllNodeDefinitions keys every node definition by its type literal.
func AllNodeDefinitions() map[string]NodeDefinition {
	out := make(map[string]NodeDefinition, len(nodeDefinitions))
	for _, t := range NodeTypes() {
		out[string(t)] = NodeDefinitionOf(t)
	}
	return out
}

var nodeDefinitions = map[NodeType]NodeDefinition{
	Character: {
		Description: "Represents a person, character, or individual mentioned in the narrative",
		Characteristics: []string{
			"Named individuals",
			"Character roles (protagonist, antagonist, etc.)",
			"Personal attributes or traits",
			"Actions performed by the person",
		},
		Usage: "Used in narrative schemas to represent characters and their roles in the story",
	},
	Location: {
		Description: "Represents a place, setting, or geographical location in the narrative",
		Characteristics: []string{
			"Physical places (cities, buildings, rooms)",
			"Geographical locations",
			"Settings where events occur",
			"Spatial contexts",
		},
		Usage: "Used in narrative schemas to represent where events take place",
	},
	Object: {
		Description: "Represents a physical object, item, or thing mentioned in the narrative",
		Characteristics: []string{
			"Physical items",
			"Objects that play a role in the story",
			"Items that characters interact with",
			"Tangible entities",
		},
		Usage: "Used in narrative schemas to represent objects that appear in the story",
	},
	Group: {
		Description: "Represents a collection of people, organizations, or entities",
		Characteristics: []string{
			"Organizations or institutions",
			"Groups of people",
			"Collective entities",
			"Social structures",
		},
		Usage: "Used in narrative schemas to represent groups or organizations",
	},

	Subject: {
		Description: "Represents the main subject or entity being described",
		Characteristics: []string{
			"The primary focus of description",
			"Can be a person, place, object, or abstract concept",
			"The central entity being characterized",
		},
		Usage: "Used in descriptive schemas as the main entity being described",
	},
	Attribute: {
		Description: "Represents a quality, property, or characteristic of a subject",
		Characteristics: []string{
			"Qualities or properties",
			"Adjectives describing the subject",
			"Inherent characteristics",
			"Distinguishing features",
		},
		Usage: "Used in descriptive schemas to represent qualities of the subject",
	},
	Feature: {
		Description: "Represents a notable or distinctive aspect of the subject",
		Characteristics: []string{
			"Distinctive aspects",
			"Notable characteristics",
			"Prominent elements",
			"Key distinguishing features",
		},
		Usage: "Used in descriptive schemas to highlight important aspects",
	},
	Details: {
		Description: "Represents specific, detailed information about the subject",
		Characteristics: []string{
			"Specific information",
			"Detailed observations",
			"Particular aspects",
			"Granular descriptions",
		},
		Usage: "Used in descriptive schemas to provide specific details",
	},

	Concept: {
		Description: "Represents an abstract idea, concept, or topic being explained",
		Characteristics: []string{
			"Abstract ideas or topics",
			"Theoretical concepts",
			"Main topics of discussion",
			"Core ideas",
		},
		Usage: "Used in informative schemas to represent main concepts",
	},
	Fact: {
		Description: "Represents a factual statement, data point, or verifiable information",
		Characteristics: []string{
			"Verifiable information",
			"Objective data",
			"Statements of truth",
			"Empirical information",
		},
		Usage: "Used in informative schemas to present factual information",
	},
	Definition: {
		Description: "Represents a definition or explanation of what something means",
		Characteristics: []string{
			"Formal definitions",
			"Meaning explanations",
			"Term clarifications",
			"Conceptual boundaries",
		},
		Usage: "Used in informative schemas to define terms or concepts",
	},
	Example: {
		Description: "Represents an example or instance that illustrates a concept",
		Characteristics: []string{
			"Concrete instances",
			"Illustrative cases",
			"Specific examples",
			"Real-world instances",
		},
		Usage: "Used in informative schemas to provide examples",
	},
	Explanation: {
		Description: "Represents an explanation that clarifies or elaborates on a concept",
		Characteristics: []string{
			"Clarifications",
			"Elaborations",
			"Detailed explanations",
			"How or why explanations",
		},
		Usage: "Used in informative schemas to explain concepts in detail",
	},

	Step: {
		Description: "Represents a discrete step in a procedure or process",
		Characteristics: []string{
			"Individual steps in a sequence",
			"Ordered actions",
			"Procedural elements",
			"Sequential components",
		},
		Usage: "Used in instructional schemas to represent steps in a process",
	},
	Action: {
		Description: "Represents an action or task that needs to be performed",
		Characteristics: []string{
			"Verbs or action words",
			"Tasks to complete",
			"Operations to perform",
			"Activities",
		},
		Usage: "Used in instructional schemas to represent actions to take",
	},
	Tool: {
		Description: "Represents a tool, resource, or instrument needed for a task",
		Characteristics: []string{
			"Physical or digital tools",
			"Resources required",
			"Instruments or equipment",
			"Necessary items",
		},
		Usage: "Used in instructional schemas to represent required tools or resources",
	},
	Condition: {
		Description: "Represents a condition, requirement, or prerequisite",
		Characteristics: []string{
			"If-then conditions",
			"Prerequisites",
			"Requirements",
			"Necessary conditions",
		},
		Usage: "Used in instructional schemas to represent conditions or requirements",
	},
	Warning: {
		Description: "Represents a warning, caution, or important notice",
		Characteristics: []string{
			"Cautions or warnings",
			"Important notices",
			"Safety information",
			"Critical alerts",
		},
		Usage: "Used in instructional schemas to highlight warnings or cautions",
	},
	Goal: {
		Description: "Represents the goal, objective, or desired outcome",
		Characteristics: []string{
			"End objectives",
			"Desired outcomes",
			"Target states",
			"Purpose or aim",
		},
		Usage: "Used in instructional schemas to represent the goal of the procedure",
	},

	Claim: {
		Description: "Represents a claim, thesis, or assertion being made",
		Characteristics: []string{
			"Main arguments or theses",
			"Assertions or propositions",
			"Central claims",
			"Positions taken",
		},
		Usage: "Used in argumentative schemas to represent the main claim",
	},
	Argument: {
		Description: "Represents an argument or reasoning that supports a claim",
		Characteristics: []string{
			"Supporting reasoning",
			"Logical arguments",
			"Rationale",
			"Supporting points",
		},
		Usage: "Used in argumentative schemas to represent supporting arguments",
	},
	CounterArgument: {
		Description: "Represents an opposing argument or counterpoint",
		Characteristics: []string{
			"Opposing viewpoints",
			"Counterpoints",
			"Alternative perspectives",
			"Contrary arguments",
		},
		Usage: "Used in argumentative schemas to represent opposing arguments",
	},
	Evidence: {
		Description: "Represents evidence, data, or proof supporting an argument",
		Characteristics: []string{
			"Supporting data",
			"Proof or evidence",
			"Facts supporting claims",
			"Empirical support",
		},
		Usage: "Used in argumentative schemas to represent evidence",
	},
	Conclusion: {
		Description: "Represents a conclusion, summary, or final statement",
		Characteristics: []string{
			"Final statements",
			"Summaries",
			"Concluding remarks",
			"Final positions",
		},
		Usage: "Used in argumentative schemas to represent conclusions",
	},
}
