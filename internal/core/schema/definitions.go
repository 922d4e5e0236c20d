package schema

import "github.com/agenthands/schemagraph/internal/core/taxonomy"

var definitions = map[taxonomy.SchemaType]string{
	taxonomy.Narrative: "A narrative schema tells a story or recounts events in a chronological sequence. " +
		"It focuses on characters, plot development, and the progression of events over time.",
	taxonomy.Descriptive: "A descriptive schema provides detailed information about the characteristics, " +
		"qualities, or features of a subject, person, place, or object.",
	taxonomy.Informative: "An informative schema presents facts, data, and information in an objective manner " +
		"to educate or inform the reader about a topic without persuasion.",
	taxonomy.Instructional: "An instructional schema provides step-by-step guidance, directions, or procedures " +
		"to help the reader accomplish a task or understand how something works.",
	taxonomy.Argumentative: "An argumentative schema presents a claim or position supported by evidence, reasoning, " +
		"and counterarguments to persuade the reader to accept a particular viewpoint.",
}

var keyCharacteristics = map[taxonomy.SchemaType][]string{
	taxonomy.Narrative: {
		"chronological sequence markers (first, then, next, finally, after, before)",
		"temporal transitions (meanwhile, later, eventually, suddenly)",
		"character actions and dialogue",
		"plot progression and conflict",
		"narrative arc (beginning, middle, end)",
		"storytelling elements (setting, characters, events)",
		"past tense verbs",
		"cause-and-effect relationships in story context",
		"emotional or dramatic elements",
		"resolution or conclusion of events",
	},
	taxonomy.Descriptive: {
		"sensory details (sight, sound, smell, taste, touch)",
		"adjectives and adverbs describing qualities",
		"spatial relationships (above, below, beside, inside)",
		"comparisons and metaphors",
		"detailed observations",
		"physical characteristics",
		"atmospheric or mood descriptions",
		"specific details about appearance, texture, color",
		"figurative language",
		"vivid imagery",
	},
	taxonomy.Informative: {
		"factual statements and data",
		"definitions and explanations",
		"statistics and numerical information",
		"objective language (no opinion markers)",
		"categorization and classification",
		"comparison and contrast of information",
		"cause-and-effect relationships (factual)",
		"examples and illustrations",
		"technical terms and jargon",
		"informational transitions (furthermore, additionally, similarly)",
	},
	taxonomy.Instructional: {
		"imperative verbs (do, make, create, follow)",
		"step-by-step sequences (first, second, third, step 1, step 2)",
		"action verbs and commands",
		"procedural language (how to, instructions, guide)",
		"conditional statements (if-then, when, after)",
		"sequential markers (next, then, finally, last)",
		"checklists and numbered lists",
		"prerequisites and requirements",
		"warnings and cautions",
		"goal-oriented language",
	},
	taxonomy.Argumentative: {
		"claims and thesis statements",
		"evidence and supporting data",
		"reasoning and logical connections",
		"counterarguments and rebuttals",
		"persuasive language (should, must, important, crucial)",
		"rhetorical questions",
		"concessions and acknowledgments",
		"conclusions and calls to action",
		"comparative language (better, worse, superior, inferior)",
		"causal reasoning (because, therefore, as a result)",
	},
}
