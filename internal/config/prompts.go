package config

// PromptPair is a system/user template pair for one oracle call.
// Templates are fmt format strings; the placeholders are documented per call.
type PromptPair struct {
	System string `toml:"system"`
	User   string `toml:"user"`
}

type Prompts struct {
	// Segmentation.User: transcript.
	Segmentation PromptPair `toml:"segmentation"`
	// Selection.System: schema catalog JSON. Selection.User: chunk.
	Selection PromptPair `toml:"selection"`
	// Extraction.System: schema type, definition, node types JSON, connection types JSON.
	// Extraction.User: chunk, JSON-quoted topic title.
	Extraction PromptPair `toml:"extraction"`
	// Regeneration.User: filtered document JSON.
	Regeneration PromptPair `toml:"regeneration"`
}

func DefaultPrompts() Prompts {
	return Prompts{
		Segmentation: PromptPair{System: segmentationSystem, User: segmentationUser},
		Selection:    PromptPair{System: selectionSystem, User: selectionUser},
		Extraction:   PromptPair{System: extractionSystem, User: extractionUser},
		Regeneration: PromptPair{System: regenerationSystem, User: regenerationUser},
	}
}

func (p *Prompts) fillDefaults() {
	d := DefaultPrompts()
	fill := func(dst *PromptPair, src PromptPair) {
		if dst.System == "" {
			dst.System = src.System
		}
		if dst.User == "" {
			dst.User = src.User
		}
	}
	fill(&p.Segmentation, d.Segmentation)
	fill(&p.Selection, d.Selection)
	fill(&p.Extraction, d.Extraction)
	fill(&p.Regeneration, d.Regeneration)
}

const segmentationSystem = `You are an expert at reading, understanding and analyzing transcripts of podcasts.
Your job is to return for the user the complete transcript of the podcast, classified into topics.
Based on the conversation and the discussion between the speakers, you must classify the transcript into key topics in the same order as they were discussed.
You must return the FULL TRANSCRIPT, not just parts of it. You are only allowed to do the classification, not to add nor to remove any text from the transcript.

You must return the COMPLETE TRANSCRIPT in the following JSON output format for the user:
{
    "topic_1": {
        "title": "title of the first topic",
        "transcript": "all transcript chunks that cover the first topic (this should start with the first sentence of the transcript)"
    },
    "topic_2": {
        "title": "title of the second topic",
        "transcript": "all transcript chunks that cover the second topic"
    },
    ...
    "topic_n": {
        "title": "title of the last topic",
        "transcript": "all transcript chunks that cover the last topic (this should end with the last sentence of the transcript)"
    }
}

Instructions:
- Don't include any other text in your response except the JSON output format.
- The topics should cover the whole conversation, FROM THE VERY BEGINNING TO THE VERY END. You MUST return the WHOLE transcript classified in topics as explained in the JSON output format.
- The topics must be different. No topic should be a subset of another topic. Limit the number of topics as much as possible.
- Don't change anything (no added text, no removed text, no changed text) in the transcript. Just classify it into topics.
- The topics should be different from each other. Each topic should cover a considerable amount of the transcript, from the beginning to the end.
- Keep the speaker names in the transcript.
`

const segmentationUser = `Read the following podcast transcript and return the COMPLETE TRANSCRIPT CLASSIFIED INTO TOPICS.
Transcript:
%s
`

const selectionSystem = `You are an expert at analyzing text and identifying its schema type.
The following are the schema types and their key characteristics:
%s
`

const selectionUser = `Read the following transcript chunk and determine which schema type best fits it:
%s

Return a JSON object with:
{
    "selected_schema": "one of: narrative, descriptive, informative, instructional, argumentative",
    "confidence": "high, medium, or low",
    "reasoning": "brief explanation of why this schema was chosen"
}
`

const extractionSystem = `You are an expert at rewriting text into structured information.
Use the following schema to rewrite the full complete transcript into a structured format.
Schema Type: %s
Schema Definition: %s

Allowed Node Types:
%s

Allowed Connection Types:
%s
`

const extractionUser = `Transcript chunk:
%s

Extract the complete structure by:
1. Identifying all entities/concepts as nodes (using only the allowed node types)
2. Identifying all relationships as connections (using only the allowed connection types)
3. Preserving the full content of the transcript chunk in the structure

Return a JSON object with this structure:
{
    "topic": %s,
    "nodes": [
        {
            "id": "unique identifier (e.g., node_1, node_2)",
            "type": "one of the allowed node types",
            "content": "the text content or description of this node",
            "speaker": "the speaker of the node",
            "text_reference": "the exact text from the transcript that this node represents"
        }
    ],
    "connections": [
        {
            "id": "unique identifier (e.g., conn_1, conn_2)",
            "type": "one of the allowed connection types",
            "content": "the text content or description of this connection",
            "source_node_id": "id of the source node",
            "target_node_id": "id of the target node",
            "text_reference": "the exact text from the transcript that this connection represents"
        }
    ]
}

Important:
- The structure should fully represent the content of the transcript chunk
- The output JSON object MUST cover the whole transcript chunk, from the beginning to the end.
- ALL THE NODES SHOULD BE CONNECTED TO EACH OTHER.
`

const regenerationSystem = `You are an expert at analyzing and regenerating podcast content based on graph schema. Provide clear, comprehensive, and well-structured regenerated podcast.`

const regenerationUser = `You are an expert at analyzing podcast content and creating another podcast transcript.
I will provide you with a structured representation of a podcast transcript that has been organized into topics,
nodes (key concepts/entities), and connections (relationships between concepts). The new podcast should be based on the given structured data ONLY.

Structured Podcast Data:
%s

The podcast should be detailed enough to give someone who hasn't listened to the podcast a complete understanding of the content so all content of the given structured data is present, and concise enough to be readable.
Format your response as a clear, well-structured podcast with appropriate sections if needed and ensure the narrative flows smoothly without gaps or abrupt transitions.
The generated podcast transcript should be in this form:
Speaker1 Name
what they said

Speaker2 Name
what they said ...
`
