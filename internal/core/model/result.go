package model

// TopicResult is one slot of the structured document. A failed topic keeps
// only title, original_transcript, error and empty node/connection lists.
type TopicResult struct {
	Title              string       `json:"title"`
	OriginalTranscript string       `json:"original_transcript"`
	SchemaType         string       `json:"schema_type,omitempty"`
	SchemaSelection    *Selection   `json:"schema_selection,omitempty"`
	Topic              string       `json:"topic,omitempty"`
	Error              string       `json:"error,omitempty"`
	Nodes              []Node       `json:"nodes"`
	Connections        []Connection `json:"connections"`
	Warnings           []Warning    `json:"warnings,omitempty"`
}

func (r TopicResult) Failed() bool {
	return r.Error != ""
}

// FailedTopic builds the error variant of a topic slot.
func FailedTopic(topic Topic, err error) TopicResult {
	return TopicResult{
		Title:              topic.Title,
		OriginalTranscript: topic.Transcript,
		Error:              err.Error(),
		Nodes:              []Node{},
		Connections:        []Connection{},
	}
}

type StructuredDocument = Ordered[TopicResult]

// FilteredTopic is one slot of the canonical artifact.
type FilteredTopic struct {
	Title       string               `json:"title"`
	Nodes       []FilteredNode       `json:"nodes"`
	Connections []FilteredConnection `json:"connections"`
}

type FilteredDocument = Ordered[FilteredTopic]
