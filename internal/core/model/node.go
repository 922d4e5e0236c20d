package model

// Node is an entity or concept the oracle extracted from one topic.
// Type and TextReference only exist until the document is filtered.
type Node struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Content       string `json:"content"`
	Speaker       string `json:"speaker"`
	TextReference string `json:"text_reference"`
}

// FilteredNode is the persisted projection of a Node.
type FilteredNode struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Speaker string `json:"speaker"`
}
