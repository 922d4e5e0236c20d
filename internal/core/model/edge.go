package model

// Connection is a directed, typed relationship between two nodes of the same topic.
type Connection struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Content       string `json:"content"`
	SourceNodeID  string `json:"source_node_id"`
	TargetNodeID  string `json:"target_node_id"`
	TextReference string `json:"text_reference"`
}

type FilteredConnection struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	SourceNodeID string `json:"source_node_id"`
	TargetNodeID string `json:"target_node_id"`
}
