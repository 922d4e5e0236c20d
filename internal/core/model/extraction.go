package model

import "github.com/tidwall/gjson"

// Selection is the oracle's schema classification for a chunk.
// SelectedSchema is kept verbatim, even when it names no known schema.
type Selection struct {
	SelectedSchema string `json:"selected_schema"`
	Confidence     string `json:"confidence"`
	Reasoning      string `json:"reasoning"`
}

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// SelectionFrom reads a classification leniently. A label that is not a JSON
// string keeps its raw text and so never names a known schema; null is "".
func SelectionFrom(obj gjson.Result) Selection {
	return Selection{
		SelectedSchema: Text(obj.Get("selected_schema")),
		Confidence:     Text(obj.Get("confidence")),
		Reasoning:      Text(obj.Get("reasoning")),
	}
}

// Structure is the graph the oracle returns for one chunk.
type Structure struct {
	Topic       string       `json:"topic"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// StructureFrom reads an extraction reply leniently: scalar fields of any
// JSON type become text, and a missing or non-array list is empty.
func StructureFrom(obj gjson.Result) Structure {
	st := Structure{
		Topic:       Text(obj.Get("topic")),
		Nodes:       []Node{},
		Connections: []Connection{},
	}
	eachItem(obj.Get("nodes"), func(n gjson.Result) {
		st.Nodes = append(st.Nodes, Node{
			ID:            Text(n.Get("id")),
			Type:          Text(n.Get("type")),
			Content:       Text(n.Get("content")),
			Speaker:       Text(n.Get("speaker")),
			TextReference: Text(n.Get("text_reference")),
		})
	})
	eachItem(obj.Get("connections"), func(c gjson.Result) {
		st.Connections = append(st.Connections, Connection{
			ID:            Text(c.Get("id")),
			Type:          Text(c.Get("type")),
			Content:       Text(c.Get("content")),
			SourceNodeID:  Text(c.Get("source_node_id")),
			TargetNodeID:  Text(c.Get("target_node_id")),
			TextReference: Text(c.Get("text_reference")),
		})
	})
	return st
}

// Text renders any JSON value as a string: strings unquoted, numbers and
// booleans as written, null and missing as "", arrays and objects raw.
func Text(r gjson.Result) string {
	return r.String()
}

func eachItem(list gjson.Result, fn func(gjson.Result)) {
	if !list.IsArray() {
		return
	}
	for _, item := range list.Array() {
		fn(item)
	}
}
