// Package filter projects a structured document onto the fields that
// survive into the final artifact.
package filter

import (
	"errors"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/tidwall/gjson"
)

var ErrInvalidDocument = errors.New("structured document is not a JSON object")

// FilterJSON projects raw structured JSON. Missing or null fields become "",
// non-string scalars are rendered as text, and only a top-level parse failure
// is an error. Filtering an already filtered document returns it unchanged.
func FilterJSON(data []byte) (*model.FilteredDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrInvalidDocument
	}

	out := model.NewOrdered[model.FilteredTopic]()
	root.ForEach(func(key, topic gjson.Result) bool {
		out.Set(key.String(), projectTopic(topic))
		return true
	})
	return out, nil
}

func projectTopic(topic gjson.Result) model.FilteredTopic {
	ft := model.FilteredTopic{
		Title:       topic.Get("title").String(),
		Nodes:       []model.FilteredNode{},
		Connections: []model.FilteredConnection{},
	}
	each(topic.Get("nodes"), func(n gjson.Result) {
		ft.Nodes = append(ft.Nodes, model.FilteredNode{
			ID:      n.Get("id").String(),
			Content: n.Get("content").String(),
			Speaker: n.Get("speaker").String(),
		})
	})
	each(topic.Get("connections"), func(c gjson.Result) {
		ft.Connections = append(ft.Connections, model.FilteredConnection{
			ID:           c.Get("id").String(),
			Content:      c.Get("content").String(),
			SourceNodeID: c.Get("source_node_id").String(),
			TargetNodeID: c.Get("target_node_id").String(),
		})
	})
	return ft
}

func each(list gjson.Result, fn func(gjson.Result)) {
	if !list.IsArray() {
		return
	}
	for _, item := range list.Array() {
		fn(item)
	}
}

// Filter is the typed form of FilterJSON for documents already in memory.
func Filter(doc *model.StructuredDocument) *model.FilteredDocument {
	out := model.NewOrdered[model.FilteredTopic]()
	doc.Each(func(key string, r model.TopicResult) {
		ft := model.FilteredTopic{
			Title:       r.Title,
			Nodes:       make([]model.FilteredNode, 0, len(r.Nodes)),
			Connections: make([]model.FilteredConnection, 0, len(r.Connections)),
		}
		for _, n := range r.Nodes {
			ft.Nodes = append(ft.Nodes, model.FilteredNode{ID: n.ID, Content: n.Content, Speaker: n.Speaker})
		}
		for _, c := range r.Connections {
			ft.Connections = append(ft.Connections, model.FilteredConnection{
				ID:           c.ID,
				Content:      c.Content,
				SourceNodeID: c.SourceNodeID,
				TargetNodeID: c.TargetNodeID,
			})
		}
		out.Set(key, ft)
	})
	return out
}

// Stats counts what a filtered document holds.
type Stats struct {
	Topics      int `json:"topics"`
	Nodes       int `json:"nodes"`
	Connections int `json:"connections"`
}

func Count(doc *model.FilteredDocument) Stats {
	s := Stats{Topics: doc.Len()}
	doc.Each(func(_ string, t model.FilteredTopic) {
		s.Nodes += len(t.Nodes)
		s.Connections += len(t.Connections)
	})
	return s
}
