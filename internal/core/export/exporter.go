// Package export copies a filtered document into a Memgraph/Neo4j graph.
// The JSON artifact stays canonical; the graph is a queryable copy.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/driver"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// namespace seeds the name-based ids so re-exporting a run MERGEs onto the
// same elements.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/agenthands/schemagraph"))

type Stats struct {
	Topics      int
	Nodes       int
	Connections int
	// Skipped counts connections whose endpoints are not nodes of their topic.
	Skipped int
}

type Exporter struct {
	Driver driver.GraphDriver
	Logger *zap.Logger
	// Replace deletes the run's previous export first.
	Replace bool
	now     func() time.Time
}

func NewExporter(d driver.GraphDriver, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{Driver: d, Logger: logger, now: time.Now}
}

func RunUUID(run string) string {
	return uuid.NewSHA1(namespace, []byte(run)).String()
}

func TopicUUID(run, topicKey string) string {
	return uuid.NewSHA1(namespace, []byte(run+"/"+topicKey)).String()
}

func NodeUUID(run, topicKey, nodeID string) string {
	return uuid.NewSHA1(namespace, []byte(run+"/"+topicKey+"/node/"+nodeID)).String()
}

func ConnectionUUID(run, topicKey, connID string) string {
	return uuid.NewSHA1(namespace, []byte(run+"/"+topicKey+"/connection/"+connID)).String()
}

// Export writes doc under run. Topics are written in document order; the
// first failing query aborts the export.
func (e *Exporter) Export(ctx context.Context, run string, doc *model.FilteredDocument) (Stats, error) {
	var stats Stats
	runUUID := RunUUID(run)

	if err := e.Driver.BuildIndices(ctx); err != nil {
		return stats, fmt.Errorf("failed to build indices: %w", err)
	}
	if e.Replace {
		if _, err := e.Driver.ExecuteQuery(ctx, driver.DeleteRunQuery, map[string]any{"uuid": runUUID}); err != nil {
			return stats, fmt.Errorf("failed to clear run %q: %w", run, err)
		}
	}

	_, err := e.Driver.ExecuteQuery(ctx, driver.SaveRunQuery, map[string]any{
		"uuid":        runUUID,
		"name":        run,
		"exported_at": e.now().UTC(),
	})
	if err != nil {
		return stats, fmt.Errorf("failed to save run %q: %w", run, err)
	}

	position := 0
	var exportErr error
	doc.Each(func(key string, t model.FilteredTopic) {
		if exportErr != nil {
			return
		}
		position++
		exportErr = e.exportTopic(ctx, run, runUUID, key, position, t, &stats)
	})
	if exportErr != nil {
		return stats, exportErr
	}

	e.Logger.Info("exported run",
		zap.String("run", run),
		zap.String("run_uuid", runUUID),
		zap.Int("topics", stats.Topics),
		zap.Int("nodes", stats.Nodes),
		zap.Int("connections", stats.Connections),
		zap.Int("skipped", stats.Skipped))
	return stats, nil
}

func (e *Exporter) exportTopic(ctx context.Context, run, runUUID, key string, position int, t model.FilteredTopic, stats *Stats) error {
	topicUUID := TopicUUID(run, key)
	_, err := e.Driver.ExecuteQuery(ctx, driver.SaveTopicQuery, map[string]any{
		"run_uuid": runUUID,
		"uuid":     topicUUID,
		"key":      key,
		"title":    t.Title,
		"position": position,
	})
	if err != nil {
		return fmt.Errorf("failed to save topic %s: %w", key, err)
	}
	stats.Topics++

	ids := make(map[string]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		_, err := e.Driver.ExecuteQuery(ctx, driver.SaveNodeQuery, map[string]any{
			"topic_uuid": topicUUID,
			"uuid":       NodeUUID(run, key, n.ID),
			"node_id":    n.ID,
			"content":    n.Content,
			"speaker":    n.Speaker,
		})
		if err != nil {
			return fmt.Errorf("failed to save node %s/%s: %w", key, n.ID, err)
		}
		if !ids[n.ID] {
			stats.Nodes++
		}
		ids[n.ID] = true
	}

	for _, c := range t.Connections {
		if !ids[c.SourceNodeID] || !ids[c.TargetNodeID] {
			e.Logger.Warn("skipping connection with unknown endpoint",
				zap.String("topic", key), zap.String("connection", c.ID))
			stats.Skipped++
			continue
		}
		_, err := e.Driver.ExecuteQuery(ctx, driver.SaveConnectionQuery, map[string]any{
			"source_uuid":   NodeUUID(run, key, c.SourceNodeID),
			"target_uuid":   NodeUUID(run, key, c.TargetNodeID),
			"uuid":          ConnectionUUID(run, key, c.ID),
			"connection_id": c.ID,
			"content":       c.Content,
		})
		if err != nil {
			return fmt.Errorf("failed to save connection %s/%s: %w", key, c.ID, err)
		}
		stats.Connections++
	}
	return nil
}
