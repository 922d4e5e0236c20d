package model

import "fmt"

type WarningKind string

const (
	WarnCoverageMismatch       WarningKind = "coverage_mismatch"
	WarnCoverageWhitespaceOnly WarningKind = "coverage_whitespace_only"
	WarnUnknownNodeType        WarningKind = "unknown_node_type"
	WarnUnknownConnectionType  WarningKind = "unknown_connection_type"
	WarnDuplicateID            WarningKind = "duplicate_id"
	WarnDanglingReference      WarningKind = "dangling_reference"
	WarnIsolatedNode           WarningKind = "isolated_node"
	WarnDisconnectedGraph      WarningKind = "disconnected_graph"
	WarnTextReferenceNotFound  WarningKind = "text_reference_not_found"
	WarnUnlistedNodePair       WarningKind = "unlisted_node_pair"
)

// Warning is a contract violation found after an oracle call. Warnings never
// stop the pipeline.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func Warnf(kind WarningKind, format string, args ...any) Warning {
	return Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Message
}
