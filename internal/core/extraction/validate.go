package extraction

import (
	"strings"

	"github.com/agenthands/schemagraph/internal/core/graph"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/core/taxonomy"
)

// Validate checks an extracted structure against schema s and the chunk it
// came from. Findings are warnings; the structure is never modified.
func Validate(s schema.Schema, chunk string, st model.Structure) []model.Warning {
	var out []model.Warning

	nodeTypes := make(map[string]string, len(st.Nodes))
	seen := make(map[string]bool, len(st.Nodes))
	for _, n := range st.Nodes {
		if seen[n.ID] {
			out = append(out, model.Warnf(model.WarnDuplicateID, "node id %q is used more than once", n.ID))
		} else {
			nodeTypes[n.ID] = n.Type
		}
		seen[n.ID] = true

		if t, ok := taxonomy.ParseNodeType(n.Type); !ok || !s.AllowsNode(t) {
			out = append(out, model.Warnf(model.WarnUnknownNodeType, "node %q has type %q, not allowed in %s", n.ID, n.Type, s.Type))
		}
	}

	seenConn := make(map[string]bool, len(st.Connections))
	for _, c := range st.Connections {
		if seenConn[c.ID] {
			out = append(out, model.Warnf(model.WarnDuplicateID, "connection id %q is used more than once", c.ID))
		}
		seenConn[c.ID] = true

		ct, known := taxonomy.ParseConnectionType(c.Type)
		if !known || !s.AllowsConnection(ct) {
			out = append(out, model.Warnf(model.WarnUnknownConnectionType, "connection %q has type %q, not allowed in %s", c.ID, c.Type, s.Type))
		}

		srcType, srcOK := nodeTypes[c.SourceNodeID]
		if !srcOK {
			out = append(out, model.Warnf(model.WarnDanglingReference, "connection %q source %q is not a node", c.ID, c.SourceNodeID))
		}
		dstType, dstOK := nodeTypes[c.TargetNodeID]
		if !dstOK {
			out = append(out, model.Warnf(model.WarnDanglingReference, "connection %q target %q is not a node", c.ID, c.TargetNodeID))
		}

		if known && srcOK && dstOK && len(taxonomy.AllowedNodePairs(ct)) > 0 {
			src, dst := taxonomy.NodeType(srcType), taxonomy.NodeType(dstType)
			if !taxonomy.PairListed(ct, src, dst) {
				out = append(out, model.Warnf(model.WarnUnlistedNodePair, "connection %q links %s -> %s, not a listed pair for %s", c.ID, src, dst, ct))
			}
		}
	}

	for _, id := range graph.Isolated(st.Nodes, st.Connections) {
		out = append(out, model.Warnf(model.WarnIsolatedNode, "node %q has no connections", id))
	}
	if comps := graph.Components(st.Nodes, st.Connections); len(comps) > 1 {
		out = append(out, model.Warnf(model.WarnDisconnectedGraph, "graph has %d connected components", len(comps)))
	}

	normalized := collapseSpace(chunk)
	check := func(kind, id, ref string) {
		if ref == "" || strings.Contains(normalized, collapseSpace(ref)) {
			return
		}
		out = append(out, model.Warnf(model.WarnTextReferenceNotFound, "%s %q text_reference is not in the transcript", kind, id))
	}
	for _, n := range st.Nodes {
		check("node", n.ID, n.TextReference)
	}
	for _, c := range st.Connections {
		check("connection", c.ID, c.TextReference)
	}

	return out
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
