// Package graph analyses the node/connection graph of one topic.
package graph

import "github.com/agenthands/schemagraph/internal/core/model"

// Components groups node ids into weakly connected components, treating
// connections as undirected. Components follow the order nodes first appear;
// connections to unknown ids are ignored.
func Components(nodes []model.Node, connections []model.Connection) [][]string {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}

	adj := make(map[string][]string)
	for _, c := range connections {
		if !known[c.SourceNodeID] || !known[c.TargetNodeID] {
			continue
		}
		adj[c.SourceNodeID] = append(adj[c.SourceNodeID], c.TargetNodeID)
		adj[c.TargetNodeID] = append(adj[c.TargetNodeID], c.SourceNodeID)
	}

	visited := make(map[string]bool)
	var components [][]string
	for _, n := range nodes {
		if visited[n.ID] {
			continue
		}
		var component []string
		dfs(n.ID, adj, visited, &component)
		components = append(components, component)
	}
	return components
}

func dfs(u string, adj map[string][]string, visited map[string]bool, component *[]string) {
	visited[u] = true
	*component = append(*component, u)
	for _, v := range adj[u] {
		if !visited[v] {
			dfs(v, adj, visited, component)
		}
	}
}

// Isolated returns ids of nodes that no connection touches.
func Isolated(nodes []model.Node, connections []model.Connection) []string {
	touched := make(map[string]bool)
	for _, c := range connections {
		touched[c.SourceNodeID] = true
		touched[c.TargetNodeID] = true
	}
	var out []string
	seen := make(map[string]bool)
	for _, n := range nodes {
		if !touched[n.ID] && !seen[n.ID] {
			out = append(out, n.ID)
		}
		seen[n.ID] = true
	}
	return out
}
