package driver

// IndexQueries are applied by BuildIndices.
var IndexQueries = []string{
	"CREATE INDEX ON :Run(uuid);",
	"CREATE INDEX ON :Topic(uuid);",
	"CREATE INDEX ON :Node(uuid);",
	"CREATE INDEX ON :Topic(run_uuid);",
}

const (
	SaveRunQuery = `
		MERGE (r:Run {uuid: $uuid})
		SET r.name = $name,
			r.exported_at = $exported_at
		RETURN r.uuid AS uuid
	`

	SaveTopicQuery = `
		MATCH (r:Run {uuid: $run_uuid})
		MERGE (t:Topic {uuid: $uuid})
		SET t.key = $key,
			t.title = $title,
			t.position = $position,
			t.run_uuid = $run_uuid
		MERGE (r)-[:HAS_TOPIC]->(t)
		RETURN t.uuid AS uuid
	`

	SaveNodeQuery = `
		MATCH (t:Topic {uuid: $topic_uuid})
		MERGE (n:Node {uuid: $uuid})
		SET n.node_id = $node_id,
			n.content = $content,
			n.speaker = $speaker
		MERGE (t)-[:HAS_NODE]->(n)
		RETURN n.uuid AS uuid
	`

	SaveConnectionQuery = `
		MATCH (source:Node {uuid: $source_uuid})
		MATCH (target:Node {uuid: $target_uuid})
		MERGE (source)-[e:CONNECTS {uuid: $uuid}]->(target)
		SET e.connection_id = $connection_id,
			e.content = $content
		RETURN e.uuid AS uuid
	`

	DeleteRunQuery = `
		MATCH (r:Run {uuid: $uuid})
		OPTIONAL MATCH (r)-[:HAS_TOPIC]->(t:Topic)
		OPTIONAL MATCH (t)-[:HAS_NODE]->(n:Node)
		DETACH DELETE n, t, r
	`

	CountRunQuery = `
		MATCH (r:Run {uuid: $uuid})-[:HAS_TOPIC]->(t:Topic)
		OPTIONAL MATCH (t)-[:HAS_NODE]->(n:Node)
		OPTIONAL MATCH (n)-[c:CONNECTS]->(:Node)
		RETURN count(DISTINCT t) AS topics, count(DISTINCT n) AS nodes, count(DISTINCT c) AS connections
	`
)
