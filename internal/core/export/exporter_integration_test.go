//go:build integration

package export

import (
	"context"
	"os"
	"testing"

	"github.com/agenthands/schemagraph/internal/driver"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMemgraph(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MEMGRAPH_URI not set")
	}

	ctx := context.Background()
	d, err := driver.NewMemgraphDriver(ctx, uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"), nil)
	require.NoError(t, err)
	defer d.Close(ctx)

	run := "it-" + uuid.NewString()
	ex := NewExporter(d, nil)

	stats, err := ex.Export(ctx, run, sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Connections)

	// Exporting again must not duplicate anything.
	_, err = ex.Export(ctx, run, sampleDoc())
	require.NoError(t, err)

	res, err := d.ExecuteQuery(ctx, driver.CountRunQuery, map[string]any{"uuid": RunUUID(run)})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	topics, _ := res.Records[0].Get("topics")
	nodes, _ := res.Records[0].Get("nodes")
	conns, _ := res.Records[0].Get("connections")
	assert.EqualValues(t, 2, topics)
	assert.EqualValues(t, 2, nodes)
	assert.EqualValues(t, 1, conns)

	_, err = d.ExecuteQuery(ctx, driver.DeleteRunQuery, map[string]any{"uuid": RunUUID(run)})
	require.NoError(t, err)
}
