//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphbio/helix/internal/config"
	"github.com/graphbio/helix/internal/core"
	"github.com/graphbio/helix/internal/core/model"
	"github.com/graphbio/helix/internal/driver"
	"github.com/graphbio/helix/internal/refsource"
)

// TestLiveEnrichment exercises the real reference services. Set
// HELIX_LIVE_SOURCES=1 to run it; it is skipped by default because it
// depends on external availability.
func TestLiveEnrichment(t *testing.T) {
	_ = godotenv.Load("../../.env")

	if os.Getenv("HELIX_LIVE_SOURCES") == "" {
		t.Skip("Skipping live-source test: HELIX_LIVE_SOURCES not set")
	}

	sources := refsource.BuildRegistry(config.SourcesConfig{TimeoutSeconds: 30})
	e := core.NewEngine(nil, sources, nil)
	updates := e.Subscribe()

	catalog := e.ResolveRows([]map[string]interface{}{
		{"g": map[string]interface{}{"id": "ncbigene:60529", "symbol": "ALX4"}},
		{"d.id": "mondo:0054666", "d.name": "frontonasal dysplasia"},
	})
	require.Equal(t, 2, catalog.Len())

	_, err := e.Enrich(context.Background(), model.TypeGene, "ncbigene:60529")
	require.NoError(t, err)
	_, err = e.Enrich(context.Background(), model.TypeDisease, "mondo:0054666")
	require.NoError(t, err)

	ready := 0
	deadline := time.After(60 * time.Second)
	for ready < 2 {
		select {
		case u := <-updates:
			t.Logf("update: %s -> %s", u.Key, u.State)
			require.NotEqual(t, model.StateError, u.State)
			if u.State == model.StateReady {
				ready++
			}
		case <-deadline:
			t.Fatal("timed out waiting for enrichment")
		}
	}

	gene := e.Catalog().Lookup(model.TypeGene, "ncbigene:60529")
	require.NotNil(t, gene)
	assert.NotEmpty(t, gene.RawProperties["description"])
}

// TestLiveGraphQuery resolves a catalog straight from a running graph
// store. Set NEO4J_URI to run it.
func TestLiveGraphQuery(t *testing.T) {
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("Skipping graph-store test: NEO4J_URI not set")
	}

	d, err := driver.NewNeo4jDriver(uri, os.Getenv("NEO4J_USER"), os.Getenv("NEO4J_PASSWORD"))
	require.NoError(t, err)
	defer d.Close(context.Background())

	e := core.NewEngine(d, refsource.BuildRegistry(config.SourcesConfig{TimeoutSeconds: 30}), nil)

	catalog, err := e.RunQuery(context.Background(), "MATCH (n) RETURN n LIMIT 25", nil)
	require.NoError(t, err)
	t.Logf("resolved %d entities from live store", catalog.Len())
}
