package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver is the query-execution collaborator: it runs a read query
// against the graph store and hands back the eager result the resolution
// engine scans. The engine never writes to the store.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	Close(ctx context.Context) error
}
