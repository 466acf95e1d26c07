package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jDriver executes read queries against a Neo4j (or bolt-compatible)
// graph store.
type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jDriver(uri, username, password string) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to graph store")
	return &Neo4jDriver{Driver: driver}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// RecordsToRows converts an eager result into the loosely-structured rows
// the scanner consumes. Node and relationship values flatten to their
// property maps; a node without an "id" property keeps its element id so the
// fragment still carries an identifier. Dotted aliases and plain values pass
// through untouched.
func RecordsToRows(result neo4j.EagerResult) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(result.Records))
	for _, record := range result.Records {
		row := make(map[string]interface{}, len(record.Keys))
		for i, key := range record.Keys {
			if i < len(record.Values) {
				row[key] = convertValue(record.Values[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func convertValue(v interface{}) interface{} {
	switch val := v.(type) {
	case neo4j.Node:
		props := make(map[string]interface{}, len(val.Props)+1)
		for k, p := range val.Props {
			props[k] = convertValue(p)
		}
		if _, ok := props["id"]; !ok {
			props["id"] = val.ElementId
		}
		return props
	case neo4j.Relationship:
		props := make(map[string]interface{}, len(val.Props))
		for k, p := range val.Props {
			props[k] = convertValue(p)
		}
		return props
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = convertValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = convertValue(item)
		}
		return out
	default:
		return v
	}
}
