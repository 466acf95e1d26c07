package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/graphbio/helix/internal/core/classify"
	"github.com/graphbio/helix/internal/core/enrich"
	"github.com/graphbio/helix/internal/core/model"
	"github.com/graphbio/helix/internal/core/registry"
	"github.com/graphbio/helix/internal/core/scan"
	"github.com/graphbio/helix/internal/driver"
	"github.com/graphbio/helix/internal/refsource"
)

// Engine owns the resolution pipeline and the current catalog. Scanning is
// synchronous and single-pass; enrichment is lazy and per entity. A new
// result set replaces the catalog wholesale and discards all enrichment
// state with it.
type Engine struct {
	Driver     driver.GraphDriver
	Dispatcher *enrich.Dispatcher

	mu      sync.RWMutex
	catalog *model.Catalog
}

func NewEngine(d driver.GraphDriver, sources map[string]refsource.Fetcher, fallback refsource.Summarizer) *Engine {
	return &Engine{
		Driver:     d,
		Dispatcher: enrich.NewDispatcher(sources, fallback),
		catalog:    model.NewCatalog(uuid.New().String()),
	}
}

// ResolveRows builds a fresh catalog from a set of result rows: scan every
// row for entity-bearing fragments, reconstruct flattened column groups,
// classify each candidate and fold it into the registry. Fragments without
// a derivable identifier are dropped silently.
func (e *Engine) ResolveRows(rows []map[string]interface{}) *model.Catalog {
	reg := registry.New(uuid.New().String())

	for _, row := range rows {
		for _, candidate := range scan.ScanRow(row) {
			t := classify.Resolve(candidate.Props, candidate.Hint)
			reg.Register(candidate.Props, t)
		}
	}
	for _, candidate := range scan.Reconstruct(rows) {
		t := classify.Resolve(candidate.Props, candidate.Hint)
		reg.Register(candidate.Props, t)
	}

	catalog := reg.Catalog()

	e.mu.Lock()
	e.catalog = catalog
	e.mu.Unlock()
	e.Dispatcher.Reset()

	return catalog
}

// ResolvePayload decodes a raw JSON result payload and resolves it. Only
// malformed JSON is an error; any well-formed value that yields no rows
// resolves to an empty catalog.
func (e *Engine) ResolvePayload(raw []byte) (*model.Catalog, error) {
	rows, err := scan.ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	return e.ResolveRows(rows), nil
}

// RunQuery executes a read query through the graph driver and resolves its
// result set.
func (e *Engine) RunQuery(ctx context.Context, query string, params map[string]interface{}) (*model.Catalog, error) {
	if e.Driver == nil {
		return nil, fmt.Errorf("no graph driver configured")
	}
	result, err := e.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return e.ResolveRows(driver.RecordsToRows(result)), nil
}

// Catalog returns the current catalog with every cached enrichment result
// folded in. The returned records are copies; the live catalog is never
// mutated after resolution, so marshaling the result cannot race with a
// completing fetch.
func (e *Engine) Catalog() *model.Catalog {
	e.mu.RLock()
	src := e.catalog
	e.mu.RUnlock()

	out := model.NewCatalog(src.UUID)
	for _, t := range model.TypeOrder {
		for _, rec := range src.Entries[t] {
			out.Add(e.Dispatcher.Enriched(rec))
		}
	}
	return out
}

// Enrich triggers enrichment for one catalog entity.
func (e *Engine) Enrich(ctx context.Context, t model.EntityType, id string) (model.EnrichmentState, error) {
	e.mu.RLock()
	rec := e.catalog.Lookup(t, id)
	e.mu.RUnlock()
	if rec == nil {
		return "", fmt.Errorf("no %s entity with id %s in catalog", t, id)
	}
	return e.Dispatcher.Enrich(ctx, rec), nil
}

// EntityStatus reports one entity's record, enrichment state, cached summary
// and failure message for the serving layer.
func (e *Engine) EntityStatus(t model.EntityType, id string) (*model.EntityRecord, model.EnrichmentState, *model.SummaryRecord, string) {
	e.mu.RLock()
	rec := e.catalog.Lookup(t, id)
	e.mu.RUnlock()
	if rec == nil {
		return nil, "", nil, ""
	}
	key := rec.Key()
	return e.Dispatcher.Enriched(rec), e.Dispatcher.State(key), e.Dispatcher.Summary(key), e.Dispatcher.Message(key)
}

// Subscribe exposes the dispatcher's state-transition feed to the rendering
// collaborator.
func (e *Engine) Subscribe() <-chan enrich.Update {
	return e.Dispatcher.Subscribe()
}

// Unsubscribe releases a feed obtained from Subscribe and closes it.
func (e *Engine) Unsubscribe(ch <-chan enrich.Update) {
	e.Dispatcher.Unsubscribe(ch)
}
