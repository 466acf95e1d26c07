package registry

import (
	"github.com/graphbio/helix/internal/core/model"
)

// Registry accumulates classified candidates across all rows of a result set
// and builds the deduplicated catalog. It is the only mutable state of the
// scanning pass and is passed through the pipeline explicitly.
type Registry struct {
	catalog *model.Catalog
}

func New(catalogUUID string) *Registry {
	return &Registry{catalog: model.NewCatalog(catalogUUID)}
}

// Register folds one classified candidate into the catalog. Candidates
// without a derivable identifier are dropped, that is filtering, not failure.
// The first registration of a (type, id) pair wins for every property it
// carries; later registrations may only add properties that were absent. The
// display name is recomputed after each merge so a later fragment carrying a
// friendlier name upgrades an identifier-formatted one.
func (r *Registry) Register(props map[string]interface{}, t model.EntityType) *model.EntityRecord {
	id := asString(props["id"])
	if id == "" {
		return nil
	}

	rec := r.catalog.Lookup(t, id)
	if rec == nil {
		merged := make(map[string]interface{}, len(props))
		for k, v := range props {
			merged[k] = v
		}
		rec = &model.EntityRecord{ID: id, Type: t, RawProperties: merged}
		r.catalog.Add(rec)
	} else {
		for k, v := range props {
			if _, ok := rec.RawProperties[k]; !ok {
				rec.RawProperties[k] = v
			}
		}
	}

	rec.DisplayName = DisplayName(id, rec.RawProperties)
	return rec
}

// Catalog returns the accumulated catalog.
func (r *Registry) Catalog() *model.Catalog {
	return r.catalog
}
