package model

// Catalog is the typed, deduplicated artifact handed to the rendering
// collaborator. Records are grouped per type in insertion order; each
// (type, id) pair appears at most once. A catalog is built synchronously for
// one result set and replaced wholesale when the next result set arrives.
type Catalog struct {
	UUID    string                       `json:"uuid"`
	Entries map[EntityType][]*EntityRecord `json:"entries"`

	index map[string]*EntityRecord
}

func NewCatalog(uuid string) *Catalog {
	return &Catalog{
		UUID:    uuid,
		Entries: make(map[EntityType][]*EntityRecord),
		index:   make(map[string]*EntityRecord),
	}
}

// Lookup returns the record for (type, id), or nil.
func (c *Catalog) Lookup(t EntityType, id string) *EntityRecord {
	return c.index[string(t)+"|"+id]
}

// Add appends a record to its type section unless the (type, id) pair is
// already present, in which case the existing record is returned.
func (c *Catalog) Add(rec *EntityRecord) *EntityRecord {
	if existing, ok := c.index[rec.Key()]; ok {
		return existing
	}
	c.index[rec.Key()] = rec
	c.Entries[rec.Type] = append(c.Entries[rec.Type], rec)
	return rec
}

// Len counts records across all type sections.
func (c *Catalog) Len() int {
	return len(c.index)
}
