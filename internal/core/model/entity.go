package model

import "strings"

// EntityType is the closed set of biomedical entity categories the engine
// can classify results into.
type EntityType string

const (
	TypeGene       EntityType = "gene"
	TypeProtein    EntityType = "protein"
	TypeDrug       EntityType = "drug"
	TypeCompound   EntityType = "compound"
	TypeDisease    EntityType = "disease"
	TypePathway    EntityType = "pathway"
	TypeDomain     EntityType = "domain"
	TypeOrganism   EntityType = "organism"
	TypeGOTerm     EntityType = "goTerm"
	TypePhenotype  EntityType = "phenotype"
	TypeSideEffect EntityType = "sideEffect"
	TypeECNumber   EntityType = "ecNumber"
)

// TypeOrder fixes the display and tie-breaking order of the catalog sections.
var TypeOrder = []EntityType{
	TypeGene,
	TypeProtein,
	TypeDrug,
	TypeCompound,
	TypeDisease,
	TypePathway,
	TypeDomain,
	TypeOrganism,
	TypeGOTerm,
	TypePhenotype,
	TypeSideEffect,
	TypeECNumber,
}

// EntityRecord is one deduplicated catalog entry. RawProperties holds
// everything observed about the entity across every row fragment it appeared
// in, merged non-destructively.
type EntityRecord struct {
	ID            string                 `json:"id"`
	Type          EntityType             `json:"type"`
	DisplayName   string                 `json:"display_name"`
	RawProperties map[string]interface{} `json:"raw_properties,omitempty"`
}

// Key is the dedup key inside a catalog: unique per (type, id).
func (r *EntityRecord) Key() string {
	return string(r.Type) + "|" + r.ID
}

// Clone returns a copy of the record with its own property map. Property
// values are shared; nothing mutates them once the catalog is published.
func (r *EntityRecord) Clone() *EntityRecord {
	props := make(map[string]interface{}, len(r.RawProperties))
	for k, v := range r.RawProperties {
		props[k] = v
	}
	return &EntityRecord{
		ID:            r.ID,
		Type:          r.Type,
		DisplayName:   r.DisplayName,
		RawProperties: props,
	}
}

// Namespace returns the lower-cased CURIE prefix of the record's identifier,
// or "" when the identifier carries no namespace.
func (r *EntityRecord) Namespace() string {
	return IdentifierNamespace(r.ID)
}

// IdentifierNamespace splits a CURIE-like identifier on its first colon and
// returns the lower-cased namespace part. Namespaces are case-insensitive.
func IdentifierNamespace(id string) string {
	i := strings.Index(id, ":")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(id[:i])
}

// IdentifierLocal returns the local part of a CURIE-like identifier, or the
// whole identifier when it carries no namespace.
func IdentifierLocal(id string) string {
	i := strings.Index(id, ":")
	if i < 0 || i == len(id)-1 {
		return id
	}
	return id[i+1:]
}
