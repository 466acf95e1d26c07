package model

// EnrichmentState tracks the lifecycle of one entity's summary fetch.
// Transitions are one-way (idle -> loading -> ready|error) except that a
// manual retry moves error back to loading.
type EnrichmentState string

const (
	StateIdle    EnrichmentState = "idle"
	StateLoading EnrichmentState = "loading"
	StateReady   EnrichmentState = "ready"
	StateError   EnrichmentState = "error"
)

// SummaryRecord is what an enrichment source returns for one identifier:
// a human-readable description plus an open bag of namespace-specific fields
// (symbol, organism, molecular weight, lineage, hierarchy, ...).
type SummaryRecord struct {
	Description string                 `json:"description"`
	Name        string                 `json:"name,omitempty"`
	Source      string                 `json:"source,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
}
