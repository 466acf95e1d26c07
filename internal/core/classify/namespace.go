package classify

import (
	"strings"

	"github.com/graphbio/helix/internal/core/model"
)

// namespaceTypes maps lower-cased CURIE prefixes to entity types. Lookup is
// exact; unrecognized prefixes fall through to substring sniffing on the raw
// identifier.
var namespaceTypes = map[string]model.EntityType{
	"ncbigene":         model.TypeGene,
	"ensembl":          model.TypeGene,
	"uniprot":          model.TypeProtein,
	"drugbank":         model.TypeDrug,
	"chembl":           model.TypeCompound,
	"pubchem.compound": model.TypeCompound,
	"chebi":            model.TypeCompound,
	"mondo":            model.TypeDisease,
	"mesh":             model.TypeDisease,
	"omim":             model.TypeDisease,
	"kegg.pathway":     model.TypePathway,
	"reactome":         model.TypePathway,
	"kegg":             model.TypePathway,
	"interpro":         model.TypeDomain,
	"pfam":             model.TypeDomain,
	"ncbitaxon":        model.TypeOrganism,
	"go":               model.TypeGOTerm,
	"hp":               model.TypePhenotype,
	"meddra":           model.TypeSideEffect,
	"eccode":           model.TypeECNumber,
}

// ByID classifies a CURIE-like identifier by its namespace prefix. It is pure
// and total: unresolvable identifiers return ("", false) and the caller falls
// back to the shape heuristics.
func ByID(id string) (model.EntityType, bool) {
	if id == "" {
		return "", false
	}
	if ns := model.IdentifierNamespace(id); ns != "" {
		if t, ok := namespaceTypes[ns]; ok {
			return t, true
		}
	}

	// Unknown namespace: sniff the raw identifier before giving up.
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "pathway"):
		return model.TypePathway, true
	case strings.Contains(lower, "gene"):
		return model.TypeGene, true
	case strings.Contains(lower, "protein"):
		return model.TypeProtein, true
	case strings.Contains(id, "HP:"):
		return model.TypePhenotype, true
	case strings.Contains(id, "GO:"):
		return model.TypeGOTerm, true
	case strings.Contains(lower, "disease"), strings.Contains(lower, "disorder"):
		return model.TypeDisease, true
	}

	return "", false
}

// Supported reports whether a namespace has a dedicated entry in the
// classification table.
func Supported(ns string) bool {
	_, ok := namespaceTypes[strings.ToLower(ns)]
	return ok
}
