package classify

import (
	"strings"

	"github.com/graphbio/helix/internal/core/model"
)

// Resolve classifies one candidate object. The identifier namespace is
// authoritative when it resolves; otherwise the originating row alias or
// column prefix (when known) disambiguates before the generic shape rules
// run. Prefix semantics follow the upstream query conventions: "g" always
// carries a gene, "p" carries a protein unless the payload looks like a
// pathway or phenotype, "d" carries either a disease or a drug.
func Resolve(candidate map[string]interface{}, hint string) model.EntityType {
	if t, ok := ByID(stringField(candidate, "id")); ok {
		return t
	}

	p := props(candidate)
	switch strings.ToLower(hint) {
	case "g", "gene":
		return model.TypeGene
	case "p", "protein":
		if p.idOrNameContains("pathway") {
			return model.TypePathway
		}
		if strings.Contains(p.id(), "HP:") || p.idOrNameContains("phenotype") {
			return model.TypePhenotype
		}
		return model.TypeProtein
	case "d":
		if p.idOrNameContains("drug") || p.hasDrugBankAccession() || p.has("atc_codes") {
			return model.TypeDrug
		}
		return model.TypeDisease
	case "disease":
		return model.TypeDisease
	case "drug":
		return model.TypeDrug
	}

	return ByShape(candidate)
}
