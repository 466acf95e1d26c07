package classify

import (
	"regexp"
	"strings"

	"github.com/graphbio/helix/internal/core/model"
)

// drugBankPattern matches bare DrugBank accessions like "DB01234".
var drugBankPattern = regexp.MustCompile(`\bDB\d{4,}\b`)

type shapeRule struct {
	name  string
	match func(p props) bool
	typ   model.EntityType
}

// shapeRules is the ordered structural-hint table applied when an identifier
// resolves to no known namespace. First match wins; later rules only act when
// none of the earlier, more specific signals fire. The order is a contract:
// the same row alias can denote protein, pathway, or phenotype depending on
// payload shape, and this list is what arbitrates.
var shapeRules = []shapeRule{
	{"ensembl-fields", func(p props) bool {
		return p.has("ensembl") || p.has("ensembl_gene_ids")
	}, model.TypeGene},
	{"sequences", func(p props) bool {
		return p.has("sequences")
	}, model.TypeProtein},
	{"drug-pattern", func(p props) bool {
		return p.idOrNameContains("drug") || p.hasDrugBankAccession()
	}, model.TypeDrug},
	{"pathway", func(p props) bool {
		return p.idOrNameContains("pathway")
	}, model.TypePathway},
	{"domain-accession", func(p props) bool {
		return strings.Contains(p.id(), "IPR") || strings.Contains(strings.ToLower(p.id()), "pfam")
	}, model.TypeDomain},
	{"phenotype", func(p props) bool {
		return strings.Contains(p.id(), "HP:") || strings.Contains(p.name(), "HP:") || p.idOrNameContains("phenotype")
	}, model.TypePhenotype},
	{"go-term", func(p props) bool {
		return strings.Contains(p.id(), "GO:")
	}, model.TypeGOTerm},
	{"taxon", func(p props) bool {
		return strings.Contains(strings.ToLower(p.id()), "taxon")
	}, model.TypeOrganism},
	{"disease", func(p props) bool {
		return p.idOrNameContains("disease")
	}, model.TypeDisease},
}

// ByShape guesses an entity type from the structure of a candidate object.
// Invoked only after ByID failed. Never errors: when every rule misses it
// falls through to the secondary fallback and ultimately defaults to gene,
// which is deliberately coarse (see the shape tests).
func ByShape(candidate map[string]interface{}) model.EntityType {
	p := props(candidate)

	for _, rule := range shapeRules {
		if rule.match(p) {
			return rule.typ
		}
	}

	// Secondary fallback.
	if p.has("sequences") {
		return model.TypeProtein
	}
	if p.has("synonyms") && p.suggestsChemistry() {
		return model.TypeCompound
	}
	return model.TypeGene
}

// props wraps a loosely-typed candidate object with the string accessors the
// rules need.
type props map[string]interface{}

func (p props) has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

func (p props) id() string {
	return stringField(p, "id")
}

func (p props) name() string {
	return stringField(p, "name")
}

func (p props) idOrNameContains(sub string) bool {
	return strings.Contains(strings.ToLower(p.id()), sub) ||
		strings.Contains(strings.ToLower(p.name()), sub)
}

// hasDrugBankAccession matches a bare DrugBank accession in either the
// identifier or the name; DB ids surface in both positions in the wild.
func (p props) hasDrugBankAccession() bool {
	return drugBankPattern.MatchString(p.id()) || drugBankPattern.MatchString(p.name())
}

func (p props) suggestsChemistry() bool {
	id := strings.ToLower(p.id())
	for _, marker := range []string{"chembl", "chebi", "cid", "compound", "drug"} {
		if strings.Contains(id, marker) {
			return true
		}
	}
	return drugBankPattern.MatchString(p.id())
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
