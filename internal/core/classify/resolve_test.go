package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphbio/helix/internal/core/model"
)

func TestResolvePrefersIdentifierOverHint(t *testing.T) {
	// A resolvable namespace always wins, whatever the alias suggests.
	candidate := map[string]interface{}{"id": "uniprot:Q9H161"}
	assert.Equal(t, model.TypeProtein, Resolve(candidate, "d"))
}

func TestResolveGeneHint(t *testing.T) {
	candidate := map[string]interface{}{"id": "x:1", "symbol": "ALX4"}
	assert.Equal(t, model.TypeGene, Resolve(candidate, "g"))
	assert.Equal(t, model.TypeGene, Resolve(candidate, "gene"))
}

func TestResolveAmbiguousProteinHint(t *testing.T) {
	// The "p" alias denotes protein, pathway, or phenotype depending on what
	// the payload looks like.
	protein := map[string]interface{}{"id": "x:1", "name": "ALX homeobox 4"}
	assert.Equal(t, model.TypeProtein, Resolve(protein, "p"))

	pathway := map[string]interface{}{"id": "x:2", "name": "Wnt signaling pathway"}
	assert.Equal(t, model.TypePathway, Resolve(pathway, "p"))

	phenotype := map[string]interface{}{"id": "HP:0000175"}
	assert.Equal(t, model.TypePhenotype, Resolve(phenotype, "p"))
}

func TestResolveAmbiguousDiseaseDrugHint(t *testing.T) {
	disease := map[string]interface{}{"id": "x:1", "name": "cleft palate"}
	assert.Equal(t, model.TypeDisease, Resolve(disease, "d"))

	drug := map[string]interface{}{"id": "DB00945"}
	assert.Equal(t, model.TypeDrug, Resolve(drug, "d"))

	// The accession pattern counts wherever it appears, name included.
	drugByName := map[string]interface{}{"id": "x:3", "name": "DB00945"}
	assert.Equal(t, model.TypeDrug, Resolve(drugByName, "d"))

	withATC := map[string]interface{}{"id": "x:2", "atc_codes": []interface{}{"N02BA01"}}
	assert.Equal(t, model.TypeDrug, Resolve(withATC, "d"))
}

func TestResolveFallsThroughToShape(t *testing.T) {
	candidate := map[string]interface{}{"id": "x:1", "sequences": []interface{}{"MSEQ"}}
	assert.Equal(t, model.TypeProtein, Resolve(candidate, "unknown_alias"))

	bare := map[string]interface{}{"id": "x:2"}
	assert.Equal(t, model.TypeGene, Resolve(bare, ""))
}
