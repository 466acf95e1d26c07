package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphbio/helix/internal/core/model"
)

func TestByShapeRuleOrder(t *testing.T) {
	cases := []struct {
		name      string
		candidate map[string]interface{}
		want      model.EntityType
	}{
		{
			"ensembl field wins",
			map[string]interface{}{"ensembl": map[string]interface{}{"gene": "ENSG1"}},
			model.TypeGene,
		},
		{
			"ensembl_gene_ids field wins",
			map[string]interface{}{"ensembl_gene_ids": []interface{}{"ENSG1"}},
			model.TypeGene,
		},
		{
			"sequences field means protein",
			map[string]interface{}{"sequences": []interface{}{"MSEQ"}},
			model.TypeProtein,
		},
		{
			// An ensembl field outranks sequences: rule order matters.
			"ensembl outranks sequences",
			map[string]interface{}{"ensembl": "x", "sequences": []interface{}{"MSEQ"}},
			model.TypeGene,
		},
		{
			"drug substring in name",
			map[string]interface{}{"id": "x:1", "name": "some drug product"},
			model.TypeDrug,
		},
		{
			"drugbank accession pattern",
			map[string]interface{}{"id": "DB00945"},
			model.TypeDrug,
		},
		{
			"drugbank accession in name",
			map[string]interface{}{"id": "x:5", "name": "DB00945"},
			model.TypeDrug,
		},
		{
			"pathway substring",
			map[string]interface{}{"id": "x:2", "name": "Wnt signaling pathway"},
			model.TypePathway,
		},
		{
			"interpro accession",
			map[string]interface{}{"id": "IPR001356"},
			model.TypeDomain,
		},
		{
			"phenotype by HP prefix",
			map[string]interface{}{"id": "HP:0000175"},
			model.TypePhenotype,
		},
		{
			"phenotype by name",
			map[string]interface{}{"id": "x:3", "name": "abnormal phenotype"},
			model.TypePhenotype,
		},
		{
			"go term by prefix",
			map[string]interface{}{"id": "GO:0016072"},
			model.TypeGOTerm,
		},
		{
			"taxon in id",
			map[string]interface{}{"id": "taxon_9606"},
			model.TypeOrganism,
		},
		{
			"disease substring",
			map[string]interface{}{"id": "x:4", "name": "Parkinson disease"},
			model.TypeDisease,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ByShape(tc.candidate))
		})
	}
}

func TestByShapeSecondaryFallback(t *testing.T) {
	// Synonyms plus a chemistry-flavored id suggest a compound.
	compound := map[string]interface{}{
		"id":       "cid12345",
		"synonyms": []interface{}{"aspirin"},
	}
	assert.Equal(t, model.TypeCompound, ByShape(compound))
}

func TestByShapeDefaultsToGene(t *testing.T) {
	// The terminal fallback is gene. This is deliberately coarse: a truly
	// unknown entity lands here, so a catalog showing an unexpected gene is
	// the first place to look.
	unknown := map[string]interface{}{"id": "x:999", "name": "mystery"}
	assert.Equal(t, model.TypeGene, ByShape(unknown))

	assert.Equal(t, model.TypeGene, ByShape(map[string]interface{}{}))
}
