package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphbio/helix/internal/core/model"
)

func TestRegisterDeduplicatesByTypeAndId(t *testing.T) {
	reg := New("catalog-1")

	reg.Register(map[string]interface{}{"id": "ncbigene:60529", "symbol": "ALX4"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "ncbigene:60529", "symbol": "ALX4"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "ncbigene:60529"}, model.TypeGene)

	catalog := reg.Catalog()
	assert.Equal(t, 1, catalog.Len())
	assert.Len(t, catalog.Entries[model.TypeGene], 1)
}

func TestRegisterSameIdDifferentTypesStaySeparate(t *testing.T) {
	reg := New("catalog-1")

	reg.Register(map[string]interface{}{"id": "x:1"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "x:1"}, model.TypeProtein)

	assert.Equal(t, 2, reg.Catalog().Len())
}

func TestRegisterDropsCandidatesWithoutId(t *testing.T) {
	reg := New("catalog-1")

	assert.Nil(t, reg.Register(map[string]interface{}{"name": "orphan"}, model.TypeGene))
	assert.Equal(t, 0, reg.Catalog().Len())
}

func TestRegisterCoercesNumericIds(t *testing.T) {
	reg := New("catalog-1")

	// JSON numbers arrive as float64; both integral and fractional ids must
	// survive registration with the same rendering the scanner uses.
	whole := reg.Register(map[string]interface{}{"id": 60529.0}, model.TypeGene)
	require.NotNil(t, whole)
	assert.Equal(t, "60529", whole.ID)

	fractional := reg.Register(map[string]interface{}{"id": 1.5}, model.TypeGene)
	require.NotNil(t, fractional)
	assert.Equal(t, "1.5", fractional.ID)
}

func TestRegisterMergeWidensButNeverOverwrites(t *testing.T) {
	reg := New("catalog-1")

	reg.Register(map[string]interface{}{"id": "mondo:001", "name": "first"}, model.TypeDisease)
	rec := reg.Register(map[string]interface{}{
		"id":       "mondo:001",
		"name":     "second",
		"synonyms": []interface{}{"alt"},
	}, model.TypeDisease)

	require.NotNil(t, rec)
	assert.Equal(t, "first", rec.RawProperties["name"])
	assert.Equal(t, []interface{}{"alt"}, rec.RawProperties["synonyms"])
}

func TestRegisterDisplayNameUpgradesOnLaterFragment(t *testing.T) {
	reg := New("catalog-1")

	rec := reg.Register(map[string]interface{}{"id": "mondo:001"}, model.TypeDisease)
	assert.Equal(t, "MONDO:001", rec.DisplayName)

	rec = reg.Register(map[string]interface{}{"id": "mondo:001", "name": "cleft palate"}, model.TypeDisease)
	assert.Equal(t, "cleft palate", rec.DisplayName)
}

func TestRegisterPreservesInsertionOrderPerType(t *testing.T) {
	reg := New("catalog-1")

	reg.Register(map[string]interface{}{"id": "ncbigene:1"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "ncbigene:2"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "ncbigene:1"}, model.TypeGene)
	reg.Register(map[string]interface{}{"id": "ncbigene:3"}, model.TypeGene)

	genes := reg.Catalog().Entries[model.TypeGene]
	require.Len(t, genes, 3)
	assert.Equal(t, "ncbigene:1", genes[0].ID)
	assert.Equal(t, "ncbigene:2", genes[1].ID)
	assert.Equal(t, "ncbigene:3", genes[2].ID)
}
