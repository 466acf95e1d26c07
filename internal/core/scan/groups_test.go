package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructMergesSameEntityAcrossRows(t *testing.T) {
	rows := []map[string]interface{}{
		{"d.id": "mondo:001", "d.name": "X"},
		{"d.id": "mondo:001", "d.name": "X"},
	}

	candidates := Reconstruct(rows)
	require.Len(t, candidates, 1)
	assert.Equal(t, "mondo:001", candidates[0].ID())
	assert.Equal(t, "d", candidates[0].Hint)
}

func TestReconstructSeparatesDistinctIds(t *testing.T) {
	rows := []map[string]interface{}{
		{"d.id": "mondo:001", "d.name": "X"},
		{"d.id": "mondo:002", "d.name": "Y"},
	}

	candidates := Reconstruct(rows)
	require.Len(t, candidates, 2)
	assert.Equal(t, "mondo:001", candidates[0].ID())
	assert.Equal(t, "mondo:002", candidates[1].ID())
}

func TestReconstructMatchesByNameWhenIdAbsent(t *testing.T) {
	rows := []map[string]interface{}{
		{"p.name": "ALX4", "p.organism": "Homo sapiens"},
		{"p.name": "ALX4", "p.length": 411.0},
	}

	candidates := Reconstruct(rows)
	require.Len(t, candidates, 1)
	props := candidates[0].Props
	assert.Equal(t, "Homo sapiens", props["organism"])
	assert.Equal(t, 411.0, props["length"])
}

func TestReconstructWidensWithoutOverwriting(t *testing.T) {
	rows := []map[string]interface{}{
		{"d.id": "mondo:001", "d.name": "first name"},
		{"d.id": "mondo:001", "d.name": "second name", "d.synonyms": []interface{}{"alt"}},
	}

	candidates := Reconstruct(rows)
	require.Len(t, candidates, 1)
	props := candidates[0].Props
	// First observation wins, later rows only add what was missing.
	assert.Equal(t, "first name", props["name"])
	assert.Equal(t, []interface{}{"alt"}, props["synonyms"])
}

func TestReconstructKeepsPrefixesApart(t *testing.T) {
	rows := []map[string]interface{}{
		{"d.id": "mondo:001", "d.name": "X", "g.id": "ncbigene:60529", "g.symbol": "ALX4"},
	}

	candidates := Reconstruct(rows)
	require.Len(t, candidates, 2)

	byHint := map[string]Candidate{}
	for _, c := range candidates {
		byHint[c.Hint] = c
	}
	assert.Equal(t, "mondo:001", byHint["d"].ID())
	assert.Equal(t, "ncbigene:60529", byHint["g"].ID())
	assert.Equal(t, "ALX4", byHint["g"].Props["symbol"])
}

func TestReconstructIgnoresUndottedKeys(t *testing.T) {
	rows := []map[string]interface{}{
		{"plain": "value", ".leading": "x", "trailing.": "y"},
	}
	assert.Empty(t, Reconstruct(rows))
}
