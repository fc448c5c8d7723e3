//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tfidf

import (
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

var rows = []str.TokenCount{
	{ID: "a", Word: "earth", Count: 1},
	{ID: "a", Word: "ozone", Count: 3},
	{ID: "b", Word: "earth", Count: 2},
	{ID: "b", Word: "moon", Count: 2},
	{ID: "c", Word: "earth", Count: 1},
	{ID: "c", Word: "moon", Count: 1},
}

func TestBind(t *testing.T) {
	tf := Bind(rows)
	require.Len(t, tf, len(rows))

	for _, r := range tf {
		assert.GreaterOrEqual(t, r.TfIdf, 0.0, r.Word)
		if r.Word == "earth" {
			// in every document
			assert.Equal(t, 0.0, r.TfIdf)
			assert.Equal(t, 0.0, r.IDF)
		}
	}

	// ozone: 3 of 4 tokens in "a"; found in 1 of 3 documents
	assert.Equal(t, "ozone", tf[1].Word)
	assert.InDelta(t, 0.75, tf[1].TF, 1e-12)
	assert.InDelta(t, math.Log(3), tf[1].IDF, 1e-12)
	assert.InDelta(t, 0.75*math.Log(3), tf[1].TfIdf, 1e-12)

	// moon in "b": 2 of 4; 2 of 3 documents
	assert.InDelta(t, 0.5*math.Log(1.5), tf[3].TfIdf, 1e-12)
}

func TestBindSkipsZeroCounts(t *testing.T) {
	tf := Bind([]str.TokenCount{{ID: "a", Word: "x", Count: 0}, {ID: "a", Word: "y", Count: 1}})
	require.Len(t, tf, 1)
	assert.Equal(t, 0.0, tf[0].TfIdf)
}

func TestTop(t *testing.T) {
	top := Top(Bind(rows), 2)
	require.Len(t, top, 2)
	assert.Equal(t, "ozone", top[0].Word)
	assert.Equal(t, "moon", top[1].Word)
	assert.Equal(t, "b", top[1].ID)
	assert.Len(t, Top(Bind(rows), 100), len(rows))
}

func TestByKeyword(t *testing.T) {
	kw := []str.KeywordRow{
		{ID: "a", Keyword: "ATMOSPHERE"},
		{ID: "b", Keyword: "MOON"},
		{ID: "c", Keyword: "MOON"},
	}
	kt := ByKeyword(Bind(rows), kw, []string{"MOON", "ATMOSPHERE", "ABSENT"}, 1)
	require.Len(t, kt, 2)

	assert.Equal(t, "MOON", kt[0].Keyword)
	assert.Equal(t, "moon", kt[0].Word)
	want := (0.5*math.Log(1.5) + 0.5*math.Log(1.5)) / 2
	assert.InDelta(t, want, kt[0].TfIdf, 1e-12)

	assert.Equal(t, "ATMOSPHERE", kt[1].Keyword)
	assert.Equal(t, "ozone", kt[1].Word)
}
