//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cooc

import (
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"testing"
)

func rows(docs map[string][]string) []str.TokenCount {
	var tc []str.TokenCount
	for _, id := range []string{"d1", "d2", "d3", "d4", "d5", "d6"} {
		for _, w := range docs[id] {
			tc = append(tc, str.TokenCount{ID: id, Word: w, Count: 1})
		}
	}
	return tc
}

var corpus = map[string][]string{
	"d1": {"ozone", "atmosphere", "earth"},
	"d2": {"ozone", "atmosphere"},
	"d3": {"moon", "rocks", "earth"},
	"d4": {"moon", "rocks"},
	"d5": {"ozone", "earth"},
	"d6": {"moon"},
}

func TestPairwiseCount(t *testing.T) {
	pp := PairwiseCount(rows(corpus))
	require.NotEmpty(t, pp)

	assert.Equal(t, str.WordPair{Item1: "atmosphere", Item2: "ozone", N: 2}, pp[0])
	assert.Equal(t, str.WordPair{Item1: "earth", Item2: "ozone", N: 2}, pp[1])
	assert.Equal(t, str.WordPair{Item1: "moon", Item2: "rocks", N: 2}, pp[2])
	for _, p := range pp {
		assert.Less(t, p.Item1, p.Item2)
		assert.GreaterOrEqual(t, p.N, 1)
	}
	assert.Len(t, FilterPairs(pp, 2), 3)
}

func TestPairwiseCountIgnoresRepeats(t *testing.T) {
	tc := []str.TokenCount{
		{ID: "d1", Word: "a", Count: 5},
		{ID: "d1", Word: "b", Count: 3},
		{ID: "d1", Word: "a", Count: 1},
	}
	assert.Equal(t, []str.WordPair{{Item1: "a", Item2: "b", N: 1}}, PairwiseCount(tc))
}

func presence(item string) []float64 {
	v := make([]float64, 0, 6)
	for _, id := range []string{"d1", "d2", "d3", "d4", "d5", "d6"} {
		x := 0.0
		for _, w := range corpus[id] {
			if w == item {
				x = 1
			}
		}
		v = append(v, x)
	}
	return v
}

func TestPairwiseCorMatchesPearson(t *testing.T) {
	cc := PairwiseCor(rows(corpus), 1)
	require.NotEmpty(t, cc)
	for _, c := range cc {
		want := stat.Correlation(presence(c.Item1), presence(c.Item2), nil)
		assert.InDelta(t, want, c.Correlation, 1e-9, "%s-%s", c.Item1, c.Item2)
		assert.GreaterOrEqual(t, c.Correlation, -1.0)
		assert.LessOrEqual(t, c.Correlation, 1.0)
	}
	// two pairs tie at 1/sqrt(2); the tie goes to item1 order
	require.GreaterOrEqual(t, len(cc), 2)
	assert.Equal(t, "atmosphere", cc[0].Item1)
	assert.Equal(t, "ozone", cc[0].Item2)
	assert.Equal(t, "moon", cc[1].Item1)
	assert.Equal(t, "rocks", cc[1].Item2)
}

func TestPairwiseCorMinDocs(t *testing.T) {
	cc := PairwiseCor(rows(corpus), 3)
	// only ozone, earth, and moon reach three documents
	for _, c := range cc {
		assert.NotEqual(t, "rocks", c.Item1)
		assert.NotEqual(t, "rocks", c.Item2)
		assert.NotEqual(t, "atmosphere", c.Item1)
	}
	assert.Empty(t, FilterCor(cc, 0.99))
}

func TestPhi(t *testing.T) {
	v, ok := Phi(3, 3, 3, 6)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-12)

	_, ok = Phi(6, 6, 3, 6)
	assert.False(t, ok)
}
