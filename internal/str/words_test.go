//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestWCListOrdering(t *testing.T) {
	wc := WCList{{"water", 3}, {"ice", 7}, {"air", 3}}
	sort.Sort(wc)
	assert.Equal(t, WCList{{"ice", 7}, {"air", 3}, {"water", 3}}, wc)
}

func TestSortPairs(t *testing.T) {
	pp := []WordPair{
		{"land", "ocean", 2},
		{"earth", "science", 9},
		{"data", "ocean", 2},
		{"data", "land", 2},
	}
	SortPairs(pp)
	assert.Equal(t, []WordPair{
		{"earth", "science", 9},
		{"data", "land", 2},
		{"data", "ocean", 2},
		{"land", "ocean", 2},
	}, pp)
}

func TestUsePostgres(t *testing.T) {
	var c CurrentConfiguration
	assert.False(t, c.UsePostgres())
	c.PGLogin.Pass = "x"
	assert.True(t, c.UsePostgres())
}
