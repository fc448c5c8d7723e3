//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	assert.Equal(t, []string{"c", "d", "h"}, SetSubtraction(aa, bb))
	assert.Len(t, aa, 6, "input must not be modified")
}

func TestUniqueKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Nil(t, Unique([]int{}))
}

func TestChunkSlice(t *testing.T) {
	ch := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ch)
	assert.Equal(t, [][]int{{1, 2}}, ChunkSlice([]int{1, 2}, 0))
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b,,c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCSV(tt.in), tt.in)
	}
	assert.Equal(t, []int{8, 16, 24}, SplitCSVInts("8, 16,x,24,-3,0"))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.Len(t, ToSet([]string{"a", "a", "b"}), 2)
}
