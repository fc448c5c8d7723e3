//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice; first appearance wins and order is kept
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks as consecutive repeats: [a, a, b, a] -> [a, b, a]
	seen := make(map[T]struct{}, len(s))
	var result []T
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func SetSubtraction[T comparable](aa []T, bb []T) []T {
	// 	aa := []string{"a", "b", "c", "d", "g", "h"}
	//	bb := []string{"a", "b", "e", "f", "g"}
	//	dd := SetSubtraction(aa, bb)
	//  [c d h]
	drop := ToSet(bb)
	return slices.DeleteFunc(slices.Clone(aa), func(c T) bool {
		_, ok := drop[c]
		return ok
	})
}

// StringMapKeysIntoSlice - convert map[string]T to []string
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	sl := make([]string, len(mp))
	i := 0
	for k := range mp {
		sl[i] = k
		i += 1
	}
	return sl
}

// SortedKeys - StringMapKeysIntoSlice() in alphabetical order
func SortedKeys[T any](mp map[string]T) []string {
	sl := StringMapKeysIntoSlice(mp)
	sort.Strings(sl)
	return sl
}

// ChunkSlice - turn a slice into a slice of slices of size N; thanks to https://stackoverflow.com/questions/35179656/slice-chunking-in-go
func ChunkSlice[T any](items []T, size int) (chunks [][]T) {
	if size < 1 {
		return [][]T{items}
	}
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[0:size:size])
	}
	return append(chunks, items)
}

// SplitCSV - "a, b,,c" --> [a b c]
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitCSVInts - "8, 16,x,24" --> [8 16 24]; non-numbers and values < 1 are skipped
func SplitCSVInts(s string) []int {
	var out []int
	for _, p := range SplitCSV(s) {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	return out
}
