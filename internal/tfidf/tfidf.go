//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tfidf

import (
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"gonum.org/v1/gonum/stat"
	"math"
	"sort"
)

// Bind - add tf, idf, and tf_idf to the (document, word, n) rows; row order is kept
func Bind(rows []str.TokenCount) []str.TfIdfRow {
	// tf = n / tokens in the document
	// idf = ln(documents / documents containing the word)
	// a word found in every document therefore scores exactly 0

	doctot := make(map[string]int)
	df := make(map[string]int)
	for _, r := range rows {
		if r.Count < 1 {
			continue
		}
		doctot[r.ID] += r.Count
		df[r.Word]++
	}

	n := float64(len(doctot))
	out := make([]str.TfIdfRow, 0, len(rows))
	for _, r := range rows {
		if r.Count < 1 {
			continue
		}
		tf := float64(r.Count) / float64(doctot[r.ID])
		idf := 0.0
		if df[r.Word] < len(doctot) {
			idf = math.Log(n / float64(df[r.Word]))
		}
		out = append(out, str.TfIdfRow{ID: r.ID, Word: r.Word, N: r.Count, TF: tf, IDF: idf, TfIdf: tf * idf})
	}
	return out
}

// Top - the k highest tf_idf rows; ties by word then id
func Top(rows []str.TfIdfRow, k int) []str.TfIdfRow {
	sorted := append([]str.TfIdfRow{}, rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TfIdf != sorted[j].TfIdf {
			return sorted[i].TfIdf > sorted[j].TfIdf
		}
		if sorted[i].Word != sorted[j].Word {
			return sorted[i].Word < sorted[j].Word
		}
		return sorted[i].ID < sorted[j].ID
	})
	if k >= 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

// ByKeyword - for each chosen keyword the k terms with the highest mean tf_idf across the datasets tagged with it
func ByKeyword(rows []str.TfIdfRow, keywords []str.KeywordRow, chosen []string, k int) []str.KeywordTerm {
	tagged := make(map[string]map[string]struct{})
	for _, c := range chosen {
		tagged[c] = make(map[string]struct{})
	}
	for _, kr := range keywords {
		if ids, ok := tagged[kr.Keyword]; ok {
			ids[kr.ID] = struct{}{}
		}
	}

	var out []str.KeywordTerm
	for _, c := range gen.Unique(chosen) {
		ids := tagged[c]
		scores := make(map[string][]float64)
		for _, r := range rows {
			if _, ok := ids[r.ID]; ok {
				scores[r.Word] = append(scores[r.Word], r.TfIdf)
			}
		}

		kt := make([]str.KeywordTerm, 0, len(scores))
		for _, w := range gen.SortedKeys(scores) {
			kt = append(kt, str.KeywordTerm{Keyword: c, Word: w, TfIdf: stat.Mean(scores[w], nil)})
		}
		sort.SliceStable(kt, func(i, j int) bool { return kt[i].TfIdf > kt[j].TfIdf })
		if k >= 0 && k < len(kt) {
			kt = kt[:k]
		}
		out = append(out, kt...)
	}
	return out
}
