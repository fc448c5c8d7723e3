//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cooc

import (
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"math"
	"sort"
)

type pairkey struct {
	a string
	b string
}

// documents - item sets per document, documents in order of first appearance, items sorted
func documents(rows []str.TokenCount) ([]string, map[string][]string) {
	var order []string
	seen := make(map[string]map[string]struct{})
	for _, r := range rows {
		if r.Count < 1 {
			continue
		}
		if _, ok := seen[r.ID]; !ok {
			seen[r.ID] = make(map[string]struct{})
			order = append(order, r.ID)
		}
		seen[r.ID][r.Word] = struct{}{}
	}
	docs := make(map[string][]string, len(seen))
	for id, items := range seen {
		docs[id] = gen.SortedKeys(items)
	}
	return order, docs
}

func countpairs(order []string, docs map[string][]string, keep func(string) bool) map[pairkey]int {
	pc := make(map[pairkey]int)
	for _, id := range order {
		items := docs[id]
		if keep != nil {
			var kept []string
			for _, it := range items {
				if keep(it) {
					kept = append(kept, it)
				}
			}
			items = kept
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				pc[pairkey{items[i], items[j]}]++
			}
		}
	}
	return pc
}

// PairwiseCount - how many documents each unordered pair of distinct items shares
func PairwiseCount(rows []str.TokenCount) []str.WordPair {
	order, docs := documents(rows)
	pc := countpairs(order, docs, nil)

	pp := make([]str.WordPair, 0, len(pc))
	for k, n := range pc {
		pp = append(pp, str.WordPair{Item1: k.a, Item2: k.b, N: n})
	}
	str.SortPairs(pp)
	return pp
}

// PairwiseCor - phi coefficient for the pairs of items found in at least minDocs documents
func PairwiseCor(rows []str.TokenCount, minDocs int) []str.CorPair {
	// pairs that never co-occur are not reported: their phi is negative and they are legion
	order, docs := documents(rows)
	total := float64(len(order))

	df := make(map[string]int)
	for _, id := range order {
		for _, it := range docs[id] {
			df[it]++
		}
	}

	keep := func(it string) bool { return df[it] >= minDocs }
	pc := countpairs(order, docs, keep)

	cc := make([]str.CorPair, 0, len(pc))
	for k, n11 := range pc {
		phi, ok := Phi(float64(n11), float64(df[k.a]), float64(df[k.b]), total)
		if !ok {
			continue
		}
		cc = append(cc, str.CorPair{Item1: k.a, Item2: k.b, Correlation: phi})
	}
	SortCor(cc)
	return cc
}

// Phi - correlation of two binary variables from the joint count, the two marginals, and the total
func Phi(n11 float64, n1x float64, nx1 float64, n float64) (float64, bool) {
	// n11*n00 - n10*n01 simplifies to n*n11 - n1x*nx1
	den := n1x * (n - n1x) * nx1 * (n - nx1)
	if den <= 0 {
		return 0, false
	}
	return (n*n11 - n1x*nx1) / math.Sqrt(den), true
}

// SortCor - correlation desc, item1 asc, item2 asc
func SortCor(cc []str.CorPair) {
	sort.Slice(cc, func(i, j int) bool {
		if cc[i].Correlation != cc[j].Correlation {
			return cc[i].Correlation > cc[j].Correlation
		}
		if cc[i].Item1 != cc[j].Item1 {
			return cc[i].Item1 < cc[j].Item1
		}
		return cc[i].Item2 < cc[j].Item2
	})
}

// FilterPairs - pairs with n >= min
func FilterPairs(pp []str.WordPair, min int) []str.WordPair {
	var out []str.WordPair
	for _, p := range pp {
		if p.N >= min {
			out = append(out, p)
		}
	}
	return out
}

// FilterCor - pairs with correlation >= min
func FilterCor(cc []str.CorPair, min float64) []str.CorPair {
	var out []str.CorPair
	for _, c := range cc {
		if c.Correlation >= min {
			out = append(out, c)
		}
	}
	return out
}
