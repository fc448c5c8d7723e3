//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"sort"
)

// KeywordsByTopic - among documents whose gamma for a topic exceeds the threshold, the k most frequent keywords per topic
func KeywordsByTopic(gamma []str.GammaRow, keywords []str.KeywordRow, threshold float64, k int) []str.TopicKeyword {
	bydoc := make(map[string][]string)
	for _, kr := range keywords {
		bydoc[kr.ID] = append(bydoc[kr.ID], kr.Keyword)
	}

	counts := make(map[int]map[string]int)
	for _, g := range gamma {
		if g.Gamma <= threshold {
			continue
		}
		if counts[g.Topic] == nil {
			counts[g.Topic] = make(map[string]int)
		}
		for _, kw := range bydoc[g.Document] {
			counts[g.Topic][kw]++
		}
	}

	tt := make([]int, 0, len(counts))
	for t := range counts {
		tt = append(tt, t)
	}
	sort.Ints(tt)

	var out []str.TopicKeyword
	for _, t := range tt {
		tk := make([]str.TopicKeyword, 0, len(counts[t]))
		for kw, n := range counts[t] {
			tk = append(tk, str.TopicKeyword{Topic: t, Keyword: kw, N: n})
		}
		sort.Slice(tk, func(i, j int) bool {
			if tk[i].N != tk[j].N {
				return tk[i].N > tk[j].N
			}
			return tk[i].Keyword < tk[j].Keyword
		})
		if k >= 0 && k < len(tk) {
			tk = tk[:k]
		}
		out = append(out, tk...)
	}
	return out
}
