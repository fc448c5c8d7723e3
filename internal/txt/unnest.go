//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/kljensen/snowball/english"
	"sort"
	"sync"
)

// Field - which free-text field of a Dataset to tokenize
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
)

func (f Field) String() string {
	if f == FieldTitle {
		return "title"
	}
	return "description"
}

func (f Field) of(d str.Dataset) string {
	if f == FieldTitle {
		return d.Title
	}
	return d.Description
}

// Unnester - tokenize, filter, and maybe stem
type Unnester struct {
	Stops   *StopWords
	Stem    bool
	Workers int
}

// Unnest - one TokenCount per (dataset, word); datasets in catalog order, words alphabetical within a dataset
func (u Unnester) Unnest(dd []str.Dataset, f Field) []str.TokenCount {
	w := u.Workers
	if w < 1 {
		w = 1
	}
	size := (len(dd) + w - 1) / w

	chunks := gen.ChunkSlice(dd, size)
	results := make([][]str.TokenCount, len(chunks))

	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tk := NewTokenizer()
			for _, d := range chunks[i] {
				results[i] = append(results[i], u.countone(tk, d.ID, f.of(d))...)
			}
		}(i)
	}
	wg.Wait()

	var all []str.TokenCount
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// Words - the filtered (and maybe stemmed) tokens of s in order
func (u Unnester) Words(tk *Tokenizer, s string) []string {
	tt := tk.Tokens(s)
	ww := make([]string, 0, len(tt))
	for _, t := range tt {
		if u.Stops != nil && u.Stops.Has(t) {
			continue
		}
		if u.Stem {
			t = english.Stem(t, false)
		}
		ww = append(ww, t)
	}
	return ww
}

func (u Unnester) countone(tk *Tokenizer, id string, s string) []str.TokenCount {
	counts := make(map[string]int)
	for _, w := range u.Words(tk, s) {
		counts[w]++
	}
	tc := make([]str.TokenCount, 0, len(counts))
	for _, w := range gen.SortedKeys(counts) {
		tc = append(tc, str.TokenCount{ID: id, Word: w, Count: counts[w]})
	}
	return tc
}

// KeywordTable - (id, keyword) rows
func KeywordTable(dd []str.Dataset) []str.KeywordRow {
	var kr []str.KeywordRow
	for _, d := range dd {
		for _, k := range d.Keywords {
			kr = append(kr, str.KeywordRow{ID: d.ID, Keyword: k})
		}
	}
	return kr
}

// CountWords - total count per word; count desc then word asc
func CountWords(rows []str.TokenCount) []str.WordCount {
	tot := make(map[string]int)
	for _, r := range rows {
		tot[r.Word] += r.Count
	}
	return sortedcounts(tot)
}

// CountKeywords - datasets per keyword
func CountKeywords(rows []str.KeywordRow) []str.WordCount {
	tot := make(map[string]int)
	for _, r := range rows {
		tot[r.Keyword]++
	}
	return sortedcounts(tot)
}

// KeywordRowsAsTokens - treat each keyword as a token with count 1 so the pair counters can take either
func KeywordRowsAsTokens(rows []str.KeywordRow) []str.TokenCount {
	tc := make([]str.TokenCount, len(rows))
	for i, r := range rows {
		tc[i] = str.TokenCount{ID: r.ID, Word: r.Keyword, Count: 1}
	}
	return tc
}

func sortedcounts(tot map[string]int) []str.WordCount {
	wc := make([]str.WordCount, 0, len(tot))
	for w, c := range tot {
		wc = append(wc, str.WordCount{Word: w, Count: c})
	}
	sort.Sort(str.WCList(wc))
	return wc
}
