//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"errors"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/sparse"
	"sort"
)

var Msg = lnch.Msg

var ErrEmptyCorpus = errors.New("no documents with tokens: nothing to model")

// DTM - the document-term matrix, stored the way the LDA wants it: terms are rows, documents are columns
type DTM struct {
	M       *sparse.CSR
	Terms   []string
	Docs    []string
	termidx map[string]int
	docidx  map[string]int
}

// BuildDTM - a sparse term x document matrix from the token counts; documents without tokens do not appear
func BuildDTM(rows []str.TokenCount) (*DTM, error) {
	termset := make(map[string]struct{})
	docidx := make(map[string]int)
	var docs []string

	for _, r := range rows {
		if r.Count < 1 {
			continue
		}
		termset[r.Word] = struct{}{}
		if _, ok := docidx[r.ID]; !ok {
			docidx[r.ID] = len(docs)
			docs = append(docs, r.ID)
		}
	}

	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	terms := gen.SortedKeys(termset)
	termidx := make(map[string]int, len(terms))
	for i, t := range terms {
		termidx[t] = i
	}

	// repeated (doc, word) rows add up; cells are stored term by term, then doc by doc
	cells := make(map[[2]int]float64)
	for _, r := range rows {
		if r.Count < 1 {
			continue
		}
		cells[[2]int{termidx[r.Word], docidx[r.ID]}] += float64(r.Count)
	}

	keys := make([][2]int, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	indptr := make([]int, len(terms)+1)
	ind := make([]int, len(keys))
	data := make([]float64, len(keys))
	for n, k := range keys {
		indptr[k[0]+1]++
		ind[n] = k[1]
		data[n] = cells[k]
	}
	for i := 1; i < len(indptr); i++ {
		indptr[i] += indptr[i-1]
	}

	return &DTM{
		M:       sparse.NewCSR(len(terms), len(docs), indptr, ind, data),
		Terms:   terms,
		Docs:    docs,
		termidx: termidx,
		docidx:  docidx,
	}, nil
}

// Dims - (terms, documents)
func (d *DTM) Dims() (int, int) {
	return len(d.Terms), len(d.Docs)
}

// Count - how many times term appears in doc
func (d *DTM) Count(term string, doc string) float64 {
	i, ok := d.termidx[term]
	if !ok {
		return 0
	}
	j, ok := d.docidx[doc]
	if !ok {
		return 0
	}
	return d.M.At(i, j)
}
