//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/go-echarts/go-echarts/v2/components"
	"sort"
)

var ErrNoSuchSection = errors.New("no such section")

// Section - one block of the report; Build returns "" when there is nothing to show
type Section struct {
	Name  string
	Title string
	Build func(r *Report) (string, error)
}

// Sections - the report in reading order
func Sections() []Section {
	return []Section{
		{"summary", "Catalog", func(r *Report) (string, error) { return summarytable(r), nil }},
		{"titlewords", "Most common title words", wordsection(func(r *Report) []str.WordCount { return r.TitleWords }, "title words")},
		{"descwords", "Most common description words", wordsection(func(r *Report) []str.WordCount { return r.DescWords }, "description words")},
		{"keywords", "Most common keywords", wordsection(func(r *Report) []str.WordCount { return r.Keywords }, "keywords")},
		{"titlenet", "Title word co-occurrence", pairsection(func(r *Report) []str.WordPair { return r.TitlePairs }, "title words")},
		{"descnet", "Description word co-occurrence", pairsection(func(r *Report) []str.WordPair { return r.DescPairs }, "description words")},
		{"keywordnet", "Keyword co-occurrence", pairsection(func(r *Report) []str.WordPair { return r.KeywordPairs }, "keywords")},
		{"keywordcor", "Keyword correlation", keywordcorsection},
		{"tfidf", "Highest tf-idf description words", func(r *Report) (string, error) { return tfidftable(r), nil }},
		{"tfidfkw", "tf-idf by keyword", tfidfkeywordsection},
		{"topicterms", "Top terms per topic", topictermsection},
		{"topicweights", "Topic weights", topicweightsection},
		{"gamma", "Distribution of document-topic probabilities", gammasection},
		{"topickeywords", "Keywords per topic", func(r *Report) (string, error) { return topickeywordtable(r), nil }},
		{"sweep", "Perplexity by number of topics", sweepsection},
		{"tsne", "Datasets mapped by topic mixture", tsnesection},
		{"neighbors", "Word embedding neighbors", neighborsection},
	}
}

// RenderSection - one section by name
func RenderSection(name string, r *Report) (string, error) {
	for _, s := range Sections() {
		if s.Name == name {
			return s.Build(r)
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrNoSuchSection, name)
}

func topn(r *Report) int {
	if r.Settings.TopN > 0 {
		return r.Settings.TopN
	}
	return vv.DEFAULTTOPN
}

func wordsection(pick func(r *Report) []str.WordCount, what string) func(r *Report) (string, error) {
	return func(r *Report) (string, error) {
		wc := pick(r)
		if len(wc) == 0 {
			return "", nil
		}
		n := topn(r)
		sub := fmt.Sprintf("top %d of %d distinct %s", min(n, len(wc)), len(wc), what)
		return renderfragment(components.PageCenterLayout, wordcountbar("count", sub, wc, n))
	}
}

func pairsection(pick func(r *Report) []str.WordPair, what string) func(r *Report) (string, error) {
	return func(r *Report) (string, error) {
		pp := pick(r)
		if len(pp) == 0 {
			return "", nil
		}
		sub := fmt.Sprintf("%d pairs of %s; strongest %d drawn", len(pp), what, min(len(pp), vv.MAXNETWORKEDGE))
		return renderfragment(components.PageCenterLayout, network("co-occurrence", sub, pairedges(pp), vv.MAXNETWORKEDGE))
	}
}

func keywordcorsection(r *Report) (string, error) {
	if len(r.KeywordCor) == 0 {
		return "", nil
	}
	sub := fmt.Sprintf("phi > %.2f among keywords used at least %d times", vv.KEYWORDMINCOR, vv.KEYWORDMINDOCS)
	return renderfragment(components.PageCenterLayout, network("correlation", sub, coredges(r.KeywordCor), vv.MAXNETWORKEDGE))
}

// tfidfkeywordsection - one small bar chart per chosen keyword
func tfidfkeywordsection(r *Report) (string, error) {
	if len(r.TfIdfByKeyword) == 0 {
		return "", nil
	}

	var order []string
	labels := make(map[string][]string)
	values := make(map[string][]float64)
	for _, k := range r.TfIdfByKeyword {
		if _, ok := labels[k.Keyword]; !ok {
			order = append(order, k.Keyword)
		}
		labels[k.Keyword] = append(labels[k.Keyword], k.Word)
		values[k.Keyword] = append(values[k.Keyword], k.TfIdf)
	}

	var cc []components.Charter
	for _, k := range order {
		cc = append(cc, hbar(k, "mean tf-idf", labels[k], values[k], SMALLWIDTH, SMALLHEIGHT))
	}
	return renderfragment(components.PageFlexLayout, cc...)
}

// topictermsection - one small bar chart of beta per topic
func topictermsection(r *Report) (string, error) {
	if len(r.TopTerms) == 0 {
		return "", nil
	}

	labels := make(map[int][]string)
	values := make(map[int][]float64)
	for _, t := range r.TopTerms {
		labels[t.Topic] = append(labels[t.Topic], t.Term)
		values[t.Topic] = append(values[t.Topic], t.Beta)
	}

	tt := make([]int, 0, len(labels))
	for t := range labels {
		tt = append(tt, t)
	}
	sort.Ints(tt)

	var cc []components.Charter
	for _, t := range tt {
		cc = append(cc, hbar(fmt.Sprintf("topic %d", t), "beta", labels[t], values[t], SMALLWIDTH, SMALLHEIGHT))
	}
	return renderfragment(components.PageFlexLayout, cc...)
}

func topicweightsection(r *Report) (string, error) {
	if len(r.TopicWeights) == 0 {
		return "", nil
	}
	ll := make([]string, len(r.TopicWeights))
	dd := make([]float64, len(r.TopicWeights))
	for i, w := range r.TopicWeights {
		ll[i] = fmt.Sprintf("%d", w.Topic)
		dd[i] = float64(w.Dominant)
	}
	frag, err := renderfragment(components.PageCenterLayout, vbar("datasets", "datasets per dominant topic", ll, dd))
	if err != nil {
		return "", err
	}
	return frag + topicsummarytable(r), nil
}

func gammasection(r *Report) (string, error) {
	if len(r.GammaHist) == 0 {
		return "", nil
	}
	bins := len(r.GammaHist)
	ll := make([]string, bins)
	dd := make([]float64, bins)
	for i, n := range r.GammaHist {
		ll[i] = fmt.Sprintf("%.2f", float64(i)/float64(bins))
		dd[i] = float64(n)
	}
	return renderfragment(components.PageCenterLayout, vbar("gamma", "count of (document, topic) probabilities per bin", ll, dd))
}

func sweepsection(r *Report) (string, error) {
	if len(r.Sweep) == 0 {
		return "", nil
	}
	return renderfragment(components.PageCenterLayout, perplexityline("perplexity", "lower is better", r.Sweep))
}

func tsnesection(r *Report) (string, error) {
	if len(r.Points) == 0 {
		return "", nil
	}
	sub := fmt.Sprintf("t-SNE of %d document topic mixtures, colored by dominant topic", len(r.Points))
	return renderfragment(components.PageCenterLayout, topicscatter("t-SNE", sub, r.Points))
}

func neighborsection(r *Report) (string, error) {
	if len(r.Neighbors) == 0 {
		return "", nil
	}
	frag, err := renderfragment(components.PageCenterLayout, network("neighbors", "word2vec cosine similarity", neighboredges(r.Neighbors), 0))
	if err != nil {
		return "", err
	}
	return frag + neighbortable(r), nil
}
