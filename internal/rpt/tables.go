//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"html"
	"sort"
	"strings"
)

//
// HTML TABLES
//

const (
	NTH = 2

	FULLTABLE = `
	<table class="%s"><tbody>
	%s
	</tbody></table>`

	TABLEROW = `
	<tr class="%s">%s
	</tr>`
)

// tablerows - alternate the row classes the way the stylesheet expects
func tablerows(cells []string) string {
	var rows []string
	for i := range cells {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		rows = append(rows, fmt.Sprintf(TABLEROW, rn, cells[i]))
	}
	return strings.Join(rows, "\n")
}

func headerrow(hh ...string) string {
	var cc []string
	for _, h := range hh {
		cc = append(cc, fmt.Sprintf(`<td class="header">%s</td>`, html.EscapeString(h)))
	}
	return fmt.Sprintf(TABLEROW, "vectorrow", "\n\t\t"+strings.Join(cc, "\n\t\t"))
}

// summarytable - what was fetched and how the run was set up
func summarytable(r *Report) string {
	const (
		TABLEELEM = `
		<td>%s</td>
		<td class="num">%s</td>`
	)

	pr := message.NewPrinter(language.English)
	s := r.Summary

	from := "network"
	if s.FromCache {
		from = "cache"
	}

	stem := "no"
	if r.Settings.Stemmed {
		stem = "yes"
	}

	cells := []string{
		fmt.Sprintf(TABLEELEM, "source", html.EscapeString(s.Source)),
		fmt.Sprintf(TABLEELEM, "loaded from", from),
		fmt.Sprintf(TABLEELEM, "records in the catalog", pr.Sprintf("%d", s.Raw)),
		fmt.Sprintf(TABLEELEM, "datasets kept", pr.Sprintf("%d", s.Kept)),
		fmt.Sprintf(TABLEELEM, "duplicate identifiers dropped", pr.Sprintf("%d", s.Duplicates)),
		fmt.Sprintf(TABLEELEM, "empty records dropped", pr.Sprintf("%d", s.Empty)),
		fmt.Sprintf(TABLEELEM, "keyword assignments", pr.Sprintf("%d", s.Keywords)),
		fmt.Sprintf(TABLEELEM, "distinct publishers", pr.Sprintf("%d", s.Publishers)),
		fmt.Sprintf(TABLEELEM, "topics", pr.Sprintf("%d", r.Settings.Topics)),
		fmt.Sprintf(TABLEELEM, "seed", pr.Sprintf("%d", r.Settings.Seed)),
		fmt.Sprintf(TABLEELEM, "iterations", pr.Sprintf("%d", r.Settings.Iterations)),
		fmt.Sprintf(TABLEELEM, "stemmed", stem),
		fmt.Sprintf(TABLEELEM, "run", html.EscapeString(r.RunID)),
		fmt.Sprintf(TABLEELEM, "generated", r.Generated.Format("2006-01-02 15:04:05")),
	}

	if r.Perplexity > 0 {
		cells = append(cells, fmt.Sprintf(TABLEELEM, "perplexity", pr.Sprintf("%.2f", r.Perplexity)))
	}

	return fmt.Sprintf(FULLTABLE, "summary", tablerows(cells))
}

// topicsummarytable - top words, dominant-topic counts, and accumulated weight per topic
func topicsummarytable(r *Report) string {
	const (
		TABLEELEM = `
		<td class="num">%d</td>
		<td>%s</td>
		<td class="num">%d (%.2f%%)</td>
		<td class="num">%.2f%%</td>`
	)

	if len(r.TopicWeights) == 0 {
		return ""
	}

	words := make(map[int][]string)
	for _, t := range r.TopTerms {
		words[t.Topic] = append(words[t.Topic], t.Term)
	}

	total := 0
	for _, w := range r.TopicWeights {
		total += w.Dominant
	}

	var cells []string
	for _, w := range r.TopicWeights {
		pct := 0.0
		if total > 0 {
			pct = float64(w.Dominant) / float64(total) * 100
		}
		tw := html.EscapeString(strings.Join(words[w.Topic], ", "))
		cells = append(cells, fmt.Sprintf(TABLEELEM, w.Topic, tw, w.Dominant, pct, w.Weight*100))
	}

	top := headerrow("topic", "top words", "datasets with this as their dominant topic", "scaled accumulated weight")
	return fmt.Sprintf(FULLTABLE, "topics", top+tablerows(cells))
}

// topickeywordtable - the keywords most often found on the datasets a topic fits well
func topickeywordtable(r *Report) string {
	const (
		TABLEELEM = `
		<td class="num">%d</td>
		<td>%s</td>`
	)

	if len(r.TopicKeywords) == 0 {
		return ""
	}

	bytopic := make(map[int][]string)
	for _, k := range r.TopicKeywords {
		bytopic[k.Topic] = append(bytopic[k.Topic], fmt.Sprintf("%s (%d)", k.Keyword, k.N))
	}

	tt := make([]int, 0, len(bytopic))
	for t := range bytopic {
		tt = append(tt, t)
	}
	sort.Ints(tt)

	var cells []string
	for _, t := range tt {
		cells = append(cells, fmt.Sprintf(TABLEELEM, t, html.EscapeString(strings.Join(bytopic[t], ", "))))
	}

	top := headerrow("topic", "keywords of the well-fitted datasets")
	return fmt.Sprintf(FULLTABLE, "topickeywords", top+tablerows(cells))
}

// tfidftable - the highest tf-idf terms overall
func tfidftable(r *Report) string {
	const (
		TABLEELEM = `
		<td>%s</td>
		<td>%s</td>
		<td class="num">%d</td>
		<td class="num">%.4f</td>`
	)

	if len(r.TfIdfTop) == 0 {
		return ""
	}

	var cells []string
	for _, t := range r.TfIdfTop {
		cells = append(cells, fmt.Sprintf(TABLEELEM, html.EscapeString(t.ID), html.EscapeString(t.Word), t.N, t.TfIdf))
	}

	top := headerrow("dataset", "word", "n", "tf-idf")
	return fmt.Sprintf(FULLTABLE, "tfidf", top+tablerows(cells))
}

// neighbortable - nearest neighbors of each probe word
func neighbortable(r *Report) string {
	const (
		TABLEELEM = `
		<td>%s</td>
		<td>%s</td>`
	)

	if len(r.Neighbors) == 0 {
		return ""
	}

	var order []string
	byprobe := make(map[string][]string)
	for _, n := range r.Neighbors {
		if _, ok := byprobe[n.Probe]; !ok {
			order = append(order, n.Probe)
		}
		byprobe[n.Probe] = append(byprobe[n.Probe], fmt.Sprintf("%s (%.3f)", n.Word, n.Similarity))
	}

	var cells []string
	for _, p := range order {
		cells = append(cells, fmt.Sprintf(TABLEELEM, html.EscapeString(p), html.EscapeString(strings.Join(byprobe[p], ", "))))
	}

	top := headerrow("word", "nearest neighbors")
	return fmt.Sprintf(FULLTABLE, "neighbors", top+tablerows(cells))
}
