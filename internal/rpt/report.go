//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var Msg = lnch.Msg

var ErrNoSuchTable = errors.New("no such table")

// Settings - the run parameters worth printing next to the results
type Settings struct {
	Source     string
	Topics     int
	Seed       int
	Iterations int
	Stemmed    bool
	TopN       int
}

// Report - everything a run produces
type Report struct {
	RunID     string
	Generated time.Time
	Settings  Settings
	Summary   str.CatalogSummary

	TitleWords []str.WordCount
	DescWords  []str.WordCount
	Keywords   []str.WordCount

	TitlePairs   []str.WordPair
	DescPairs    []str.WordPair
	KeywordPairs []str.WordPair
	KeywordCor   []str.CorPair

	TfIdf          []str.TfIdfRow
	TfIdfTop       []str.TfIdfRow
	TfIdfByKeyword []str.KeywordTerm

	Beta          []str.BetaRow
	Gamma         []str.GammaRow
	TopTerms      []str.BetaRow
	TopicWeights  []str.TopicWeight
	TopicKeywords []str.TopicKeyword
	GammaHist     []int
	Perplexity    float64
	Sweep         []str.PerplexityScore
	Points        []str.DocPoint

	Neighbors []str.Neighbor
}

// Tables - the tidy tables by name for JSON export
func (r *Report) Tables() map[string]any {
	return map[string]any{
		"summary":        r.Summary,
		"titlewords":     r.TitleWords,
		"descwords":      r.DescWords,
		"keywords":       r.Keywords,
		"titlepairs":     r.TitlePairs,
		"descpairs":      r.DescPairs,
		"keywordpairs":   r.KeywordPairs,
		"keywordcor":     r.KeywordCor,
		"tfidf":          r.TfIdf,
		"tfidfbykeyword": r.TfIdfByKeyword,
		"beta":           r.Beta,
		"gamma":          r.Gamma,
		"topterms":       r.TopTerms,
		"topicweights":   r.TopicWeights,
		"topickeywords":  r.TopicKeywords,
		"sweep":          r.Sweep,
		"tsne":           r.Points,
		"neighbors":      r.Neighbors,
	}
}

// TableNames - sorted
func (r *Report) TableNames() []string {
	t := r.Tables()
	nn := make([]string, 0, len(t))
	for k := range t {
		nn = append(nn, k)
	}
	sort.Strings(nn)
	return nn
}

// WriteTable - one table as JSON
func (r *Report) WriteTable(w io.Writer, name string) error {
	t, ok := r.Tables()[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrNoSuchTable, name)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", vv.JSONINDENT)
	return enc.Encode(t)
}

// WriteJSON - every table into its own file inside dir
func (r *Report) WriteJSON(dir string) error {
	for _, name := range r.TableNames() {
		fn := filepath.Join(dir, name+".json")
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		err = r.WriteTable(f, name)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
	}
	return nil
}

// WriteReport - report.html plus the JSON tables in dir
func WriteReport(dir string, r *Report) (string, error) {
	const (
		MSG1 = "WriteReport(): wrote %s"
	)
	if err := os.MkdirAll(dir, vv.DIRPERMS); err != nil {
		return "", err
	}

	fn := filepath.Join(dir, vv.REPORTFILE)
	f, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	err = Render(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	if err = r.WriteJSON(dir); err != nil {
		return "", err
	}
	Msg.NOTE(fmt.Sprintf(MSG1, fn))
	return fn, nil
}

// Render - one self-contained page with every section that has something to show
func Render(w io.Writer, r *Report) error {
	var body []string
	for _, s := range Sections() {
		frag, err := s.Build(r)
		if err != nil {
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
		if frag == "" {
			continue
		}
		body = append(body, fmt.Sprintf(SECTIONTPL, s.Name, html.EscapeString(s.Title), frag))
	}

	title := fmt.Sprintf("%s: %s", vv.MYNAME, html.EscapeString(r.Settings.Source))
	_, err := fmt.Fprintf(w, PAGETPL, title, ECHARTSJS, PAGECSS, title, navigation(), strings.Join(body, "\n"))
	return err
}

func navigation() string {
	var nn []string
	for _, s := range Sections() {
		nn = append(nn, fmt.Sprintf(`<a href="#%s">%s</a>`, s.Name, html.EscapeString(s.Title)))
	}
	return strings.Join(nn, " | ")
}

const (
	ECHARTSJS = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

	PAGECSS = `
	body { font-family: sans-serif; margin: 2em; color: #222; }
	section { margin-bottom: 3em; }
	nav { font-size: smaller; margin-bottom: 2em; }
	table { border-collapse: collapse; margin: 1em 0; }
	td { padding: 0.25em 0.75em; }
	tr.nthrow { background: #f1f3f8; }
	td.header { font-weight: bold; border-bottom: 1px solid #888; }
	td.num { text-align: right; font-variant-numeric: tabular-nums; }
	.box { display: flex; flex-wrap: wrap; }`

	PAGETPL = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>%s</title>
	<script src="%s"></script>
	<style>%s
	</style>
</head>
<body>
<h1>%s</h1>
<nav>%s</nav>
%s
</body>
</html>
`

	SECTIONTPL = `
<section id="%s">
<h2>%s</h2>
%s
</section>`
)
