//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"math"
	"sort"
	"strings"
)

//
// GRAPHING
//

const (
	CHRTWIDTH   = "1100px"
	CHRTHEIGHT  = "640px"
	SMALLWIDTH  = "360px"
	SMALLHEIGHT = "280px"
	NETHEIGHT   = "900px"
	FONTSTYLE   = "normal"
	FONTFAMILY  = "sans-serif"
	LEFTALIGN   = "20"
	BOTTALIGN   = "3%"
	SAVETYPE    = "png"
	SAVESTR     = "Save to file..."
	PRECISON    = 4
)

func chartid() string {
	return "c" + strings.Replace(uuid.New().String(), "-", "", -1)
}

func round(val float64) float32 {
	ratio := math.Pow(10, float64(PRECISON))
	return float32(math.Round(val*ratio) / ratio)
}

// globalopts - title, size, and toolbox the way every chart here wants them
func globalopts(title string, subtitle string, width string, height string) []charts.GlobalOpts {
	tst := opts.TextStyle{
		FontStyle:  FONTSTYLE,
		FontSize:   16,
		FontFamily: FONTFAMILY,
	}

	sst := opts.TextStyle{
		FontStyle:  FONTSTYLE,
		FontSize:   10,
		FontFamily: FONTFAMILY,
	}

	tit := opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      subtitle,
		SubtitleStyle: &sst,
		Left:          LEFTALIGN,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  title,
		Title: SAVESTR, // get chinese if ""
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Right:   LEFTALIGN,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: width, Height: height, ChartID: chartid()}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// hbar - a horizontal bar chart with the biggest value on top
func hbar(title string, subtitle string, labels []string, values []float64, width string, height string) *charts.Bar {
	// echarts draws the first category at the bottom once the axes are swapped
	n := len(labels)
	rl := make([]string, n)
	bd := make([]opts.BarData, n)
	for i := 0; i < n; i++ {
		rl[n-1-i] = labels[i]
		bd[n-1-i] = opts.BarData{Value: round(values[i])}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalopts(title, subtitle, width, height)...)
	bar.SetGlobalOptions(
		charts.WithGridOpts(opts.Grid{Left: "22%"}),
		charts.WithYAxisOpts(opts.YAxis{AxisLabel: &opts.AxisLabel{Show: true, Interval: "0"}}),
	)
	bar.SetXAxis(rl).AddSeries(title, bd)
	bar.XYReversal()
	return bar
}

// wordcountbar - the top n of a WordCount list
func wordcountbar(title string, subtitle string, wc []str.WordCount, n int) *charts.Bar {
	if n > len(wc) {
		n = len(wc)
	}
	ll := make([]string, n)
	vv := make([]float64, n)
	for i := 0; i < n; i++ {
		ll[i] = wc[i].Word
		vv[i] = float64(wc[i].Count)
	}
	return hbar(title, subtitle, ll, vv, CHRTWIDTH, CHRTHEIGHT)
}

// vbar - a plain column chart
func vbar(title string, subtitle string, labels []string, values []float64) *charts.Bar {
	bd := make([]opts.BarData, len(values))
	for i := range values {
		bd[i] = opts.BarData{Value: round(values[i])}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalopts(title, subtitle, CHRTWIDTH, CHRTHEIGHT)...)
	bar.SetXAxis(labels).AddSeries(title, bd)
	return bar
}

// edge - anything that can be drawn as a weighted link between two labels
type edge struct {
	a string
	b string
	v float64
}

// network - a force-directed graph; node size follows degree
func network(title string, subtitle string, ee []edge, maxedges int) *charts.Graph {
	const (
		SYMSIZE       = 8
		SIZEDISTORT   = 2.25
		REPULSION     = 400
		GRAVITY       = .12
		EDGELEN       = 60
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
	)

	if maxedges > 0 && len(ee) > maxedges {
		ee = ee[:maxedges]
	}

	degree := make(map[string]int)
	var order []string
	for _, e := range ee {
		for _, n := range []string{e.a, e.b} {
			if _, ok := degree[n]; !ok {
				order = append(order, n)
			}
			degree[n]++
		}
	}

	maxdeg := 1
	for _, d := range degree {
		maxdeg = max(maxdeg, d)
	}

	dot := &opts.ItemStyle{Color: "hsla(" + fmt.Sprintf("%d", DOTHUE) + DOTSL}

	gnn := make([]opts.GraphNode, 0, len(order))
	for _, n := range order {
		sz := SYMSIZE + (float64(degree[n])/float64(maxdeg))*SIZEDISTORT*SYMSIZE
		gnn = append(gnn, opts.GraphNode{Name: n, Value: float32(degree[n]), SymbolSize: fmt.Sprintf("%.4f", sz), ItemStyle: dot})
	}

	gll := make([]opts.GraphLink, 0, len(ee))
	for _, e := range ee {
		gll = append(gll, opts.GraphLink{Source: e.a, Target: e.b, Value: round(e.v)})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(globalopts(title, subtitle, CHRTWIDTH, NETHEIGHT)...)
	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:       true,
				Position:   LABELPOSITON,
				FontFamily: FONTFAMILY,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
	return graph
}

func pairedges(pp []str.WordPair) []edge {
	ee := make([]edge, len(pp))
	for i, p := range pp {
		ee[i] = edge{p.Item1, p.Item2, float64(p.N)}
	}
	return ee
}

func coredges(cc []str.CorPair) []edge {
	ee := make([]edge, len(cc))
	for i, c := range cc {
		ee[i] = edge{c.Item1, c.Item2, c.Correlation}
	}
	return ee
}

func neighboredges(nn []str.Neighbor) []edge {
	ee := make([]edge, len(nn))
	for i, n := range nn {
		ee[i] = edge{n.Probe, n.Word, n.Similarity}
	}
	return ee
}

// topicscatter - the t-SNE map; one series per dominant topic
func topicscatter(title string, subtitle string, pts []str.DocPoint) *charts.Scatter {
	const (
		SYMSIZE = 6
	)
	bytopic := make(map[int][]opts.ScatterData)
	for _, p := range pts {
		bytopic[p.Topic] = append(bytopic[p.Topic], opts.ScatterData{
			Name:       p.Document,
			Value:      []float32{round(p.X), round(p.Y)},
			SymbolSize: SYMSIZE,
		})
	}
	tt := make([]int, 0, len(bytopic))
	for t := range bytopic {
		tt = append(tt, t)
	}
	sort.Ints(tt)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(globalopts(title, subtitle, CHRTWIDTH, NETHEIGHT)...)
	sc.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Type: "value", SplitLine: &opts.SplitLine{Show: false}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", SplitLine: &opts.SplitLine{Show: false}}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: BOTTALIGN}),
	)
	for _, t := range tt {
		sc.AddSeries(fmt.Sprintf("topic %d", t), bytopic[t])
	}
	return sc
}

// perplexityline - perplexity against the number of topics
func perplexityline(title string, subtitle string, ss []str.PerplexityScore) *charts.Line {
	ll := make([]string, len(ss))
	ld := make([]opts.LineData, len(ss))
	for i, s := range ss {
		ll[i] = fmt.Sprintf("%d", s.Topics)
		ld[i] = opts.LineData{Value: round(s.Perplexity)}
	}
	line := charts.NewLine()
	line.SetGlobalOptions(globalopts(title, subtitle, CHRTWIDTH, CHRTHEIGHT)...)
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: "topics"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "perplexity", Scale: true}),
	)
	line.SetXAxis(ll).AddSeries("perplexity", ld)
	return line
}
