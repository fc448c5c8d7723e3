//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"bytes"
	"fmt"
	"github.com/go-echarts/go-echarts/v2/components"
	"html/template"
	"io"
	"regexp"
	"strings"
)

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// go-echarts wants to write whole pages; we want html+js fragments that can sit inside our own page
// or be handed out one at a time by the server

// renderfragment - the html+js for one or more charts laid out together
func renderfragment(layout components.Layout, cc ...components.Charter) (string, error) {
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)
	p.Layout = layout

	for _, c := range cc {
		c.Validate()
		assets := c.GetAssets()
		for _, v := range assets.JSAssets.Values {
			p.JSAssets.Add(v)
		}
		for _, v := range assets.CSSAssets.Values {
			p.CSSAssets.Add(v)
		}
		p.Charts = append(p.Charts, c)
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomBaseTpl, CustomPageTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// scriptsafe - the option JSON carries catalog text; nothing in it may close or comment out the <script>
var scriptsafe = strings.NewReplacer("</", `<\/`, "<!--", `<\!--`)

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME   = "safeJS"
		JSONNAME = "scriptJSON"
	)

	tpl := template.Must(template.New(name).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
		JSONNAME: func(s interface{}) template.JS {
			return template.JS(scriptsafe.Replace(fmt.Sprint(s)))
		},
	}).Parse(contents[0]))

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomBaseTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomBaseTpl = `
{{- define "base" }}
<div class="container">
    <div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | scriptJSON }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
	{{ if eq .Layout "none" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "center" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "flex" }}
		<div class="box"> {{- range .Charts }} {{ template "base" . }} {{- end }} </div>
	{{ end }}
{{ end }}
`
