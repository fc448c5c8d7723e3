//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"runtime"
	"runtime/debug"
	"strings"
)

// set with -ldflags "-X github.com/e-gun/CatalogTopicMiner/internal/lnch.GitCommit=..."; otherwise
// the vcs stamp that 'go build' leaves in the binary fills in the commit and the date

var GitCommit string
var VersSuppl string
var BuildDate string

// the libraries whose versions change the numbers in a report
var analysislibs = []string{
	"github.com/e-gun/nlp",
	"github.com/e-gun/sparse",
	"github.com/e-gun/wego",
	"github.com/danaugrs/go-tsne",
	"github.com/kljensen/snowball",
	"github.com/go-echarts/go-echarts/v2",
}

// stamp - commit and date: ldflags first, then the vcs settings
func stamp() (string, string) {
	commit, date := GitCommit, BuildDate
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, date
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "":
			commit = s.Value[:min(8, len(s.Value))]
		case s.Key == "vcs.time" && date == "":
			date = s.Value
		}
	}
	return commit, date
}

// VersionLine - "[CTM] Catalog Topic Miner (v0.4.2) [git: 64974732] [gl=3; el=0]"
func VersionLine(cc str.CurrentConfiguration) string {
	const (
		SN = "[C1%sC0] "
		GC = " [C4git: %sC0]"
		LL = " [C6gl=%d; el=%dC0]"
		ME = "C5%sC0 (C2v%sC0)"
	)
	gc := ""
	if commit, _ := stamp(); commit != "" {
		gc = fmt.Sprintf(GC, commit)
	}
	line := fmt.Sprintf(SN, vv.SHORTNAME) + fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl) + gc +
		fmt.Sprintf(LL, cc.LogLevel, cc.EchoLog)
	return Msg.ColStyle(line)
}

func PrintVersion(cc str.CurrentConfiguration) {
	fmt.Println(VersionLine(cc))
}

// BuildLines - what -vv adds to the version line: toolchain, platform, workers, and the analysis stack
func BuildLines(cc str.CurrentConfiguration) []string {
	const (
		BD = "\tS1built:S0\tC3%sC0"
		GV = "\tS1go:S0\tC3%sC0 on C3%s/%sC0"
		WC = "\tS1workers:S0\tC3%dC0 of C3%dC0 cpus"
		LB = "\tS1%s:S0\tC3%sC0"
	)

	var ll []string
	if _, date := stamp(); date != "" {
		ll = append(ll, fmt.Sprintf(BD, date))
	}
	ll = append(ll, fmt.Sprintf(GV, runtime.Version(), runtime.GOOS, runtime.GOARCH))
	ll = append(ll, fmt.Sprintf(WC, cc.WorkerCount, runtime.NumCPU()))

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ll
	}
	have := make(map[string]string, len(bi.Deps))
	for _, d := range bi.Deps {
		have[d.Path] = d.Version
	}
	for _, lib := range analysislibs {
		if v, found := have[lib]; found {
			ll = append(ll, fmt.Sprintf(LB, strings.TrimPrefix(lib, "github.com/"), v))
		}
	}
	return ll
}

func PrintBuildInfo(cc str.CurrentConfiguration) {
	for _, l := range BuildLines(cc) {
		fmt.Println(Msg.ColStyle(l))
	}
}

// PrintCopyright - the GPL notice unless -q
func PrintCopyright(cc str.CurrentConfiguration) {
	if cc.QuietStart {
		return
	}
	fmt.Println(Msg.ColStyle(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJURL)))
}
