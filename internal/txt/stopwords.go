//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/kljensen/snowball/english"
	"os"
	"path/filepath"
	"sort"
)

var Msg = lnch.Msg

//
// STOPWORDS
//

var (
	// CatalogStops - version strings, processing levels, and small numbers swamp the catalog vocabulary
	CatalogStops = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"v1", "v1.0", "v2", "v3", "v03", "v003", "v004", "v005", "v006", "v5.2.0", "v7",
		"l1", "l2", "l3", "l4", "ii", "iii", "data", "set", "version"}
)

// StopWords - the snowball English list plus our own
type StopWords struct {
	extra map[string]struct{}
}

// NewStopWords - snowball plus the supplied words
func NewStopWords(extra []string) *StopWords {
	return &StopWords{extra: gen.ToSet(extra)}
}

// DefaultStopWords - snowball plus CatalogStops
func DefaultStopWords() *StopWords {
	return NewStopWords(CatalogStops)
}

// Has - true if w should be dropped
func (s *StopWords) Has(w string) bool {
	if _, ok := s.extra[w]; ok {
		return true
	}
	return english.IsStopWord(w)
}

// Extra - the non-snowball stop words, sorted
func (s *StopWords) Extra() []string {
	return gen.SortedKeys(s.extra)
}

// ReadStopConfig - read the vv.CONFIGSTOPS file in dir and return the stop words; if it does not exist, generate it
func ReadStopConfig(dir string) *StopWords {
	const (
		ERR1 = "ReadStopConfig() failed to parse "
		MSG1 = "ReadStopConfig() wrote stop word configuration file: "
		MSG2 = "ReadStopConfig() loaded %d stop words from %s"
	)

	stops := gen.Unique(CatalogStops)
	fn := filepath.Join(dir, vv.CONFIGSTOPS)

	_, missing := os.Stat(fn)

	if missing != nil {
		sorted := append([]string{}, stops...)
		sort.Strings(sorted)
		content, err := json.MarshalIndent(sorted, "", vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fn, content, vv.WRITEPERMS)
		if err == nil {
			Msg.PEEK(MSG1 + fn)
		} else {
			Msg.EC(err)
		}
	} else {
		loadedcfg, err := os.ReadFile(fn)
		Msg.EC(err)
		var stp []string
		if err = json.Unmarshal(loadedcfg, &stp); err != nil {
			Msg.CRIT(ERR1 + fn)
		} else {
			stops = stp
			Msg.TMI(fmt.Sprintf(MSG2, len(stp), fn))
		}
	}
	return NewStopWords(stops)
}

// UserStopWords - ReadStopConfig() in "~/.config/"
func UserStopWords() *StopWords {
	const (
		ERR1 = "UserStopWords() cannot find UserHomeDir"
	)
	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return DefaultStopWords()
	}
	dir := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	if err := os.MkdirAll(dir, vv.DIRPERMS); err != nil {
		Msg.EC(err)
		return DefaultStopWords()
	}
	return ReadStopConfig(dir)
}
