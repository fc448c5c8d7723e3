//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
	"unicode"
)

// Tokenizer - a Caser is stateful: give each goroutine its own Tokenizer
type Tokenizer struct {
	lc cases.Caser
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{lc: cases.Lower(language.English)}
}

// Tokenize - a one-off Tokenizer; see Tokenizer.Tokens()
func Tokenize(s string) []string {
	return NewTokenizer().Tokens(s)
}

// Tokens - lowercase and split into words
func (t *Tokenizer) Tokens(s string) []string {
	// "Ozone data (v1.0), don't ask." --> [ozone data v1.0 don't ask]
	// periods and apostrophes survive only between two alphanumerics

	low := t.lc.String(s)
	low = strings.ReplaceAll(low, "’", "'")

	ff := strings.FieldsFunc(low, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '\''
	})

	tt := make([]string, 0, len(ff))
	for _, f := range ff {
		for _, w := range splitjoiners(f) {
			if w != "" {
				tt = append(tt, w)
			}
		}
	}
	return tt
}

// splitjoiners - "...a.b..c'" --> [a.b c]
func splitjoiners(f string) []string {
	isjoiner := func(r rune) bool { return r == '.' || r == '\'' }
	isalnum := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

	rr := []rune(f)
	var out []string
	var sb strings.Builder

	for i, r := range rr {
		if !isjoiner(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 && i < len(rr)-1 && isalnum(rr[i-1]) && isalnum(rr[i+1]) {
			sb.WriteRune(r)
			continue
		}
		out = append(out, sb.String())
		sb.Reset()
	}
	return append(out, sb.String())
}
