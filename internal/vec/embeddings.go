//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/txt"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"strings"
	"time"
)

var Msg = lnch.Msg

// BuildTextBlock - one line per dataset: the filtered words of its description
func BuildTextBlock(u txt.Unnester, dd []str.Dataset) string {
	var sb strings.Builder
	tk := txt.NewTokenizer()
	for _, d := range dd {
		ww := u.Words(tk, d.Description)
		if len(ww) == 0 {
			continue
		}
		sb.WriteString(strings.Join(ww, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// GenerateEmbeddings - train a word2vec model on the text block and hand back its vectors
func GenerateEmbeddings(thetext string, cfg word2vec.Options) (embedding.Embeddings, error) {
	const (
		FAIL1 = "GenerateEmbeddings(): model initialization failed: %w"
		FAIL2 = "GenerateEmbeddings(): failed to train vector embeddings: %w"
		FAIL3 = "GenerateEmbeddings(): failed to save vector embeddings: %w"
		FAIL4 = "GenerateEmbeddings(): failed to load vector embeddings: %w"
		MSG1  = "GenerateEmbeddings(): trained on %d lines; %d vectors"
	)

	start := time.Now()

	m, err := word2vec.NewForOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	// input for word2vec.Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))
	if err = m.Train(b); err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}

	// use buffers; skip the disk
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err = m.Save(w, vector.Agg); err != nil {
		return nil, fmt.Errorf(FAIL3, err)
	}

	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf(FAIL4, err)
	}

	p := message.NewPrinter(language.English)
	Msg.Timer("N1", p.Sprintf(MSG1, strings.Count(thetext, "\n"), len(embs)), start, start)
	return embs, nil
}

// Neighbors - the k nearest words to each probe; probes the model never saw are skipped
func Neighbors(embs embedding.Embeddings, probes []string, k int) ([]str.Neighbor, error) {
	const (
		FAIL1 = "Neighbors(): failed to produce a Searcher: %w"
		FAIL2 = "Neighbors(): '%s' has no neighbors: %s"
	)

	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	var out []str.Neighbor
	for _, p := range probes {
		neighbors, e := searcher.SearchInternal(p, k)
		if e != nil {
			Msg.FYI(fmt.Sprintf(FAIL2, p, e.Error()))
			continue
		}
		for _, n := range neighbors {
			out = append(out, str.Neighbor{Probe: p, Word: n.Word, Similarity: n.Similarity})
		}
	}
	return out, nil
}

// DefaultProbes - the most common keywords, lower-cased and split into single words the model can know
func DefaultProbes(kc []str.WordCount, sw *txt.StopWords, n int) []string {
	var pp []string
	for _, k := range kc {
		for _, w := range txt.Tokenize(k.Word) {
			if sw == nil || !sw.Has(w) {
				pp = append(pp, w)
			}
		}
	}
	pp = gen.Unique(pp)
	if len(pp) > n {
		pp = pp[:n]
	}
	return pp
}
