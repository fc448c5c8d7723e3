//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"gonum.org/v1/gonum/mat"
	"time"
)

// Embed2D - t-SNE of the documents' topic mixtures; only the first maxdocs documents are placed
func (m *Model) Embed2D(maxdocs int) []str.DocPoint {
	const (
		LEARNRT = vv.TSNELEARNRT
		MAXITER = vv.TSNEMAXITER
		VERBOSE = false
		MSG1    = "Embed2D(): placed %d documents"
	)

	start := time.Now()

	dr, dc := m.DocsOverTopics.Dims()
	if maxdocs > 0 && dc > maxdocs {
		dc = maxdocs
	}
	if dc < 2 {
		return nil
	}

	// t-SNE wants perplexity well under the number of points
	perplex := float64(vv.TSNEPERPLEX)
	if p := float64(dc-1) / 3; p < perplex {
		perplex = max(p, 1)
	}

	winners := m.dominant()

	// note that we flop r & c: the embedding wants one row per document
	dd := make([]float64, 0, dc*dr)
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, m.DocsOverTopics.At(topic, doc))
		}
	}
	wv := mat.NewDense(dc, dr, dd)

	t := tsne.NewTSNE(2, perplex, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	pts := make([]str.DocPoint, dc)
	for doc := 0; doc < dc; doc++ {
		pts[doc] = str.DocPoint{
			Document: m.DTM.Docs[doc],
			X:        t.Y.At(doc, 0),
			Y:        t.Y.At(doc, 1),
			Topic:    winners[doc] + 1,
		}
	}

	Msg.Timer("L2", fmt.Sprintf(MSG1, dc), start, start)
	return pts
}
