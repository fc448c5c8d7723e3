//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"math"
	"sort"
	"time"
)

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go
//DefaultLDA = nlp.LatentDirichletAllocation{
//	Iterations:                    1000,
//	PerplexityTolerance:           1e-2,
//	PerplexityEvaluationFrequency: 30,
//	BatchSize:                     100,
//	BurnInPasses:                  1,
//	TransformationPasses:          500,
//	Alpha:                         0.1,
//	Eta:                           0.01,
//	...
//}

// FitOptions - what the LDA needs beyond the matrix
type FitOptions struct {
	Topics     int
	Seed       int
	Iterations int
	Processes  int
}

// Model - a fitted LDA; TopicsOverWords is topics x terms, DocsOverTopics is topics x documents
type Model struct {
	K               int
	Seed            int
	DTM             *DTM
	TopicsOverWords *mat.Dense
	DocsOverTopics  *mat.Dense
}

// Fit - Latent Dirichlet Allocation with a fixed topic count and a seeded random source
func Fit(dtm *DTM, o FitOptions) (*Model, error) {
	const (
		FAIL1 = "Fit(): cannot model %d topics"
		FAIL2 = "Fit(): failed to model topics for documents: %w"
		MSG1  = "Fit(): %d topics over %d terms and %d documents"
	)

	if o.Topics < 2 {
		return nil, fmt.Errorf(FAIL1, o.Topics)
	}
	if dtm == nil || len(dtm.Docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	start := time.Now()

	lda := nlp.NewLatentDirichletAllocation(o.Topics)
	lda.Processes = max(o.Processes, 1)
	lda.Iterations = max(o.Iterations, 1)
	lda.TransformationPasses = max(o.Iterations/2, 1)
	lda.Rnd = rand.New(rand.NewSource(uint64(o.Seed)))

	docsOverTopics, err := lda.FitTransform(dtm.M)
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}
	topicsOverWords := lda.Components()

	m := &Model{
		K:               o.Topics,
		Seed:            o.Seed,
		DTM:             dtm,
		TopicsOverWords: normalizerows(topicsOverWords),
		DocsOverTopics:  normalizecolumns(docsOverTopics),
	}

	t, d := dtm.Dims()
	Msg.Timer("L1", fmt.Sprintf(MSG1, o.Topics, t, d), start, start)
	return m, nil
}

// normalizerows - each row sums to 1; an all-zero row becomes uniform
func normalizerows(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		tot := 0.0
		for j := 0; j < c; j++ {
			tot += math.Max(m.At(i, j), 0)
		}
		for j := 0; j < c; j++ {
			if tot > 0 {
				out.Set(i, j, math.Max(m.At(i, j), 0)/tot)
			} else {
				out.Set(i, j, 1/float64(c))
			}
		}
	}
	return out
}

// normalizecolumns - each column sums to 1
func normalizecolumns(m mat.Matrix) *mat.Dense {
	var t mat.Dense
	t.CloneFrom(normalizerows(m.T()).T())
	return &t
}

// Beta - tidy (topic, term, beta); topics count from 1
func (m *Model) Beta() []str.BetaRow {
	k, v := m.TopicsOverWords.Dims()
	out := make([]str.BetaRow, 0, k*v)
	for topic := 0; topic < k; topic++ {
		for w := 0; w < v; w++ {
			out = append(out, str.BetaRow{Topic: topic + 1, Term: m.DTM.Terms[w], Beta: m.TopicsOverWords.At(topic, w)})
		}
	}
	return out
}

// Gamma - tidy (document, topic, gamma); topics count from 1
func (m *Model) Gamma() []str.GammaRow {
	k, d := m.DocsOverTopics.Dims()
	out := make([]str.GammaRow, 0, k*d)
	for doc := 0; doc < d; doc++ {
		for topic := 0; topic < k; topic++ {
			out = append(out, str.GammaRow{Document: m.DTM.Docs[doc], Topic: topic + 1, Gamma: m.DocsOverTopics.At(topic, doc)})
		}
	}
	return out
}

// TopTerms - the n most probable terms of each topic
func (m *Model) TopTerms(n int) []str.BetaRow {
	k, v := m.TopicsOverWords.Dims()
	if n > v {
		n = v
	}

	var out []str.BetaRow
	for topic := 0; topic < k; topic++ {
		tss := make([]str.BetaRow, v)
		for w := 0; w < v; w++ {
			tss[w] = str.BetaRow{Topic: topic + 1, Term: m.DTM.Terms[w], Beta: m.TopicsOverWords.At(topic, w)}
		}
		sort.SliceStable(tss, func(i, j int) bool {
			return tss[i].Beta > tss[j].Beta
		})
		out = append(out, tss[0:n]...)
	}
	return out
}

// dominant - the topic with the highest gamma for each document
func (m *Model) dominant() []int {
	dr, dc := m.DocsOverTopics.Dims()
	winners := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		best := -1.0
		for topic := 0; topic < dr; topic++ {
			if g := m.DocsOverTopics.At(topic, doc); g > best {
				winners[doc] = topic
				best = g
			}
		}
	}
	return winners
}

// DominantTopics - N documents have topic X as their dominant topic; plus the scaled total accumulated weight of each topic
func (m *Model) DominantTopics() []str.TopicWeight {
	counter := make([]int, m.K)
	for _, w := range m.dominant() {
		counter[w]++
	}

	weights := make([]float64, m.K)
	dr, dc := m.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			weights[topic] += m.DocsOverTopics.At(topic, doc)
		}
	}

	high := 0.0
	for _, w := range weights {
		high = math.Max(high, w)
	}

	out := make([]str.TopicWeight, m.K)
	for i := 0; i < m.K; i++ {
		scaled := 0.0
		if high > 0 {
			scaled = weights[i] / high
		}
		out[i] = str.TopicWeight{Topic: i + 1, Dominant: counter[i], Weight: scaled}
	}
	return out
}

// Perplexity - exp(-loglikelihood / tokens) of the model's own matrix
func (m *Model) Perplexity() float64 {
	// p(w|d) = sum over k of gamma[k,d] * beta[k,w]
	ll := 0.0
	tokens := 0.0
	m.DTM.M.DoNonZero(func(w int, d int, n float64) {
		p := 0.0
		for k := 0; k < m.K; k++ {
			p += m.DocsOverTopics.At(k, d) * m.TopicsOverWords.At(k, w)
		}
		if p <= 0 {
			p = math.SmallestNonzeroFloat64
		}
		ll += n * math.Log(p)
		tokens += n
	})
	if tokens == 0 {
		return math.NaN()
	}
	return math.Exp(-ll / tokens)
}

// GammaDistribution - histogram of every gamma value over [0, 1] in n bins
func (m *Model) GammaDistribution(bins int) []int {
	if bins < 1 {
		bins = vv.GAMMAHISTBINS
	}
	hist := make([]int, bins)
	r, c := m.DocsOverTopics.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			b := int(m.DocsOverTopics.At(i, j) * float64(bins))
			if b >= bins {
				b = bins - 1
			}
			if b < 0 {
				b = 0
			}
			hist[b]++
		}
	}
	return hist
}

// Sweep - fit each topic count and report the perplexity; stops early if the context is cancelled
func Sweep(ctx context.Context, dtm *DTM, ks []int, o FitOptions) ([]str.PerplexityScore, error) {
	const (
		MSG1 = "Sweep(): k=%d perplexity=%.2f"
	)
	var out []str.PerplexityScore
	for _, k := range ks {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		o.Topics = k
		m, err := Fit(dtm, o)
		if err != nil {
			return out, err
		}
		p := m.Perplexity()
		Msg.PEEK(fmt.Sprintf(MSG1, k, p))
		out = append(out, str.PerplexityScore{Topics: k, Perplexity: p})
	}
	return out, nil
}
