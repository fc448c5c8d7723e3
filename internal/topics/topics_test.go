//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

// twocorpus - half the documents talk about the air, half about the moon
func twocorpus(n int) []str.TokenCount {
	air := []string{"ozone", "atmosphere", "aerosol", "cloud", "humidity"}
	moon := []string{"lunar", "regolith", "crater", "apollo", "sample"}
	var tc []str.TokenCount
	for d := 0; d < n; d++ {
		id := fmt.Sprintf("doc%02d", d)
		words := air
		if d%2 == 1 {
			words = moon
		}
		for i, w := range words {
			tc = append(tc, str.TokenCount{ID: id, Word: w, Count: 1 + (i+d)%3})
		}
	}
	return tc
}

func fitted(t *testing.T, n int, k int) *Model {
	dtm, err := BuildDTM(twocorpus(n))
	require.NoError(t, err)
	m, err := Fit(dtm, FitOptions{Topics: k, Seed: 1234, Iterations: 30, Processes: 1})
	require.NoError(t, err)
	return m
}

func TestBuildDTM(t *testing.T) {
	rows := []str.TokenCount{
		{ID: "b", Word: "moon", Count: 2},
		{ID: "a", Word: "ozone", Count: 1},
		{ID: "a", Word: "ozone", Count: 2},
		{ID: "z", Word: "nothing", Count: 0},
	}
	dtm, err := BuildDTM(rows)
	require.NoError(t, err)

	terms, docs := dtm.Dims()
	assert.Equal(t, 2, terms)
	assert.Equal(t, 2, docs)
	assert.Equal(t, []string{"moon", "ozone"}, dtm.Terms)
	assert.Equal(t, []string{"b", "a"}, dtm.Docs)
	assert.Equal(t, 3.0, dtm.Count("ozone", "a"))
	assert.Equal(t, 0.0, dtm.Count("moon", "a"))
	assert.Equal(t, 0.0, dtm.Count("nothing", "z"))

	_, err = BuildDTM(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuildDTMStorageOrder(t *testing.T) {
	type cell struct {
		i, j int
		v    float64
	}
	nonzeros := func(d *DTM) []cell {
		var cc []cell
		d.M.DoNonZero(func(i, j int, v float64) {
			cc = append(cc, cell{i, j, v})
		})
		return cc
	}

	rows := twocorpus(12)
	backwards := make([]str.TokenCount, len(rows))
	for i := range rows {
		backwards[len(rows)-1-i] = rows[i]
	}

	a, err := BuildDTM(rows)
	require.NoError(t, err)
	first := nonzeros(a)
	require.Len(t, first, 60)
	for i := 1; i < len(first); i++ {
		p, q := first[i-1], first[i]
		assert.True(t, p.i < q.i || (p.i == q.i && p.j < q.j), "cell %d out of order", i)
	}

	for n := 0; n < 5; n++ {
		b, err := BuildDTM(rows)
		require.NoError(t, err)
		assert.Equal(t, first, nonzeros(b))
	}

	// same cells whatever order the rows arrive in; only the doc index differs
	c, err := BuildDTM(backwards)
	require.NoError(t, err)
	assert.Len(t, nonzeros(c), 60)
	assert.Equal(t, a.Count("ozone", "doc00"), c.Count("ozone", "doc00"))
}

func TestFitRejectsSillyInput(t *testing.T) {
	dtm, err := BuildDTM(twocorpus(4))
	require.NoError(t, err)
	_, err = Fit(dtm, FitOptions{Topics: 1})
	assert.Error(t, err)
	_, err = Fit(nil, FitOptions{Topics: 4})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestProbabilitiesSumToOne(t *testing.T) {
	m := fitted(t, 20, 4)

	betasum := make(map[int]float64)
	for _, b := range m.Beta() {
		assert.GreaterOrEqual(t, b.Beta, 0.0)
		betasum[b.Topic] += b.Beta
	}
	require.Len(t, betasum, 4)
	for topic, s := range betasum {
		assert.InDelta(t, 1.0, s, 1e-9, "topic %d", topic)
	}

	gammasum := make(map[string]float64)
	for _, g := range m.Gamma() {
		assert.GreaterOrEqual(t, g.Gamma, 0.0)
		gammasum[g.Document] += g.Gamma
	}
	require.Len(t, gammasum, 20)
	for doc, s := range gammasum {
		assert.InDelta(t, 1.0, s, 1e-9, doc)
	}

	assert.Len(t, m.Beta(), 4*10)
	assert.Len(t, m.Gamma(), 4*20)
}

func TestFitIsReproducible(t *testing.T) {
	// each fit builds its own matrix
	a := fitted(t, 16, 3)
	b := fitted(t, 16, 3)
	ga, gb := a.Gamma(), b.Gamma()
	require.Equal(t, len(ga), len(gb))
	for i := range ga {
		assert.InDelta(t, ga[i].Gamma, gb[i].Gamma, 1e-9)
	}
}

func TestTopTermsAndDominantTopics(t *testing.T) {
	m := fitted(t, 20, 2)

	tt := m.TopTerms(3)
	require.Len(t, tt, 6)
	for i := 1; i < 3; i++ {
		assert.GreaterOrEqual(t, tt[i-1].Beta, tt[i].Beta)
	}
	assert.Len(t, m.TopTerms(100), 20)

	dt := m.DominantTopics()
	require.Len(t, dt, 2)
	total := 0
	high := 0.0
	for _, d := range dt {
		total += d.Dominant
		high = math.Max(high, d.Weight)
	}
	assert.Equal(t, 20, total)
	assert.InDelta(t, 1.0, high, 1e-12)
}

func TestPerplexityAndSweep(t *testing.T) {
	m := fitted(t, 20, 2)
	p := m.Perplexity()
	assert.False(t, math.IsNaN(p))
	assert.Greater(t, p, 1.0)

	ss, err := Sweep(context.Background(), m.DTM, []int{2, 3}, FitOptions{Seed: 1, Iterations: 10, Processes: 1})
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, 3, ss[1].Topics)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ss, err = Sweep(ctx, m.DTM, []int{2, 3}, FitOptions{Seed: 1, Iterations: 10, Processes: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ss)
}

func TestGammaDistribution(t *testing.T) {
	m := fitted(t, 10, 3)
	h := m.GammaDistribution(10)
	require.Len(t, h, 10)
	total := 0
	for _, n := range h {
		total += n
	}
	assert.Equal(t, 30, total)
}

func TestKeywordsByTopic(t *testing.T) {
	gamma := []str.GammaRow{
		{Document: "a", Topic: 1, Gamma: 0.95},
		{Document: "a", Topic: 2, Gamma: 0.05},
		{Document: "b", Topic: 1, Gamma: 0.97},
		{Document: "c", Topic: 2, Gamma: 0.91},
		{Document: "d", Topic: 2, Gamma: 0.50},
	}
	kw := []str.KeywordRow{
		{ID: "a", Keyword: "OZONE"}, {ID: "a", Keyword: "EARTH SCIENCE"},
		{ID: "b", Keyword: "EARTH SCIENCE"},
		{ID: "c", Keyword: "MOON"},
		{ID: "d", Keyword: "IGNORED"},
	}
	got := KeywordsByTopic(gamma, kw, 0.9, 5)
	want := []str.TopicKeyword{
		{Topic: 1, Keyword: "EARTH SCIENCE", N: 2},
		{Topic: 1, Keyword: "OZONE", N: 1},
		{Topic: 2, Keyword: "MOON", N: 1},
	}
	assert.Equal(t, want, got)
	assert.Len(t, KeywordsByTopic(gamma, kw, 0.9, 1), 2)
}

func TestEmbed2D(t *testing.T) {
	m := fitted(t, 30, 3)
	pts := m.Embed2D(24)
	require.Len(t, pts, 24)
	for _, p := range pts {
		assert.False(t, math.IsNaN(p.X))
		assert.False(t, math.IsNaN(p.Y))
		assert.GreaterOrEqual(t, p.Topic, 1)
		assert.LessOrEqual(t, p.Topic, 3)
	}
	assert.Nil(t, m.Embed2D(1))
}
