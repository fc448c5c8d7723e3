//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/db"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writecatalog - a small catalog with two obvious themes
func writecatalog(t *testing.T) string {
	t.Helper()
	type ds struct {
		Identifier  string   `json:"identifier"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Keyword     []string `json:"keyword"`
	}
	var dd []ds
	for i := 0; i < 8; i++ {
		dd = append(dd, ds{
			Identifier:  fmt.Sprintf("air-%d", i),
			Title:       "Ozone column from orbit",
			Description: "ozone atmosphere aerosol ozone stratosphere aerosol atmosphere ozone satellite",
			Keyword:     []string{"earth science", "atmosphere"},
		})
		dd = append(dd, ds{
			Identifier:  fmt.Sprintf("moon-%d", i),
			Title:       "Lunar rock samples",
			Description: "moon rocks regolith lunar basalt moon regolith rocks apollo",
			Keyword:     []string{"moon", "planetary science"},
		})
	}
	b, err := json.Marshal(map[string]any{"dataset": dd})
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(fn, b, 0644))
	return fn
}

func testconfig(t *testing.T, src string) str.CurrentConfiguration {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := *lnch.BuildDefaultConfig()
	cfg.CatalogURL = src
	cfg.LdaTopics = 2
	cfg.LdaIterations = 10
	cfg.WorkerCount = 1
	cfg.TopN = 5
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testconfig(t, writecatalog(t))

	var mtx sync.Mutex
	var stages []string
	progress := func(stage string, msg string) {
		mtx.Lock()
		defer mtx.Unlock()
		stages = append(stages, stage)
	}

	r, err := Run(context.Background(), cfg, progress)
	require.NoError(t, err)

	assert.Equal(t, 16, r.Summary.Kept)
	assert.False(t, r.Summary.FromCache)
	assert.NotEmpty(t, r.RunID)

	require.NotEmpty(t, r.DescWords)
	assert.Equal(t, "ozone", r.DescWords[0].Word)
	assert.Equal(t, 24, r.DescWords[0].Count)
	require.NotEmpty(t, r.Keywords)
	assert.Equal(t, 8, r.Keywords[0].Count)

	assert.NotEmpty(t, r.TitlePairs)
	assert.NotEmpty(t, r.KeywordPairs)
	assert.NotEmpty(t, r.KeywordCor)
	assert.InDelta(t, 1.0, r.KeywordCor[0].Correlation, 1e-9)

	assert.NotEmpty(t, r.TfIdf)
	assert.Len(t, r.TfIdfTop, 5)
	assert.NotEmpty(t, r.TfIdfByKeyword)

	assert.Len(t, r.TopicWeights, 2)
	assert.Len(t, r.Gamma, 2*16)
	assert.NotEmpty(t, r.Beta)
	assert.Greater(t, r.Perplexity, 0.0)
	assert.Empty(t, r.Points)
	assert.Empty(t, r.Neighbors)

	assert.ElementsMatch(t, []string{STAGEFETCH, STAGETOKENS, STAGECOOC, STAGETFIDF, STAGETOPICS}, stages)
	assert.Equal(t, STAGEFETCH, stages[0])
	assert.Equal(t, STAGETOKENS, stages[1])
}

func TestRunSkipsTopics(t *testing.T) {
	cfg := testconfig(t, writecatalog(t))
	cfg.LdaSkip = true

	r, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, r.TopicWeights)
	assert.Empty(t, r.Gamma)
	assert.NotEmpty(t, r.TfIdf)
}

func TestRunFailsOnMissingCatalog(t *testing.T) {
	cfg := testconfig(t, filepath.Join(t.TempDir(), "nope.json"))
	_, err := Run(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), STAGEFETCH+":")
}

func TestRunStopsWhenCancelled(t *testing.T) {
	cfg := testconfig(t, writecatalog(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCachedCatalog(t *testing.T) {
	src := writecatalog(t)
	cfg := testconfig(t, src)
	ctx := context.Background()

	store, err := db.NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	// empty cache: fetch and store
	dd, sum, err := cached(ctx, cfg, store)
	require.NoError(t, err)
	assert.Len(t, dd, 16)
	assert.False(t, sum.FromCache)

	// the source is gone but the cache is not
	require.NoError(t, os.Remove(src))
	dd, sum, err = cached(ctx, cfg, store)
	require.NoError(t, err)
	assert.Len(t, dd, 16)
	assert.True(t, sum.FromCache)
	assert.Equal(t, 16, sum.Kept)

	// a refetch has to go back to the source
	cfg.Refetch = true
	_, _, err = cached(ctx, cfg, store)
	assert.Error(t, err)
}

func TestPairFloor(t *testing.T) {
	assert.Equal(t, 250, pairfloor(250, 40000))
	assert.Equal(t, 2, pairfloor(250, 16))
	assert.Equal(t, 125, pairfloor(250, 32089/2+1))
}
