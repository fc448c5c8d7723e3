//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/txt"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildTextBlock(t *testing.T) {
	dd := []str.Dataset{
		{ID: "a", Description: "The ozone layer, v1.0 data."},
		{ID: "b", Description: "the and of"},
		{ID: "c", Description: "Lunar regolith samples"},
	}
	u := txt.Unnester{Stops: txt.DefaultStopWords()}
	assert.Equal(t, "ozone layer\nlunar regolith samples\n", BuildTextBlock(u, dd))
}

func TestDefaultProbes(t *testing.T) {
	kc := []str.WordCount{{Word: "EARTH SCIENCE", Count: 9}, {Word: "OZONE", Count: 5}, {Word: "EARTH", Count: 2}, {Word: "DATA", Count: 1}}
	assert.Equal(t, []string{"earth", "science", "ozone"}, DefaultProbes(kc, txt.DefaultStopWords(), 10))
	assert.Equal(t, []string{"earth", "science"}, DefaultProbes(kc, nil, 2))
}

func TestW2VConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := W2VConfig(dir, 3)
	assert.Equal(t, 3, cfg.Goroutines)
	assert.Equal(t, vv.NNDIM, cfg.Dim)

	fn := filepath.Join(dir, vv.CONFIGW2V)
	_, err := os.Stat(fn)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fn, []byte(`{"Dim": 12, "Iter": 2}`), 0644))
	cfg = W2VConfig(dir, 3)
	assert.Equal(t, 12, cfg.Dim)
	assert.Equal(t, 2, cfg.Iter)
	assert.EqualValues(t, "skipgram", cfg.ModelType)
}

func TestGenerateEmbeddingsAndNeighbors(t *testing.T) {
	lines := []string{
		"ozone atmosphere aerosol cloud humidity",
		"lunar regolith crater apollo sample",
		"ozone cloud atmosphere humidity aerosol",
		"apollo sample lunar crater regolith",
	}
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(lines[i%len(lines)])
		sb.WriteString("\n")
	}

	cfg := DefaultW2VVectors
	cfg.Dim = 10
	cfg.Iter = 3
	cfg.MinCount = 1
	cfg.Goroutines = 1
	cfg.Window = 3

	embs, err := GenerateEmbeddings(sb.String(), cfg)
	require.NoError(t, err)
	assert.Len(t, embs, 10)

	nn, err := Neighbors(embs, []string{"ozone", "neverseen"}, 3)
	require.NoError(t, err)
	require.Len(t, nn, 3)
	for _, n := range nn {
		assert.Equal(t, "ozone", n.Probe)
		assert.NotEqual(t, "ozone", n.Word)
		assert.LessOrEqual(t, n.Similarity, 1.0+1e-9)
	}
}
