//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ctlg

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = `{"dataset": [
 {"identifier": "a1", "title": "Ozone Profiles", "description": "Ozone data from the v1.0 instrument.", "keyword": ["earth science", " atmosphere ", "Earth Science"], "publisher": {"name": "NASA"}},
 {"_id": {"$oid": "b2"}, "title": "Lunar Samples", "description": "", "keyword": "moon"},
 {"@id": "http://x/c3", "title": "", "description": "Only a description"},
 {"identifier": "a1", "title": "Duplicate", "description": "dropped"},
 {"identifier": "d4", "title": "", "description": "", "keyword": []},
 {"title": "No id at all", "keyword": ["misc"]}
]}`

func TestDecode(t *testing.T) {
	dd, sum, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, dd, 4)

	assert.Equal(t, 6, sum.Raw)
	assert.Equal(t, 4, sum.Kept)
	assert.Equal(t, 1, sum.Duplicates)
	assert.Equal(t, 1, sum.Empty)
	assert.Equal(t, 1, sum.Publishers)

	assert.Equal(t, "a1", dd[0].ID)
	assert.Equal(t, []string{"EARTH SCIENCE", "ATMOSPHERE"}, dd[0].Keywords)
	assert.Equal(t, "NASA", dd[0].Publisher)

	assert.Equal(t, "b2", dd[1].ID)
	assert.Equal(t, []string{"MOON"}, dd[1].Keywords)

	assert.Equal(t, "http://x/c3", dd[2].ID)
	assert.Empty(t, dd[2].Keywords)

	assert.Equal(t, "dataset-000005", dd[3].ID)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader(`{"dataset": [`))
	assert.Error(t, err)
}

func TestFetchOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	dd, sum, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, dd, 4)
	assert.Equal(t, srv.URL, sum.Source)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, _, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestFetchFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(fn, []byte(sample), 0644))

	dd, _, err := Fetch(context.Background(), "file://"+fn, time.Second)
	require.NoError(t, err)
	assert.Len(t, dd, 4)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"dataset": []}`), 0644))
	_, _, err = Fetch(context.Background(), empty, time.Second)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{" earth  science", "", "EARTH SCIENCE", "ozone"})
	assert.Equal(t, []string{"EARTH SCIENCE", "OZONE"}, got)
}
