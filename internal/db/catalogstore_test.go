//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"strings"
	"testing"
)

func sampledatasets() []str.Dataset {
	return []str.Dataset{
		{ID: "z9", Title: "Ozone", Description: "ozone profiles", Keywords: []string{"EARTH SCIENCE", "ATMOSPHERE"}, Publisher: "NASA"},
		{ID: "a1", Title: "Moon", Description: "", Keywords: []string{"MOON"}},
		{ID: "m5", Title: "", Description: "only a description"},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, sampledatasets()))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampledatasets(), got)

	// a second Save() replaces rather than appends
	require.NoError(t, s.Save(ctx, sampledatasets()[:1]))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "z9", got[0].ID)
}

func TestSQLiteStoreOnDisk(t *testing.T) {
	ctx := context.Background()
	fn := filepath.Join(t.TempDir(), "catalog.sqlite")

	s, err := NewSQLiteStore(ctx, fn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sampledatasets()))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, fn)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteStoreRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, sampledatasets()))
	dd := append(sampledatasets(), str.Dataset{ID: "a1", Title: "again"})
	assert.Error(t, s.Save(ctx, dd))

	// the failed transaction left the old contents alone
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestPostgresURL(t *testing.T) {
	cfg := str.CurrentConfiguration{
		WorkerCount: 6,
		PGLogin:     str.PostgresLogin{Host: "db.local", Port: 5433, User: "u", Pass: "p", DBName: "ctmDB"},
	}
	u := PostgresURL(cfg)
	assert.True(t, strings.HasPrefix(u, "postgres://u:p@db.local:5433/ctmDB?"))
	assert.Contains(t, u, "pool_max_conns=6")
	assert.Contains(t, u, "pool_min_conns=1")

	cfg.WorkerCount = 1
	assert.Contains(t, PostgresURL(cfg), "pool_max_conns=2")
}
