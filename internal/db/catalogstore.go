//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"os"
	"path/filepath"
)

var Msg = lnch.Msg

// CatalogStore - somewhere to keep the flattened catalog between runs
type CatalogStore interface {
	Save(ctx context.Context, dd []str.Dataset) error
	Load(ctx context.Context) ([]str.Dataset, error)
	Close() error
}

// OpenCatalogStore - PostgreSQL if there is a password on file; otherwise the SQLite file in the config folder
func OpenCatalogStore(ctx context.Context, cfg str.CurrentConfiguration) (CatalogStore, error) {
	if cfg.UsePostgres() {
		return NewPGStore(ctx, cfg)
	}

	fn, err := CacheFilePath()
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(ctx, fn)
}

// CacheFilePath - "~/.config/ctm/catalog.sqlite"; the folder is created if need be
func CacheFilePath() (string, error) {
	uh, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(fmt.Sprintf(vv.CONFIGALTAPTH, uh), vv.CACHEFOLDER)
	if err = os.MkdirAll(dir, vv.DIRPERMS); err != nil {
		return "", err
	}
	return filepath.Join(dir, vv.CACHEFILE), nil
}

// assemble - glue the keyword rows back onto their datasets
func assemble(dd []str.Dataset, kk []str.KeywordRow) []str.Dataset {
	idx := make(map[string]int, len(dd))
	for i := range dd {
		idx[dd[i].ID] = i
	}
	for _, k := range kk {
		if i, ok := idx[k.ID]; ok {
			dd[i].Keywords = append(dd[i].Keywords, k.Keyword)
		}
	}
	return dd
}
