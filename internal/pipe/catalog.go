//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/ctlg"
	"github.com/e-gun/CatalogTopicMiner/internal/db"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
)

// LoadCatalog - fetch the catalog; with the cache turned on, read it from the store instead unless that is empty or a refetch was requested
func LoadCatalog(ctx context.Context, cfg str.CurrentConfiguration) ([]str.Dataset, str.CatalogSummary, error) {
	if !cfg.CacheCatalog {
		return ctlg.Fetch(ctx, cfg.CatalogURL, vv.FETCHTIMEOUT)
	}

	store, err := db.OpenCatalogStore(ctx, cfg)
	if err != nil {
		return nil, str.CatalogSummary{Source: cfg.CatalogURL}, fmt.Errorf("opening the cache: %w", err)
	}
	defer func() { Msg.EC(store.Close()) }()

	return cached(ctx, cfg, store)
}

// cached - the part of LoadCatalog that only needs a CatalogStore
func cached(ctx context.Context, cfg str.CurrentConfiguration, store db.CatalogStore) ([]str.Dataset, str.CatalogSummary, error) {
	const (
		MSG1 = "LoadCatalog(): %d datasets from the cache"
		MSG2 = "LoadCatalog(): could not read the cache: %s"
		MSG3 = "LoadCatalog(): stored %d datasets in the cache"
	)

	if !cfg.Refetch {
		dd, err := store.Load(ctx)
		if err != nil {
			Msg.WARN(fmt.Sprintf(MSG2, err.Error()))
		} else if len(dd) > 0 {
			sum := ctlg.Summarize(cfg.CatalogURL, dd)
			sum.FromCache = true
			Msg.PEEK(fmt.Sprintf(MSG1, len(dd)))
			return dd, sum, nil
		}
	}

	dd, sum, err := ctlg.Fetch(ctx, cfg.CatalogURL, vv.FETCHTIMEOUT)
	if err != nil {
		return nil, sum, err
	}

	if err = store.Save(ctx, dd); err != nil {
		Msg.EF(err, "LoadCatalog()")
	} else {
		Msg.PEEK(fmt.Sprintf(MSG3, len(dd)))
	}
	return dd, sum, nil
}
