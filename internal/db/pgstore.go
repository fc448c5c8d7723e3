//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
	"time"
)

const (
	PGSCHEMA = `
	CREATE TABLE IF NOT EXISTS datasets (
		ord integer NOT NULL,
		id text PRIMARY KEY,
		title text,
		description text,
		modified text,
		publisher text
	);
	CREATE TABLE IF NOT EXISTS keywords (
		id text NOT NULL,
		pos integer NOT NULL,
		keyword text NOT NULL
	);
	CREATE INDEX IF NOT EXISTS keywords_id ON keywords (id);`
	PGBATCH = 5000
)

// PGStore - the catalog cache inside a PostgreSQL database
type PGStore struct {
	Pool *pgxpool.Pool
}

// NewPGStore - build the pgxpool and make sure the tables exist
func NewPGStore(ctx context.Context, cfg str.CurrentConfiguration) (*PGStore, error) {
	pool, err := FillDBConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if _, err = pool.Exec(ctx, PGSCHEMA); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating the cache tables: %w", err)
	}
	return &PGStore{Pool: pool}, nil
}

// PostgresURL - the connection string for pgxpool.ParseConfig()
func PostgresURL(cfg str.CurrentConfiguration) string {
	// the cache is written once and read once per run: a handful of connections is plenty
	return cfg.PGLogin.URL(1, max(cfg.WorkerCount, 2))
}

// FillDBConnectionPool - build the pgxpool that the store will Acquire() from
func FillDBConnectionPool(ctx context.Context, cfg str.CurrentConfiguration) (*pgxpool.Pool, error) {
	const (
		FAIL1   = "configuration error: could not ParseConfig() the PostgreSQL url: %w"
		FAIL2   = "could not connect to PostgreSQL: %w"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that %s is running and reachable`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is configuration problem; see the following response from PostgreSQL:`
	)

	config, err := pgxpool.ParseConfig(PostgresURL(cfg))
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	thepool, err := pgxpool.NewWithConfig(ctx, config)
	if err == nil {
		err = thepool.Ping(ctx)
	}
	if err != nil {
		if strings.Contains(err.Error(), ERRRUN) {
			Msg.CRIT(fmt.Sprintf(FAILRUN, ERRRUN, cfg.PGLogin.Redacted()))
		}
		if strings.Contains(err.Error(), ERRSRV) {
			Msg.CRIT(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(err.Error(), ERRSRV)
			Msg.CRIT(parts[len(parts)-1])
		}
		if thepool != nil {
			thepool.Close()
		}
		return nil, fmt.Errorf(FAIL2, err)
	}
	return thepool, nil
}

// Save - replace the cached catalog inside one transaction; rows go over in batches
func (p *PGStore) Save(ctx context.Context, dd []str.Dataset) error {
	const (
		DQ  = `INSERT INTO datasets (ord, id, title, description, modified, publisher) VALUES ($1, $2, $3, $4, $5, $6)`
		KQ  = `INSERT INTO keywords (id, pos, keyword) VALUES ($1, $2, $3)`
		MSG = "PGStore.Save() stored %d datasets"
	)

	start := time.Now()

	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `TRUNCATE keywords, datasets`); err != nil {
		return err
	}

	type ordered struct {
		ord int
		d   str.Dataset
	}
	oo := make([]ordered, len(dd))
	for i := range dd {
		oo[i] = ordered{i, dd[i]}
	}

	for _, chunk := range gen.ChunkSlice(oo, PGBATCH) {
		b := &pgx.Batch{}
		for _, o := range chunk {
			b.Queue(DQ, o.ord, o.d.ID, o.d.Title, o.d.Description, o.d.Modified, o.d.Publisher)
			for j, k := range o.d.Keywords {
				b.Queue(KQ, o.d.ID, j, k)
			}
		}
		if err = tx.SendBatch(ctx, b).Close(); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	Msg.Timer("S1", fmt.Sprintf(MSG, len(dd)), start, start)
	return nil
}

// Load - the cached catalog in its original order
func (p *PGStore) Load(ctx context.Context) ([]str.Dataset, error) {
	const (
		DQ = `SELECT id, COALESCE(title, ''), COALESCE(description, ''), COALESCE(modified, ''), COALESCE(publisher, '') FROM datasets ORDER BY ord`
		KQ = `SELECT id, keyword FROM keywords ORDER BY id, pos`
	)

	rows, err := p.Pool.Query(ctx, DQ)
	if err != nil {
		return nil, err
	}
	dd, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (str.Dataset, error) {
		var d str.Dataset
		e := r.Scan(&d.ID, &d.Title, &d.Description, &d.Modified, &d.Publisher)
		return d, e
	})
	if err != nil {
		return nil, err
	}

	krows, err := p.Pool.Query(ctx, KQ)
	if err != nil {
		return nil, err
	}
	kk, err := pgx.CollectRows(krows, pgx.RowToStructByPos[str.KeywordRow])
	if err != nil {
		return nil, err
	}

	return assemble(dd, kk), nil
}

func (p *PGStore) Close() error {
	p.Pool.Close()
	return nil
}
