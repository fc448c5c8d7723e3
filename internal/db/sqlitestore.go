//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	_ "modernc.org/sqlite"
	"time"
)

const (
	SQLITESCHEMA = `
	CREATE TABLE IF NOT EXISTS datasets (
		ord INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		title TEXT,
		description TEXT,
		modified TEXT,
		publisher TEXT
	);
	CREATE TABLE IF NOT EXISTS keywords (
		id TEXT NOT NULL,
		pos INTEGER NOT NULL,
		keyword TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS keywords_id ON keywords (id);`
)

// SQLiteStore - the default cache: a single file, no server
type SQLiteStore struct {
	DB *sql.DB
}

// NewSQLiteStore - open (and if need be create) the cache; fn may be ":memory:"
func NewSQLiteStore(ctx context.Context, fn string) (*SQLiteStore, error) {
	const (
		FAIL1 = "NewSQLiteStore() could not open '%s': %w"
	)
	sdb, err := sql.Open("sqlite", fn)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, fn, err)
	}
	// one writer; ":memory:" hands every new connection an empty database
	sdb.SetMaxOpenConns(1)

	if _, err = sdb.ExecContext(ctx, SQLITESCHEMA); err != nil {
		_ = sdb.Close()
		return nil, fmt.Errorf(FAIL1, fn, err)
	}
	return &SQLiteStore{DB: sdb}, nil
}

// Save - replace the cached catalog inside one transaction
func (s *SQLiteStore) Save(ctx context.Context, dd []str.Dataset) error {
	const (
		DQ  = `INSERT INTO datasets (ord, id, title, description, modified, publisher) VALUES (?, ?, ?, ?, ?, ?)`
		KQ  = `INSERT INTO keywords (id, pos, keyword) VALUES (?, ?, ?)`
		MSG = "SQLiteStore.Save() stored %d datasets"
	)

	start := time.Now()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM keywords`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM datasets`); err != nil {
		return err
	}

	dst, err := tx.PrepareContext(ctx, DQ)
	if err != nil {
		return err
	}
	defer dst.Close()

	kst, err := tx.PrepareContext(ctx, KQ)
	if err != nil {
		return err
	}
	defer kst.Close()

	for i, d := range dd {
		if _, err = dst.ExecContext(ctx, i, d.ID, d.Title, d.Description, d.Modified, d.Publisher); err != nil {
			return fmt.Errorf("dataset %s: %w", d.ID, err)
		}
		for j, k := range d.Keywords {
			if _, err = kst.ExecContext(ctx, d.ID, j, k); err != nil {
				return fmt.Errorf("dataset %s: %w", d.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	Msg.Timer("S1", fmt.Sprintf(MSG, len(dd)), start, start)
	return nil
}

// Load - the cached catalog in its original order; empty if nothing was ever saved
func (s *SQLiteStore) Load(ctx context.Context) ([]str.Dataset, error) {
	const (
		DQ = `SELECT id, title, description, modified, publisher FROM datasets ORDER BY ord`
		KQ = `SELECT id, keyword FROM keywords ORDER BY id, pos`
	)

	rows, err := s.DB.QueryContext(ctx, DQ)
	if err != nil {
		return nil, err
	}
	var dd []str.Dataset
	for rows.Next() {
		var d str.Dataset
		if err = rows.Scan(&d.ID, &d.Title, &d.Description, &d.Modified, &d.Publisher); err != nil {
			rows.Close()
			return nil, err
		}
		dd = append(dd, d)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	krows, err := s.DB.QueryContext(ctx, KQ)
	if err != nil {
		return nil, err
	}
	defer krows.Close()

	var kk []str.KeywordRow
	for krows.Next() {
		var k str.KeywordRow
		if err = krows.Scan(&k.ID, &k.Keyword); err != nil {
			return nil, err
		}
		kk = append(kk, k)
	}
	if err = krows.Err(); err != nil {
		return nil, err
	}

	return assemble(dd, kk), nil
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}
