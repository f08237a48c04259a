// Package dsqlite keeps an archive in a single SQLite file: one row per
// record plus a name index keyed by name hash.
package dsqlite

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dhash"
)

//go:embed schema.sql
var schemaSQL string

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

type Archive struct {
	db *sql.DB
}

// Open creates or opens the archive at path.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		err := errors.Wrapf(err, "open %s", path)
		return nil, err
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			err := errors.Wrapf(err, "execute %q", pragma)
			return nil, err
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		err := errors.Wrap(err, "apply schema")
		return nil, err
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) BytesFor(ctx context.Context, table darchive.Table, id int32) ([]byte, error) {
	var bs []byte
	err := a.db.QueryRowContext(
		ctx,
		`SELECT data FROM records WHERE idx = ? AND grp = ? AND id = ?`,
		table.Index, table.Group, id,
	).Scan(&bs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(darchive.ErrNotFound, "table %s id %d", table, id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "table %s id %d", table, id)
	}
	return bs, nil
}

func (a *Archive) IDsIn(ctx context.Context, table darchive.Table) ([]int32, error) {
	rows, err := a.db.QueryContext(
		ctx,
		`SELECT id FROM records WHERE idx = ? AND grp = ? ORDER BY id`,
		table.Index, table.Group,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "table %s", table)
	}
	defer rows.Close()

	ids := make([]int32, 0)
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "table %s", table)
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrapf(rows.Err(), "table %s", table)
}

func (a *Archive) IDByName(ctx context.Context, table darchive.Table, name string) (int32, bool, error) {
	var id int32
	err := a.db.QueryRowContext(
		ctx,
		`SELECT id FROM names WHERE idx = ? AND grp = ? AND hash = ?`,
		table.Index, table.Group, dhash.HashName(name),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "table %s name %q", table, name)
	}
	return id, true, nil
}

func (a *Archive) Put(ctx context.Context, table darchive.Table, id int32, bs []byte) error {
	_, err := a.db.ExecContext(
		ctx,
		`INSERT INTO records (idx, grp, id, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (idx, grp, id) DO UPDATE SET data = excluded.data`,
		table.Index, table.Group, id, bs,
	)
	return errors.Wrapf(err, "table %s id %d", table, id)
}

// PutName adds name to the table's name index.
func (a *Archive) PutName(ctx context.Context, table darchive.Table, name string, id int32) error {
	_, err := a.db.ExecContext(
		ctx,
		`INSERT INTO names (idx, grp, hash, id) VALUES (?, ?, ?, ?)
		 ON CONFLICT (idx, grp, hash) DO UPDATE SET id = excluded.id`,
		table.Index, table.Group, dhash.HashName(name), id,
	)
	return errors.Wrapf(err, "table %s name %q", table, name)
}

var _ darchive.Archive = (*Archive)(nil)
