package store

import (
	"context"
	"database/sql"

	"github.com/jsphweid/makamdex/model"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// Store exports snapshots to SQLite so the corpus can be queried with SQL.
type Store struct {
	db *sql.DB
}

type Event struct {
	Index    int
	Note     string
	Duration model.Duration
}

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS files (
			file_num INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			makam TEXT,
			form TEXT,
			usul TEXT,
			name TEXT,
			composer TEXT
		);
		CREATE TABLE IF NOT EXISTS events (
			file_num INTEGER NOT NULL REFERENCES files(file_num),
			idx INTEGER NOT NULL,
			note TEXT NOT NULL,
			num INTEGER NOT NULL,
			den INTEGER NOT NULL,
			PRIMARY KEY (file_num, idx)
		);
		CREATE TABLE IF NOT EXISTS frequencies (
			pitch_class TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot replaces the stored corpus with snap.
func (s *Store) SaveSnapshot(ctx context.Context, snap *model.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"events", "files", "frequencies", "meta"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "failed to clear %s", table)
		}
	}

	for num, path := range snap.Files {
		m := snap.Metadata[num]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO files (file_num, path, makam, form, usul, name, composer)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, num, path, m.Makam, m.Form, m.Usul, m.Name, m.Composer)
		if err != nil {
			return errors.Wrapf(err, "failed to insert file %s", path)
		}
	}

	insertEvent, err := tx.PrepareContext(ctx, `
		INSERT INTO events (file_num, idx, note, num, den) VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare event insert")
	}
	defer insertEvent.Close()
	for num, notes := range snap.Notes {
		for i, note := range notes {
			d := snap.Durations[num][i]
			if _, err = insertEvent.ExecContext(ctx, num, i, note, d.Num, d.Den); err != nil {
				return errors.Wrap(err, "failed to insert event")
			}
		}
	}

	for pc, count := range snap.Frequencies {
		_, err = tx.ExecContext(ctx, `INSERT INTO frequencies (pitch_class, count) VALUES (?, ?)`, string(pc), count)
		if err != nil {
			return errors.Wrap(err, "failed to insert frequency")
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('snapshot_id', ?), ('makam', ?)`,
		snap.Overview.ID, snap.Overview.Makam)
	if err != nil {
		return errors.Wrap(err, "failed to insert meta")
	}

	return errors.Wrap(tx.Commit(), "failed to commit")
}

func (s *Store) Frequencies(ctx context.Context) (model.FrequencyTable, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT pitch_class, count FROM frequencies`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query frequencies")
	}
	defer rows.Close()

	res := make(model.FrequencyTable)
	for rows.Next() {
		var pc string
		var count int
		if err := rows.Scan(&pc, &count); err != nil {
			return nil, err
		}
		res[model.PitchClass(pc)] = count
	}
	return res, rows.Err()
}

func (s *Store) FileEvents(ctx context.Context, fileNum model.FileNum) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, note, num, den FROM events WHERE file_num = ? ORDER BY idx
	`, fileNum)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query events")
	}
	defer rows.Close()

	var res []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Index, &e.Note, &e.Duration.Num, &e.Duration.Den); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
