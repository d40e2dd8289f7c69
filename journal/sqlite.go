package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KanekiDevPro/Trade-Size-Calculator/pkg/id"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a Journal backed by a private in-memory SQLite database.
type SQLite struct {
	db  *sql.DB
	ids *id.Generator
	now func() time.Time
}

// NewSQLite opens an empty in-memory journal. Every call gets its own
// database.
func NewSQLite() (*SQLite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	// each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, ids: id.NewGenerator(nil), now: time.Now}, nil
}

// Record stores r, assigning an ID and timestamp when they are unset, and
// returns the stored record.
func (j *SQLite) Record(r Record) (Record, error) {
	if r.Time.IsZero() {
		r.Time = j.now()
	}
	r.Time = r.Time.UTC()
	if r.ID == "" {
		rid, err := j.ids.New()
		if err != nil {
			return Record{}, fmt.Errorf("new id: %w", err)
		}
		r.ID = rid
	}

	_, err := j.db.Exec(`
		INSERT INTO calculations
		(id, time, kind, input, result, error)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time, r.Kind, r.Input, r.Result, r.Error,
	)
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

// Get returns the record whose ID equals or starts with ref. A prefix that
// matches more than one record is an error.
func (j *SQLite) Get(ref string) (Record, error) {
	rows, err := j.db.Query(`
		SELECT id, time, kind, input, result, error
		FROM calculations
		WHERE substr(id, 1, length(?)) = ?
		ORDER BY id = ? DESC, id ASC
		LIMIT 2`, ref, ref, ref)
	if err != nil {
		return Record{}, err
	}
	recs, err := scanRecords(rows)
	if err != nil {
		return Record{}, err
	}

	switch {
	case len(recs) == 0:
		return Record{}, fmt.Errorf("%q: %w", ref, ErrNotFound)
	case len(recs) > 1 && recs[0].ID != ref:
		return Record{}, fmt.Errorf("%q matches more than one record", ref)
	}
	return recs[0], nil
}

// List returns every record in the order it was made.
func (j *SQLite) List() ([]Record, error) {
	rows, err := j.db.Query(`
		SELECT id, time, kind, input, result, error
		FROM calculations
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// ListBetween returns records made within [start, end).
func (j *SQLite) ListBetween(start, end time.Time) ([]Record, error) {
	rows, err := j.db.Query(`
		SELECT id, time, kind, input, result, error
		FROM calculations
		WHERE time >= ? AND time < ?
		ORDER BY id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Time,
			&rec.Kind,
			&rec.Input,
			&rec.Result,
			&rec.Error,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Journal = (*SQLite)(nil)

// IsNotFound reports whether err means a lookup found nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
