// Package sqlstore persists resource collections in a SQL database.
//
// All collections share one table. Each row holds the record's JSON encoding
// together with its resource name, its id and an increasing position that
// preserves insertion order. A resource.Document encodes to the body exactly
// as it was submitted. Records without an integer id get a NULL id, which no
// lookup matches.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"octosupply/pkg/resource"
)

// Dialect selects the SQL flavour spoken by the database.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// DriverName returns the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

var schemas = map[Dialect][]string{
	Postgres: {
		`CREATE TABLE IF NOT EXISTS resource_records (position BIGSERIAL PRIMARY KEY, resource TEXT NOT NULL, record_id BIGINT, body JSON NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS resource_records_lookup ON resource_records (resource, record_id, position)`,
	},
	SQLite: {
		`CREATE TABLE IF NOT EXISTS resource_records (position INTEGER PRIMARY KEY AUTOINCREMENT, resource TEXT NOT NULL, record_id INTEGER, body TEXT NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS resource_records_lookup ON resource_records (resource, record_id, position)`,
	},
}

// Open connects to the database and creates the records table.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}
	if d == SQLite {
		// SQLite allows a single writer; serialise through one connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}
	if err := Migrate(ctx, db, d); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the records table when missing.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range schemas[d] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Repository stores one named collection.
type Repository[T resource.Record] struct {
	db      *sql.DB
	dialect Dialect
	name    string
}

// New creates a repository for the collection called name.
func New[T resource.Record](db *sql.DB, d Dialect, name string) *Repository[T] {
	return &Repository[T]{db: db, dialect: d, name: name}
}

// Seed inserts seed when the collection is empty.
func (r *Repository[T]) Seed(ctx context.Context, seed []T) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, r.q("SELECT COUNT(*) FROM resource_records WHERE resource = ?"), r.name).Scan(&n); err != nil {
		return fmt.Errorf("count %s: %w", r.name, err)
	}
	if n > 0 {
		return nil
	}
	for _, v := range seed {
		if err := r.insert(ctx, tx, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns the collection in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.q("SELECT body FROM resource_records WHERE resource = ? ORDER BY position"), r.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		v, err := decode[T](body)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Get retrieves the first record with the given id.
func (r *Repository[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	var body []byte
	err := r.db.QueryRowContext(ctx,
		r.q("SELECT body FROM resource_records WHERE resource = ? AND record_id = ? ORDER BY position LIMIT 1"),
		r.name, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, resource.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("get %s %d: %w", r.name, id, err)
	}
	return decode[T](body)
}

// Create appends the record.
func (r *Repository[T]) Create(ctx context.Context, v T) (T, error) {
	if err := r.insert(ctx, r.db, v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Update replaces the first record with the given id.
func (r *Repository[T]) Update(ctx context.Context, id int, v T) (T, error) {
	return r.UpdateFunc(ctx, id, resource.Replace(v))
}

// UpdateFunc replaces the first record with the given id by fn's result
// inside a transaction.
func (r *Repository[T]) UpdateFunc(ctx context.Context, id int, fn func(T) (T, error)) (T, error) {
	var zero T
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	pos, body, err := r.locate(ctx, tx, id)
	if err != nil {
		return zero, err
	}
	cur, err := decode[T](body)
	if err != nil {
		return zero, err
	}
	next, err := fn(cur)
	if err != nil {
		return zero, err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", r.name, err)
	}
	if _, err := tx.ExecContext(ctx, r.q("UPDATE resource_records SET record_id = ?, body = ? WHERE position = ?"),
		recordID(next), string(raw), pos); err != nil {
		return zero, fmt.Errorf("update %s %d: %w", r.name, id, err)
	}
	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return next, nil
}

// Delete removes the first record with the given id.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pos, _, err := r.locate(ctx, tx, id)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, r.q("DELETE FROM resource_records WHERE position = ?"), pos)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", r.name, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resource.ErrNotFound
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository[T]) insert(ctx context.Context, ex execer, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.name, err)
	}
	if _, err := ex.ExecContext(ctx, r.q("INSERT INTO resource_records (resource, record_id, body) VALUES (?, ?, ?)"),
		r.name, recordID(v), string(raw)); err != nil {
		return fmt.Errorf("insert %s: %w", r.name, err)
	}
	return nil
}

func (r *Repository[T]) locate(ctx context.Context, tx *sql.Tx, id int) (int64, []byte, error) {
	query := "SELECT position, body FROM resource_records WHERE resource = ? AND record_id = ? ORDER BY position LIMIT 1"
	if r.dialect == Postgres {
		query += " FOR UPDATE"
	}
	var pos int64
	var body []byte
	err := tx.QueryRowContext(ctx, r.q(query), r.name, id).Scan(&pos, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, resource.ErrNotFound
	}
	if err != nil {
		return 0, nil, fmt.Errorf("locate %s %d: %w", r.name, id, err)
	}
	return pos, body, nil
}

// q rewrites ? placeholders into the dialect's form.
func (r *Repository[T]) q(query string) string {
	if r.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// recordID returns the id column value of v, nil when v has no id.
func recordID(v resource.Record) any {
	if id, ok := v.RecordID(); ok {
		return id
	}
	return nil
}

func decode[T resource.Record](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode record: %w", err)
	}
	return v, nil
}

var _ resource.Repository[resource.Record] = (*Repository[resource.Record])(nil)
