package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-directory/internal/model"
)

// ErrGenreNotFound is returned when a submitted genre name does not match
// any row in the pre-seeded genres table. Genre names are reference data;
// a miss is terminal, not something to retry or create on demand.
var ErrGenreNotFound = errors.New("genre not found")

// ReferenceRepo reads the pre-seeded reference tables (genres and states).
// It is consumed by the form-rendering side of the presentation layer,
// which needs the full choice lists. Nothing in this service ever writes
// to either table.
type ReferenceRepo struct {
	db *sql.DB
}

// NewReferenceRepo constructs a ReferenceRepo with the provided DB handle.
func NewReferenceRepo(db *sql.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

// ListGenres returns all genres ordered by name.
func (r *ReferenceRepo) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	const q = `SELECT id, name FROM genres ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Genre
	for rows.Next() {
		g := new(model.Genre)
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStates returns all states ordered by code.
func (r *ReferenceRepo) ListStates(ctx context.Context) ([]*model.State, error) {
	const q = `SELECT id, name, code FROM states ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.State
	for rows.Next() {
		s := new(model.State)
		if err := rows.Scan(&s.ID, &s.Name, &s.Code); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// lookupGenreID resolves a genre name to its id inside the caller's
// transaction. Used by the venue and artist write paths when rebuilding
// genre associations.
func lookupGenreID(ctx context.Context, tx *sql.Tx, name string) (uint64, error) {
	var id uint64
	err := tx.QueryRowContext(ctx, `SELECT id FROM genres WHERE name = ?`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGenreNotFound
		}
		return 0, err
	}
	return id, nil
}
