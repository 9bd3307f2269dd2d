// This file defines the show repository. A show is a booking join row
// between an artist and a venue with a start time; rows are insert-only
// and duplicates of the same (artist, venue, start_time) triple are
// permitted.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-directory/internal/model"
)

// ShowListEntry is one row of the global show listing, newest start time
// first, joined with both counterpart names and the artist image.
type ShowListEntry struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowRepo manages persistence for show bookings.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create books a show after re-validating that the start time is not in
// the past relative to now (ErrShowInPast) and that both referenced rows
// exist (ErrInvalidShowRef). The existence checks and the insert share
// one transaction so a failed check persists nothing.
func (r *ShowRepo) Create(ctx context.Context, artistID, venueID uint64, startTime, now time.Time) (show *model.Show, err error) {
	if !isUpcoming(startTime, now) {
		return nil, ErrShowInPast
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var id uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = ?`, artistID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrInvalidShowRef
		}
		return nil, err
	}
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ?`, venueID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrInvalidShowRef
		}
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		venueID, artistID, startTime,
	)
	if err != nil {
		return nil, err
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Show{
		ID:        uint64(rowID),
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}, nil
}

// List returns every booking with its venue and artist names, newest
// start time first.
func (r *ShowRepo) List(ctx context.Context) ([]ShowListEntry, error) {
	const q = `SELECT sh.venue_id, v.name, sh.artist_id, ar.name, ar.image_link, sh.start_time
	           FROM shows sh
	           JOIN venues v   ON v.id = sh.venue_id
	           JOIN artists ar ON ar.id = sh.artist_id
	           ORDER BY sh.start_time DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ShowListEntry{}
	for rows.Next() {
		var e ShowListEntry
		if err := rows.Scan(&e.VenueID, &e.VenueName, &e.ArtistID, &e.ArtistName, &e.ArtistImageLink, &e.StartTime); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// isUpcoming implements the fixed partition boundary: a start time equal
// to now is past, strictly later is upcoming.
func isUpcoming(start, now time.Time) bool {
	return start.After(now)
}
