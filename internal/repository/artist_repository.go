// This file defines the artist repository. Artists reference a city
// directly instead of owning an address, so their write path only needs
// the city resolver. There is no artist delete.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/venue-directory/internal/model"
)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistInput carries the already-validated form values for creating or
// editing an artist.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// ArtistShowEntry is one show on an artist's detail page, carrying the
// counterpart venue's identity and image alongside the start time.
type ArtistShowEntry struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ArtistDetail is the denormalized read view of one artist.
type ArtistDetail struct {
	ID                 uint64            `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist, resolving the city on the way and
// attaching one join row per submitted genre name. The whole create is
// one transaction; a genre lookup miss rolls back the artist row and any
// city the resolver created.
func (r *ArtistRepo) Create(ctx context.Context, in *ArtistInput) (artist *model.Artist, err error) {
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

	cityID, err := ResolveCity(ctx, tx, in.State, in.City)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &model.Artist{
		Name:               in.Name,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		Website:            in.Website,
		FacebookLink:       in.FacebookLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
		CityID:             cityID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO artists (name, phone, image_link, website, facebook_link,
		                      seeking_venue, seeking_description, city_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.Phone, a.ImageLink, a.Website, a.FacebookLink,
		a.SeekingVenue, a.SeekingDescription, a.CityID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	a.ID = uint64(id)

	if err = r.replaceGenres(ctx, tx, a.ID, in.Genres, false); err != nil {
		return nil, err
	}
	return a, nil
}

// Update overwrites all mutable scalar fields of the artist, re-resolves
// the city (possibly creating a new one) and replaces the full genre set
// in one transaction.
func (r *ArtistRepo) Update(ctx context.Context, id uint64, in *ArtistInput) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}

	cityID, err := ResolveCity(ctx, tx, in.State, in.City)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE artists
		 SET name = ?, phone = ?, image_link = ?, website = ?, facebook_link = ?,
		     seeking_venue = ?, seeking_description = ?, city_id = ?, updated_at = ?
		 WHERE id = ?`,
		in.Name, in.Phone, in.ImageLink, in.Website, in.FacebookLink,
		in.SeekingVenue, in.SeekingDescription, cityID, time.Now().UTC(), id,
	); err != nil {
		return err
	}

	return r.replaceGenres(ctx, tx, id, in.Genres, true)
}

// replaceGenres rebuilds the genre_artist rows for an artist from the
// submitted genre names, wholesale like the venue side.
func (r *ArtistRepo) replaceGenres(ctx context.Context, tx *sql.Tx, artistID uint64, names []string, clear bool) error {
	if clear {
		if _, err := tx.ExecContext(ctx, `DELETE FROM genre_artist WHERE artist_id = ?`, artistID); err != nil {
			return err
		}
	}
	for _, name := range names {
		genreID, err := lookupGenreID(ctx, tx, name)
		if err != nil {
			return fmt.Errorf("genre %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO genre_artist (artist_id, genre_id) VALUES (?, ?)`,
			artistID, genreID,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns the denormalized detail view of an artist with shows
// partitioned against the supplied instant, mirroring the venue view but
// joined through the direct city reference.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64, now time.Time) (*ArtistDetail, error) {
	const q = `SELECT a.id, a.name, a.phone, a.image_link, a.website, a.facebook_link,
	                  a.seeking_venue, a.seeking_description, c.name, s.code
	           FROM artists a
	           JOIN cities c ON c.id = a.city_id
	           JOIN states s ON s.id = c.state_id
	           WHERE a.id = ?`
	var d ArtistDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.Name, &d.Phone, &d.ImageLink, &d.Website, &d.FacebookLink,
		&d.SeekingVenue, &d.SeekingDescription, &d.City, &d.State,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	d.Genres, err = genreNames(ctx, r.db, `SELECT g.name FROM genres g
		JOIN genre_artist ga ON ga.genre_id = g.id
		WHERE ga.artist_id = ? ORDER BY g.name`, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT sh.venue_id, v.name, v.image_link, sh.start_time
		 FROM shows sh
		 JOIN venues v ON v.id = sh.venue_id
		 WHERE sh.artist_id = ?
		 ORDER BY sh.start_time`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.PastShows = []ArtistShowEntry{}
	d.UpcomingShows = []ArtistShowEntry{}
	for rows.Next() {
		var e ArtistShowEntry
		if err := rows.Scan(&e.VenueID, &e.VenueName, &e.VenueImageLink, &e.StartTime); err != nil {
			return nil, err
		}
		if isUpcoming(e.StartTime, now) {
			d.UpcomingShows = append(d.UpcomingShows, e)
		} else {
			d.PastShows = append(d.PastShows, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return &d, nil
}

// List returns id and name of every artist, most recently updated first.
func (r *ArtistRepo) List(ctx context.Context) ([]EntitySummary, error) {
	return listSummaries(ctx, r.db, `SELECT id, name FROM artists ORDER BY updated_at DESC`)
}
