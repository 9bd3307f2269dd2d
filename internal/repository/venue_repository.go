// This file defines the venue repository. A Venue owns exactly one
// Address row and is linked to genres via genre_venue and to artists via
// shows. All multi-step writes run in a single transaction: any failure
// rolls back every partial insert, including a city created by the
// resolver on the way in.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/venue-directory/internal/model"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// VenueInput carries the already-validated form values for creating or
// editing a venue. Address holds the raw "house-number street" text;
// City and State hold the free-text city name and the two-letter state
// code. Genres lists genre names that must exist in the genres table.
type VenueInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// VenueShowEntry is one show on a venue's detail page, carrying the
// counterpart artist's identity and image alongside the start time.
type VenueShowEntry struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueDetail is the denormalized read view of one venue: scalar fields,
// the resolved location joined through the address row, the genre name
// list and the shows partitioned into past and upcoming at read time.
type VenueDetail struct {
	ID                 uint64           `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue together with its address, resolving the
// city on the way and attaching one join row per submitted genre name.
// The address text is parsed up front so malformed input fails before
// any write. An identical address already present in the target city
// belongs to some other venue and aborts the create with ErrAddressInUse.
func (r *VenueRepo) Create(ctx context.Context, in *VenueInput) (venue *model.Venue, err error) {
	houseNumber, street, err := ParseAddress(in.Address)
	if err != nil {
		return nil, err
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

	cityID, err := ResolveCity(ctx, tx, in.State, in.City)
	if err != nil {
		return nil, err
	}

	existing, err := FindAddress(ctx, tx, houseNumber, street, cityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAddressInUse
	}

	now := time.Now().UTC()
	v := &model.Venue{
		Name:               in.Name,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		Website:            in.Website,
		FacebookLink:       in.FacebookLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO venues (name, phone, image_link, website, facebook_link,
		                     seeking_talent, seeking_description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.Phone, v.ImageLink, v.Website, v.FacebookLink,
		v.SeekingTalent, v.SeekingDescription, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	v.ID = uint64(id)

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO addresses (house_number, street, city_id, venue_id) VALUES (?, ?, ?, ?)`,
		houseNumber, street, cityID, v.ID,
	); err != nil {
		return nil, err
	}

	if err = r.replaceGenres(ctx, tx, v.ID, in.Genres, false); err != nil {
		return nil, err
	}
	return v, nil
}

// Update overwrites all mutable scalar fields of the venue, re-resolves
// the city and address, and replaces the full genre set. The address row
// is replaced only when the resolved address differs from the one
// currently attached; editing a venue back to its own address is a no-op
// on the addresses table. A resolved address bound to a different venue
// aborts with ErrAddressInUse.
func (r *VenueRepo) Update(ctx context.Context, id uint64, in *VenueInput) (err error) {
	houseNumber, street, err := ParseAddress(in.Address)
	if err != nil {
		return err
	}

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
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}

	cityID, err := ResolveCity(ctx, tx, in.State, in.City)
	if err != nil {
		return err
	}

	addr, err := FindAddress(ctx, tx, houseNumber, street, cityID)
	if err != nil {
		return err
	}
	switch {
	case addr == nil:
		// New address for this venue: drop the old row and insert the
		// replacement bound to the same venue.
		if _, err = tx.ExecContext(ctx, `DELETE FROM addresses WHERE venue_id = ?`, id); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO addresses (house_number, street, city_id, venue_id) VALUES (?, ?, ?, ?)`,
			houseNumber, street, cityID, id,
		); err != nil {
			return err
		}
	case addr.VenueID != id:
		return ErrAddressInUse
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE venues
		 SET name = ?, phone = ?, image_link = ?, website = ?, facebook_link = ?,
		     seeking_talent = ?, seeking_description = ?, updated_at = ?
		 WHERE id = ?`,
		in.Name, in.Phone, in.ImageLink, in.Website, in.FacebookLink,
		in.SeekingTalent, in.SeekingDescription, time.Now().UTC(), id,
	); err != nil {
		return err
	}

	return r.replaceGenres(ctx, tx, id, in.Genres, true)
}

// replaceGenres rebuilds the genre_venue rows for a venue from the
// submitted genre names. Replacement is wholesale, not a diff: the old
// set is dropped and every submitted name is looked up and inserted.
func (r *VenueRepo) replaceGenres(ctx context.Context, tx *sql.Tx, venueID uint64, names []string, clear bool) error {
	if clear {
		if _, err := tx.ExecContext(ctx, `DELETE FROM genre_venue WHERE venue_id = ?`, venueID); err != nil {
			return err
		}
	}
	for _, name := range names {
		genreID, err := lookupGenreID(ctx, tx, name)
		if err != nil {
			return fmt.Errorf("genre %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO genre_venue (venue_id, genre_id) VALUES (?, ?)`,
			venueID, genreID,
		); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a venue and all dependent records: its shows, its genre
// associations and its address. The deletion occurs within a transaction
// so no partial cleanup is observed. ErrVenueNotFound is returned when
// the venue does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM genre_venue WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM addresses WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}

// GetByID returns the denormalized detail view of a venue. Shows are
// partitioned against the supplied wall-clock instant: start_time equal
// to now counts as past, strictly later counts as upcoming. The
// partition is computed at read time and never stored.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64, now time.Time) (*VenueDetail, error) {
	const q = `SELECT v.id, v.name, v.phone, v.image_link, v.website, v.facebook_link,
	                  v.seeking_talent, v.seeking_description,
	                  a.house_number, a.street, c.name, s.code
	           FROM venues v
	           JOIN addresses a ON a.venue_id = v.id
	           JOIN cities c    ON c.id = a.city_id
	           JOIN states s    ON s.id = c.state_id
	           WHERE v.id = ?`
	var (
		d           VenueDetail
		houseNumber int
		street      string
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.Name, &d.Phone, &d.ImageLink, &d.Website, &d.FacebookLink,
		&d.SeekingTalent, &d.SeekingDescription,
		&houseNumber, &street, &d.City, &d.State,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	d.Address = fmt.Sprintf("%d %s", houseNumber, street)

	d.Genres, err = genreNames(ctx, r.db, `SELECT g.name FROM genres g
		JOIN genre_venue gv ON gv.genre_id = g.id
		WHERE gv.venue_id = ? ORDER BY g.name`, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT sh.artist_id, ar.name, ar.image_link, sh.start_time
		 FROM shows sh
		 JOIN artists ar ON ar.id = sh.artist_id
		 WHERE sh.venue_id = ?
		 ORDER BY sh.start_time`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.PastShows = []VenueShowEntry{}
	d.UpcomingShows = []VenueShowEntry{}
	for rows.Next() {
		var e VenueShowEntry
		if err := rows.Scan(&e.ArtistID, &e.ArtistName, &e.ArtistImageLink, &e.StartTime); err != nil {
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

// List returns id and name of every venue, most recently updated first.
func (r *VenueRepo) List(ctx context.Context) ([]EntitySummary, error) {
	return listSummaries(ctx, r.db, `SELECT id, name FROM venues ORDER BY updated_at DESC`)
}

// CityGroupVenue is one venue inside a city group on the venue listing
// view, annotated with its upcoming show count.
type CityGroupVenue struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup collects the venues of one distinct city.
type CityGroup struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []CityGroupVenue `json:"venues"`
}

// GroupByCity returns every distinct city that has venues, each with its
// venues and their upcoming show counts relative to now. Groups are
// ordered by city name, venues within a group by venue id.
func (r *VenueRepo) GroupByCity(ctx context.Context, now time.Time) ([]CityGroup, error) {
	const q = `SELECT v.id, v.name, c.name, s.code
	           FROM venues v
	           JOIN addresses a ON a.venue_id = v.id
	           JOIN cities c    ON c.id = a.city_id
	           JOIN states s    ON s.id = c.state_id
	           ORDER BY c.name, s.code, v.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type venueRow struct {
		id          uint64
		name        string
		city, state string
	}
	var all []venueRow
	for rows.Next() {
		var vr venueRow
		if err := rows.Scan(&vr.id, &vr.name, &vr.city, &vr.state); err != nil {
			return nil, err
		}
		all = append(all, vr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := []CityGroup{}
	for _, vr := range all {
		count, err := countUpcomingShows(ctx, r.db, "venue_id", vr.id, now)
		if err != nil {
			return nil, err
		}
		entry := CityGroupVenue{ID: vr.id, Name: vr.name, NumUpcomingShows: count}
		if n := len(groups); n > 0 && groups[n-1].City == vr.city && groups[n-1].State == vr.state {
			groups[n-1].Venues = append(groups[n-1].Venues, entry)
			continue
		}
		groups = append(groups, CityGroup{City: vr.city, State: vr.state, Venues: []CityGroupVenue{entry}})
	}
	return groups, nil
}

// genreNames runs a single-column name query and collects the results.
func genreNames(ctx context.Context, db *sql.DB, q string, id uint64) ([]string, error) {
	rows, err := db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
