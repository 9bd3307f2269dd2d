package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// EntitySummary is a bare id+name pair used by the listing views.
type EntitySummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SearchRow is one matched entity with its upcoming show count.
type SearchRow struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int    `json:"upcoming_shows"`
}

// SearchResult wraps the match count and rows for a name search.
type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchRow `json:"data"`
}

// Search matches venues whose name contains the term, case-insensitive,
// no tokenization or ranking. The upcoming show count of each match is
// computed with a separate aggregate query against now.
func (r *VenueRepo) Search(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	return searchByName(ctx, r.db, `SELECT id, name FROM venues WHERE LOWER(name) LIKE ?`, "venue_id", term, now)
}

// Search matches artists whose name contains the term, case-insensitive.
func (r *ArtistRepo) Search(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	return searchByName(ctx, r.db, `SELECT id, name FROM artists WHERE LOWER(name) LIKE ?`, "artist_id", term, now)
}

func searchByName(ctx context.Context, db *sql.DB, q, fkColumn, term string, now time.Time) (*SearchResult, error) {
	rows, err := db.QueryContext(ctx, q, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &SearchResult{Data: []SearchRow{}}
	for rows.Next() {
		var sr SearchRow
		if err := rows.Scan(&sr.ID, &sr.Name); err != nil {
			return nil, err
		}
		result.Data = append(result.Data, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result.Data {
		count, err := countUpcomingShows(ctx, db, fkColumn, result.Data[i].ID, now)
		if err != nil {
			return nil, err
		}
		result.Data[i].UpcomingShows = count
	}
	result.Count = len(result.Data)
	return result, nil
}

// countUpcomingShows counts shows for one entity with a start time
// strictly after now. fkColumn selects which side of the join to filter
// on and is restricted to the two known column names.
func countUpcomingShows(ctx context.Context, db *sql.DB, fkColumn string, id uint64, now time.Time) (int, error) {
	var q string
	switch fkColumn {
	case "venue_id":
		q = `SELECT COUNT(*) FROM shows WHERE venue_id = ? AND start_time > ?`
	default:
		q = `SELECT COUNT(*) FROM shows WHERE artist_id = ? AND start_time > ?`
	}
	var count int
	if err := db.QueryRowContext(ctx, q, id, now).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// listSummaries runs an id+name query and collects the results.
func listSummaries(ctx context.Context, db *sql.DB, q string) ([]EntitySummary, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []EntitySummary{}
	for rows.Next() {
		var s EntitySummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
