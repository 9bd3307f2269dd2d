package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB opens a throwaway sqlite database with the directory schema
// and the reference data pre-seeded. The repositories only use the
// SQL subset shared by MySQL and sqlite, so they run unchanged here.
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp("", "directory-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	db, err := sql.Open("sqlite3", tempFile.Name())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	schema := `
	CREATE TABLE states (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL UNIQUE
	);
	CREATE TABLE cities (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		state_id INTEGER NOT NULL
	);
	CREATE TABLE venues (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT '',
		created_at          DATETIME NOT NULL,
		updated_at          DATETIME NOT NULL
	);
	CREATE TABLE addresses (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		house_number INTEGER NOT NULL,
		street       TEXT NOT NULL,
		city_id      INTEGER NOT NULL,
		venue_id     INTEGER NOT NULL
	);
	CREATE TABLE artists (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT '',
		city_id             INTEGER NOT NULL,
		created_at          DATETIME NOT NULL,
		updated_at          DATETIME NOT NULL
	);
	CREATE TABLE genres (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);
	CREATE TABLE genre_venue (
		venue_id INTEGER NOT NULL,
		genre_id INTEGER NOT NULL,
		PRIMARY KEY (venue_id, genre_id)
	);
	CREATE TABLE genre_artist (
		artist_id INTEGER NOT NULL,
		genre_id  INTEGER NOT NULL,
		PRIMARY KEY (artist_id, genre_id)
	);
	CREATE TABLE shows (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		venue_id   INTEGER NOT NULL,
		artist_id  INTEGER NOT NULL,
		start_time DATETIME NOT NULL
	);
	INSERT INTO states (name, code) VALUES
		('California', 'CA'), ('New York', 'NY'), ('Massachusetts', 'MA'), ('Illinois', 'IL');
	INSERT INTO genres (name) VALUES
		('Jazz'), ('Reggae'), ('Folk'), ('Classical'), ('Rock n Roll');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(tempFile.Name())
	}
	return db, cleanup
}

// mustCreateVenue inserts a venue through the repository and fails the
// test on error.
func mustCreateVenue(t *testing.T, repo *VenueRepo, in *VenueInput) uint64 {
	t.Helper()
	v, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("failed to create venue %q: %v", in.Name, err)
	}
	return v.ID
}

// mustCreateArtist inserts an artist through the repository and fails the
// test on error.
func mustCreateArtist(t *testing.T, repo *ArtistRepo, in *ArtistInput) uint64 {
	t.Helper()
	a, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("failed to create artist %q: %v", in.Name, err)
	}
	return a.ID
}

// mustBookShow inserts a show through the repository and fails the test
// on error.
func mustBookShow(t *testing.T, repo *ShowRepo, artistID, venueID uint64, start, now time.Time) uint64 {
	t.Helper()
	s, err := repo.Create(context.Background(), artistID, venueID, start, now)
	if err != nil {
		t.Fatalf("failed to book show: %v", err)
	}
	return s.ID
}

// countRows returns the number of rows a query yields.
func countRows(t *testing.T, db *sql.DB, q string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(q, args...).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}
