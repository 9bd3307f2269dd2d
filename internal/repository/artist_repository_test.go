package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func gunsNPetalsInput() *ArtistInput {
	return &ArtistInput{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://example.com/guns-n-petals.jpg",
		Website:            "https://gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		Genres:             []string{"Rock n Roll"},
	}
}

func TestArtistRepoCreate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewArtistRepo(db)
	ctx := context.Background()

	t.Run("create then get returns submitted fields", func(t *testing.T) {
		id := mustCreateArtist(t, repo, gunsNPetalsInput())

		d, err := repo.GetByID(ctx, id, time.Now().UTC())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if d.Name != "Guns N Petals" {
			t.Errorf("name: got %q", d.Name)
		}
		if d.City != "San Francisco" || d.State != "CA" {
			t.Errorf("location: got %q %q", d.City, d.State)
		}
		if !d.SeekingVenue {
			t.Error("seeking_venue lost")
		}
		if !reflect.DeepEqual(d.Genres, []string{"Rock n Roll"}) {
			t.Errorf("genres: got %v", d.Genres)
		}
		if len(d.PastShows) != 0 || len(d.UpcomingShows) != 0 {
			t.Errorf("expected no shows, got %d past %d upcoming", len(d.PastShows), len(d.UpcomingShows))
		}
	})

	t.Run("reuses the city created by an earlier create", func(t *testing.T) {
		in := gunsNPetalsInput()
		in.Name = "The Wild Sax Band"
		in.City = "san francisco"
		mustCreateArtist(t, repo, in)
		if n := countRows(t, db, `SELECT COUNT(*) FROM cities WHERE LOWER(name) = 'san francisco'`); n != 1 {
			t.Errorf("expected 1 city row, got %d", n)
		}
	})

	t.Run("unknown genre rolls back the artist", func(t *testing.T) {
		in := gunsNPetalsInput()
		in.Name = "Rollback Band"
		in.Genres = []string{"Polka"}
		if _, err := repo.Create(ctx, in); !errors.Is(err, ErrGenreNotFound) {
			t.Fatalf("expected ErrGenreNotFound, got %v", err)
		}
		if n := countRows(t, db, `SELECT COUNT(*) FROM artists WHERE name = ?`, "Rollback Band"); n != 0 {
			t.Errorf("artist row survived rollback")
		}
	})
}

func TestArtistRepoUpdate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewArtistRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	id := mustCreateArtist(t, repo, gunsNPetalsInput())

	t.Run("overwrites scalars and replaces genres", func(t *testing.T) {
		in := gunsNPetalsInput()
		in.Phone = "415-555-1234"
		in.SeekingVenue = false
		in.Genres = []string{"Jazz", "Classical"}
		if err := repo.Update(ctx, id, in); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		d, err := repo.GetByID(ctx, id, now)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if d.Phone != "415-555-1234" || d.SeekingVenue {
			t.Errorf("scalars not overwritten: %+v", d)
		}
		if !reflect.DeepEqual(d.Genres, []string{"Classical", "Jazz"}) {
			t.Errorf("genres: got %v", d.Genres)
		}
	})

	t.Run("moving city re-resolves the reference", func(t *testing.T) {
		in := gunsNPetalsInput()
		in.City = "New York"
		in.State = "NY"
		if err := repo.Update(ctx, id, in); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		d, err := repo.GetByID(ctx, id, now)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if d.City != "New York" || d.State != "NY" {
			t.Errorf("location: got %q %q", d.City, d.State)
		}
	})

	t.Run("missing artist", func(t *testing.T) {
		if err := repo.Update(ctx, 9999, gunsNPetalsInput()); !errors.Is(err, ErrArtistNotFound) {
			t.Fatalf("expected ErrArtistNotFound, got %v", err)
		}
	})
}

func TestArtistRepoList(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewArtistRepo(db)
	ctx := context.Background()

	first := mustCreateArtist(t, repo, gunsNPetalsInput())
	second := gunsNPetalsInput()
	second.Name = "The Wild Sax Band"
	secondID := mustCreateArtist(t, repo, second)

	// Pin updated_at so the ordering assertion does not depend on the
	// creation timestamps landing in distinct instants.
	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	if _, err := db.Exec(`UPDATE artists SET updated_at = ? WHERE id = ?`, base, first); err != nil {
		t.Fatalf("pin updated_at: %v", err)
	}
	if _, err := db.Exec(`UPDATE artists SET updated_at = ? WHERE id = ?`, base.Add(time.Hour), secondID); err != nil {
		t.Fatalf("pin updated_at: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(items))
	}
	if items[0].ID != secondID || items[1].ID != first {
		t.Errorf("expected most recently updated first, got %+v", items)
	}
}
