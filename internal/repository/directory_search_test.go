package repository

import (
	"context"
	"testing"
	"time"
)

func TestVenueSearch(t *testing.T) {
	f, cleanup := setupBookingFixture(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC()

	other := musicalHopInput()
	other.Name = "Park Square Live Music & Coffee"
	other.Address = "34 Whiskey Moore Ave"
	mustCreateVenue(t, f.venues, other)

	mustBookShow(t, f.shows, f.artistID, f.venueID, now.Add(time.Hour), now)
	mustBookShow(t, f.shows, f.artistID, f.venueID, now.Add(2*time.Hour), now)

	t.Run("substring match with upcoming count", func(t *testing.T) {
		res, err := f.venues.Search(ctx, "hop", now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Count != 1 || len(res.Data) != 1 {
			t.Fatalf("expected one match, got count=%d data=%d", res.Count, len(res.Data))
		}
		if res.Data[0].Name != "The Musical Hop" {
			t.Errorf("matched wrong venue: %q", res.Data[0].Name)
		}
		if res.Data[0].UpcomingShows != 2 {
			t.Errorf("upcoming shows: got %d, want 2", res.Data[0].UpcomingShows)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		res, err := f.venues.Search(ctx, "MUSIC", now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Count != 2 {
			t.Errorf("expected both venues to match, got %d", res.Count)
		}
	})

	t.Run("no matches returns empty data", func(t *testing.T) {
		res, err := f.venues.Search(ctx, "opera", now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Count != 0 || res.Data == nil || len(res.Data) != 0 {
			t.Errorf("expected empty result, got %+v", res)
		}
	})
}

func TestArtistSearch(t *testing.T) {
	f, cleanup := setupBookingFixture(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC()

	second := gunsNPetalsInput()
	second.Name = "The Wild Sax Band"
	mustCreateArtist(t, f.artists, second)

	mustBookShow(t, f.shows, f.artistID, f.venueID, now.Add(time.Hour), now)

	res, err := f.artists.Search(ctx, "guns", now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Count != 1 || res.Data[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected matches: %+v", res)
	}
	if res.Data[0].UpcomingShows != 1 {
		t.Errorf("upcoming shows: got %d, want 1", res.Data[0].UpcomingShows)
	}
}
