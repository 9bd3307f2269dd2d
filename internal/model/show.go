package model

import "time"

// Show is one booking of an artist at a venue at a given start time.  It
// is a many-to-many edge between Artist and Venue with StartTime as the
// edge attribute.  Shows are only ever created, never updated or deleted
// on their own; duplicate (artist, venue, start_time) triples are allowed.
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time
}
