package model

// Genre is pre-seeded reference data shared by venues and artists via the
// genre_venue and genre_artist join tables.  Names are unique; this
// service never creates genre rows, submitted names must match a row.
type Genre struct {
	ID   uint64 // genres.id
	Name string // genres.name
}
