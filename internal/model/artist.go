package model

import "time"

// Artist represents a performer.  Unlike venues, artists reference their
// city directly instead of owning an address, and link to genres through
// the genre_artist join table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – artist or band name.
//  Phone              – contact phone, already validated by the caller.
//  ImageLink          – URL of the artist image.
//  Website            – artist website URL.
//  FacebookLink       – facebook page URL.
//  SeekingVenue       – whether the artist is looking for venues to play.
//  SeekingDescription – free-text blurb shown when seeking a venue.
//  CityID             – referenced city, resolved on create/edit.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Artist struct {
	ID                 uint64    // artists.id
	Name               string    // artists.name
	Phone              string    // artists.phone
	ImageLink          string    // artists.image_link
	Website            string    // artists.website
	FacebookLink       string    // artists.facebook_link
	SeekingVenue       bool      // artists.seeking_venue
	SeekingDescription string    // artists.seeking_description
	CityID             uint64    // artists.city_id
	CreatedAt          time.Time // artists.created_at
	UpdatedAt          time.Time // artists.updated_at
}
