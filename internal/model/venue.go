package model

import "time"

// Venue represents a place that hosts performances.  Each venue owns
// exactly one Address row and is linked to genres through the genre_venue
// join table and to artists through shows.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – venue name.
//  Phone              – contact phone, already validated by the caller.
//  ImageLink          – URL of the venue image.
//  Website            – venue website URL.
//  FacebookLink       – facebook page URL.
//  SeekingTalent      – whether the venue is looking for artists to book.
//  SeekingDescription – free-text blurb shown when seeking talent.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Venue struct {
	ID                 uint64    // venues.id
	Name               string    // venues.name
	Phone              string    // venues.phone
	ImageLink          string    // venues.image_link
	Website            string    // venues.website
	FacebookLink       string    // venues.facebook_link
	SeekingTalent      bool      // venues.seeking_talent
	SeekingDescription string    // venues.seeking_description
	CreatedAt          time.Time // venues.created_at
	UpdatedAt          time.Time // venues.updated_at
}
