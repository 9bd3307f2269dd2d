package model

// Address is the street address owned by exactly one venue.  The row is
// created together with its venue and removed when the venue is deleted or
// when an edit replaces it; addresses are never shared between venues.
//
// Fields:
//  ID          – primary key identifier.
//  HouseNumber – numeric house number parsed from the submitted address text.
//  Street      – remainder of the address text after the house number.
//  CityID      – city the address belongs to.
//  VenueID     – owning venue, never null.
type Address struct {
	ID          uint64 // addresses.id
	HouseNumber int    // addresses.house_number
	Street      string // addresses.street
	CityID      uint64 // addresses.city_id
	VenueID     uint64 // addresses.venue_id
}
