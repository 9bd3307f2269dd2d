// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to the right HTTP status. Anything that is not one of these
// sentinels is treated as a transient store failure and bubbles up
// wrapped, to be reported generically.
package repository

import "errors"

// ErrInvalidAddress is returned when submitted address text cannot be
// split into a numeric house number and a street. Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidAddress = errors.New("invalid address supplied, expected format: house-number street")

// ErrAddressInUse is returned when a resolved address is already bound
// to a different venue. Addresses are owned 1:1 by venues and never
// shared, so this maps to an HTTP 409 conflict.
var ErrAddressInUse = errors.New("address already belongs to another venue")

// ErrShowInPast is returned when a booking is requested with a start
// time that is not in the future.
var ErrShowInPast = errors.New("cannot create a show in the past")

// ErrInvalidShowRef is returned when a booking references an artist or
// venue id that does not exist.
var ErrInvalidShowRef = errors.New("invalid artist or venue id")
