// Package repository contains data access logic separated from HTTP
// handlers. This file holds the location resolver: the lookup-or-create
// logic that turns free-text state/city/address input into normalized
// rows. The resolver always runs inside the caller's transaction so that
// a failed venue or artist write also rolls back any city it created.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/iliyamo/venue-directory/internal/model"
)

// ErrStateNotFound is returned when a submitted state code does not match
// the pre-seeded states table. State codes are a fixed reference set and
// never created on demand.
var ErrStateNotFound = errors.New("state not found")

// ResolveCity looks up the state by its two-letter code and then the city
// by case-insensitive name within that state. When the city does not
// exist yet a new row is inserted and its generated id returned. The
// check-then-insert pair is one logical unit only within tx; concurrent
// resolution of the same new city name can still race (the schema does
// not enforce uniqueness on (name, state_id)).
func ResolveCity(ctx context.Context, tx *sql.Tx, stateCode, cityName string) (uint64, error) {
	var stateID uint64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM states WHERE code = ?`, stateCode,
	).Scan(&stateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrStateNotFound
		}
		return 0, err
	}

	var cityID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM cities WHERE LOWER(name) = LOWER(?) AND state_id = ?`,
		cityName, stateID,
	).Scan(&cityID)
	if err == nil {
		return cityID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO cities (name, state_id) VALUES (?, ?)`,
		cityName, stateID,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ParseAddress splits submitted address text on the first whitespace into
// a numeric house number and the remaining street text. It returns
// ErrInvalidAddress when there is no whitespace to split on or when the
// first token is not an integer.
func ParseAddress(text string) (int, string, error) {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return 0, "", ErrInvalidAddress
	}
	houseNumber, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", ErrInvalidAddress
	}
	return houseNumber, parts[1], nil
}

// FindAddress looks up an address by (house_number, case-insensitive
// street, city_id). It returns nil when no such row exists; the caller
// decides whether to insert, replace or reuse, because the create and
// edit flows treat an existing row differently.
func FindAddress(ctx context.Context, tx *sql.Tx, houseNumber int, street string, cityID uint64) (*model.Address, error) {
	var a model.Address
	err := tx.QueryRowContext(ctx,
		`SELECT id, house_number, street, city_id, venue_id
		 FROM addresses
		 WHERE house_number = ? AND LOWER(street) = LOWER(?) AND city_id = ?`,
		houseNumber, street, cityID,
	).Scan(&a.ID, &a.HouseNumber, &a.Street, &a.CityID, &a.VenueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
