// Package handler contains the HTTP handlers of the directory service.
// Handlers stay thin: bind the request, call a repository, map the error
// to a status. Input validation beyond address/booking rules is the
// presentation layer's job; field values arrive here already validated.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-directory/internal/repository"
)

// DirectoryHandler bundles the repositories behind the directory routes.
type DirectoryHandler struct {
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	RefRepo    *repository.ReferenceRepo
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if any
// dependency is nil.
func NewDirectoryHandler(venueRepo *repository.VenueRepo, artistRepo *repository.ArtistRepo, showRepo *repository.ShowRepo, refRepo *repository.ReferenceRepo) *DirectoryHandler {
	if venueRepo == nil || artistRepo == nil || showRepo == nil || refRepo == nil {
		panic("nil repository passed to NewDirectoryHandler")
	}
	return &DirectoryHandler{
		VenueRepo:  venueRepo,
		ArtistRepo: artistRepo,
		ShowRepo:   showRepo,
		RefRepo:    refRepo,
	}
}

// writeError maps repository sentinels onto HTTP statuses for the
// mutation paths. Unknown errors are reported generically; the store
// error itself never reaches the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrVenueNotFound),
		errors.Is(err, repository.ErrArtistNotFound),
		errors.Is(err, repository.ErrStateNotFound),
		errors.Is(err, repository.ErrGenreNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidAddress),
		errors.Is(err, repository.ErrShowInPast),
		errors.Is(err, repository.ErrInvalidShowRef):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrAddressInUse):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database_error"})
}

// writeReadFailure is the degraded response for failed reads: an empty
// result plus a generic failure signal, never a partial payload. Write
// failures go through writeError instead and stay precise.
func writeReadFailure(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "database_error",
		"data":  []any{},
	})
}
