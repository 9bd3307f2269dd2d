// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-directory/internal/handler"
)

// RegisterRoutes registers routes that take no dependencies on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterDirectory registers the venue, artist, show and reference-data
// routes under /v1. All reads are plain GETs; create, edit and booking
// mutate via POST/PUT/DELETE and are not idempotent; retrying a POST
// duplicates data, there is no idempotency key in this design.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler) {
	g := e.Group("/v1")

	// Venues: the listing groups venues by city; search is a POST to
	// mirror the form submission that drives it.
	g.GET("/venues", h.ListVenues)
	g.GET("/venues/:id", h.GetVenue)
	g.POST("/venues", h.CreateVenue)
	g.PUT("/venues/:id", h.UpdateVenue)
	g.DELETE("/venues/:id", h.DeleteVenue)
	g.POST("/venues/search", h.SearchVenues)

	// Artists: no delete exists for artists.
	g.GET("/artists", h.ListArtists)
	g.GET("/artists/:id", h.GetArtist)
	g.POST("/artists", h.CreateArtist)
	g.PUT("/artists/:id", h.UpdateArtist)
	g.POST("/artists/search", h.SearchArtists)

	// Shows: bookings are insert-only.
	g.GET("/shows", h.ListShows)
	g.POST("/shows", h.CreateShow)

	// Reference data consumed by the form-rendering side.
	g.GET("/genres", h.ListGenres)
	g.GET("/states", h.ListStates)
}
