package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-directory/internal/queue"
	queue_publisher "github.com/iliyamo/venue-directory/internal/service"
)

// ListShows handles GET /v1/shows and returns every booking with both
// counterpart names, newest start time first.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
	items, err := h.ShowRepo.List(c.Request().Context())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": items, "count": len(items)})
}

// CreateShow handles POST /v1/shows and books an artist at a venue. The
// repository re-validates the start time and both references inside the
// booking transaction. On success a show.booked event is published
// best-effort; a broker failure never fails the request.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	var body struct {
		ArtistID  uint64    `json:"artist_id"`
		VenueID   uint64    `json:"venue_id"`
		StartTime time.Time `json:"start_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.ArtistID == 0 || body.VenueID == 0 || body.StartTime.IsZero() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "artist_id, venue_id and start_time are required"})
	}

	now := time.Now().UTC()
	show, err := h.ShowRepo.Create(c.Request().Context(), body.ArtistID, body.VenueID, body.StartTime, now)
	if err != nil {
		return writeError(c, err)
	}

	ev := queue.ShowBookedEvent{
		ShowID:    show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: show.StartTime.UTC().Format(time.RFC3339),
		BookedAt:  now.Format(time.RFC3339),
	}
	if a, aerr := h.ArtistRepo.GetByID(c.Request().Context(), show.ArtistID, now); aerr == nil {
		ev.ArtistName = a.Name
	}
	if v, verr := h.VenueRepo.GetByID(c.Request().Context(), show.VenueID, now); verr == nil {
		ev.VenueName = v.Name
	}
	_ = queue_publisher.PublishShowBooked(c.Request().Context(), ev)

	return c.JSON(http.StatusCreated, show)
}
