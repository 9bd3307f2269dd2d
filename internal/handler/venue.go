package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-directory/internal/repository"
)

// ListVenues handles GET /v1/venues and returns venues grouped by city,
// each venue annotated with its upcoming show count.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
	groups, err := h.VenueRepo.GroupByCity(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": groups, "count": len(groups)})
}

// GetVenue handles GET /v1/venues/:id and returns the venue detail view
// with shows partitioned into past and upcoming.
func (h *DirectoryHandler) GetVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	detail, err := h.VenueRepo.GetByID(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
		}
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateVenue handles POST /v1/venues.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	var in repository.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	v, err := h.VenueRepo.Create(c.Request().Context(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

// UpdateVenue handles PUT /v1/venues/:id and overwrites all mutable
// fields, the resolved location and the full genre set.
func (h *DirectoryHandler) UpdateVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var in repository.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := h.VenueRepo.Update(c.Request().Context(), id, &in); err != nil {
		return writeError(c, err)
	}
	updated, err := h.VenueRepo.GetByID(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteVenue handles DELETE /v1/venues/:id. The repository cascades the
// venue's address, genre associations and shows.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchVenues handles POST /v1/venues/search with a {"term": ...} body.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	var body struct {
		Term string `json:"term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	result, err := h.VenueRepo.Search(c.Request().Context(), body.Term, time.Now().UTC())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, result)
}
