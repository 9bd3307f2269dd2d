package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-directory/internal/repository"
)

// ListArtists handles GET /v1/artists and returns id+name pairs, most
// recently updated first.
func (h *DirectoryHandler) ListArtists(c echo.Context) error {
	items, err := h.ArtistRepo.List(c.Request().Context())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": items, "count": len(items)})
}

// GetArtist handles GET /v1/artists/:id.
func (h *DirectoryHandler) GetArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	detail, err := h.ArtistRepo.GetByID(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "artist not found"})
		}
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateArtist handles POST /v1/artists.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	var in repository.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	a, err := h.ArtistRepo.Create(c.Request().Context(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// UpdateArtist handles PUT /v1/artists/:id.
func (h *DirectoryHandler) UpdateArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var in repository.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := h.ArtistRepo.Update(c.Request().Context(), id, &in); err != nil {
		return writeError(c, err)
	}
	updated, err := h.ArtistRepo.GetByID(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, updated)
}

// SearchArtists handles POST /v1/artists/search with a {"term": ...} body.
func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	var body struct {
		Term string `json:"term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	result, err := h.ArtistRepo.Search(c.Request().Context(), body.Term, time.Now().UTC())
	if err != nil {
		return writeReadFailure(c)
	}
	return c.JSON(http.StatusOK, result)
}
