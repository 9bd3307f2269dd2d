package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListGenres handles GET /v1/genres. The presentation layer uses the
// result to populate form choices; genre rows are pre-seeded and never
// written by this service.
func (h *DirectoryHandler) ListGenres(c echo.Context) error {
	items, err := h.RefRepo.ListGenres(c.Request().Context())
	if err != nil {
		return writeReadFailure(c)
	}
	names := make([]string, 0, len(items))
	for _, g := range items {
		names = append(names, g.Name)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": names})
}

// ListStates handles GET /v1/states and returns the fixed state
// reference set ordered by code.
func (h *DirectoryHandler) ListStates(c echo.Context) error {
	items, err := h.RefRepo.ListStates(c.Request().Context())
	if err != nil {
		return writeReadFailure(c)
	}
	type stateRow struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	out := make([]stateRow, 0, len(items))
	for _, s := range items {
		out = append(out, stateRow{Code: s.Code, Name: s.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
