package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// SeedHandler exposes the demo-data seed endpoint.
type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Run loads demo users, movies, and reviews. Idempotent.
//
// @Summary      Seed demo data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  ports.SeedResult
// @Failure      500  {object}  map[string]string
// @Router       /seed [post]
func (h *SeedHandler) Run(c echo.Context) error {
	result, err := h.service.Run(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
