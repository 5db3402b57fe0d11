package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type createMovieRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Director    string `json:"director" validate:"required"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
	Genre       string `json:"genre" validate:"required,oneof=action comedy drama horror romance sci-fi thriller"`
}

type updateMovieRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Director    *string `json:"director"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Genre       *string `json:"genre" validate:"omitempty,oneof=action comedy drama horror romance sci-fi thriller"`
}

type deleteMovieResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Create adds a movie to the catalog. Admin only.
//
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  domain.Movie
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	releaseDate, _ := time.Parse("2006-01-02", req.ReleaseDate)

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, movie)
}

// List returns every catalog entry. Public.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}  domain.Movie
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get returns one movie with its reviews embedded. Public.
//
// @Summary      Get movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id (uuid)"
// @Success      200  {object}  domain.Movie
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Update patches a movie. Admin only.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Movie id (uuid)"
// @Param        body  body      updateMovieRequest  true  "Fields to update"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /movies/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		Genre:       req.Genre,
	}
	if req.ReleaseDate != nil {
		releaseDate, _ := time.Parse("2006-01-02", *req.ReleaseDate)
		input.ReleaseDate = &releaseDate
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete removes a movie and its reviews. Admin only.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id (uuid)"
// @Success      200  {object}  deleteMovieResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteMovieResponse{Message: "movie deleted", ID: id})
}
