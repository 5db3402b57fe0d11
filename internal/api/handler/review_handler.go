package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Title   string `json:"title" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	MovieID string `json:"movie_id" validate:"required,uuid4"`
}

type updateReviewRequest struct {
	Title   *string `json:"title"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type deleteReviewResponse struct {
	Message string `json:"message"`
}

// Create posts a review as the authenticated user.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := principal(c)
	if err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		Title:    req.Title,
		Rating:   req.Rating,
		Comment:  req.Comment,
		MovieID:  req.MovieID,
		AuthorID: user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

// CreateForMovie posts a review against a path-addressed movie.
//
// @Summary      Create a review for a movie
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        movieId  path      string               true  "Movie id (uuid)"
// @Param        body     body      createReviewRequest  true  "Review details"
// @Success      201      {object}  domain.Review
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /reviews/movie/{movieId} [post]
func (h *ReviewHandler) CreateForMovie(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// The path parameter wins over any movie_id in the body.
	req.MovieID = c.Param("movieId")
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := principal(c)
	if err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		Title:    req.Title,
		Rating:   req.Rating,
		Comment:  req.Comment,
		MovieID:  req.MovieID,
		AuthorID: user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

// List returns every review with author and movie embedded. Public.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get returns one review. Public.
//
// @Summary      Get review by id
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id (uuid)"
// @Success      200  {object}  domain.Review
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// ListByMovie returns the reviews of one movie. Public.
//
// @Summary      Get reviews by movie id
// @Tags         reviews
// @Produce      json
// @Param        movieId  path     string  true  "Movie id (uuid)"
// @Success      200      {array}  domain.Review
// @Failure      400      {object} map[string]string
// @Failure      404      {object} map[string]string
// @Router       /reviews/movie/{movieId} [get]
func (h *ReviewHandler) ListByMovie(c echo.Context) error {
	reviews, err := h.service.ListByMovie(c.Request().Context(), c.Param("movieId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListByUser returns the reviews authored by one user. Public.
//
// @Summary      Get reviews by user id
// @Tags         reviews
// @Produce      json
// @Param        userId  path     string  true  "User id (uuid)"
// @Success      200     {array}  domain.Review
// @Failure      400     {object} map[string]string
// @Router       /reviews/user/{userId} [get]
func (h *ReviewHandler) ListByUser(c echo.Context) error {
	reviews, err := h.service.ListByAuthor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Update patches the caller's own review.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review id (uuid)"
// @Param        body  body      updateReviewRequest  true  "Fields to update"
// @Success      200   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := principal(c)
	if err != nil {
		return err
	}

	review, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateReviewInput{
		Title:   req.Title,
		Rating:  req.Rating,
		Comment: req.Comment,
	}, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, review)
}

// Delete removes the caller's own review.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id (uuid)"
// @Success      200  {object}  deleteReviewResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteReviewResponse{Message: "review deleted successfully"})
}
