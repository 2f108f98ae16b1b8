package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service   services.CatalogService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewMovieHandler(service services.CatalogService, v *validator.Validate, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

func parseMovieID(c *fiber.Ctx) (int, bool) {
	return repository.ParseMovieID(c.Params("id"))
}

// GetPage godoc
// @Summary Browse movies
// @Description Get one page of the catalog ordered by title and release year, optionally filtered. A page that does not exist falls back to the first unfiltered page.
// @Tags movies
// @Accept json
// @Produce json
// @Param page path int true "Page index, negative counts from the end"
// @Param search query string false "Case-insensitive search term"
// @Param sort query string false "Field the search applies to (title, genres, actors, director)" default(title)
// @Success 200 {object} utils.StandardResponse "Page of movies"
// @Failure 400 {object} utils.StandardResponse "Invalid page or sort key"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/page/{page} [get]
func (h *MovieHandler) GetPage(c *fiber.Ctx) error {
	ctx := c.Context()

	page, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page")
	}
	search := c.Query("search", "")
	sort := c.Query("sort", "")

	result, err := h.service.GetPage(ctx, page, search, sort)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownFilterKey) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("page", page).Error("Failed to get page")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	message := "Movies retrieved successfully"
	if result.Fallback {
		message = "No Results Found"
	}
	meta := utils.CreatePageMeta(result.Page, result.Search, result.Sort, result.Fallback, result.TotalMovies)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, message, result.Movies, meta)
}

// GetFirstMovie godoc
// @Summary Get the first movie
// @Description Get the movie that sorts first by title and release year
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Catalog is empty"
// @Router /movies/first [get]
func (h *MovieHandler) GetFirstMovie(c *fiber.Ctx) error {
	movie, err := h.service.GetFirstMovie(c.Context())
	return h.movieResponse(c, movie, err)
}

// GetLastMovie godoc
// @Summary Get the last movie
// @Description Get the movie that sorts last by title and release year
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Catalog is empty"
// @Router /movies/last [get]
func (h *MovieHandler) GetLastMovie(c *fiber.Ctx) error {
	movie, err := h.service.GetLastMovie(c.Context())
	return h.movieResponse(c, movie, err)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its reviews, tags and neighbour ids
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	movie, err := h.service.GetMovieByKey(c.Context(), c.Params("id"))
	return h.movieResponse(c, movie, err)
}

func (h *MovieHandler) movieResponse(c *fiber.Ctx, movie *services.MovieDTO, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrNonExistentMovie) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("path", c.Path()).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// GetMoviesByIDs godoc
// @Summary Get movies by IDs
// @Description Get the movies with the given ids in request order. Unknown ids are skipped.
// @Tags movies
// @Produce json
// @Param ids query string true "Comma separated movie ids"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 400 {object} utils.StandardResponse "Invalid ids"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetMoviesByIDs(c *fiber.Ctx) error {
	raw := c.Query("ids", "")
	if raw == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "ids is required")
	}

	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, ok := repository.ParseMovieID(part)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID "+strconv.Quote(part))
		}
		ids = append(ids, id)
	}

	movies, err := h.service.GetMoviesByIDs(c.Context(), ids)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies by ids")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovieReviews godoc
// @Summary Get reviews of a movie
// @Tags reviews
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "List of reviews"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [get]
func (h *MovieHandler) GetMovieReviews(c *fiber.Ctx) error {
	id, ok := parseMovieID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	reviews, err := h.service.GetReviewsForMovie(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNonExistentMovie) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get reviews")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview godoc
// @Summary Review a movie
// @Description Add a review by an existing user to an existing movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse "Review created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie or user not found"
// @Failure 409 {object} utils.StandardResponse "Review rejected"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id}/reviews [post]
func (h *MovieHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, ok := parseMovieID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := h.validator.StructCtx(ctx, req); err != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", validationErrors(err))
	}

	review, err := h.service.AddReview(ctx, id, req.Text, req.Username, req.Rating)
	switch {
	case err == nil:
		return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review)
	case errors.Is(err, services.ErrNonExistentMovie):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	case errors.Is(err, services.ErrUnknownUser):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrIntegrityViolation):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	default:
		h.logger.WithError(err).WithField("id", id).Error("Failed to create review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create review")
	}
}

func validationErrors(err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Rule: err.Error()}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// GetTags godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of tags"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /tags [get]
func (h *MovieHandler) GetTags(c *fiber.Ctx) error {
	tags, err := h.service.GetTags(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get tags")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve tags")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Tags retrieved successfully", tags)
}

// GetTagMovies godoc
// @Summary List movies with a tag
// @Description Get the movies a tag was applied to, in tagging order. An unknown tag yields an empty list.
// @Tags tags
// @Produce json
// @Param name path string true "Tag name"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /tags/{name}/movies [get]
func (h *MovieHandler) GetTagMovies(c *fiber.Ctx) error {
	ctx := c.Context()
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tag name")
	}

	ids, err := h.service.GetMovieIDsForTag(ctx, name)
	if err != nil {
		h.logger.WithError(err).WithField("tag", name).Error("Failed to get tag")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}
	movies, err := h.service.GetMoviesByIDs(ctx, ids)
	if err != nil {
		h.logger.WithError(err).WithField("tag", name).Error("Failed to get tagged movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}
