package handlers

import (
	"context"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PosterStorage is the object storage the upload routes need.
type PosterStorage interface {
	PosterObjectPath(movieID int) string
	UploadObjectPath(filename string) string
	GeneratePresignedURL(ctx context.Context, objectPath string) (string, string, error)
	DeleteFile(ctx context.Context, objectPath string) error
}

// PosterCache forgets resolved poster URLs once a poster changes.
type PosterCache interface {
	Forget(movieID int)
}

type UploadHandler struct {
	storage PosterStorage
	posters PosterCache
	logger  *logrus.Logger
}

func NewUploadHandler(storage PosterStorage, posters PosterCache, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		posters: posters,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for poster upload
// @Description Generate a presigned URL for uploading a poster to MinIO/S3. With movie_id the upload replaces that movie's poster, otherwise filename is given a unique name.
// @Tags Upload
// @Accept json
// @Produce json
// @Param movie_id query int false "Movie ID"
// @Param filename query string false "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	var objectPath string
	movieID, isPoster := repository.ParseMovieID(c.Query("movie_id"))
	if isPoster {
		objectPath = h.storage.PosterObjectPath(movieID)
	} else {
		filename := c.Query("filename")
		if filename == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "movie_id or filename is required")
		}
		objectPath = h.storage.UploadObjectPath(filename)
	}

	presignedURL, publicURL, err := h.storage.GeneratePresignedURL(c.Context(), objectPath)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}
	if isPoster && h.posters != nil {
		h.posters.Forget(movieID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
		"object_path":   objectPath,
	})
}

// DeletePoster godoc
// @Summary Delete a movie poster
// @Description Remove the stored poster of a movie so lookups fall back to TMDB
// @Tags Upload
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /movies/{id}/poster [delete]
func (h *UploadHandler) DeletePoster(c *fiber.Ctx) error {
	movieID, ok := repository.ParseMovieID(c.Params("id"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.storage.DeleteFile(c.Context(), h.storage.PosterObjectPath(movieID)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete poster")
	}
	if h.posters != nil {
		h.posters.Forget(movieID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Poster deleted successfully", nil)
}
