package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the API. uploadHandler may be nil when object storage is
// not configured.
func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - browsing and lookups
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetMoviesByIDs)
		movies.Get("/page/:page", movieHandler.GetPage)
		movies.Get("/first", movieHandler.GetFirstMovie)
		movies.Get("/last", movieHandler.GetLastMovie)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Get("/:id/reviews", movieHandler.GetMovieReviews)
		movies.Post("/:id/reviews", movieHandler.CreateReview)
	}

	// Tag routes
	tags := v1.Group("/tags")
	{
		tags.Get("/", movieHandler.GetTags)
		tags.Get("/:name/movies", movieHandler.GetTagMovies)
	}

	if uploadHandler == nil {
		return
	}

	movies.Delete("/:id/poster", uploadHandler.DeletePoster)

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
