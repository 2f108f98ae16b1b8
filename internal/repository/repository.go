package repository

import (
	"context"
	"strconv"
	"strings"

	"movie-catalog/internal/models"
)

// Repository is the catalog contract shared by the memory and database
// backends. Lookups return a nil entity, not an error, when nothing matches.
type Repository interface {
	AddUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, username string) (*models.User, error)

	AddMovie(ctx context.Context, movie *models.Movie) error
	GetMovie(ctx context.Context, id int) (*models.Movie, error)
	GetMoviesByIDs(ctx context.Context, ids []int) ([]*models.Movie, error)
	GetFirstMovie(ctx context.Context) (*models.Movie, error)
	GetLastMovie(ctx context.Context) (*models.Movie, error)
	CountMovies(ctx context.Context) (int, error)
	GetPreviousMovieID(ctx context.Context, movie *models.Movie) (int, bool, error)
	GetNextMovieID(ctx context.Context, movie *models.Movie) (int, bool, error)

	// GetPage filters the ordered catalog and returns one page of it. An index
	// with no page fails with ErrPageOutOfRange.
	GetPage(ctx context.Context, pageIndex int, searchTerm string, key FilterKey) ([]*models.Movie, error)

	AddTag(ctx context.Context, tag *models.Tag) error
	GetTags(ctx context.Context) ([]*models.Tag, error)
	AddTagAssociation(ctx context.Context, tagName string, movieID int) error
	GetMovieIDsForTag(ctx context.Context, tagName string) ([]int, error)

	AddReview(ctx context.Context, review *models.Review) error
	GetReviews(ctx context.Context) ([]*models.Review, error)
}

// ParseMovieID accepts ids as they arrive from URLs or import files.
func ParseMovieID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetMovieByKey looks a movie up by an unparsed id. Malformed ids are
// reported as not found.
func GetMovieByKey(ctx context.Context, repo Repository, raw string) (*models.Movie, error) {
	id, ok := ParseMovieID(raw)
	if !ok {
		return nil, nil
	}
	return repo.GetMovie(ctx, id)
}

// validateReviewLinks checks the review is attached from both its user and
// its movie before any backend stores it.
func validateReviewLinks(review *models.Review) error {
	const op = "add review"
	switch {
	case review == nil:
		return models.NewIntegrityError(op, "review is nil")
	case review.User == nil:
		return models.NewIntegrityError(op, "review has no user")
	case review.Movie == nil:
		return models.NewIntegrityError(op, "review has no movie")
	case !review.Movie.HasReview(review):
		return models.NewIntegrityError(op, "movie %d does not reference the review", review.Movie.ID)
	case !review.User.HasReview(review):
		return models.NewIntegrityError(op, "user %q does not reference the review", review.User.Username)
	}
	return nil
}

func validateUser(user *models.User) error {
	if user == nil {
		return models.NewIntegrityError("add user", "user is nil")
	}
	if user.Username == "" {
		return models.NewIntegrityError("add user", "username is empty")
	}
	return nil
}
