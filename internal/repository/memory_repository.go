package repository

import (
	"context"
	"strings"

	"movie-catalog/internal/models"
)

// MemoryRepository is the transient backend. It does no locking of its own;
// callers serialise access.
type MemoryRepository struct {
	movies  *MovieIndex
	pager   *Pager
	users   map[string]*models.User
	tags    []*models.Tag
	reviews []*models.Review
}

func NewMemoryRepository(pageSize int) *MemoryRepository {
	return &MemoryRepository{
		movies: NewMovieIndex(),
		pager:  NewPager(pageSize),
		users:  make(map[string]*models.User),
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) AddUser(_ context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	if _, exists := r.users[user.Username]; exists {
		return models.NewIntegrityError("add user", "username %q already exists", user.Username)
	}
	r.users[user.Username] = user
	return nil
}

func (r *MemoryRepository) GetUser(_ context.Context, username string) (*models.User, error) {
	return r.users[models.NormalizeUsername(username)], nil
}

func (r *MemoryRepository) AddMovie(_ context.Context, movie *models.Movie) error {
	return r.movies.Insert(movie)
}

func (r *MemoryRepository) GetMovie(_ context.Context, id int) (*models.Movie, error) {
	m, _ := r.movies.Lookup(id)
	return m, nil
}

func (r *MemoryRepository) GetMoviesByIDs(_ context.Context, ids []int) ([]*models.Movie, error) {
	out := make([]*models.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.movies.Lookup(id); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetFirstMovie(_ context.Context) (*models.Movie, error) {
	return r.movies.First(), nil
}

func (r *MemoryRepository) GetLastMovie(_ context.Context) (*models.Movie, error) {
	return r.movies.Last(), nil
}

func (r *MemoryRepository) CountMovies(_ context.Context) (int, error) {
	return r.movies.Len(), nil
}

func (r *MemoryRepository) GetPreviousMovieID(_ context.Context, movie *models.Movie) (int, bool, error) {
	id, ok := r.movies.NeighborBefore(movie)
	return id, ok, nil
}

func (r *MemoryRepository) GetNextMovieID(_ context.Context, movie *models.Movie) (int, bool, error) {
	id, ok := r.movies.NeighborAfter(movie)
	return id, ok, nil
}

// SplitMovies rebuilds the pages for a search. GetPage calls it on every
// request, so pages never outlive a catalog change.
func (r *MemoryRepository) SplitMovies(searchTerm string, key FilterKey) error {
	return r.pager.SplitIndex(r.movies, searchTerm, key)
}

func (r *MemoryRepository) GetPage(_ context.Context, pageIndex int, searchTerm string, key FilterKey) ([]*models.Movie, error) {
	if err := r.SplitMovies(searchTerm, key); err != nil {
		return nil, err
	}
	return r.pager.Page(pageIndex)
}

func (r *MemoryRepository) AddTag(_ context.Context, tag *models.Tag) error {
	if tag == nil || tag.Name == "" {
		return models.NewIntegrityError("add tag", "tag name is empty")
	}
	for _, m := range tag.Movies {
		if _, ok := r.movies.Lookup(m.ID); !ok {
			return models.NewIntegrityError("add tag", "tag %q references unknown movie %d", tag.Name, m.ID)
		}
	}
	r.tags = append(r.tags, tag)
	return nil
}

func (r *MemoryRepository) GetTags(_ context.Context) ([]*models.Tag, error) {
	out := make([]*models.Tag, len(r.tags))
	copy(out, r.tags)
	return out, nil
}

// findTag returns the first tag carrying name.
func (r *MemoryRepository) findTag(name string) *models.Tag {
	for _, t := range r.tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (r *MemoryRepository) AddTagAssociation(_ context.Context, tagName string, movieID int) error {
	movie, ok := r.movies.Lookup(movieID)
	if !ok {
		return models.NewIntegrityError("tag movie", "unknown movie %d", movieID)
	}
	name := strings.TrimSpace(tagName)
	if name == "" {
		return models.NewIntegrityError("tag movie", "tag name is empty")
	}
	tag := r.findTag(name)
	if tag == nil {
		tag = models.NewTag(name)
		if err := models.MakeTagAssociation(movie, tag); err != nil {
			return err
		}
		r.tags = append(r.tags, tag)
		return nil
	}
	return models.MakeTagAssociation(movie, tag)
}

func (r *MemoryRepository) GetMovieIDsForTag(_ context.Context, tagName string) ([]int, error) {
	tag := r.findTag(tagName)
	if tag == nil {
		return []int{}, nil
	}
	return tag.MovieIDs(), nil
}

// AddReview accepts a review only when the stored user and the stored movie
// both already reference it.
func (r *MemoryRepository) AddReview(_ context.Context, review *models.Review) error {
	const op = "add review"
	if err := validateReviewLinks(review); err != nil {
		return err
	}
	user, ok := r.users[review.User.Username]
	if !ok {
		return models.NewIntegrityError(op, "unknown user %q", review.User.Username)
	}
	if !user.HasReview(review) {
		return models.NewIntegrityError(op, "stored user %q does not reference the review", user.Username)
	}
	movie, ok := r.movies.Lookup(review.Movie.ID)
	if !ok {
		return models.NewIntegrityError(op, "unknown movie %d", review.Movie.ID)
	}
	if !movie.HasReview(review) {
		return models.NewIntegrityError(op, "stored movie %d does not reference the review", movie.ID)
	}
	for _, existing := range r.reviews {
		if existing == review {
			return models.NewIntegrityError(op, "review already stored")
		}
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *MemoryRepository) GetReviews(_ context.Context) ([]*models.Review, error) {
	out := make([]*models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}
