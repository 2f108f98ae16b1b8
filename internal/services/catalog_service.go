package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrNonExistentMovie = errors.New("movie does not exist")
	ErrUnknownUser      = errors.New("unknown user")
)

type CatalogService interface {
	AddReview(ctx context.Context, movieID int, text, username string, rating int) (*ReviewDTO, error)
	GetMovie(ctx context.Context, id int) (*MovieDTO, error)
	GetMovieByKey(ctx context.Context, key string) (*MovieDTO, error)
	GetFirstMovie(ctx context.Context) (*MovieDTO, error)
	GetLastMovie(ctx context.Context) (*MovieDTO, error)
	GetMoviesByIDs(ctx context.Context, ids []int) ([]MovieDTO, error)
	GetPage(ctx context.Context, page int, search, sort string) (*PageResult, error)
	GetMovieIDsForTag(ctx context.Context, tagName string) ([]int, error)
	GetReviewsForMovie(ctx context.Context, movieID int) ([]ReviewDTO, error)
	GetTags(ctx context.Context) ([]TagDTO, error)
}

// catalogService serialises every repository call so the repository only
// ever sees one caller at a time. Poster lookups run after mu is released.
type catalogService struct {
	mu      sync.Mutex
	repo    repository.Repository
	posters PosterResolver
	logger  *logrus.Logger
}

// NewCatalogService wires the service to repo. posters may be nil, in which
// case movies carry no image URL.
func NewCatalogService(repo repository.Repository, posters PosterResolver, logger *logrus.Logger) CatalogService {
	return &catalogService{
		repo:    repo,
		posters: posters,
		logger:  logger,
	}
}

// movieLoader fetches one movie from the repository. A nil movie means not
// found.
type movieLoader func(ctx context.Context) (*models.Movie, error)

// attachPoster fills in the image URL. Call it without holding mu.
func (s *catalogService) attachPoster(ctx context.Context, dto *MovieDTO) {
	if s.posters == nil {
		return
	}
	target := &models.Movie{ID: dto.ID, Title: dto.Title}
	if dto.Year > 0 {
		year := dto.Year
		target.ReleaseYear = &year
	}
	dto.ImageURL = s.posters.PosterURL(ctx, target)
}

func (s *catalogService) attachPosters(ctx context.Context, dtos []MovieDTO) {
	for i := range dtos {
		s.attachPoster(ctx, &dtos[i])
	}
}

func (s *catalogService) AddReview(ctx context.Context, movieID int, text, username string, rating int) (*ReviewDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrNonExistentMovie
	}
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	review, diags, err := models.MakeReview(strings.TrimSpace(text), user, movie, rating)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		s.logger.WithFields(logrus.Fields{
			"movie_id": movieID,
			"username": user.Username,
			"field":    d.Field,
			"value":    d.Value,
		}).Warn(d.Reason)
	}

	if err := s.repo.AddReview(ctx, review); err != nil {
		detachReview(review)
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movieID,
		"username": user.Username,
	}).Info("Review added")

	dto := ReviewToDTO(review)
	return &dto, nil
}

// detachReview undoes the links MakeReview created.
func detachReview(review *models.Review) {
	review.Movie.Reviews = removeReview(review.Movie.Reviews, review)
	review.User.Reviews = removeReview(review.User.Reviews, review)
}

func removeReview(reviews []*models.Review, target *models.Review) []*models.Review {
	for i, r := range reviews {
		if r == target {
			return append(reviews[:i], reviews[i+1:]...)
		}
	}
	return reviews
}

func (s *catalogService) GetMovie(ctx context.Context, id int) (*MovieDTO, error) {
	return s.movie(ctx, func(ctx context.Context) (*models.Movie, error) {
		return s.repo.GetMovie(ctx, id)
	}, true)
}

// GetMovieByKey is GetMovie for an unparsed id. A malformed id is reported as
// ErrNonExistentMovie.
func (s *catalogService) GetMovieByKey(ctx context.Context, key string) (*MovieDTO, error) {
	return s.movie(ctx, func(ctx context.Context) (*models.Movie, error) {
		return repository.GetMovieByKey(ctx, s.repo, key)
	}, true)
}

func (s *catalogService) GetFirstMovie(ctx context.Context) (*MovieDTO, error) {
	return s.movie(ctx, s.repo.GetFirstMovie, false)
}

func (s *catalogService) GetLastMovie(ctx context.Context) (*MovieDTO, error) {
	return s.movie(ctx, s.repo.GetLastMovie, false)
}

func (s *catalogService) movie(ctx context.Context, load movieLoader, neighbours bool) (*MovieDTO, error) {
	dto, err := s.loadMovie(ctx, load, neighbours)
	if err != nil {
		return nil, err
	}
	s.attachPoster(ctx, dto)
	return dto, nil
}

func (s *catalogService) loadMovie(ctx context.Context, load movieLoader, neighbours bool) (*MovieDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	if movie == nil {
		return nil, ErrNonExistentMovie
	}

	dto := MovieToDTO(movie, "")
	if !neighbours {
		return &dto, nil
	}
	if prev, ok, err := s.repo.GetPreviousMovieID(ctx, movie); err != nil {
		return nil, err
	} else if ok {
		dto.PreviousID = &prev
	}
	if next, ok, err := s.repo.GetNextMovieID(ctx, movie); err != nil {
		return nil, err
	} else if ok {
		dto.NextID = &next
	}
	return &dto, nil
}

func (s *catalogService) GetMoviesByIDs(ctx context.Context, ids []int) ([]MovieDTO, error) {
	dtos, err := s.loadMoviesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.attachPosters(ctx, dtos)
	return dtos, nil
}

func (s *catalogService) loadMoviesByIDs(ctx context.Context, ids []int) ([]MovieDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies, err := s.repo.GetMoviesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toDTOs(movies), nil
}

func toDTOs(movies []*models.Movie) []MovieDTO {
	out := make([]MovieDTO, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToDTO(m, ""))
	}
	return out
}

// GetPage never reports a missing page. It falls back to the first page of
// the unfiltered title view and flags the result instead.
func (s *catalogService) GetPage(ctx context.Context, page int, search, sort string) (*PageResult, error) {
	key, err := repository.ParseFilterKey(sort)
	if err != nil {
		return nil, err
	}

	result, err := s.loadPage(ctx, page, search, key)
	if err != nil {
		return nil, err
	}
	s.attachPosters(ctx, result.Movies)
	return result, nil
}

func (s *catalogService) loadPage(ctx context.Context, page int, search string, key repository.FilterKey) (*PageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &PageResult{Page: page, Search: search, Sort: string(key)}
	movies, err := s.repo.GetPage(ctx, page, search, key)
	if errors.Is(err, repository.ErrPageOutOfRange) {
		s.logger.WithFields(logrus.Fields{
			"page":   page,
			"search": search,
			"sort":   key,
		}).Debug("No results, falling back to first page")

		result = &PageResult{Page: 0, Sort: string(repository.FilterTitle), Fallback: true}
		movies, err = s.repo.GetPage(ctx, 0, "", repository.FilterTitle)
		if errors.Is(err, repository.ErrPageOutOfRange) {
			movies, err = nil, nil
		}
	}
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountMovies(ctx)
	if err != nil {
		return nil, err
	}
	result.TotalMovies = total
	result.Movies = toDTOs(movies)
	return result, nil
}

func (s *catalogService) GetMovieIDsForTag(ctx context.Context, tagName string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.GetMovieIDsForTag(ctx, tagName)
}

func (s *catalogService) GetReviewsForMovie(ctx context.Context, movieID int) ([]ReviewDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNonExistentMovie
	}
	return ReviewsToDTOs(movie.Reviews), nil
}

func (s *catalogService) GetTags(ctx context.Context) ([]TagDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := s.repo.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagToDTO(t))
	}
	return out, nil
}
