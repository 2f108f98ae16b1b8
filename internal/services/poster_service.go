package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
)

// PosterResolver finds an image URL for a movie. An empty string means no
// image is known.
type PosterResolver interface {
	PosterURL(ctx context.Context, movie *models.Movie) string
}

// PosterStore is the object storage side of poster lookups.
type PosterStore interface {
	PosterObjectPath(movieID int) string
	ObjectExists(ctx context.Context, objectPath string) (bool, error)
	PublicURL(objectPath string) string
}

type tmdbSearchResponse struct {
	Results []struct {
		ID         int    `json:"id"`
		Title      string `json:"title"`
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// PosterService checks object storage first and then searches TMDB by title
// and year. Resolved URLs are remembered per movie id.
type PosterService struct {
	config     config.TMDBConfig
	store      PosterStore
	httpClient *http.Client
	logger     *logrus.Logger

	mu    sync.Mutex
	cache map[int]string
}

// NewPosterService accepts a nil store when object storage is not configured.
func NewPosterService(cfg config.TMDBConfig, store PosterStore, logger *logrus.Logger) *PosterService {
	return &PosterService{
		config: cfg,
		store:  store,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
		cache:  make(map[int]string),
	}
}

var _ PosterResolver = (*PosterService)(nil)

func (s *PosterService) PosterURL(ctx context.Context, movie *models.Movie) string {
	if movie == nil {
		return ""
	}

	s.mu.Lock()
	cached, ok := s.cache[movie.ID]
	s.mu.Unlock()
	if ok {
		return cached
	}

	posterURL, err := s.resolve(ctx, movie)
	if err != nil {
		s.logger.WithError(err).WithField("movie_id", movie.ID).Warn("Failed to resolve poster")
		return ""
	}

	s.mu.Lock()
	s.cache[movie.ID] = posterURL
	s.mu.Unlock()
	return posterURL
}

// Forget drops the remembered URL of a movie, e.g. after its poster changed.
func (s *PosterService) Forget(movieID int) {
	s.mu.Lock()
	delete(s.cache, movieID)
	s.mu.Unlock()
}

func (s *PosterService) resolve(ctx context.Context, movie *models.Movie) (string, error) {
	if s.store != nil {
		objectPath := s.store.PosterObjectPath(movie.ID)
		exists, err := s.store.ObjectExists(ctx, objectPath)
		if err != nil {
			s.logger.WithError(err).WithField("objectPath", objectPath).Warn("Failed to check poster object")
		} else if exists {
			return s.store.PublicURL(objectPath), nil
		}
	}

	if s.config.APIKey == "" {
		return "", nil
	}
	posterPath, err := s.searchTMDB(ctx, movie.Title, movie.Year())
	if err != nil {
		return "", err
	}
	if posterPath == "" {
		return "", nil
	}
	return strings.TrimSuffix(s.config.ImageBaseURL, "/") + posterPath, nil
}

func (s *PosterService) searchTMDB(ctx context.Context, title string, year int) (string, error) {
	query := url.Values{}
	query.Set("api_key", s.config.APIKey)
	query.Set("query", title)
	query.Set("language", "en-US")
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	endpoint := fmt.Sprintf("%s/search/movie?%s", s.config.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	var search tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	for _, result := range search.Results {
		if result.PosterPath != "" {
			return result.PosterPath, nil
		}
	}
	return "", nil
}
