package services

import (
	"time"

	"movie-catalog/internal/models"
)

// MovieDTO is the read model handed to the presentation layer.
type MovieDTO struct {
	ID             int         `json:"id"`
	Year           int         `json:"year"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Hyperlink      string      `json:"hyperlink"`
	RuntimeMinutes int         `json:"runtime_minutes"`
	Rating         string      `json:"rating"`
	Votes          string      `json:"votes"`
	Revenue        string      `json:"revenue"`
	Metascore      string      `json:"metascore"`
	Genres         []string    `json:"genres"`
	Actors         []string    `json:"actors"`
	Director       string      `json:"director"`
	ImageURL       string      `json:"image_url,omitempty"`
	Tags           []string    `json:"tags"`
	Reviews        []ReviewDTO `json:"reviews"`
	PreviousID     *int        `json:"previous_id,omitempty"`
	NextID         *int        `json:"next_id,omitempty"`
}

type ReviewDTO struct {
	MovieID   int       `json:"movie_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TagDTO struct {
	Name     string `json:"name"`
	MovieIDs []int  `json:"movie_ids"`
}

// PageResult is one page of the browse view. Fallback is set when the
// requested page did not exist and the first unfiltered page was returned
// instead.
type PageResult struct {
	Page        int        `json:"page"`
	Search      string     `json:"search"`
	Sort        string     `json:"sort"`
	Movies      []MovieDTO `json:"movies"`
	Fallback    bool       `json:"fallback"`
	TotalMovies int        `json:"total_movies"`
}

func MovieToDTO(m *models.Movie, imageURL string) MovieDTO {
	dto := MovieDTO{
		ID:             m.ID,
		Year:           m.Year(),
		Title:          m.Title,
		Description:    m.Description,
		Hyperlink:      m.Hyperlink(),
		RuntimeMinutes: m.RuntimeMinutes,
		Rating:         m.Rating,
		Votes:          m.Votes,
		Revenue:        m.Revenue,
		Metascore:      m.Metascore,
		Genres:         m.GenreNames(),
		Actors:         m.ActorNames(),
		Director:       m.Director.Name,
		ImageURL:       imageURL,
		Tags:           make([]string, 0, len(m.Tags)),
		Reviews:        ReviewsToDTOs(m.Reviews),
	}
	for _, t := range m.Tags {
		dto.Tags = append(dto.Tags, t.Name)
	}
	return dto
}

func ReviewToDTO(r *models.Review) ReviewDTO {
	dto := ReviewDTO{
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt(),
	}
	if r.Movie != nil {
		dto.MovieID = r.Movie.ID
	}
	if r.User != nil {
		dto.Username = r.User.Username
	}
	return dto
}

func ReviewsToDTOs(reviews []*models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewToDTO(r))
	}
	return out
}

func TagToDTO(t *models.Tag) TagDTO {
	return TagDTO{Name: t.Name, MovieIDs: t.MovieIDs()}
}
