package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Dataset is the bootstrap catalog as stored on disk.
type Dataset struct {
	Movies  []MovieEntry  `yaml:"movies"`
	Users   []UserEntry   `yaml:"users"`
	Reviews []ReviewEntry `yaml:"reviews"`
}

type MovieEntry struct {
	ID             int      `yaml:"id"`
	Title          string   `yaml:"title"`
	Year           int      `yaml:"year"`
	Description    string   `yaml:"description"`
	Director       string   `yaml:"director"`
	Genres         []string `yaml:"genres"`
	Actors         []string `yaml:"actors"`
	RuntimeMinutes int      `yaml:"runtime_minutes"`
	Rating         string   `yaml:"rating"`
	Votes          string   `yaml:"votes"`
	Revenue        string   `yaml:"revenue"`
	Metascore      string   `yaml:"metascore"`
	Tags           []string `yaml:"tags"`
}

// UserEntry carries a plain password; it is hashed before reaching the catalog.
type UserEntry struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ReviewEntry struct {
	Username  string    `yaml:"username"`
	MovieID   int       `yaml:"movie_id"`
	Text      string    `yaml:"text"`
	Rating    int       `yaml:"rating"`
	CreatedAt time.Time `yaml:"created_at"`
}

func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &ds, nil
}
