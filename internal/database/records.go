package database

import "time"

// Relational mapping of the catalog. Each record mirrors one entity of
// internal/models; movie_tags is the movie<->tag association.

type UserRecord struct {
	ID           uint           `gorm:"primaryKey"`
	Username     string         `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string         `gorm:"not null;size:255"`
	Reviews      []ReviewRecord `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
}

func (UserRecord) TableName() string {
	return "users"
}

type MovieRecord struct {
	ID             int            `gorm:"primaryKey;autoIncrement:false"`
	Title          string         `gorm:"not null;index;size:255"`
	ReleaseYear    *int           `gorm:"index"`
	Description    string         `gorm:"type:text"`
	RuntimeMinutes int            `gorm:"not null;default:0"`
	Rating         string         `gorm:"size:255"`
	Votes          string         `gorm:"size:255"`
	Revenue        string         `gorm:"size:255"`
	Metascore      string         `gorm:"size:255"`
	Director       string         `gorm:"size:255"`
	Genres         []string       `gorm:"serializer:json;type:text"`
	Actors         []string       `gorm:"serializer:json;type:text"`
	Reviews        []ReviewRecord `gorm:"foreignKey:MovieID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MovieRecord) TableName() string {
	return "movies"
}

type ReviewRecord struct {
	ID        uint        `gorm:"primaryKey"`
	UserID    uint        `gorm:"index;not null"`
	MovieID   int         `gorm:"index;not null"`
	User      UserRecord  `gorm:"foreignKey:UserID"`
	Movie     MovieRecord `gorm:"foreignKey:MovieID"`
	Text      string      `gorm:"type:text;not null"`
	Rating    *int
	CreatedAt time.Time `gorm:"index"`
}

func (ReviewRecord) TableName() string {
	return "reviews"
}

type TagRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index;size:64"`
	CreatedAt time.Time
}

func (TagRecord) TableName() string {
	return "tags"
}

type MovieTagRecord struct {
	ID      uint        `gorm:"primaryKey"`
	MovieID int         `gorm:"not null;uniqueIndex:idx_movie_tag"`
	TagID   uint        `gorm:"not null;uniqueIndex:idx_movie_tag;index"`
	Movie   MovieRecord `gorm:"foreignKey:MovieID"`
}

func (MovieTagRecord) TableName() string {
	return "movie_tags"
}
