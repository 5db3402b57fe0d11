package domain

import (
	"errors"
	"time"
)

// Genre is the fixed classification of a catalog entry.
type Genre string

const (
	GenreAction   Genre = "action"
	GenreComedy   Genre = "comedy"
	GenreDrama    Genre = "drama"
	GenreHorror   Genre = "horror"
	GenreRomance  Genre = "romance"
	GenreSciFi    Genre = "sci-fi"
	GenreThriller Genre = "thriller"
)

var knownGenres = map[Genre]struct{}{
	GenreAction:   {},
	GenreComedy:   {},
	GenreDrama:    {},
	GenreHorror:   {},
	GenreRomance:  {},
	GenreSciFi:    {},
	GenreThriller: {},
}

var ErrMovieNotFound = errors.New("movie not found")
var ErrInvalidGenre = errors.New("invalid genre")

// IsValid reports whether g is one of the enumerated genres.
func (g Genre) IsValid() bool {
	_, ok := knownGenres[g]
	return ok
}

// Movie is a catalog entry. It is owned by no one and mutable only by
// admins; deleting it cascades to its reviews.
type Movie struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Director    string    `json:"director" bson:"director"`
	ReleaseDate time.Time `json:"release_date" bson:"release_date"`
	Genre       Genre     `json:"genre" bson:"genre"`
	Reviews     []Review  `json:"reviews,omitempty" bson:"-"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
