package service

import (
	"time"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Roles    []string
}

type seedMovie struct {
	Title       string
	Description string
	Director    string
	ReleaseDate time.Time
	Genre       domain.Genre
}

// seedReview links by movie title and user email so the seed stays stable
// across runs with freshly generated ids.
type seedReview struct {
	Title      string
	MovieTitle string
	UserEmail  string
	Rating     int
	Comment    string
}

var seedUsers = []seedUser{
	{Name: "Admin User", Email: "admin@example.com", Password: "admin123", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Name: "Alice Johnson", Email: "alice@example.com", Password: "alice123", Roles: []string{domain.RoleUser}},
	{Name: "Bob Smith", Email: "bob@example.com", Password: "bob123", Roles: []string{domain.RoleUser}},
	{Name: "Carlos Rodriguez", Email: "carlos@example.com", Password: "carlos123", Roles: []string{domain.RoleUser}},
}

var seedMovies = []seedMovie{
	{
		Title:       "The First Adventure",
		Description: "A band of strangers crosses a ruined continent chasing a myth.",
		Director:    "Jordan Reyes",
		ReleaseDate: time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC),
		Genre:       domain.GenreAction,
	},
	{
		Title:       "Romance in Paris",
		Description: "Two tourists keep missing each other across one long weekend.",
		Director:    "Claire Dubois",
		ReleaseDate: time.Date(2021, 2, 12, 0, 0, 0, 0, time.UTC),
		Genre:       domain.GenreRomance,
	},
	{
		Title:       "Sci-Fi Future",
		Description: "An orbital colony discovers its archive has been rewriting itself.",
		Director:    "Mei Tanaka",
		ReleaseDate: time.Date(2023, 10, 6, 0, 0, 0, 0, time.UTC),
		Genre:       domain.GenreSciFi,
	},
}

var seedReviews = []seedReview{
	{
		Title:      "An Epic Adventure Worth Watching",
		MovieTitle: "The First Adventure",
		UserEmail:  "alice@example.com",
		Rating:     5,
		Comment:    "Amazing! Loved every minute of this incredible adventure!",
	},
	{
		Title:      "Solid Action Movie",
		MovieTitle: "The First Adventure",
		UserEmail:  "bob@example.com",
		Rating:     4,
		Comment:    "Great action scenes and solid storyline. Highly recommended.",
	},
	{
		Title:      "Beautiful but Slow",
		MovieTitle: "Romance in Paris",
		UserEmail:  "carlos@example.com",
		Rating:     3,
		Comment:    "Nice setting but the pace was a bit slow for my taste.",
	},
	{
		Title:      "A Perfect Love Story",
		MovieTitle: "Romance in Paris",
		UserEmail:  "alice@example.com",
		Rating:     5,
		Comment:    "Beautiful cinematography and touching love story. Perfect!",
	},
	{
		Title:      "Impressive Sci-Fi Experience",
		MovieTitle: "Sci-Fi Future",
		UserEmail:  "bob@example.com",
		Rating:     4,
		Comment:    "Mind-blowing special effects and interesting concepts.",
	},
}
