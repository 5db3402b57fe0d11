package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

type reviewFixture struct {
	svc     *ReviewService
	users   *stubUserRepo
	movies  *stubMovieRepo
	reviews *stubReviewRepo
	movie   *domain.Movie
	u1, u2  *domain.User
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	users := newStubUserRepo()
	movies := newStubMovieRepo()
	reviews := newStubReviewRepo()

	u1, err := users.Create(context.Background(), &domain.User{
		Name: "U1", Email: "u1@x.com", PasswordHash: "hash1",
		Roles: []string{domain.RoleUser}, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create u1: %v", err)
	}
	u2, err := users.Create(context.Background(), &domain.User{
		Name: "U2", Email: "u2@x.com", PasswordHash: "hash2",
		Roles: []string{domain.RoleUser}, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create u2: %v", err)
	}

	movie := &domain.Movie{
		ID:          uuid.NewString(),
		Title:       "M1",
		Genre:       domain.GenreDrama,
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := movies.Create(context.Background(), movie); err != nil {
		t.Fatalf("create movie: %v", err)
	}

	return &reviewFixture{
		svc:     NewReviewService(reviews, movies, users, zerolog.Nop()),
		users:   users,
		movies:  movies,
		reviews: reviews,
		movie:   movie,
		u1:      u1,
		u2:      u2,
	}
}

func (f *reviewFixture) create(t *testing.T, authorID string) *domain.Review {
	t.Helper()
	review, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		Title:    "Great",
		Rating:   5,
		Comment:  "loved it",
		MovieID:  f.movie.ID,
		AuthorID: authorID,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}

func TestReviewService_Create_Success(t *testing.T) {
	f := newReviewFixture(t)

	review := f.create(t, f.u1.ID)
	if review.AuthorID != f.u1.ID || review.MovieID != f.movie.ID {
		t.Fatalf("unexpected relations: %+v", review)
	}
	if review.Author == nil || review.Author.PasswordHash != "" {
		t.Fatalf("nested author must be present and sanitized")
	}
	if review.Movie == nil || review.Movie.Reviews != nil {
		t.Fatalf("nested movie must be present with its review list cleared")
	}
}

func TestReviewService_Create_MovieMissing(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		Title: "x", Rating: 3, Comment: "y",
		MovieID: uuid.NewString(), AuthorID: f.u1.ID,
	})
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	f := newReviewFixture(t)

	f.create(t, f.u1.ID)
	_, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		Title: "Again", Rating: 1, Comment: "changed my mind",
		MovieID: f.movie.ID, AuthorID: f.u1.ID,
	})
	if !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
			Title: "x", Rating: rating, Comment: "y",
			MovieID: f.movie.ID, AuthorID: f.u1.ID,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestReviewService_Update_Owner(t *testing.T) {
	f := newReviewFixture(t)
	review := f.create(t, f.u1.ID)

	rating := 2
	comment := "on rewatch, not as good"
	updated, err := f.svc.Update(context.Background(), review.ID, ports.UpdateReviewInput{
		Rating:  &rating,
		Comment: &comment,
	}, f.u1.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rating != 2 || updated.Comment != comment {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Title != "Great" {
		t.Fatalf("unpatched field must survive, got %q", updated.Title)
	}
}

func TestReviewService_Update_NotOwner(t *testing.T) {
	f := newReviewFixture(t)
	review := f.create(t, f.u1.ID)

	rating := 1
	_, err := f.svc.Update(context.Background(), review.ID, ports.UpdateReviewInput{Rating: &rating}, f.u2.ID)
	if !errors.Is(err, domain.ErrNotReviewOwner) {
		t.Fatalf("expected ErrNotReviewOwner, got %v", err)
	}

	stored, _ := f.reviews.FindByID(context.Background(), review.ID)
	if stored.Rating != 5 {
		t.Fatalf("failed check must not mutate the record")
	}
}

func TestReviewService_Update_MissingReview(t *testing.T) {
	f := newReviewFixture(t)

	// Existence is checked before ownership: a caller who owns nothing still
	// sees not-found, never forbidden.
	rating := 1
	_, err := f.svc.Update(context.Background(), uuid.NewString(), ports.UpdateReviewInput{Rating: &rating}, f.u2.ID)
	if !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewService_Delete_OwnershipAndCascadeSource(t *testing.T) {
	f := newReviewFixture(t)
	review := f.create(t, f.u1.ID)

	if err := f.svc.Delete(context.Background(), review.ID, f.u2.ID); !errors.Is(err, domain.ErrNotReviewOwner) {
		t.Fatalf("expected ErrNotReviewOwner, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), review.ID, f.u1.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := f.reviews.FindByID(context.Background(), review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("review should be gone, got %v", err)
	}
}

func TestReviewService_ListByMovie(t *testing.T) {
	f := newReviewFixture(t)
	f.create(t, f.u1.ID)
	f.create(t, f.u2.ID)

	reviews, err := f.svc.ListByMovie(context.Background(), f.movie.ID)
	if err != nil {
		t.Fatalf("list by movie: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	for _, r := range reviews {
		if r.Author == nil || r.Author.PasswordHash != "" {
			t.Fatalf("listed review author must be sanitized")
		}
	}
}

func TestReviewService_ListByMovie_UnknownMovie(t *testing.T) {
	f := newReviewFixture(t)

	if _, err := f.svc.ListByMovie(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestReviewService_MalformedIDs(t *testing.T) {
	f := newReviewFixture(t)

	if _, err := f.svc.Get(context.Background(), "not-a-uuid"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("Get: expected ErrInvalidID, got %v", err)
	}
	if _, err := f.svc.ListByMovie(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("ListByMovie: expected ErrInvalidID, got %v", err)
	}
	if _, err := f.svc.ListByAuthor(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("ListByAuthor: expected ErrInvalidID, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), "nope", f.u1.ID); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("Delete: expected ErrInvalidID, got %v", err)
	}
}
