package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := cloneUser(user)
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) UpdateRoles(_ context.Context, id string, roles []string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Roles = roles
	return cloneUser(u), nil
}

type stubMovieRepo struct {
	movies map[string]*domain.Movie
}

func newStubMovieRepo() *stubMovieRepo {
	return &stubMovieRepo{movies: make(map[string]*domain.Movie)}
}

func cloneMovie(m *domain.Movie) *domain.Movie {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMovieRepo) Create(_ context.Context, movie *domain.Movie) error {
	r.movies[movie.ID] = cloneMovie(movie)
	return nil
}

func (r *stubMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	if m, ok := r.movies[id]; ok {
		return cloneMovie(m), nil
	}
	return nil, domain.ErrMovieNotFound
}

func (r *stubMovieRepo) FindByTitle(_ context.Context, title string) (*domain.Movie, error) {
	for _, m := range r.movies {
		if m.Title == title {
			return cloneMovie(m), nil
		}
	}
	return nil, domain.ErrMovieNotFound
}

func (r *stubMovieRepo) FindAll(_ context.Context) ([]*domain.Movie, error) {
	out := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, cloneMovie(m))
	}
	return out, nil
}

func (r *stubMovieRepo) Save(_ context.Context, movie *domain.Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return domain.ErrMovieNotFound
	}
	r.movies[movie.ID] = cloneMovie(movie)
	return nil
}

func (r *stubMovieRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func cloneReview(rv *domain.Review) *domain.Review {
	if rv == nil {
		return nil
	}
	clone := *rv
	return &clone
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	for _, existing := range r.reviews {
		if existing.AuthorID == review.AuthorID && existing.MovieID == review.MovieID {
			return domain.ErrDuplicateReview
		}
	}
	r.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if rv, ok := r.reviews[id]; ok {
		return cloneReview(rv), nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindByAuthorAndMovie(_ context.Context, authorID, movieID string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.AuthorID == authorID && rv.MovieID == movieID {
			return cloneReview(rv), nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindByAuthor(_ context.Context, authorID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.AuthorID == authorID {
			out = append(out, cloneReview(rv))
		}
	}
	return out, nil
}

func (r *stubReviewRepo) FindByMovie(_ context.Context, movieID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.MovieID == movieID {
			out = append(out, cloneReview(rv))
		}
	}
	return out, nil
}

func (r *stubReviewRepo) FindAll(_ context.Context) ([]*domain.Review, error) {
	out := make([]*domain.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, cloneReview(rv))
	}
	return out, nil
}

func (r *stubReviewRepo) Save(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	r.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) DeleteByMovie(_ context.Context, movieID string) error {
	for id, rv := range r.reviews {
		if rv.MovieID == movieID {
			delete(r.reviews, id)
		}
	}
	return nil
}

func (r *stubReviewRepo) DeleteByAuthor(_ context.Context, authorID string) error {
	for id, rv := range r.reviews {
		if rv.AuthorID == authorID {
			delete(r.reviews, id)
		}
	}
	return nil
}
