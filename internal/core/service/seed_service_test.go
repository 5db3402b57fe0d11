package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestSeedService_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	movies := newStubMovieRepo()
	reviews := newStubReviewRepo()
	svc := NewSeedService(users, movies, reviews, zerolog.Nop())

	first, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first.Users) != len(seedUsers) || len(first.Movies) != len(seedMovies) || len(first.Reviews) != len(seedReviews) {
		t.Fatalf("unexpected counts: %d users, %d movies, %d reviews", len(first.Users), len(first.Movies), len(first.Reviews))
	}
	for _, rec := range first.Users {
		if rec.Status != "created" {
			t.Fatalf("first run should create %s, got %s", rec.Label, rec.Status)
		}
	}

	second, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, rec := range second.Users {
		if rec.Status != "already-exists" {
			t.Fatalf("second run should skip %s, got %s", rec.Label, rec.Status)
		}
	}
	for _, rec := range second.Movies {
		if rec.Status != "already-exists" {
			t.Fatalf("second run should skip %s, got %s", rec.Label, rec.Status)
		}
	}
	for _, rec := range second.Reviews {
		if rec.Status != "already-exists" {
			t.Fatalf("second run should skip %s, got %s", rec.Label, rec.Status)
		}
	}
}
