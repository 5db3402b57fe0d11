package ports

import "context"

// SeedRecord reports the outcome of seeding one record.
type SeedRecord struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"` // "created" or "already-exists"
}

// SeedResult summarizes a seed run.
type SeedResult struct {
	Users   []SeedRecord `json:"users"`
	Movies  []SeedRecord `json:"movies"`
	Reviews []SeedRecord `json:"reviews"`
}

// SeedService loads demo users, movies, and reviews. Idempotent: records
// that already exist are skipped and reported as such.
type SeedService interface {
	Run(ctx context.Context) (*SeedResult, error)
}
