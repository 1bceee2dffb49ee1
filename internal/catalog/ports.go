package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines the read contract the catalog handlers need from a store.
type Repository interface {
	// FindAuthors returns every author ordered by family name ascending.
	FindAuthors(ctx context.Context) ([]Author, error)
	// FindBookByID returns nil, nil when no book matches.
	FindBookByID(ctx context.Context, id string) (*Book, error)
	// FindCopiesByBookID returns ErrNotFound when the store reports the copies as absent.
	FindCopiesByBookID(ctx context.Context, bookID string) ([]Copy, error)
	FindInstancesByStatus(ctx context.Context, status string) ([]Instance, error)
}

// Seeder loads sample records into a store.
type Seeder interface {
	Seed(ctx context.Context, authors []SeedAuthor) (SeedResult, error)
}
