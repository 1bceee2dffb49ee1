package main

import (
	"context"
	"log"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := catalog.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store, err)
	}
	defer store.Close(context.Background())

	if err := run(ctx, store, catalog.SampleCatalog()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func run(ctx context.Context, seeder catalog.Seeder, authors []catalog.SeedAuthor) error {
	log.Printf("Seeding %d authors...", len(authors))
	res, err := seeder.Seed(ctx, authors)
	if err != nil {
		return err
	}
	log.Printf("Successfully inserted %d authors, %d books, %d copies", res.Authors, res.Books, res.Copies)
	return nil
}
