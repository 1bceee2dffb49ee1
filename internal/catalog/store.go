package catalog

import (
	"context"
	"fmt"

	"locallibrary/internal/config"
)

// Store is a catalog backend with its lifecycle hooks.
type Store interface {
	Repository
	Seeder
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*MongoRepo)(nil)
	_ Store = (*PostgresRepo)(nil)
)

// Open connects to the backend selected by cfg.Store.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreMongo:
		repo, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.QueryTimeout)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StorePostgres:
		repo, err := OpenPostgres(ctx, cfg.DatabaseDSN, cfg.QueryTimeout)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown catalog store %q", cfg.Store)
	}
}
