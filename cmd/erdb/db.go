package main

import (
	"context"
	"fmt"

	"erdb/internal/config"
	"erdb/internal/store"
	"erdb/internal/store/postgres"
	"erdb/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("no database configured in erdb.yaml")
	}
	switch cfg.Database.Driver {
	case "sqlite":
		return sqlite.New(ctx, cfg.Database.DSN)
	case "postgres":
		return postgres.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
