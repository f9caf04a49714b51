package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/deathfx/internal/config"
	"github.com/udisondev/deathfx/internal/db"
	"github.com/udisondev/deathfx/internal/effect"
)

// loadResolver builds a resolver from the configured definitions source:
// PostgreSQL when a database is configured, otherwise the definitions file.
func loadResolver(ctx context.Context, cfg config.Service) (*effect.Resolver, error) {
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("effect definitions ready", "count", catalog.Len())
	return effect.NewResolver(catalog, cfg.Keywords.Effect()), nil
}

func loadCatalog(ctx context.Context, cfg config.Service) (*effect.Catalog, error) {
	if cfg.Database.Enabled() {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, err
		}
		defer database.Close()

		catalog, err := db.NewDefinitionRepository(database.Pool()).Catalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading definitions from database: %w", err)
		}
		return catalog, nil
	}

	if cfg.DefinitionsFile == "" {
		return nil, fmt.Errorf("no definitions source: set database.host or definitions_file")
	}
	defs, err := effect.LoadDefinitionsFile(cfg.DefinitionsFile)
	if err != nil {
		return nil, err
	}
	return effect.NewCatalog(defs), nil
}
