package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/deathfx/internal/db"
	"github.com/udisondev/deathfx/internal/effect"
)

const importBatchSize = 200

var (
	importFile        string
	importConcurrency int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert a definitions file into PostgreSQL",
	Long: `Read a YAML definitions file and upsert every magic effect into the
database. Keywords of imported effects are replaced. Migrations are applied
first.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "definitions YAML file (default: definitions_file from config)")
	importCmd.Flags().IntVar(&importConcurrency, "concurrency", 4, "parallel upsert transactions")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return fmt.Errorf("database.host is not configured")
	}

	path := importFile
	if path == "" {
		path = cfg.DefinitionsFile
	}
	defs, err := effect.LoadDefinitionsFile(path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	repo := db.NewDefinitionRepository(database.Pool())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(importConcurrency, 1))
	for batch := range slices.Chunk(dedupeByFormID(defs), importBatchSize) {
		g.Go(func() error {
			return repo.Save(gctx, batch)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	slog.Info("definitions imported", "path", path, "count", len(defs))
	return nil
}

// dedupeByFormID keeps one definition per form ID: the last one in the file,
// at the position of the first. Concurrent batches then never touch the same row.
func dedupeByFormID(defs []*effect.Definition) []*effect.Definition {
	index := make(map[uint32]int, len(defs))
	out := make([]*effect.Definition, 0, len(defs))
	for _, def := range defs {
		if i, ok := index[def.FormID]; ok {
			out[i] = def
			continue
		}
		index[def.FormID] = len(out)
		out = append(out, def)
	}
	return out
}
