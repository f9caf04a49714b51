package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/deathfx/internal/config"
	"github.com/udisondev/deathfx/internal/query"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TCP query service",
	Long: `Load effect definitions and answer death effect queries over TCP.

SIGHUP reloads the definitions without dropping connections.
SIGINT / SIGTERM shut the service down.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	slog.Info("deathfx starting",
		"bind", cfg.BindAddress,
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"database", cfg.Database.Enabled())

	resolver, err := loadResolver(ctx, cfg)
	if err != nil {
		return err
	}

	srv := query.NewServer(cfg, query.NewHandler(resolver))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("query server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		watchReload(gctx, cfg, srv.Handler())
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("deathfx stopped")
	return nil
}

// watchReload swaps in freshly loaded definitions on every SIGHUP.
// A failed reload keeps the current definitions.
func watchReload(ctx context.Context, cfg config.Service, h *query.Handler) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			resolver, err := loadResolver(ctx, cfg)
			if err != nil {
				slog.Error("reloading definitions", "error", err)
				continue
			}
			h.SetResolver(resolver)
			slog.Info("definitions reloaded")
		}
	}
}
