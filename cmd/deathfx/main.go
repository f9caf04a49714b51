package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/udisondev/deathfx/internal/config"
)

const DefaultConfigPath = "config/deathfx.yaml"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "deathfx",
	Short: "Death effect classification service",
	Long: `deathfx decides which visual death effect a character plays from the
magic effects active on it when it dies.

It runs as a TCP query service for the game plugin, or classifies a saved
snapshot offline. Magic effect definitions live in PostgreSQL or in a YAML file.`,
	SilenceUsage: true,
}

func init() {
	defaultPath := DefaultConfigPath
	if p := os.Getenv("DEATHFX_CONFIG"); p != "" {
		defaultPath = p
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultPath, "service config file (env DEATHFX_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log_level from config (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, classifyCmd, migrateCmd, importCmd, pingCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logFatal(slog.Default(), err)
		stop()
		os.Exit(1)
	}
}

func logFatal(logger *slog.Logger, err error) {
	logger.Error("fatal", "error", err)
}

// loadConfig loads the service config and configures the default logger.
func loadConfig() (config.Service, error) {
	cfg, err := config.LoadService(configPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	return cfg, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
