package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/trainingtask/internal/cli"
	"github.com/alexanderramin/trainingtask/internal/db"
	"github.com/alexanderramin/trainingtask/internal/refcache"
	"github.com/alexanderramin/trainingtask/internal/remote"
	"github.com/alexanderramin/trainingtask/internal/repository"
	"github.com/alexanderramin/trainingtask/internal/server"
	"github.com/alexanderramin/trainingtask/internal/service"
	"github.com/alexanderramin/trainingtask/internal/settings"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verbose := os.Getenv("TRAININGTASK_LOG") != ""
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	dbPath, err := pathFromEnv("TRAININGTASK_DB", "trainingtask.db")
	if err != nil {
		return report(err)
	}
	serverDBPath, err := pathFromEnv("TRAININGTASK_SERVER_DB", "server.db")
	if err != nil {
		return report(err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return report(fmt.Errorf("opening database: %w", err))
	}
	defer database.Close()

	provider := settings.NewProvider()
	if path := os.Getenv("TRAININGTASK_DEFAULTS"); path != "" {
		provider = settings.NewProviderFromFile(path)
	}
	manager := settings.NewManager(provider, repository.NewSQLiteSettingsRepo(database), logger)

	// The client is built once per invocation from the effective settings.
	cfg := remote.DefaultConfig()
	if s, err := manager.GetSettings(ctx); err != nil {
		logger.WarnContext(ctx, "settings unavailable, using built-in connection defaults", "error", err)
	} else {
		cfg = remote.LoadConfig(s)
	}
	var callObserver remote.Observer = remote.NoopObserver{}
	if cfg.LogCalls || verbose {
		callObserver = remote.NewLogObserver(os.Stderr)
	}
	client := remote.NewHTTPClient(cfg, callObserver)

	var useCases service.UseCaseObserver = service.NoopUseCaseObserver{}
	if verbose {
		useCases = service.NewSlogUseCaseObserver(logger)
	}

	app := &cli.App{
		Settings:  manager,
		Tasks:     service.NewTaskService(client, useCases),
		Editor:    service.NewTaskEditor(client, refcache.New(), manager, useCases),
		Directory: service.NewDirectoryService(client, useCases),
		Serve: func(ctx context.Context, addr string) error {
			serverDB, err := db.OpenDB(serverDBPath)
			if err != nil {
				return fmt.Errorf("opening server database: %w", err)
			}
			defer serverDB.Close()
			return server.New(serverDB, logger).Run(ctx, addr)
		},
		Import: func(ctx context.Context, path string) (*service.ImportResult, error) {
			serverDB, err := db.OpenDB(serverDBPath)
			if err != nil {
				return nil, fmt.Errorf("opening server database: %w", err)
			}
			defer serverDB.Close()
			return service.NewImportService(db.NewSQLiteUnitOfWork(serverDB), useCases).ImportFile(ctx, path)
		},
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.Execute(ctx, app)
}

// pathFromEnv returns the env var's value, or name under ~/.trainingtask.
func pathFromEnv(key, name string) (string, error) {
	if p := os.Getenv(key); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".trainingtask", name), nil
}

func report(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
