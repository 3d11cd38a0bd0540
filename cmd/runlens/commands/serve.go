package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/runlens/runlens/config"
	"github.com/runlens/runlens/domains"
	"github.com/runlens/runlens/logger"
	"github.com/runlens/runlens/server"
)

var serveConfigPath string

// ServeCmd starts the websocket suggest service.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket suggest service",
	Long: `Start the HTTP/websocket service the host UI talks to for
per-keystroke suggestions, previews, and query validation.

The execution database is watched for changes; workflow and folder name
domains refresh automatically.`,
	RunE: runServeCommand,
}

func init() {
	ServeCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config file (default: runlens.toml search path)")
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.Log.JSON); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	log := logger.Logger

	provider, err := domains.Open(cfg.Database.Path, log)
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workflows, err := provider.WorkflowNames(ctx)
	if err != nil {
		return err
	}
	folders, err := provider.FolderNames(ctx)
	if err != nil {
		return err
	}
	log.Infow("Dynamic domains loaded",
		"workflows", len(workflows),
		"folders", len(folders),
	)

	srv := server.New(cfg.Server.Addr, log, workflows, folders)

	debounce := time.Duration(cfg.Domains.RefreshDebounceMS) * time.Millisecond
	watcher, err := domains.NewWatcher(cfg.Database.Path, provider, debounce, log, srv.SetDomains)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return errors.Wrap(err, "domain watcher failed")
		}
		return nil
	})
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadConfig() (*config.Config, error) {
	if serveConfigPath != "" {
		return config.LoadFromFile(serveConfigPath)
	}
	return config.Load()
}
