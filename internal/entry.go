// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/docscheck/internal/apperr"
	"github.com/starford/docscheck/internal/checker"
	"github.com/starford/docscheck/internal/checksum"
	"github.com/starford/docscheck/internal/report"
	"github.com/starford/docscheck/internal/storage"
	"github.com/starford/docscheck/internal/watch"
)

// Run checks the configured documentation once, or keeps re-checking it
// when watch mode is enabled. A single pass that finds problems returns
// apperr.ErrFindings after the report has been written.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdout:    os.Stdout,
		logOutput: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Stdout carries the report, so logs go to a separate stream.
	logger := slog.New(slog.NewJSONHandler(app.logOutput, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("root", cfg.Docs.Root),
		slog.Any("patterns", cfg.Docs.Patterns),
		slog.Int("legacy_paths", len(cfg.LegacyPaths)),
		slog.Bool("watch", cfg.Watch.Enabled),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Docs.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	chk := checker.New(store, cfg.Docs.Patterns, cfg.LegacyPaths, logger)

	if !cfg.Watch.Enabled {
		return runOnce(chk, app.stdout)
	}
	return runWatch(ctx, cfg, chk, store.Root(), app.stdout, logger)
}

func runOnce(chk *checker.Checker, out io.Writer) error {
	r, err := chk.Scan()
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if err := report.Write(out, r); err != nil {
		return err
	}
	if !r.OK() {
		return apperr.ErrFindings
	}
	return nil
}

func runWatch(ctx context.Context, cfg *Config, chk *checker.Checker, root string, out io.Writer, logger *slog.Logger) error {
	var tracker checksum.Tracker

	// pass only prints when the report differs from the last one shown.
	pass := func() {
		r, err := chk.Scan()
		if err != nil {
			logger.Error("scan failed", slog.String("error", err.Error()))
			return
		}
		var buf bytes.Buffer
		if err := report.Write(&buf, r); err != nil {
			logger.Error("render failed", slog.String("error", err.Error()))
			return
		}
		if !tracker.Changed(buf.Bytes()) {
			logger.Debug("report unchanged")
			return
		}
		if _, err := out.Write(buf.Bytes()); err != nil {
			logger.Error("write report failed", slog.String("error", err.Error()))
		}
	}

	pass()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := watch.Watch(gCtx, root, cfg.Watch.Debounce, logger, func(paths []string) {
			logger.Info("Change detected, re-checking", slog.Any("paths", paths))
			pass()
		}); err != nil {
			return fmt.Errorf("watcher error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
			logger.Info("Context cancelled, stopping watcher")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watcher stopped")
	return nil
}
