package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/docscheck/internal"
	"github.com/starford/docscheck/internal/apperr"
	pkgconfig "github.com/starford/docscheck/pkg/config"
)

// loadConfig decodes the config file over the defaults and applies the CLI
// overrides. Validation is left to internal.Run so an override can fill in
// a value the file leaves empty.
func loadConfig(path string, explicit bool, root string, watch bool) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	read := pkgconfig.ReadOptional[internal.Config]
	if explicit {
		read = pkgconfig.Read[internal.Config]
	}
	if err := read(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if root != "" {
		cfg.Docs.Root = root
	}
	if watch {
		cfg.Watch.Enabled = true
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"), cmd.IsSet("config"), cmd.String("root"), cmd.Bool("watch"))
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	return internal.Run(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:   "docscheck",
		Usage:  "Check documentation for missing relative links and references to moved files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "docscheck.yaml",
				Value:       "docscheck.yaml",
				Sources:     cli.EnvVars("DOCSCHECK_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root the documentation patterns are relative to",
				Sources: cli.EnvVars("DOCSCHECK_ROOT"),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run the check whenever files under the root change",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		// Findings were already reported on stdout.
		if !errors.Is(err, apperr.ErrFindings) {
			slog.Error("application error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
