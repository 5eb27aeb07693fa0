// Package main provides the headerdoc binary entry point. Headerdoc fetches
// observatory header spec files and renders them as grouped LaTeX tables for
// instrument documentation.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/obstools/headerdoc/builder"
	"github.com/obstools/headerdoc/config"
	"github.com/obstools/headerdoc/source"
	"github.com/obstools/headerdoc/spec"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "headerdoc"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		specDir    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "FITS header keyword documentation generator",
		Long: `Headerdoc fetches plain-text spec files describing FITS header
keywords, parses them into structured cards, and renders LaTeX tables
grouped by keyword category.

Without arguments it runs every configured documentation build in order,
writing one LaTeX fragment per build.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := setup(configPath, specDir, logLevel)
			if err != nil {
				return err
			}
			return b.RunAll(cmd.Context(), cfg.Builds)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&specDir, "spec-dir", "", "Read spec files from a local directory instead of the file server")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(buildCmd(&configPath, &specDir, &logLevel))
	cmd.AddCommand(csvCmd(&configPath, &specDir, &logLevel))
	cmd.AddCommand(listCmd(&configPath, &specDir, &logLevel))
	cmd.AddCommand(watchCmd(&configPath, &specDir, &logLevel))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func buildCmd(configPath, specDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build <name>",
		Short: "Run a single named documentation build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := setup(*configPath, *specDir, *logLevel)
			if err != nil {
				return err
			}
			build, ok := cfg.Build(args[0])
			if !ok {
				return fmt.Errorf("unknown build %q (configured: %s)", args[0], buildNames(cfg))
			}
			return b.Run(cmd.Context(), build)
		},
	}
}

func csvCmd(configPath, specDir, logLevel *string) *cobra.Command {
	var fitsPath string

	cmd := &cobra.Command{
		Use:   "csv <name>",
		Short: "Write a build's cards as tab-separated values",
		Long: `Csv combines a build's spec files and writes the full card table
(source, group, header, type, spec, description, example, notes) as
tab-separated values. With --fits, example values are read from the
image's primary header; keywords missing from the image are marked
MISSING.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := setup(*configPath, *specDir, *logLevel)
			if err != nil {
				return err
			}
			build, ok := cfg.Build(args[0])
			if !ok {
				return fmt.Errorf("unknown build %q (configured: %s)", args[0], buildNames(cfg))
			}
			out, err := b.RunCSV(cmd.Context(), build, fitsPath)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&fitsPath, "fits", "", "FITS image to read example values from")
	return cmd
}

func listCmd(configPath, specDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pattern]",
		Short: "List spec files available in the local spec directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(*configPath, *specDir, *logLevel)
			if err != nil {
				return err
			}
			if cfg.Source.Dir == "" {
				return fmt.Errorf("list requires a local spec directory (--spec-dir or source.dir)")
			}
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			names, err := source.NewDirFetcher(cfg.Source.Dir).Names(pattern)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func watchCmd(configPath, specDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild all documentation whenever a local spec file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := setup(*configPath, *specDir, *logLevel)
			if err != nil {
				return err
			}
			if cfg.Source.Dir == "" {
				return fmt.Errorf("watch requires a local spec directory (--spec-dir or source.dir)")
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := b.Watch(ctx, cfg.Source.Dir, cfg.Builds); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

// setup loads configuration, configures logging, and wires a builder to the
// configured spec file source.
func setup(configPath, specDir, logLevel string) (*config.Config, *builder.Builder, error) {
	logger := newLogger(logLevel)
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if specDir != "" {
		cfg.Source.Dir = specDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var fetcher spec.Fetcher
	if cfg.Source.Dir != "" {
		fetcher = source.NewDirFetcher(cfg.Source.Dir)
		logger.Debug("using local spec directory", "dir", cfg.Source.Dir)
	} else {
		fetcher = source.NewHTTPFetcher(cfg.Source.BaseURL, cfg.Source.Timeout)
		logger.Debug("using spec file server", "base_url", cfg.Source.BaseURL)
	}

	return cfg, builder.New(fetcher, logger), nil
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func buildNames(cfg *config.Config) string {
	names := make([]string, 0, len(cfg.Builds))
	for _, b := range cfg.Builds {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}
