// Package builder orchestrates documentation builds: combining spec files
// and writing the rendered output.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/obstools/headerdoc/annotate"
	"github.com/obstools/headerdoc/config"
	"github.com/obstools/headerdoc/export"
	"github.com/obstools/headerdoc/spec"
)

// Builder runs documentation builds against one spec file source. Group
// definitions accumulate across builds, so a later build's tables can use
// group descriptions defined by an earlier one; card sets do not carry over.
type Builder struct {
	fetcher spec.Fetcher
	logger  *slog.Logger

	groups  *spec.GroupSet
	version string
}

// New creates a builder reading spec files through the given fetcher.
func New(fetcher spec.Fetcher, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		fetcher: fetcher,
		logger:  logger,
		groups:  spec.NewGroupSet(),
		version: "Unknown",
	}
}

// Run executes one documentation build: combine the build's spec files,
// merge its groups into the accumulated group set, and write the LaTeX
// output. The first build that carries a HEADVER keyword pins the header
// version used by builds that lack one of their own.
func (b *Builder) Run(ctx context.Context, build config.BuildConfig) error {
	groups, cards, err := spec.Combine(ctx, b.fetcher, build.Files)
	if err != nil {
		return fmt.Errorf("build %s: %w", build.Name, err)
	}
	b.groups.Merge(groups)

	if b.version == "Unknown" {
		b.version = spec.HeaderVersion(cards)
	}

	if err := export.WriteLaTeXFile(build.Output, b.groups, cards, b.version); err != nil {
		return fmt.Errorf("build %s: %w", build.Name, err)
	}

	b.logger.Info("wrote documentation build",
		"build", build.Name,
		"output", build.Output,
		"cards", cards.Len(),
		"groups", b.groups.Len())
	return nil
}

// RunAll executes every build in order, resetting accumulated state first so
// repeated invocations (watch mode) start clean.
func (b *Builder) RunAll(ctx context.Context, builds []config.BuildConfig) error {
	b.groups = spec.NewGroupSet()
	b.version = "Unknown"

	for _, build := range builds {
		if err := b.Run(ctx, build); err != nil {
			return err
		}
	}
	return nil
}

// RunCSV combines one build's spec files and writes them as tab-separated
// values next to the build's LaTeX output. When fitsPath is non-empty the
// cards are first annotated with example values from that image's primary
// header.
func (b *Builder) RunCSV(ctx context.Context, build config.BuildConfig, fitsPath string) (string, error) {
	_, cards, err := spec.Combine(ctx, b.fetcher, build.Files)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", build.Name, err)
	}

	if fitsPath != "" {
		if err := annotate.ExampleValues(fitsPath, cards); err != nil {
			return "", fmt.Errorf("build %s: %w", build.Name, err)
		}
	}

	out := csvOutputPath(build.Output)
	if err := export.WriteCSVFile(out, cards); err != nil {
		return "", fmt.Errorf("build %s: %w", build.Name, err)
	}

	b.logger.Info("wrote card table",
		"build", build.Name,
		"output", out,
		"cards", cards.Len())
	return out, nil
}

// csvOutputPath swaps a build output path's extension for the TSV one.
func csvOutputPath(output string) string {
	info := export.FormatRegistry[export.FormatTSV]
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + info.Extension
}
