package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
	"github.com/gstreamermm/gmmplugingen/internal/manifest"
)

// Batch generates the .hg and .ccg files of every plugin in a manifest
type Batch struct {
	Manifest     string `arg:"" help:"Manifest listing plugins and C++ classes (yaml, toml or json)" type:"existingfile"`
	OutputDir    string `short:"o" help:"Output directory" default:"." type:"path"`
	Jobs         int    `short:"j" help:"Number of plugins generated in parallel" default:"4"`
	AllowMissing bool   `help:"Write .hg stubs for plugins missing from the registry instead of failing"`
}

func (c *Batch) Run(g *Globals, logger *slog.Logger) error {
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return err
	}
	opts := mergeOptions(g.Options(), m)

	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	source, err := g.OpenSource(logger)
	if err != nil {
		return err
	}
	defer source.Close()

	gen, err := g.NewGenerator(logger)
	if err != nil {
		return err
	}
	intro := introspection.NewIntrospection(source, logger)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(max(1, c.Jobs))
	for _, entry := range m.Plugins {
		entry := entry
		eg.Go(func() error {
			plugin, err := intro.Resolve(ctx, entry.Plugin, entry.Class, opts)
			if errors.Is(err, introspection.ErrNotFound) && c.AllowMissing {
				_, err = gen.GenerateMissing(entry.Plugin, entry.Class, opts, c.OutputDir)
				return err
			}
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Plugin, err)
			}
			_, err = gen.Generate(plugin, c.OutputDir)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("batch generation complete", "plugins", len(m.Plugins), "output", c.OutputDir)
	return nil
}

// mergeOptions fills options missing from the command line with manifest values
func mergeOptions(opts introspection.Options, m *manifest.Manifest) introspection.Options {
	if opts.Namespace == "" {
		opts.Namespace = m.Namespace
	}
	if opts.DefsFile == "" {
		opts.DefsFile = m.DefsFile
	}
	if opts.Target == "" {
		opts.Target = m.Target
	}
	return opts
}

// List prints the names of every plugin the source knows
type List struct{}

func (c *List) Run(g *Globals, logger *slog.Logger) error {
	source, err := g.OpenSource(logger)
	if err != nil {
		return err
	}
	defer source.Close()

	lister, ok := source.(introspection.Lister)
	if !ok {
		return fmt.Errorf("source %s cannot list plugins", g.Source)
	}
	names, err := lister.ElementNames(context.Background())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
