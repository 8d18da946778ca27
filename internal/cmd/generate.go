package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gstreamermm/gmmplugingen/internal/generator"
	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

// PluginArgs are the positional arguments and output flags of hg and ccg
type PluginArgs struct {
	Plugin       string `arg:"" help:"Name of the plugin (element factory), e.g. capsfilter"`
	Class        string `arg:"" help:"Name of the C++ class to generate, e.g. CapsFilter"`
	Out          string `short:"o" help:"Write to this file instead of stdout" type:"path"`
	AllowMissing bool   `help:"Exit successfully when the plugin is not in the registry"`
}

// HG generates the binding-description file
type HG struct {
	PluginArgs `embed:""`
}

// CCG generates the implementation-binding-description file
type CCG struct {
	PluginArgs `embed:""`
}

func (c *HG) Run(g *Globals, logger *slog.Logger) error {
	return generateOne(context.Background(), g, logger, c.PluginArgs, true)
}

func (c *CCG) Run(g *Globals, logger *slog.Logger) error {
	return generateOne(context.Background(), g, logger, c.PluginArgs, false)
}

func generateOne(ctx context.Context, g *Globals, logger *slog.Logger, args PluginArgs, hg bool) error {
	source, err := g.OpenSource(logger)
	if err != nil {
		return err
	}
	defer source.Close()

	gen, err := g.NewGenerator(logger)
	if err != nil {
		return err
	}

	plugin, err := introspection.NewIntrospection(source, logger).Resolve(ctx, args.Plugin, args.Class, g.Options())
	if errors.Is(err, introspection.ErrNotFound) {
		return writeMissing(gen, logger, args, g.Options(), hg)
	}
	if err != nil {
		return err
	}

	return writeTo(args.Out, func(w io.Writer) error {
		if hg {
			return gen.WriteHG(w, plugin)
		}
		return gen.WriteCCG(w, plugin)
	})
}

// writeMissing reports an unknown plugin. With AllowMissing the .hg stub is
// still produced so build systems listing optional plugins keep working.
func writeMissing(gen *generator.Generator, logger *slog.Logger, args PluginArgs, opts introspection.Options, hg bool) error {
	logger.Error("unrecognized GStreamer element type", "plugin", args.Plugin)
	if !args.AllowMissing {
		return fmt.Errorf("%w: %s", introspection.ErrNotFound, args.Plugin)
	}
	if !hg {
		return nil
	}
	return writeTo(args.Out, func(w io.Writer) error {
		return gen.WriteMissingHG(w, args.Plugin, opts)
	})
}

func writeTo(path string, write func(w io.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Exists exits successfully when the plugin is registered
type Exists struct {
	Plugin string `arg:"" help:"Name of the plugin (element factory)"`
}

func (c *Exists) Run(g *Globals, logger *slog.Logger) error {
	source, err := g.OpenSource(logger)
	if err != nil {
		return err
	}
	defer source.Close()

	found, err := introspection.NewIntrospection(source, logger).Exists(context.Background(), c.Plugin)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", introspection.ErrNotFound, c.Plugin)
	}
	logger.Debug("plugin exists", "plugin", c.Plugin)
	return nil
}
