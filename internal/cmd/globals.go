package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gstreamermm/gmmplugingen/internal/generator"
	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

const (
	sourceCache = "cache"
	sourceLive  = "live"
)

// Globals holds the flags shared by every command. Kong binds it for Run methods.
type Globals struct {
	Source    string   `help:"Metadata source: a plugin cache or the live GStreamer registry" enum:"cache,live" default:"cache" env:"GMMPLUGINGEN_SOURCE"`
	CacheFile []string `help:"GStreamer plugin cache (gst_plugins_cache.json), repeatable" env:"GMMPLUGINGEN_CACHE_FILE"`
	GirFile   []string `help:"GIR file used to classify types, repeatable" env:"GMMPLUGINGEN_GIR_FILE"`
	Templates string   `help:"Template directory (uses embedded templates if not specified)" type:"path" env:"GMMPLUGINGEN_TEMPLATES"`

	Namespace string `short:"n" help:"The namespace of the plugin" env:"GMMPLUGINGEN_NAMESPACE"`
	MainDefs  string `short:"m" help:"The main defs file without .defs extension" env:"GMMPLUGINGEN_MAIN_DEFS"`
	Target    string `short:"t" help:"The .h and .cc target directory" env:"GMMPLUGINGEN_TARGET"`

	LogLevel string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"GMMPLUGINGEN_LOG_LEVEL"`
	LogFile  string `help:"Also write logs to this file" type:"path" env:"GMMPLUGINGEN_LOG_FILE"`
}

// Options returns the target options given on the command line
func (g *Globals) Options() introspection.Options {
	return introspection.Options{
		Namespace: g.Namespace,
		DefsFile:  g.MainDefs,
		Target:    g.Target,
	}
}

// OpenSource opens the configured metadata source
func (g *Globals) OpenSource(logger *slog.Logger) (introspection.Source, error) {
	switch g.Source {
	case sourceLive:
		return openLiveSource(logger)
	case sourceCache, "":
		if len(g.CacheFile) == 0 {
			return nil, errors.New("the cache source needs at least one --cache-file")
		}
		db, err := introspection.LoadTypeDB(g.GirFile)
		if err != nil {
			return nil, err
		}
		return introspection.LoadCacheSource(g.CacheFile, db, logger)
	default:
		return nil, fmt.Errorf("unknown source: %s", g.Source)
	}
}

// NewGenerator creates a generator using embedded or on-disk templates
func (g *Globals) NewGenerator(logger *slog.Logger) (*generator.Generator, error) {
	funcMap := generator.GetTemplateFuncMap()
	if g.Templates == "" {
		return generator.New(generator.NewEmbeddedTemplateLoader(funcMap), logger), nil
	}
	loader, err := generator.NewOSTemplateLoader(g.Templates, funcMap)
	if err != nil {
		return nil, fmt.Errorf("failed to create template loader: %w", err)
	}
	logger.Debug("using templates from directory", "dir", g.Templates)
	return generator.New(loader, logger), nil
}

// openOutput returns stdout, or a created file when path is set
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
