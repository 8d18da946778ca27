package generator

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

// Generator renders resolved plugins into gmmproc source files
type Generator struct {
	loader TemplateLoader
	logger *slog.Logger
}

// New creates a Generator rendering with the given template loader
func New(loader TemplateLoader, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		loader: loader,
		logger: logger,
	}
}

// WriteHG writes the binding-description (.hg) file of a plugin
func (g *Generator) WriteHG(w io.Writer, plugin *introspection.Plugin) error {
	return g.loader.Execute(HGTemplate, w, NewTemplateData(plugin))
}

// WriteCCG writes the implementation-binding-description (.ccg) file of a plugin
func (g *Generator) WriteCCG(w io.Writer, plugin *introspection.Plugin) error {
	return g.loader.Execute(CCGTemplate, w, NewTemplateData(plugin))
}

// WriteMissingHG writes the .hg stub used when the registry does not know the plugin
func (g *Generator) WriteMissingHG(w io.Writer, pluginName string, opts introspection.Options) error {
	return g.loader.Execute(MissingHGTemplate, w, NewMissingTemplateData(pluginName, opts))
}

// OutputBaseName returns the file name, without extension, used for a C++ class
func OutputBaseName(cppTypeName string) string {
	return strings.ToLower(cppTypeName)
}

// Generate writes both the .hg and the .ccg file of a plugin into outputDir
func (g *Generator) Generate(plugin *introspection.Plugin, outputDir string) ([]string, error) {
	data := NewTemplateData(plugin)
	base := filepath.Join(outputDir, OutputBaseName(plugin.CppTypeName))

	var generatedFiles []string
	for _, f := range []struct {
		template string
		path     string
	}{
		{HGTemplate, base + ".hg"},
		{CCGTemplate, base + ".ccg"},
	} {
		if err := g.loader.GenerateFile(f.template, f.path, data); err != nil {
			return generatedFiles, fmt.Errorf("failed to generate %s: %w", f.path, err)
		}
		generatedFiles = append(generatedFiles, f.path)
	}

	g.logger.Info("generated plugin files", "plugin", plugin.PluginName, "files", generatedFiles)
	return generatedFiles, nil
}

// GenerateMissing writes the .hg stub for a plugin the registry does not know
func (g *Generator) GenerateMissing(pluginName, cppTypeName string, opts introspection.Options, outputDir string) (string, error) {
	path := filepath.Join(outputDir, OutputBaseName(cppTypeName)+".hg")
	if err := g.loader.GenerateFile(MissingHGTemplate, path, NewMissingTemplateData(pluginName, opts)); err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", path, err)
	}
	g.logger.Warn("plugin not found, generated stub", "plugin", pluginName, "file", path)
	return path, nil
}
