// Package cmd holds the gmmplugingen command line.
package cmd

import (
	"log/slog"

	"github.com/gstreamermm/gmmplugingen/internal/generator"
)

// CLI is the root command. Globals are accepted before or after the subcommand.
type CLI struct {
	Config string `help:"Configuration file (json, yaml or toml)" type:"path" env:"GMMPLUGINGEN_CONFIG"`

	Globals `embed:""`

	HG           HG               `cmd:"" name:"hg" help:"Generate a preliminary binding-description (.hg) file"`
	CCG          CCG              `cmd:"" name:"ccg" help:"Generate an implementation-binding-description (.ccg) file"`
	Exists       Exists           `cmd:"" help:"Exit successfully if the plugin exists, with failure otherwise"`
	Batch        Batch            `cmd:"" help:"Generate .hg and .ccg files for every plugin of a manifest"`
	List         List             `cmd:"" help:"List the plugins known to the metadata source"`
	TemplatesCmd TemplatesCommand `cmd:"" name:"templates" help:"Manage templates"`
	ConfigCmd    ConfigCommand    `cmd:"" name:"config" help:"Manage configuration files"`
}

// TemplatesCommand groups template subcommands.
type TemplatesCommand struct {
	Extract TemplatesExtract `cmd:"" help:"Extract the embedded templates to a directory for customization"`
}

// TemplatesExtract writes the embedded templates so they can be passed back with --templates.
type TemplatesExtract struct {
	Dir string `arg:"" help:"Destination directory" type:"path"`
}

func (c *TemplatesExtract) Run(logger *slog.Logger) error {
	return generator.ExtractEmbeddedFS(generator.EmbeddedTemplates(), c.Dir, logger)
}
