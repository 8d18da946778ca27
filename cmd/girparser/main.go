// Command-line tool for checking how GIR files classify GStreamer types
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v3"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

// typeInfo is the dump of one classified type
type typeInfo struct {
	Name       string                    `json:"name" yaml:"name"`
	Kind       string                    `json:"kind" yaml:"kind"`
	MiniObject bool                      `json:"mini_object,omitempty" yaml:"mini_object,omitempty"`
	Parent     string                    `json:"parent,omitempty" yaml:"parent,omitempty"`
	Values     []introspection.EnumValue `json:"values,omitempty" yaml:"values,omitempty"`
}

var cli struct {
	Input    []string `arg:"" help:"GIR files to load" type:"existingfile"`
	Filter   string   `help:"Only dump types whose name starts with this prefix"`
	Format   string   `help:"Output format" enum:"json,yaml" default:"yaml"`
	Builtins bool     `help:"Also dump the built-in types"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("girparser"),
		kong.Description("Dump how GIR files classify GObject types"),
		kong.UsageOnError(),
	)

	db, err := introspection.LoadTypeDB(cli.Input)
	ctx.FatalIfErrorf(err)

	builtins := introspection.NewTypeDB()
	var types []typeInfo
	for _, name := range db.Names() {
		if cli.Filter != "" && !strings.HasPrefix(name, cli.Filter) {
			continue
		}
		if _, isBuiltin := builtins.Lookup(name); isBuiltin && !cli.Builtins {
			continue
		}
		ref, _ := db.Lookup(name)
		types = append(types, typeInfo{
			Name:       name,
			Kind:       ref.Kind.String(),
			MiniObject: ref.MiniObject,
			Parent:     db.Parent(name),
			Values:     ref.Values,
		})
	}

	var data []byte
	switch cli.Format {
	case "json":
		data, err = json.MarshalIndent(types, "", "  ")
	default:
		data, err = yaml.Marshal(types)
	}
	ctx.FatalIfErrorf(err)

	_, err = os.Stdout.Write(data)
	ctx.FatalIfErrorf(err)
	fmt.Fprintf(os.Stderr, "%d types from %d GIR files (%s)\n", len(types), len(cli.Input), strings.Join(baseNames(cli.Input), ", "))
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
