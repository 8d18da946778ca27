// Package manifest reads the list of plugins a batch run wraps.
//
// A manifest may be written in YAML, TOML or JSON:
//
//	namespace: Gst
//	defs: gst
//	target: gstreamermm
//	plugins:
//	  - plugin: capsfilter
//	    class: CapsFilter
//	  - plugin: queue
//	    class: Queue
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Entry maps one plugin to the C++ class wrapping it
type Entry struct {
	Plugin string `json:"plugin" yaml:"plugin" toml:"plugin"`
	Class  string `json:"class" yaml:"class" toml:"class"`
}

// Manifest describes a batch of plugins sharing namespace, defs file and target
type Manifest struct {
	Namespace string  `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	DefsFile  string  `json:"defs,omitempty" yaml:"defs,omitempty" toml:"defs,omitempty"`
	Target    string  `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Plugins   []Entry `json:"plugins" yaml:"plugins" toml:"plugins"`
}

// Format identifies a manifest encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entry is complete and output files do not collide
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[string]string)
	for i, e := range m.Plugins {
		if e.Plugin == "" || e.Class == "" {
			errs = append(errs, fmt.Errorf("entry %d: plugin and class are required", i))
			continue
		}
		key := strings.ToLower(e.Class)
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("entry %d: class %s already used by plugin %s", i, e.Class, prev))
			continue
		}
		seen[key] = e.Plugin
	}
	return errors.Join(errs...)
}
