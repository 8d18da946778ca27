package introspection

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no element factory is registered under a plugin name
	ErrNotFound = errors.New("unrecognized GStreamer element type")

	// ErrMissingOptions is returned when namespace, defs file or target are not set
	ErrMissingOptions = errors.New("a namespace, a default defs file and a target directory must be supplied")

	// ErrNoWrappedParent is returned when no ancestor is a wrapped base class or a plugin
	ErrNoWrappedParent = errors.New("no wrapped base class found in type hierarchy")
)

// Source reads element metadata from a GStreamer type registry.
// Implementations only describe what the registry holds; rendering lives in the generator.
type Source interface {
	// FindElement resolves a plugin name (as used by gst-inspect) to its element type.
	// It returns ErrNotFound when the registry has no such element factory.
	FindElement(ctx context.Context, pluginName string) (*Element, error)

	// HasElement reports whether an element factory with the given name exists
	HasElement(ctx context.Context, name string) (bool, error)

	// Close releases any registry handles held by the source
	Close() error
}

// Lister is implemented by sources that can enumerate their element factories
type Lister interface {
	ElementNames(ctx context.Context) ([]string, error)
}
