package introspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// wrappedBaseClasses lists C types that already have a hand-written gstreamermm wrapper.
// Keep it sorted, it is binary searched.
var wrappedBaseClasses = []string{
	"GstAudioFilter",
	"GstAudioSink",
	"GstAudioSrc",
	"GstBaseAudioSink",
	"GstBaseAudioSrc",
	"GstBaseSink",
	"GstBaseSrc",
	"GstBaseTransform",
	"GstBin",
	"GstCddaParanoiaSrc",
	"GstElement",
	"GstPipeline",
	"GstPushSrc",
	"GstVideoSink",
}

// gstreamermmParents are C++ parent names that always live in the Gst namespace
var gstreamermmParents = map[string]bool{
	"AudioFilter":   true,
	"AudioSink":     true,
	"AudioSrc":      true,
	"BaseAudioSink": true,
	"BaseAudioSrc":  true,
	"BaseSink":      true,
	"BaseSrc":       true,
	"BaseTransform": true,
	"Bin":           true,
	"CddaBaseSrc":   true,
	"Element":       true,
	"Object":        true,
	"Pipeline":      true,
	"PushSrc":       true,
	"VideoSink":     true,
}

const (
	gstreamermmInclude   = "gstreamermm"
	gstreamermmNamespace = "Gst"
)

// IsWrappedBaseClass reports whether a C type already has a gstreamermm wrapper
func IsWrappedBaseClass(cTypeName string) bool {
	i := sort.SearchStrings(wrappedBaseClasses, cTypeName)
	return i < len(wrappedBaseClasses) && wrappedBaseClasses[i] == cTypeName
}

// Introspection resolves plugins against a metadata Source
type Introspection struct {
	source Source
	logger *slog.Logger
}

// NewIntrospection creates a new Introspection reading from the given source
func NewIntrospection(source Source, logger *slog.Logger) *Introspection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Introspection{
		source: source,
		logger: logger,
	}
}

// Exists reports whether the plugin resolves in the registry
func (v *Introspection) Exists(ctx context.Context, pluginName string) (bool, error) {
	_, err := v.source.FindElement(ctx, pluginName)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Resolve looks the plugin up and derives every name the generated files need
func (v *Introspection) Resolve(ctx context.Context, pluginName, cppTypeName string, opts Options) (*Plugin, error) {
	element, err := v.source.FindElement(ctx, pluginName)
	if err != nil {
		return nil, err
	}

	if opts.Namespace == "" || opts.DefsFile == "" || opts.Target == "" {
		return nil, ErrMissingOptions
	}

	cParentTypeName, err := v.findWrappedParent(ctx, element)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve parent of %s: %w", element.TypeName, err)
	}

	plugin := &Plugin{
		PluginName:        pluginName,
		CTypeName:         element.TypeName,
		CParentTypeName:   cParentTypeName,
		CppTypeName:       cppTypeName,
		CppParentTypeName: TrimTypePrefix(cParentTypeName),
		CastMacro:         CastMacro(element.TypeName),
		Options:           opts,
		Element:           element,
	}

	// gstreamermm base classes always come from the Gst namespace and include dir
	if gstreamermmParents[plugin.CppParentTypeName] {
		plugin.ParentInclude = gstreamermmInclude
		plugin.ParentNamespace = gstreamermmNamespace
	} else {
		plugin.ParentInclude = opts.Target
		plugin.ParentNamespace = opts.Namespace
	}

	v.logger.Debug("resolved plugin",
		"plugin", pluginName,
		"type", plugin.CTypeName,
		"parent", plugin.CParentTypeName,
		"properties", len(element.Properties),
		"signals", len(element.Signals),
		"interfaces", len(element.Interfaces))

	return plugin, nil
}

// findWrappedParent walks up the hierarchy to the first wrapped base class or plugin type
func (v *Introspection) findWrappedParent(ctx context.Context, element *Element) (string, error) {
	for _, ancestor := range element.Hierarchy[min(1, len(element.Hierarchy)):] {
		if IsWrappedBaseClass(ancestor) {
			return ancestor, nil
		}
		isPlugin, err := v.source.HasElement(ctx, FactoryName(ancestor))
		if err != nil {
			return "", err
		}
		if isPlugin {
			return ancestor, nil
		}
		v.logger.Debug("skipping unwrapped ancestor", "type", ancestor)
	}
	return "", ErrNoWrappedParent
}
