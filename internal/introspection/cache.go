package introspection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
)

// cachePlugin mirrors one plugin entry of a gst_plugins_cache.json document
type cachePlugin struct {
	Description string                  `json:"description"`
	Filename    string                  `json:"filename"`
	License     string                  `json:"license"`
	Package     string                  `json:"package"`
	Source      string                  `json:"source"`
	Elements    map[string]cacheElement `json:"elements"`
	OtherTypes  map[string]cacheType    `json:"other-types"`
}

type cacheElement struct {
	LongName   string                   `json:"long-name"`
	Klass      string                   `json:"klass"`
	Rank       string                   `json:"rank"`
	Hierarchy  []string                 `json:"hierarchy"`
	Interfaces []string                 `json:"interfaces"`
	Properties map[string]cacheProperty `json:"properties"`
	Signals    map[string]cacheSignal   `json:"signals"`
}

type cacheProperty struct {
	Blurb    string `json:"blurb"`
	Type     string `json:"type"`
	Readable bool   `json:"readable"`
	Writable bool   `json:"writable"`
}

type cacheSignal struct {
	Args       []cacheArg `json:"args"`
	ReturnType string     `json:"return-type"`
	When       string     `json:"when"`
	Action     bool       `json:"action"`
}

type cacheArg struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type cacheType struct {
	Kind       string           `json:"kind"`
	Hierarchy  []string         `json:"hierarchy"`
	Interfaces []string         `json:"interfaces"`
	Values     []cacheEnumValue `json:"values"`
}

type cacheEnumValue struct {
	Name  string   `json:"name"`
	Desc  string   `json:"desc"`
	Value cacheInt `json:"value"`
}

// cacheInt accepts enum values written either as JSON numbers or as strings
type cacheInt int64

func (c *cacheInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseInt(string(data), 0, 64)
	if err != nil {
		// flags may use the full unsigned range
		u, uerr := strconv.ParseUint(string(data), 0, 64)
		if uerr != nil {
			return fmt.Errorf("invalid enum value %q: %w", data, err)
		}
		v = int64(u)
	}
	*c = cacheInt(v)
	return nil
}

// cachedElement is an element together with the plugin that provides it
type cachedElement struct {
	plugin  string
	element cacheElement
}

// CacheSource serves element metadata from GStreamer plugin cache documents.
// It is read-only once loaded and safe for concurrent use.
type CacheSource struct {
	db       *TypeDB
	elements map[string]cachedElement
	logger   *slog.Logger
}

// NewCacheSource creates an empty cache source classifying types with db
func NewCacheSource(db *TypeDB, logger *slog.Logger) *CacheSource {
	if db == nil {
		db = NewTypeDB()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheSource{
		db:       db,
		elements: make(map[string]cachedElement),
		logger:   logger,
	}
}

// LoadCacheSource creates a cache source from plugin cache files
func LoadCacheSource(paths []string, db *TypeDB, logger *slog.Logger) (*CacheSource, error) {
	s := NewCacheSource(db, logger)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open plugin cache: %w", err)
		}
		err = s.Load(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load plugin cache %s: %w", path, err)
		}
	}
	return s, nil
}

// Load adds the plugins of one cache document.
// Elements already known from an earlier document are kept.
func (s *CacheSource) Load(r io.Reader) error {
	var plugins map[string]cachePlugin
	if err := json.NewDecoder(r).Decode(&plugins); err != nil {
		return fmt.Errorf("failed to decode plugin cache: %w", err)
	}

	// Sorted so duplicate resolution does not depend on map order
	pluginNames := make([]string, 0, len(plugins))
	for name := range plugins {
		pluginNames = append(pluginNames, name)
	}
	sort.Strings(pluginNames)

	for _, pluginName := range pluginNames {
		plugin := plugins[pluginName]

		for typeName, t := range plugin.OtherTypes {
			s.defineOtherType(typeName, t)
		}

		for elementName, element := range plugin.Elements {
			if prev, exists := s.elements[elementName]; exists {
				s.logger.Warn("duplicate element in plugin cache",
					"element", elementName, "kept", prev.plugin, "ignored", pluginName)
				continue
			}
			s.elements[elementName] = cachedElement{plugin: pluginName, element: element}
			s.db.DefineObject(element.Hierarchy, element.Interfaces)
		}

		s.logger.Debug("loaded plugin from cache",
			"plugin", pluginName, "elements", len(plugin.Elements), "types", len(plugin.OtherTypes))
	}
	return nil
}

func (s *CacheSource) defineOtherType(name string, t cacheType) {
	kind := ParseKind(t.Kind)
	switch kind {
	case KindObject:
		hierarchy := t.Hierarchy
		if len(hierarchy) == 0 {
			hierarchy = []string{name}
		}
		s.db.DefineObject(hierarchy, t.Interfaces)
	case KindEnum, KindFlags:
		ref := TypeRef{Name: name, Kind: kind}
		for _, v := range t.Values {
			ref.Values = append(ref.Values, EnumValue{Nick: v.Name, Value: int64(v.Value)})
		}
		s.db.Define(ref)
	case KindValue:
		// an unknown kind must not shadow what GIR already said about the type
		if _, known := s.db.Lookup(name); !known {
			s.db.Define(TypeRef{Name: name, Kind: kind})
		}
	default:
		s.db.Define(TypeRef{Name: name, Kind: kind})
	}
}

// FindElement implements Source
func (s *CacheSource) FindElement(ctx context.Context, pluginName string) (*Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cached, ok := s.elements[pluginName]
	if !ok || len(cached.element.Hierarchy) == 0 {
		return nil, ErrNotFound
	}
	ce := cached.element

	element := &Element{
		TypeName:  ce.Hierarchy[0],
		Hierarchy: append([]string(nil), ce.Hierarchy...),
	}

	for _, name := range sortedKeys(ce.Properties) {
		element.Properties = append(element.Properties, Property{
			Name: name,
			Type: s.classify(ce.Properties[name].Type),
		})
	}

	for _, name := range sortedKeys(ce.Signals) {
		sig := ce.Signals[name]
		signal := Signal{
			Name:       name,
			ReturnType: s.classify(sig.ReturnType),
		}
		for _, arg := range sig.Args {
			signal.Params = append(signal.Params, s.classify(arg.Type))
		}
		element.Signals = append(element.Signals, signal)
	}

	parent := ""
	if len(ce.Hierarchy) > 1 {
		parent = ce.Hierarchy[1]
	}
	for _, iface := range ce.Interfaces {
		if parent != "" {
			implements, known := s.db.Implements(parent, iface)
			if implements {
				continue
			}
			if !known {
				s.logger.Warn("parent type not fully known, interface may be inherited",
					"plugin", pluginName, "parent", parent, "interface", iface,
					"hint", "load the GIR declaring "+parent+" with --gir-file")
			}
		}
		ref := s.classify(iface)
		ref.Kind = KindInterface
		element.Interfaces = append(element.Interfaces, ref)
	}

	return element, nil
}

// HasElement implements Source
func (s *CacheSource) HasElement(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := s.elements[name]
	return ok, nil
}

// ElementNames implements Lister
func (s *CacheSource) ElementNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sortedKeys(s.elements), nil
}

// Close implements Source
func (s *CacheSource) Close() error {
	return nil
}

// classify looks a type name up in the type database
func (s *CacheSource) classify(name string) TypeRef {
	ref, ok := s.db.Lookup(name)
	if !ok {
		s.logger.Debug("unclassified type, treating as plain value", "type", name)
	}
	return ref
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
