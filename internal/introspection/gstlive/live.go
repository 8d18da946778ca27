//go:build cgo && gstlive

// Package gstlive reads element metadata from the GStreamer registry of the running system.
package gstlive

/*
#cgo pkg-config: gstreamer-1.0
#include <gst/gst.h>
#include <stdlib.h>

static gboolean gmm_init(void) {
	return gst_init_check(NULL, NULL, NULL);
}

// Loads the feature so the element type is registered, releasing every factory reference.
static GType gmm_find_element_type(const char *name) {
	GType type = 0;
	GstElementFactory *factory = gst_element_factory_find(name);
	if (factory) {
		GstPluginFeature *loaded = gst_plugin_feature_load(GST_PLUGIN_FEATURE(factory));
		gst_object_unref(factory);
		if (loaded) {
			type = gst_element_factory_get_element_type(GST_ELEMENT_FACTORY(loaded));
			gst_object_unref(loaded);
		}
	}
	return type;
}

static gboolean gmm_has_element(const char *name) {
	GstElementFactory *factory = gst_element_factory_find(name);
	if (!factory)
		return FALSE;
	gst_object_unref(factory);
	return TRUE;
}

// Must match introspection.Kind.
static int gmm_type_kind(GType type) {
	if (G_TYPE_IS_ENUM(type))
		return 1;
	if (G_TYPE_IS_FLAGS(type))
		return 2;
	if (G_TYPE_IS_INTERFACE(type))
		return 4;
	if (g_type_is_a(type, G_TYPE_OBJECT))
		return 3;
	if (g_type_is_a(type, G_TYPE_BOXED))
		return 5;
	return 0;
}

static gboolean gmm_is_mini_object(GType type) {
	return type == GST_TYPE_BUFFER || type == GST_TYPE_BUFFER_LIST ||
		type == GST_TYPE_CAPS || type == GST_TYPE_EVENT ||
		type == GST_TYPE_MESSAGE || type == GST_TYPE_QUERY ||
		type == GST_TYPE_SAMPLE || type == GST_TYPE_TAG_LIST ||
		type == GST_TYPE_CONTEXT || type == GST_TYPE_MEMORY ||
		type == GST_TYPE_TOC || type == GST_TYPE_PROMISE ||
		type == GST_TYPE_MINI_OBJECT;
}

static GType gmm_type_from_name(const gchar *name) {
	// the comparisons register every listed type
	gmm_is_mini_object(G_TYPE_INVALID);
	(void)GST_TYPE_CHILD_PROXY;
	(void)GST_TYPE_BIN;
	return g_type_from_name(name);
}

static GParamSpec **gmm_list_properties(GType type, guint *n) {
	GObjectClass *klass = G_OBJECT_CLASS(g_type_class_ref(type));
	GParamSpec **props = g_object_class_list_properties(klass, n);
	g_type_class_unref(klass);
	return props;
}

static gboolean gmm_type_is_a(GType type, GType is_a_type) {
	return g_type_is_a(type, is_a_type);
}

static gchar **gmm_list_element_names(void) {
	GList *list = gst_element_factory_list_get_elements(GST_ELEMENT_FACTORY_TYPE_ANY, GST_RANK_NONE);
	guint n = g_list_length(list);
	gchar **names = g_new0(gchar *, n + 1);
	guint i = 0;
	for (GList *l = list; l != NULL; l = l->next, i++)
		names[i] = g_strdup(gst_plugin_feature_get_name(GST_PLUGIN_FEATURE(l->data)));
	gst_plugin_feature_list_free(list);
	return names;
}

static GType gmm_strip_static_scope(GType type) {
	return type & ~G_SIGNAL_TYPE_STATIC_SCOPE;
}
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"unsafe"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

var initOnce sync.Once
var initErr error

// Source implements introspection.Source on top of the live GStreamer registry.
// Registry access is serialized.
type Source struct {
	mu     sync.Mutex
	logger *slog.Logger
}

// NewSource initializes GStreamer and returns a live source
func NewSource(logger *slog.Logger) (*Source, error) {
	initOnce.Do(func() {
		if C.gmm_init() == C.FALSE {
			initErr = errors.New("failed to initialize GStreamer")
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{logger: logger}, nil
}

// FindElement implements introspection.Source
func (s *Source) FindElement(ctx context.Context, pluginName string) (*introspection.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cName := C.CString(pluginName)
	defer C.free(unsafe.Pointer(cName))

	gtype := C.gmm_find_element_type(cName)
	if gtype == 0 {
		return nil, introspection.ErrNotFound
	}

	element := &introspection.Element{
		TypeName: typeName(gtype),
	}
	for t := gtype; t != 0; t = C.g_type_parent(t) {
		element.Hierarchy = append(element.Hierarchy, typeName(t))
	}

	element.Properties = properties(gtype)

	sigs, err := signals(gtype)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals of %s: %w", element.TypeName, err)
	}
	element.Signals = sigs
	element.Interfaces = interfaces(gtype)

	s.logger.Debug("introspected live element", "plugin", pluginName, "type", element.TypeName)
	return element, nil
}

// HasElement implements introspection.Source
func (s *Source) HasElement(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return C.gmm_has_element(cName) != C.FALSE, nil
}

// ElementNames implements introspection.Lister
func (s *Source) ElementNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cNames := C.gmm_list_element_names()
	defer C.g_strfreev(cNames)

	var names []string
	for _, name := range unsafe.Slice(cNames, C.g_strv_length(cNames)) {
		names = append(names, gstr(name))
	}
	sort.Strings(names)
	return names, nil
}

// Classify reports how the registry classifies a GType name.
// ok is false when no such type is registered.
func (s *Source) Classify(name string) (introspection.TypeRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	gtype := C.gmm_type_from_name((*C.gchar)(unsafe.Pointer(cName)))
	if gtype == 0 {
		return introspection.TypeRef{Name: name, Kind: introspection.KindValue}, false
	}
	return typeRef(gtype), true
}

// Close implements introspection.Source.
// GStreamer stays initialized for the lifetime of the process.
func (s *Source) Close() error {
	return nil
}

func gstr(p *C.gchar) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(p)))
}

func typeName(t C.GType) string {
	return gstr(C.g_type_name(t))
}

// typeRef classifies a GType, reading enum and flags members
func typeRef(t C.GType) introspection.TypeRef {
	ref := introspection.TypeRef{
		Name:       typeName(t),
		Kind:       introspection.Kind(C.gmm_type_kind(t)),
		MiniObject: C.gmm_is_mini_object(t) != C.FALSE,
	}

	switch ref.Kind {
	case introspection.KindEnum:
		klass := C.g_type_class_ref(t)
		enumClass := (*C.GEnumClass)(unsafe.Pointer(klass))
		for _, v := range unsafe.Slice(enumClass.values, enumClass.n_values) {
			ref.Values = append(ref.Values, introspection.EnumValue{
				Nick:  gstr(v.value_nick),
				Value: int64(v.value),
			})
		}
		C.g_type_class_unref(klass)
	case introspection.KindFlags:
		klass := C.g_type_class_ref(t)
		flagsClass := (*C.GFlagsClass)(unsafe.Pointer(klass))
		for _, v := range unsafe.Slice(flagsClass.values, flagsClass.n_values) {
			ref.Values = append(ref.Values, introspection.EnumValue{
				Nick:  gstr(v.value_nick),
				Value: int64(v.value),
			})
		}
		C.g_type_class_unref(klass)
	}
	return ref
}

// properties lists the properties installed by the type itself, skipping inherited ones
func properties(t C.GType) []introspection.Property {
	var n C.guint
	props := C.gmm_list_properties(t, &n)
	if props == nil {
		return nil
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(props)))

	var result []introspection.Property
	for _, pspec := range unsafe.Slice(props, n) {
		if pspec == nil || pspec.owner_type != t {
			continue
		}
		result = append(result, introspection.Property{
			Name: gstr(C.g_param_spec_get_name(pspec)),
			Type: typeRef(pspec.value_type),
		})
	}
	return result
}

// signals lists the signals registered by the type itself
func signals(t C.GType) ([]introspection.Signal, error) {
	// class_init installs the signals
	klass := C.g_type_class_ref(t)
	defer C.g_type_class_unref(klass)

	var n C.guint
	ids := C.g_signal_list_ids(t, &n)
	if ids == nil {
		return nil, nil
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(ids)))

	var result []introspection.Signal
	for _, id := range unsafe.Slice(ids, n) {
		var q C.GSignalQuery
		C.g_signal_query(id, &q)
		if q.signal_id == 0 {
			return nil, fmt.Errorf("invalid signal id %d", uint(id))
		}

		signal := introspection.Signal{
			Name:       gstr(q.signal_name),
			ReturnType: typeRef(C.gmm_strip_static_scope(q.return_type)),
		}
		if q.n_params > 0 {
			for _, p := range unsafe.Slice(q.param_types, q.n_params) {
				signal.Params = append(signal.Params, typeRef(C.gmm_strip_static_scope(p)))
			}
		}
		result = append(result, signal)
	}
	return result, nil
}

// interfaces lists the interfaces the type adds on top of its parent
func interfaces(t C.GType) []introspection.TypeRef {
	var n C.guint
	ifaces := C.g_type_interfaces(t, &n)
	if ifaces == nil {
		return nil
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(ifaces)))

	parent := C.g_type_parent(t)
	var result []introspection.TypeRef
	for _, iface := range unsafe.Slice(ifaces, n) {
		if C.gmm_type_is_a(parent, iface) != C.FALSE {
			continue
		}
		result = append(result, typeRef(iface))
	}
	return result
}
