package generator

import (
	"testing"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
	"github.com/stretchr/testify/assert"
)

var (
	typeVoid    = introspection.TypeRef{Name: "void"}
	typeGuint   = introspection.TypeRef{Name: "guint"}
	typePad     = introspection.TypeRef{Name: "GstPad", Kind: introspection.KindObject}
	typeFactory = introspection.TypeRef{Name: "GstElementFactory", Kind: introspection.KindObject}
	typeCaps    = introspection.TypeRef{Name: "GstCaps", Kind: introspection.KindBoxed, MiniObject: true}
	typeBuffer  = introspection.TypeRef{Name: "GstBuffer", Kind: introspection.KindBoxed, MiniObject: true}
	typeTagList = introspection.TypeRef{Name: "GstTagList", Kind: introspection.KindBoxed, MiniObject: true}
	typeStruct  = introspection.TypeRef{Name: "GstStructure", Kind: introspection.KindBoxed}
	typeLeaky   = introspection.TypeRef{
		Name: "GstQueueLeaky",
		Kind: introspection.KindEnum,
		Values: []introspection.EnumValue{
			{Nick: "no", Value: 0},
			{Nick: "upstream", Value: 1},
			{Nick: "downstream", Value: 2},
		},
	}
	typeSelectResult = introspection.TypeRef{
		Name: "GstAutoplugSelectResult",
		Kind: introspection.KindEnum,
		Values: []introspection.EnumValue{
			{Nick: "try", Value: 0},
			{Nick: "expose", Value: 1},
			{Nick: "skip", Value: 2},
		},
	}
)

func queuePlugin() *introspection.Plugin {
	return &introspection.Plugin{
		PluginName:        "queue",
		CTypeName:         "GstQueue",
		CParentTypeName:   "GstElement",
		CppTypeName:       "Queue",
		CppParentTypeName: "Element",
		CastMacro:         "GST_QUEUE",
		ParentInclude:     "gstreamermm",
		ParentNamespace:   "Gst",
		Options: introspection.Options{
			Namespace: "Gst",
			DefsFile:  "gst",
			Target:    "gstreamermm",
		},
		Element: &introspection.Element{
			TypeName: "GstQueue",
			Properties: []introspection.Property{
				{Name: "max-size-buffers", Type: typeGuint},
			},
			Signals: []introspection.Signal{
				{Name: "overrun", ReturnType: typeVoid},
			},
		},
	}
}

func TestNewTemplateDataProperties(t *testing.T) {
	plugin := queuePlugin()
	plugin.Element.Properties = append([]introspection.Property{{Name: "leaky", Type: typeLeaky}}, plugin.Element.Properties...)

	data := NewTemplateData(plugin)

	assert.Equal(t, GeneratorName, data.Generator)
	assert.Equal(t,
		"  _WRAP_PROPERTY(\"leaky\", _TRANSLATE(GstQueueLeaky, `return'))\n"+
			"  _WRAP_PROPERTY(\"max-size-buffers\", _TRANSLATE(guint, `return'))\n",
		data.PropertyWrapStatements)
	assert.Equal(t, "_WRAP_PLUGIN_ENUM(Gst,QueueLeaky)", data.EnumWrapStatements)
	assert.Equal(t, "_PLUGIN_ENUM_GET_TYPE_FUNC(GstQueueLeaky)", data.EnumGTypeFunctionDefinitions)
	assert.Empty(t, data.CEnumDefinitions, "property enums are not redefined in C")
	assert.Equal(t,
		"_TRANSLATION_INCLUDE(GstQueueLeaky)dnl\n"+
			"_TRANSLATION_INCLUDE(guint)dnl\n"+
			"_TRANSLATION_INCLUDE(void)dnl\n",
		data.IncludeMacroCalls)
}

func TestNewTemplateDataSignals(t *testing.T) {
	plugin := queuePlugin()
	plugin.PluginName = "decodebin"
	plugin.CTypeName = "GstDecodeBin"
	plugin.Element.Properties = nil
	plugin.Element.Signals = []introspection.Signal{
		{
			Name:       "autoplug-select",
			ReturnType: typeSelectResult,
			Params:     []introspection.TypeRef{typePad, typeCaps, typeFactory},
		},
		{Name: "drained", ReturnType: typeVoid},
	}

	data := NewTemplateData(plugin)

	assert.Equal(t,
		"#m4 _CONVERSION(``GstPad*'', _LQ()_TRANSLATE(GstPad*,`param')_RQ(), ``Glib::wrap($3, true)'')\n"+
			"#m4 _CONVERSION(``GstCaps*'', _LQ()_TRANSLATE(GstCaps*,`param')_RQ(), ``Gst::wrap($3, true)'')\n"+
			"#m4 _CONVERSION(``GstElementFactory*'', _LQ()_TRANSLATE(GstElementFactory*,`param')_RQ(), ``Glib::wrap($3, true)'')\n"+
			"  _WRAP_SIGNAL(_TRANSLATE(GstAutoplugSelectResult, `return') autoplug_select("+
			"_TRANSLATE(GstPad*, `param') arg0, _TRANSLATE(GstCaps*, `param') arg1, "+
			"_TRANSLATE(GstElementFactory*, `param') arg2), \"autoplug-select\")\n"+
			"  _WRAP_SIGNAL(_TRANSLATE(void, `return') drained(), \"drained\")\n",
		data.SignalWrapStatements)

	assert.Equal(t,
		"  GstAutoplugSelectResult (*autoplug_select) (GstDecodeBin* element, GstPad* arg0, GstCaps* arg1, GstElementFactory* arg2);\n"+
			"  void (*drained) (GstDecodeBin* element);\n",
		data.CClassSignalDeclarations)

	assert.Equal(t, "_C_ENUM_DEFINITION(GstAutoplugSelectResult,try,0,expose,1,skip,2)", data.CEnumDefinitions)
	assert.Equal(t, "_WRAP_PLUGIN_ENUM(Gst,AutoplugSelectResult)", data.EnumWrapStatements)
	assert.Equal(t,
		"_TRANSLATION_INCLUDE(GstAutoplugSelectResult)dnl\n"+
			"_TRANSLATION_INCLUDE(GstPad*)dnl\n"+
			"_TRANSLATION_INCLUDE(GstCaps*)dnl\n"+
			"_TRANSLATION_INCLUDE(GstElementFactory*)dnl\n"+
			"_TRANSLATION_INCLUDE(void)dnl\n",
		data.IncludeMacroCalls)
}

func TestNewTemplateDataInterfaces(t *testing.T) {
	plugin := queuePlugin()
	plugin.Element.Properties = nil
	plugin.Element.Signals = nil
	plugin.Element.Interfaces = []introspection.TypeRef{
		{Name: "GstURIHandler", Kind: introspection.KindInterface},
		{Name: "GstTagSetter", Kind: introspection.KindInterface},
	}

	data := NewTemplateData(plugin)

	assert.Equal(t, "public _TRANSLATE(`GstURIHandler*',`type'), public _TRANSLATE(`GstTagSetter*',`type')", data.CppExtends)
	assert.Equal(t,
		"  _IMPLEMENTS_INTERFACE(_TRANSLATE(`GstURIHandler*',`type'))\n"+
			"  _IMPLEMENTS_INTERFACE(_TRANSLATE(`GstTagSetter*',`type'))\n",
		data.InterfaceMacros)
	assert.Equal(t,
		"_TRANSLATION_INCLUDE(GstURIHandler*)dnl\n"+
			"_TRANSLATION_INCLUDE(GstTagSetter*)dnl\n",
		data.IncludeMacroCalls)
}

func TestReturnConversions(t *testing.T) {
	tests := []struct {
		name     string
		ref      introspection.TypeRef
		expected string
	}{
		{
			name: "boxed",
			ref:  typeStruct,
			expected: "#m4 _CONVERSION(_LQ()_TRANSLATE(GstStructure*,`type')_RQ(), ``GstStructure*'', ``($3).gobj_copy()'')\n" +
				"#m4 _CONVERSION(``GstStructure*'', _LQ()_TRANSLATE(GstStructure*,`return')_RQ(), ``Glib::wrap($3)'')\n",
		},
		{
			name: "tag list",
			ref:  typeTagList,
			expected: "#m4 _CONVERSION(_LQ()_TRANSLATE(GstTagList*,`type')_RQ(), ``GstTagList*'', ``($3).gobj_copy()'')\n" +
				"#m4 _CONVERSION(``GstTagList*'', _LQ()_TRANSLATE(GstTagList*,`return')_RQ(), ``Glib::wrap_taglist($3)'')\n",
		},
		{
			name:     "object",
			ref:      typePad,
			expected: "#m4 _CONVERSION(``GstPad*'', _LQ()_TRANSLATE(GstPad*,`return')_RQ(), ``Glib::wrap($3)'')\n",
		},
		{
			name:     "mini object",
			ref:      introspection.TypeRef{Name: "GstMiniThing", Kind: introspection.KindValue, MiniObject: true},
			expected: "#m4 _CONVERSION(``GstMiniThing*'', _LQ()_TRANSLATE(GstMiniThing*,`return')_RQ(), ``Gst::wrap($3)'')\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, returnConversions(tt.ref))
		})
	}
}

func TestParamConversion(t *testing.T) {
	assert.Equal(t,
		"#m4 _CONVERSION(``GstTagList*'', _LQ()_TRANSLATE(GstTagList*,`param')_RQ(), ``Glib::wrap_taglist($3, true)'')\n",
		paramConversion(typeTagList))
	assert.Equal(t,
		"#m4 _CONVERSION(``GstBuffer*'', _LQ()_TRANSLATE(GstBuffer*,`param')_RQ(), ``Gst::wrap($3, true)'')\n",
		paramConversion(typeBuffer))
}

func TestSignalMethodName(t *testing.T) {
	assert.Equal(t, "new_decoded_pad", signalMethodName("new-decoded-pad"))
	assert.Equal(t, "handoff", signalMethodName("handoff"))
}

func TestTemplateFuncs(t *testing.T) {
	assert.Equal(t, "gst_caps_filter_get_type", getTypeFunc("GST_CAPS_FILTER"))
	assert.Equal(t, "Gst::Element", parentCppClass(queuePlugin()))
}

func TestNewMissingTemplateData(t *testing.T) {
	data := NewMissingTemplateData("nosuch", introspection.Options{DefsFile: "gst", Target: "gstreamermm"})
	assert.Equal(t, "nosuch", data.PluginName)
	assert.Equal(t, "gst", data.DefsFile)
	assert.Equal(t, "gstreamermm", data.Target)
	assert.Empty(t, data.PropertyWrapStatements)
}
