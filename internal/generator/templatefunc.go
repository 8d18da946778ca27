package generator

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

// GetTemplateFuncMap Helper functions for templates
func GetTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"lower":          strings.ToLower,
		"getTypeFunc":    getTypeFunc,
		"parentCppClass": parentCppClass,
	}
}

// getTypeFunc returns the name of the generated get_type function (GST_QUEUE -> gst_queue_get_type)
func getTypeFunc(castMacro string) string {
	return strings.ToLower(castMacro) + "_get_type"
}

// parentCppClass returns the fully qualified C++ parent class
func parentCppClass(p *introspection.Plugin) string {
	return p.ParentNamespace + "::" + p.CppParentTypeName
}

// statements accumulates the macro calls extracted from one element.
// The fields are concatenated in the order the extractors run.
type statements struct {
	includeMacroCalls            strings.Builder
	cEnumDefinitions             strings.Builder
	enumWrapStatements           strings.Builder
	enumGTypeFunctionDefinitions strings.Builder
	propertyWrapStatements       strings.Builder
	signalWrapStatements         strings.Builder
	cClassSignalDeclarations     strings.Builder
	interfaceMacros              strings.Builder
	cppExtends                   []string
}

// addInclude adds a _TRANSLATION_INCLUDE() call for a C type
func (s *statements) addInclude(cType string) {
	s.includeMacroCalls.WriteString("_TRANSLATION_INCLUDE(" + cType + ")dnl\n")
}

// addPluginEnum wraps a plugin specific enum or flags type
func (s *statements) addPluginEnum(t introspection.TypeRef) {
	cType := t.CType()
	s.enumWrapStatements.WriteString("_WRAP_PLUGIN_ENUM(" + introspection.TypePrefix(cType) + "," +
		introspection.TrimTypePrefix(cType) + ")")
	s.enumGTypeFunctionDefinitions.WriteString("_PLUGIN_ENUM_GET_TYPE_FUNC(" + cType + ")")
}

// addProperties generates _WRAP_PROPERTY() statements
func (s *statements) addProperties(props []introspection.Property) {
	for _, prop := range props {
		cType := prop.Type.CType()

		if prop.Type.IsEnum() {
			s.addPluginEnum(prop.Type)
		}

		s.propertyWrapStatements.WriteString(fmt.Sprintf("  _WRAP_PROPERTY(\"%s\", _TRANSLATE(%s, `return'))\n",
			prop.Name, cType))
		s.addInclude(cType)
	}
}

// addSignals generates _WRAP_SIGNAL() statements, their conversions and the C class slots
func (s *statements) addSignals(cTypeName string, signals []introspection.Signal) {
	for _, sig := range signals {
		var convertMacros strings.Builder
		var wrapStatement strings.Builder

		methodName := signalMethodName(sig.Name)
		ret := sig.ReturnType
		retCType := ret.CType()

		if ret.IsEnum() {
			s.addPluginEnum(ret)
			s.cEnumDefinitions.WriteString(cEnumDefinition(ret))
		} else if ret.IsPointer() {
			convertMacros.WriteString(returnConversions(ret))
		}

		s.addInclude(retCType)

		wrapStatement.WriteString("  _WRAP_SIGNAL(_TRANSLATE(" + retCType + ", `return') " + methodName + "(")
		s.cClassSignalDeclarations.WriteString("  " + retCType + " (*" + methodName + ") (" + cTypeName + "* element")

		for i, param := range sig.Params {
			paramName := "arg" + strconv.Itoa(i)
			paramCType := param.CType()

			s.addInclude(paramCType)

			if param.IsEnum() {
				s.addPluginEnum(param)
				s.cEnumDefinitions.WriteString(cEnumDefinition(param))
			}
			if param.IsPointer() {
				convertMacros.WriteString(paramConversion(param))
			}

			wrapStatement.WriteString("_TRANSLATE(" + paramCType + ", `param') " + paramName)
			s.cClassSignalDeclarations.WriteString(", " + paramCType + " " + paramName)

			if i < len(sig.Params)-1 {
				wrapStatement.WriteString(", ")
			}
		}

		wrapStatement.WriteString("), \"" + sig.Name + "\")\n")
		s.signalWrapStatements.WriteString(convertMacros.String())
		s.signalWrapStatements.WriteString(wrapStatement.String())
		s.cClassSignalDeclarations.WriteString(");\n")
	}
}

// addInterfaces generates _IMPLEMENTS_INTERFACE() statements and the class base list
func (s *statements) addInterfaces(interfaces []introspection.TypeRef) {
	for _, iface := range interfaces {
		cType := iface.Name + "*"
		s.cppExtends = append(s.cppExtends, "public _TRANSLATE(`"+cType+"',`type')")
		s.interfaceMacros.WriteString("  _IMPLEMENTS_INTERFACE(_TRANSLATE(`" + cType + "',`type'))\n")
		s.addInclude(cType)
	}
}

// signalMethodName converts a signal name to a C++ method name (new-pad -> new_pad)
func signalMethodName(signalName string) string {
	return strings.ReplaceAll(signalName, "-", "_")
}

// cEnumDefinition generates a _C_ENUM_DEFINITION() call listing nick,value pairs
func cEnumDefinition(t introspection.TypeRef) string {
	var result strings.Builder
	result.WriteString("_C_ENUM_DEFINITION(" + t.CType() + ",")
	for i, v := range t.Values {
		result.WriteString(v.Nick + "," + strconv.FormatInt(v.Value, 10))
		if i < len(t.Values)-1 {
			result.WriteString(",")
		}
	}
	result.WriteString(")")
	return result.String()
}

// returnConversions generates the conversions needed for a pointer signal return.
// Boxed returns are unwrapped with gobj_copy(); the temporary wrapper frees its own value.
func returnConversions(t introspection.TypeRef) string {
	cType := t.CType()
	if t.IsBoxed() {
		unwrap := "#m4 _CONVERSION(_LQ()_TRANSLATE(" + cType + ",`type')_RQ(), ``" + cType +
			"'', ``($3).gobj_copy()'')\n"
		wrapCall := "Glib::wrap($3)"
		if t.IsTagList() {
			// GstTagList is a GstStructure, so it has its own wrap function
			wrapCall = "Glib::wrap_taglist($3)"
		}
		return unwrap + "#m4 _CONVERSION(``" + cType + "'', _LQ()_TRANSLATE(" + cType +
			",`return')_RQ(), ``" + wrapCall + "'')\n"
	}

	wrapCall := "Glib::wrap($3)"
	if t.MiniObject {
		wrapCall = "Gst::wrap($3)"
	}
	return "#m4 _CONVERSION(``" + cType + "'', _LQ()_TRANSLATE(" + cType +
		",`return')_RQ(), ``" + wrapCall + "'')\n"
}

// paramConversion generates the wrapping conversion for a pointer signal parameter
func paramConversion(t introspection.TypeRef) string {
	cType := t.CType()
	wrapCall := "Glib::wrap($3, true)"
	switch {
	case t.IsTagList():
		wrapCall = "Glib::wrap_taglist($3, true)"
	case t.MiniObject:
		wrapCall = "Gst::wrap($3, true)"
	}
	return "#m4 _CONVERSION(``" + cType + "'', _LQ()_TRANSLATE(" + cType +
		",`param')_RQ(), ``" + wrapCall + "'')\n"
}
