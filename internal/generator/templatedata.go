package generator

import (
	"strings"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

// GeneratorName is written into the header of every generated file
const GeneratorName = "gmmplugingen"

// TemplateData holds all data needed by any template
type TemplateData struct {
	*introspection.Plugin

	Generator string

	IncludeMacroCalls            string
	CEnumDefinitions             string
	EnumWrapStatements           string
	EnumGTypeFunctionDefinitions string
	PropertyWrapStatements       string
	SignalWrapStatements         string
	CClassSignalDeclarations     string
	CppExtends                   string
	InterfaceMacros              string
}

// NewTemplateData creates a new TemplateData structure with all needed information
func NewTemplateData(plugin *introspection.Plugin) *TemplateData {
	var s statements

	if element := plugin.Element; element != nil {
		s.addProperties(element.Properties)
		s.addSignals(plugin.CTypeName, element.Signals)
		s.addInterfaces(element.Interfaces)
	}

	return &TemplateData{
		Plugin:    plugin,
		Generator: GeneratorName,

		IncludeMacroCalls:            s.includeMacroCalls.String(),
		CEnumDefinitions:             s.cEnumDefinitions.String(),
		EnumWrapStatements:           s.enumWrapStatements.String(),
		EnumGTypeFunctionDefinitions: s.enumGTypeFunctionDefinitions.String(),
		PropertyWrapStatements:       s.propertyWrapStatements.String(),
		SignalWrapStatements:         s.signalWrapStatements.String(),
		CClassSignalDeclarations:     s.cClassSignalDeclarations.String(),
		CppExtends:                   strings.Join(s.cppExtends, ", "),
		InterfaceMacros:              s.interfaceMacros.String(),
	}
}

// NewMissingTemplateData creates the data for a plugin the registry does not know
func NewMissingTemplateData(pluginName string, opts introspection.Options) *TemplateData {
	return &TemplateData{
		Plugin: &introspection.Plugin{
			PluginName: pluginName,
			Options:    opts,
		},
		Generator: GeneratorName,
	}
}
