package girparser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ParseGIR parses GIR data from an io.Reader
func ParseGIR(r io.Reader) (*GIR, error) {
	// Read the entire file
	xmlData, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML data: %w", err)
	}

	// Simple pre-processing to handle namespaces
	// Replace namespaced attributes with regular attributes
	xmlString := string(xmlData)
	xmlString = strings.ReplaceAll(xmlString, "c:type", "ctype")
	xmlString = strings.ReplaceAll(xmlString, "c:identifier", "cidentifier")
	xmlString = strings.ReplaceAll(xmlString, "glib:name", "glibname")

	// Parse the modified XML
	var gir GIR
	decoder := xml.NewDecoder(strings.NewReader(xmlString))
	if err := decoder.Decode(&gir); err != nil {
		return nil, fmt.Errorf("failed to decode GIR XML: %w", err)
	}

	return &gir, nil
}

// GIR represents the root element of a GIR file
type GIR struct {
	XMLName    xml.Name    `xml:"repository"`
	Version    string      `xml:"version,attr"`
	Includes   []Include   `xml:"include"`
	Namespaces []Namespace `xml:"namespace"`
}

// Include names another repository this one depends on
type Include struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// Namespace represents a GIR namespace
type Namespace struct {
	Name          string        `xml:"name,attr"`
	Version       string        `xml:"version,attr"`
	SharedLibrary string        `xml:"shared-library,attr"`
	Classes       []Class       `xml:"class"`
	Interfaces    []Interface   `xml:"interface"`
	Records       []Record      `xml:"record"`
	Enumerations  []Enumeration `xml:"enumeration"`
	Bitfields     []Enumeration `xml:"bitfield"`
}

// Class represents a GObject class.
// TypeName maps glib:type-name, the GType name used at runtime.
type Class struct {
	Name       string       `xml:"name,attr"`
	CType      string       `xml:"ctype,attr"`
	TypeName   string       `xml:"type-name,attr"`
	Parent     string       `xml:"parent,attr"`
	Abstract   bool         `xml:"abstract,attr"`
	Implements []Implements `xml:"implements"`
}

// Implements names an interface implemented by a class
type Implements struct {
	Name string `xml:"name,attr"`
}

// Interface represents a GObject interface
type Interface struct {
	Name          string         `xml:"name,attr"`
	CType         string         `xml:"ctype,attr"`
	TypeName      string         `xml:"type-name,attr"`
	Prerequisites []Prerequisite `xml:"prerequisite"`
}

// Prerequisite names a type an interface requires of its implementors
type Prerequisite struct {
	Name string `xml:"name,attr"`
}

// Record represents a C structure, registered as a boxed type when TypeName is set
type Record struct {
	Name     string  `xml:"name,attr"`
	CType    string  `xml:"ctype,attr"`
	TypeName string  `xml:"type-name,attr"`
	Fields   []Field `xml:"field"`
}

// Field represents a structure member
type Field struct {
	Name string `xml:"name,attr"`
	Type Type   `xml:"type"`
}

// Enumeration represents an enumeration or bitfield
type Enumeration struct {
	Name     string   `xml:"name,attr"`
	CType    string   `xml:"ctype,attr"`
	TypeName string   `xml:"type-name,attr"`
	Members  []Member `xml:"member"`
}

// Member represents a value of an enumeration or bitfield
type Member struct {
	Name        string `xml:"name,attr"`
	Value       string `xml:"value,attr"`
	CIdentifier string `xml:"cidentifier,attr"`
	Nick        string `xml:"nick,attr"`
	// GlibName is the GEnumValue value_name; kept apart so it does not overwrite Name.
	GlibName string `xml:"glibname,attr"`
}

// Type represents a data type
type Type struct {
	Name  string `xml:"name,attr"`
	CType string `xml:"ctype,attr"`
}

// QualifiedName prefixes a GIR name with its namespace unless it already carries one
func QualifiedName(namespace, name string) string {
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	return namespace + "." + name
}
