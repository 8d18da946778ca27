package introspection

import (
	"strings"
)

// typePrefixLen is the length of the namespace prefix of GStreamer type names ("Gst", "Gtk")
const typePrefixLen = 3

// CastMacro derives the cast macro of a C type name (e.g. GstCapsFilter -> GST_CAPS_FILTER).
// Words are split at case changes once at least two characters separate them from the
// previous split, so runs of capitals such as FLV stay together.
func CastMacro(typeName string) string {
	if typeName == "" {
		return ""
	}

	// Walk backwards, the last char is treated as lower case.
	var out []byte
	prevIsUpper := false
	prevIsLower := true
	sinceUnderscore := 0

	prepend := func(c byte) { out = append([]byte{c}, out...) }

	for i := len(typeName) - 1; i > 0; i, sinceUnderscore = i-1, sinceUnderscore+1 {
		c := typeName[i]
		if isASCIIUpper(c) {
			prepend(c)
			if prevIsLower && sinceUnderscore > 1 {
				prepend('_')
				sinceUnderscore = 0
			}
			prevIsUpper = true
			prevIsLower = false
		} else {
			if prevIsUpper && sinceUnderscore > 1 {
				prepend('_')
				sinceUnderscore = 0
			}
			prepend(toASCIIUpper(c))
			prevIsUpper = false
			prevIsLower = true
		}
	}

	prepend(toASCIIUpper(typeName[0]))
	return string(out)
}

// TrimTypePrefix strips the namespace prefix of a C type name (GstQueue -> Queue)
func TrimTypePrefix(typeName string) string {
	if len(typeName) <= typePrefixLen {
		return ""
	}
	return typeName[typePrefixLen:]
}

// TypePrefix returns the namespace prefix of a C type name (GstQueue -> Gst)
func TypePrefix(typeName string) string {
	if len(typeName) < typePrefixLen {
		return typeName
	}
	return typeName[:typePrefixLen]
}

// FactoryName returns the element factory name a plugin type would be registered under
func FactoryName(typeName string) string {
	return strings.ToLower(TrimTypePrefix(typeName))
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toASCIIUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
