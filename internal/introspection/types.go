package introspection

// Kind classifies a reflected GType the way the generator cares about it
type Kind int

const (
	KindValue Kind = iota // fundamentals and anything not listed below
	KindEnum
	KindFlags
	KindObject
	KindInterface
	KindBoxed
)

// String returns the lower-case kind name used in caches and logs
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindBoxed:
		return "boxed"
	default:
		return "value"
	}
}

// ParseKind maps a kind name back to a Kind, falling back to KindValue
func ParseKind(s string) Kind {
	switch s {
	case "enum":
		return KindEnum
	case "flags":
		return KindFlags
	case "object":
		return KindObject
	case "interface":
		return KindInterface
	case "boxed":
		return KindBoxed
	default:
		return KindValue
	}
}

// EnumValue represents one member of an enum or flags type
type EnumValue struct {
	Nick  string
	Value int64
}

// TypeRef represents a value type used by a property or signal
type TypeRef struct {
	Name       string // GType name (e.g. GstCaps, gchararray)
	Kind       Kind
	MiniObject bool        // derives from GstMiniObject
	Values     []EnumValue // members of enum and flags types
}

// IsEnum reports whether the type is an enum or flags type
func (t TypeRef) IsEnum() bool {
	return t.Kind == KindEnum || t.Kind == KindFlags
}

// IsBoxed reports whether the type is a boxed type
func (t TypeRef) IsBoxed() bool {
	return t.Kind == KindBoxed
}

// IsPointer reports whether values of the type are passed by pointer in C
func (t TypeRef) IsPointer() bool {
	return t.Kind == KindObject || t.Kind == KindInterface || t.Kind == KindBoxed || t.MiniObject
}

// IsTagList reports whether the type is GstTagList, which needs its own wrap call
func (t TypeRef) IsTagList() bool {
	return t.Name == "GstTagList"
}

// CType returns the C spelling of the type, with a trailing '*' for pointer types
func (t TypeRef) CType() string {
	if t.IsPointer() {
		return t.Name + "*"
	}
	return t.Name
}

// Property represents a property installed directly on an element type
type Property struct {
	Name string
	Type TypeRef
}

// Signal represents a signal registered on an element type.
// Parameter names are not reflected, so only their types are kept.
type Signal struct {
	Name       string
	ReturnType TypeRef
	Params     []TypeRef
}

// Element represents the reflected metadata of a plugin's element type
type Element struct {
	TypeName   string
	Hierarchy  []string // TypeName first, then its ancestors up to the root
	Properties []Property
	Signals    []Signal
	Interfaces []TypeRef // implemented directly, not already implemented by the parent
}

// Plugin is a resolved plugin ready to be rendered
type Plugin struct {
	PluginName        string
	CTypeName         string
	CParentTypeName   string
	CppTypeName       string
	CppParentTypeName string
	CastMacro         string
	ParentInclude     string
	ParentNamespace   string
	Options

	Element *Element
}

// Options holds the target-specific strings the generated files need
type Options struct {
	Namespace string
	DefsFile  string
	Target    string
}
