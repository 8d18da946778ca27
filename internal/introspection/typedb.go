package introspection

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gstreamermm/gmmplugingen/internal/girparser"
)

// typeEntry is what the database knows about one GType.
// Parent and Interfaces may hold GIR qualified names until they are resolved.
type typeEntry struct {
	Kind       Kind
	MiniObject bool
	Parent     string
	Interfaces []string
	Values     []EnumValue
	// Partial marks types only seen as ancestors in a plugin cache; their interfaces are unknown.
	Partial bool
}

// TypeDB classifies GType names using GIR repositories and the built-in table
type TypeDB struct {
	types   map[string]typeEntry
	girName map[string]string // GIR qualified name -> GType name
}

// NewTypeDB creates a database preloaded with the built-in types
func NewTypeDB() *TypeDB {
	db := &TypeDB{
		types:   make(map[string]typeEntry, len(builtinTypes)),
		girName: make(map[string]string, len(girAliases)),
	}
	for name, t := range builtinTypes {
		db.types[name] = typeEntry{
			Kind:       t.Kind,
			MiniObject: t.MiniObject,
			Parent:     t.Parent,
			Interfaces: t.Interfaces,
		}
	}
	for qualified, name := range girAliases {
		db.girName[qualified] = name
	}
	return db
}

// LoadTypeDB creates a database and loads the given GIR files into it
func LoadTypeDB(girFiles []string) (*TypeDB, error) {
	db := NewTypeDB()
	for _, path := range girFiles {
		if err := db.LoadGIRFile(path); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// LoadGIRFile parses a GIR file and adds its types
func (db *TypeDB) LoadGIRFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open GIR file: %w", err)
	}
	defer f.Close()

	gir, err := girparser.ParseGIR(f)
	if err != nil {
		return fmt.Errorf("failed to parse GIR file %s: %w", path, err)
	}
	db.AddGIR(gir)
	return nil
}

// AddGIR adds every registered type of a parsed GIR repository.
// Entries from GIR replace built-in entries of the same name.
func (db *TypeDB) AddGIR(gir *girparser.GIR) {
	for _, ns := range gir.Namespaces {
		for _, class := range ns.Classes {
			if class.TypeName == "" {
				continue
			}
			db.girName[girparser.QualifiedName(ns.Name, class.Name)] = class.TypeName
			entry := typeEntry{
				Kind:   KindObject,
				Parent: girparser.QualifiedName(ns.Name, class.Parent),
			}
			for _, impl := range class.Implements {
				entry.Interfaces = append(entry.Interfaces, girparser.QualifiedName(ns.Name, impl.Name))
			}
			db.types[class.TypeName] = entry
		}

		for _, iface := range ns.Interfaces {
			if iface.TypeName == "" {
				continue
			}
			db.girName[girparser.QualifiedName(ns.Name, iface.Name)] = iface.TypeName
			db.types[iface.TypeName] = typeEntry{Kind: KindInterface}
		}

		for _, record := range ns.Records {
			// Records without a GType are class structs or plain C structs
			if record.TypeName == "" {
				continue
			}
			db.girName[girparser.QualifiedName(ns.Name, record.Name)] = record.TypeName
			db.types[record.TypeName] = typeEntry{
				Kind:       KindBoxed,
				MiniObject: isMiniObjectRecord(ns.Name, record),
			}
		}

		for _, enum := range ns.Enumerations {
			db.addEnum(ns.Name, enum, KindEnum)
		}
		for _, bitfield := range ns.Bitfields {
			db.addEnum(ns.Name, bitfield, KindFlags)
		}
	}
}

func (db *TypeDB) addEnum(namespace string, enum girparser.Enumeration, kind Kind) {
	if enum.TypeName == "" {
		return
	}
	db.girName[girparser.QualifiedName(namespace, enum.Name)] = enum.TypeName

	entry := typeEntry{Kind: kind}
	for _, m := range enum.Members {
		value, err := strconv.ParseInt(m.Value, 10, 64)
		if err != nil {
			continue
		}
		nick := m.Nick
		if nick == "" {
			nick = m.Name
		}
		entry.Values = append(entry.Values, EnumValue{Nick: nick, Value: value})
	}
	db.types[enum.TypeName] = entry
}

// isMiniObjectRecord reports whether a record embeds GstMiniObject as its first member
func isMiniObjectRecord(namespace string, record girparser.Record) bool {
	if len(record.Fields) == 0 {
		return false
	}
	first := record.Fields[0].Type
	return first.CType == "GstMiniObject" ||
		girparser.QualifiedName(namespace, first.Name) == "Gst.MiniObject"
}

// resolve maps a GIR qualified name to a GType name, passing GType names through
func (db *TypeDB) resolve(name string) string {
	if gtype, ok := db.girName[name]; ok {
		return gtype
	}
	return name
}

// Define adds or replaces a type, used for types described by plugin caches
func (db *TypeDB) Define(ref TypeRef) {
	entry := db.types[ref.Name]
	entry.Kind = ref.Kind
	entry.MiniObject = ref.MiniObject
	entry.Values = ref.Values
	db.types[ref.Name] = entry
}

// DefineObject records an object type from its hierarchy (type first, then ancestors).
// Links already known are kept, so GIR data wins over cache data.
func (db *TypeDB) DefineObject(hierarchy []string, interfaces []string) {
	for i, name := range hierarchy {
		entry, known := db.types[name]
		if !known {
			entry.Kind = KindObject
		}
		if entry.Parent == "" && i+1 < len(hierarchy) {
			entry.Parent = hierarchy[i+1]
		}
		if i == 0 {
			if len(entry.Interfaces) == 0 {
				entry.Interfaces = append([]string(nil), interfaces...)
			}
			entry.Partial = false
		} else if !known {
			entry.Partial = true
		}
		db.types[name] = entry
	}
}

// Lookup classifies a GType name.
// Unknown names are reported as plain values with ok set to false.
func (db *TypeDB) Lookup(name string) (TypeRef, bool) {
	entry, ok := db.types[name]
	if !ok {
		return TypeRef{Name: name, Kind: KindValue}, false
	}
	return TypeRef{
		Name:       name,
		Kind:       entry.Kind,
		MiniObject: entry.MiniObject,
		Values:     entry.Values,
	}, true
}

// Names returns every known GType name, sorted
func (db *TypeDB) Names() []string {
	return sortedKeys(db.types)
}

// Parent returns the GType name of a type's parent, or "" when unknown
func (db *TypeDB) Parent(name string) string {
	entry, ok := db.types[name]
	if !ok || entry.Parent == "" {
		return ""
	}
	return db.resolve(entry.Parent)
}

// Implements reports whether a type or one of its ancestors implements iface.
// known is false when a type on the way up is missing or its interfaces were never listed,
// so a false answer cannot be trusted.
func (db *TypeDB) Implements(name, iface string) (implements, known bool) {
	known = true
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		seen[name] = true
		entry, ok := db.types[name]
		if !ok {
			return false, false
		}
		if entry.Partial {
			known = false
		}
		for _, impl := range entry.Interfaces {
			if db.resolve(impl) == iface {
				return true, true
			}
		}
		name = db.Parent(name)
	}
	return false, known
}
