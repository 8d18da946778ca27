package introspection

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestTypeDB(t *testing.T) *TypeDB {
	db, err := LoadTypeDB([]string{filepath.Join("testdata", "GstTest-1.0.gir")})
	require.NoError(t, err)
	return db
}

func assertImplements(t *testing.T, db *TypeDB, name, iface string) {
	t.Helper()
	implements, known := db.Implements(name, iface)
	assert.True(t, implements, "%s implements %s", name, iface)
	assert.True(t, known)
}

func assertNotImplements(t *testing.T, db *TypeDB, name, iface string) {
	t.Helper()
	implements, known := db.Implements(name, iface)
	assert.False(t, implements, "%s does not implement %s", name, iface)
	assert.True(t, known, "%s has a complete hierarchy", name)
}

func TestTypeDBBuiltins(t *testing.T) {
	db := NewTypeDB()

	ref, ok := db.Lookup("GstBuffer")
	require.True(t, ok)
	assert.Equal(t, KindBoxed, ref.Kind)
	assert.True(t, ref.MiniObject)

	ref, ok = db.Lookup("GstStructure")
	require.True(t, ok)
	assert.Equal(t, KindBoxed, ref.Kind)
	assert.False(t, ref.MiniObject)

	ref, ok = db.Lookup("GstNoSuchType")
	assert.False(t, ok)
	assert.Equal(t, TypeRef{Name: "GstNoSuchType", Kind: KindValue}, ref)

	assert.Equal(t, "GstElement", db.Parent("GstBin"))
	assertImplements(t, db, "GstPipeline", "GstChildProxy")
	assertNotImplements(t, db, "GstElement", "GstChildProxy")
}

func TestTypeDBGIR(t *testing.T) {
	db := loadTestTypeDB(t)

	ref, ok := db.Lookup("GstTestWidget")
	require.True(t, ok)
	assert.Equal(t, KindObject, ref.Kind)
	assert.Equal(t, "GstElement", db.Parent("GstTestWidget"))
	assert.Equal(t, "GstTestWidget", db.Parent("GstTestSubWidget"))

	assertImplements(t, db, "GstTestWidget", "GstURIHandler")
	assertImplements(t, db, "GstTestSubWidget", "GstURIHandler")
	assertNotImplements(t, db, "GstTestSubWidget", "GstChildProxy")

	ref, ok = db.Lookup("GstTestKnob")
	require.True(t, ok)
	assert.Equal(t, KindInterface, ref.Kind)

	ref, ok = db.Lookup("GstTestPacket")
	require.True(t, ok)
	assert.Equal(t, KindBoxed, ref.Kind)
	assert.True(t, ref.MiniObject)

	ref, ok = db.Lookup("GstTestSettings")
	require.True(t, ok)
	assert.Equal(t, KindBoxed, ref.Kind)
	assert.False(t, ref.MiniObject)

	_, ok = db.Lookup("GstTestWidgetClass")
	assert.False(t, ok, "class structs are not registered types")
}

func TestTypeDBGIREnums(t *testing.T) {
	db := loadTestTypeDB(t)

	ref, ok := db.Lookup("GstTestMode")
	require.True(t, ok)
	assert.Equal(t, KindEnum, ref.Kind)
	assert.Equal(t, []EnumValue{{Nick: "fast", Value: 0}, {Nick: "slow", Value: 1}}, ref.Values)

	ref, ok = db.Lookup("GstTestFlags")
	require.True(t, ok)
	assert.Equal(t, KindFlags, ref.Kind)
	assert.Equal(t, []EnumValue{{Nick: "none", Value: 0}, {Nick: "loud", Value: 4}}, ref.Values)
}

func TestTypeDBDefineObject(t *testing.T) {
	db := NewTypeDB()
	db.DefineObject([]string{"GstMyBin", "GstMyBase", "GstBin", "GstElement"}, []string{"GstChildProxy", "GstTagSetter"})

	ref, ok := db.Lookup("GstMyBase")
	require.True(t, ok)
	assert.Equal(t, KindObject, ref.Kind)
	assert.Equal(t, "GstMyBase", db.Parent("GstMyBin"))
	assert.Equal(t, "GstBin", db.Parent("GstMyBase"))
	assertImplements(t, db, "GstMyBin", "GstTagSetter")

	// GstMyBase was only seen as an ancestor
	implements, known := db.Implements("GstMyBase", "GstTagSetter")
	assert.False(t, implements)
	assert.False(t, known)
	assertImplements(t, db, "GstMyBase", "GstChildProxy")

	// known links are kept
	db.DefineObject([]string{"GstBin", "GstObject"}, nil)
	assert.Equal(t, "GstElement", db.Parent("GstBin"))
}

func TestTypeDBImplementsUnknown(t *testing.T) {
	db := NewTypeDB()

	implements, known := db.Implements("GstNoSuchType", "GstPreset")
	assert.False(t, implements)
	assert.False(t, known)

	// a later cache entry for the ancestor itself completes it
	db.DefineObject([]string{"GstMyEnc", "GstMyEncBase", "GstElement"}, []string{"GstPreset"})
	_, known = db.Implements("GstMyEncBase", "GstPreset")
	assert.False(t, known)

	db.DefineObject([]string{"GstMyEncBase", "GstElement"}, []string{"GstPreset"})
	assertImplements(t, db, "GstMyEncBase", "GstPreset")
	assertNotImplements(t, db, "GstMyEncBase", "GstURIHandler")
}

func TestLoadTypeDBMissingFile(t *testing.T) {
	_, err := LoadTypeDB([]string{filepath.Join("testdata", "missing.gir")})
	assert.Error(t, err)
}

func TestTypeDBNames(t *testing.T) {
	names := loadTestTypeDB(t).Names()
	assert.Contains(t, names, "GstTestWidget")
	assert.Contains(t, names, "GstElement")
	assert.IsIncreasing(t, names)
}
