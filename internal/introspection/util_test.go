package introspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastMacro(t *testing.T) {
	tests := []struct {
		typeName string
		expected string
	}{
		{"GstQueue", "GST_QUEUE"},
		{"GstCapsFilter", "GST_CAPS_FILTER"},
		{"GstFileSrc", "GST_FILE_SRC"},
		{"GstFLVDemux", "GST_FLV_DEMUX"},
		{"GstRTPBin", "GST_RTP_BIN"},
		{"GstDecodeBin", "GST_DECODE_BIN"},
		{"gstqueue", "GSTQUEUE"},
		{"G", "G"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.expected, CastMacro(tt.typeName))
		})
	}
}

func TestTypePrefix(t *testing.T) {
	assert.Equal(t, "Gst", TypePrefix("GstQueueLeaky"))
	assert.Equal(t, "Gs", TypePrefix("Gs"))
	assert.Equal(t, "QueueLeaky", TrimTypePrefix("GstQueueLeaky"))
	assert.Equal(t, "", TrimTypePrefix("Gst"))
}

func TestFactoryName(t *testing.T) {
	assert.Equal(t, "queue", FactoryName("GstQueue"))
	assert.Equal(t, "capsfilter", FactoryName("GstCapsFilter"))
	assert.Equal(t, "basetransform", FactoryName("GstBaseTransform"))
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindValue, KindEnum, KindFlags, KindObject, KindInterface, KindBoxed} {
		assert.Equal(t, k, ParseKind(k.String()))
	}
	assert.Equal(t, KindValue, ParseKind("GstMiniObject"))
}

func TestTypeRef(t *testing.T) {
	caps := TypeRef{Name: "GstCaps", Kind: KindBoxed, MiniObject: true}
	assert.True(t, caps.IsPointer())
	assert.True(t, caps.IsBoxed())
	assert.False(t, caps.IsEnum())
	assert.Equal(t, "GstCaps*", caps.CType())

	flags := TypeRef{Name: "GstTestFlags", Kind: KindFlags}
	assert.True(t, flags.IsEnum())
	assert.False(t, flags.IsPointer())
	assert.Equal(t, "GstTestFlags", flags.CType())

	assert.True(t, TypeRef{Name: "GstTagList"}.IsTagList())
	assert.Equal(t, "gchararray", TypeRef{Name: "gchararray"}.CType())
}
