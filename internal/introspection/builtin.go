package introspection

// builtinType describes a type the generator may meet without any GIR loaded
type builtinType struct {
	Kind       Kind
	MiniObject bool
	Parent     string
	Interfaces []string
}

// builtinTypes covers the GLib fundamentals and the core GStreamer types
var builtinTypes = map[string]builtinType{
	// fundamentals
	"void":       {Kind: KindValue},
	"gchar":      {Kind: KindValue},
	"guchar":     {Kind: KindValue},
	"gboolean":   {Kind: KindValue},
	"gint":       {Kind: KindValue},
	"guint":      {Kind: KindValue},
	"glong":      {Kind: KindValue},
	"gulong":     {Kind: KindValue},
	"gint64":     {Kind: KindValue},
	"guint64":    {Kind: KindValue},
	"gfloat":     {Kind: KindValue},
	"gdouble":    {Kind: KindValue},
	"gchararray": {Kind: KindValue},
	"gpointer":   {Kind: KindValue},
	"GType":      {Kind: KindValue},
	"GVariant":   {Kind: KindValue},
	"GParam":     {Kind: KindValue},

	// GObject
	"GObject":           {Kind: KindObject},
	"GInitiallyUnowned": {Kind: KindObject, Parent: "GObject"},
	"GValueArray":       {Kind: KindBoxed},
	"GStrv":             {Kind: KindBoxed},
	"GBytes":            {Kind: KindBoxed},
	"GDate":             {Kind: KindBoxed},
	"GDateTime":         {Kind: KindBoxed},

	// GStreamer objects
	"GstObject":           {Kind: KindObject, Parent: "GInitiallyUnowned"},
	"GstElement":          {Kind: KindObject, Parent: "GstObject"},
	"GstBin":              {Kind: KindObject, Parent: "GstElement", Interfaces: []string{"GstChildProxy"}},
	"GstPipeline":         {Kind: KindObject, Parent: "GstBin"},
	"GstPad":              {Kind: KindObject, Parent: "GstObject"},
	"GstGhostPad":         {Kind: KindObject, Parent: "GstProxyPad"},
	"GstProxyPad":         {Kind: KindObject, Parent: "GstPad"},
	"GstPadTemplate":      {Kind: KindObject, Parent: "GstObject"},
	"GstClock":            {Kind: KindObject, Parent: "GstObject"},
	"GstSystemClock":      {Kind: KindObject, Parent: "GstClock"},
	"GstBus":              {Kind: KindObject, Parent: "GstObject"},
	"GstPlugin":           {Kind: KindObject, Parent: "GstObject"},
	"GstPluginFeature":    {Kind: KindObject, Parent: "GstObject"},
	"GstElementFactory":   {Kind: KindObject, Parent: "GstPluginFeature"},
	"GstAllocator":        {Kind: KindObject, Parent: "GstObject"},
	"GstBufferPool":       {Kind: KindObject, Parent: "GstObject"},
	"GstDevice":           {Kind: KindObject, Parent: "GstObject"},
	"GstStream":           {Kind: KindObject, Parent: "GstObject"},
	"GstStreamCollection": {Kind: KindObject, Parent: "GstObject"},
	"GstBaseSrc":          {Kind: KindObject, Parent: "GstElement"},
	"GstPushSrc":          {Kind: KindObject, Parent: "GstBaseSrc"},
	"GstBaseSink":         {Kind: KindObject, Parent: "GstElement"},
	"GstBaseTransform":    {Kind: KindObject, Parent: "GstElement"},
	"GstAudioFilter":      {Kind: KindObject, Parent: "GstBaseTransform"},
	"GstAudioSink":        {Kind: KindObject, Parent: "GstAudioBaseSink"},
	"GstAudioSrc":         {Kind: KindObject, Parent: "GstAudioBaseSrc"},
	"GstAudioBaseSink":    {Kind: KindObject, Parent: "GstBaseSink"},
	"GstAudioBaseSrc":     {Kind: KindObject, Parent: "GstPushSrc"},
	"GstVideoSink":        {Kind: KindObject, Parent: "GstBaseSink"},
	"GstVideoFilter":      {Kind: KindObject, Parent: "GstBaseTransform"},

	// GStreamer mini objects and other boxed types
	// mini objects match gmm_is_mini_object in the gstlive source
	"GstMiniObject":    {Kind: KindBoxed, MiniObject: true},
	"GstCaps":          {Kind: KindBoxed, MiniObject: true},
	"GstBuffer":        {Kind: KindBoxed, MiniObject: true},
	"GstBufferList":    {Kind: KindBoxed, MiniObject: true},
	"GstEvent":         {Kind: KindBoxed, MiniObject: true},
	"GstMessage":       {Kind: KindBoxed, MiniObject: true},
	"GstQuery":         {Kind: KindBoxed, MiniObject: true},
	"GstSample":        {Kind: KindBoxed, MiniObject: true},
	"GstTagList":       {Kind: KindBoxed, MiniObject: true},
	"GstContext":       {Kind: KindBoxed, MiniObject: true},
	"GstMemory":        {Kind: KindBoxed, MiniObject: true},
	"GstPromise":       {Kind: KindBoxed, MiniObject: true},
	"GstToc":           {Kind: KindBoxed, MiniObject: true},
	"GstStructure":     {Kind: KindBoxed},
	"GstSegment":       {Kind: KindBoxed},
	"GstDateTime":      {Kind: KindBoxed},
	"GstCapsFeatures":  {Kind: KindBoxed},
	"GstValueArray":    {Kind: KindValue},
	"GstValueList":     {Kind: KindValue},
	"GstFraction":      {Kind: KindValue},
	"GstFractionRange": {Kind: KindValue},

	// interfaces
	"GstURIHandler":       {Kind: KindInterface},
	"GstChildProxy":       {Kind: KindInterface},
	"GstTagSetter":        {Kind: KindInterface},
	"GstTocSetter":        {Kind: KindInterface},
	"GstPreset":           {Kind: KindInterface},
	"GstColorBalance":     {Kind: KindInterface},
	"GstVideoOverlay":     {Kind: KindInterface},
	"GstVideoOrientation": {Kind: KindInterface},
	"GstNavigation":       {Kind: KindInterface},
	"GstStreamVolume":     {Kind: KindInterface},
}

// girAliases maps GIR names of types outside any loaded repository to their GType names
var girAliases = map[string]string{
	"GObject.Object":           "GObject",
	"GObject.InitiallyUnowned": "GInitiallyUnowned",
	"GObject.ValueArray":       "GValueArray",
	"GLib.Bytes":               "GBytes",
	"GLib.Date":                "GDate",
	"GLib.DateTime":            "GDateTime",
	"Gst.Object":               "GstObject",
	"Gst.Element":              "GstElement",
	"Gst.Bin":                  "GstBin",
	"Gst.Pipeline":             "GstPipeline",
	"Gst.ChildProxy":           "GstChildProxy",
	"Gst.URIHandler":           "GstURIHandler",
	"Gst.TagSetter":            "GstTagSetter",
	"Gst.Preset":               "GstPreset",
	"Gst.MiniObject":           "GstMiniObject",
	"GstBase.BaseSrc":          "GstBaseSrc",
	"GstBase.PushSrc":          "GstPushSrc",
	"GstBase.BaseSink":         "GstBaseSink",
	"GstBase.BaseTransform":    "GstBaseTransform",
}
