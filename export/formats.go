package export

// Format names a document serialization the renderer can produce.
type Format string

// FormatTurtle is the serialization LV2 hosts read manifests in.
const FormatTurtle Format = "turtle"

// FormatInfo tells the file layer how to name and label a written manifest.
type FormatInfo struct {
	Name Format

	// MIMEType labels the document when it is served.
	MIMEType string

	// Extension replaces the description file extension, dot included.
	Extension string

	// Description is a short human-readable label.
	Description string
}

// FormatRegistry holds the file conventions of each supported format.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "LV2 plugin manifest in Turtle",
	},
}

// GetFormatInfo looks up format in FormatRegistry.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}
