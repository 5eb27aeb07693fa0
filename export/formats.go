package export

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatLaTeX Format = "latex"
	FormatTSV   Format = "tsv"
)

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatLaTeX: {
		Name:        FormatLaTeX,
		MIMEType:    "application/x-latex",
		Extension:   ".tex",
		Description: "LaTeX fragment - one tabular block per keyword group",
	},
	FormatTSV: {
		Name:        FormatTSV,
		MIMEType:    "text/tab-separated-values",
		Extension:   ".tsv",
		Description: "Tab-separated values - one row per keyword",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}
