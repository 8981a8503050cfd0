// Package output renders a model.Summary in the formats external
// tooling expects: a human-readable table and a family of
// machine-readable interchange formats.
package output

import (
	"fmt"
	"io"

	"github.com/loclens/loclens/internal/model"
)

// Format names a renderer. String values match the --format CLI flag.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatSQL      Format = "sql"
	FormatXML      Format = "xml"
)

// Render writes summary to w in the requested format. byFile selects
// the per-file breakdown instead of the per-language one, where the
// format supports it (table and markdown only; other formats ignore
// it and always render per-language).
func Render(w io.Writer, summary model.Summary, format Format, byFile bool) error {
	switch format {
	case FormatTable, "":
		return renderTable(w, summary, byFile)
	case FormatJSON:
		return renderJSON(w, summary)
	case FormatCSV:
		return renderCSV(w, summary)
	case FormatYAML:
		return renderYAML(w, summary)
	case FormatMarkdown:
		return renderMarkdown(w, summary, byFile)
	case FormatSQL:
		return renderSQL(w, summary)
	case FormatXML:
		return renderXML(w, summary)
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}
