package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/loclens/loclens/internal/model"
)

// renderSQL emits a self-contained CREATE TABLE plus one INSERT per
// language, so the output can be piped straight into a SQLite or
// Postgres client.
func renderSQL(w io.Writer, summary model.Summary) error {
	fmt.Fprintln(w, "CREATE TABLE IF NOT EXISTS loclens (language TEXT, files INTEGER, blank INTEGER, comment INTEGER, code INTEGER);")
	for _, l := range summary.Languages {
		fmt.Fprintf(w, "INSERT INTO loclens (language, files, blank, comment, code) VALUES (%s, %d, %d, %d, %d);\n",
			sqlQuote(l.Language), l.Files, l.Blanks, l.Comments, l.Code)
	}
	fmt.Fprintf(w, "INSERT INTO loclens (language, files, blank, comment, code) VALUES ('SUM', %d, %d, %d, %d);\n",
		summary.Totals.Files, summary.Totals.Blanks, summary.Totals.Comments, summary.Totals.Code)
	return nil
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
