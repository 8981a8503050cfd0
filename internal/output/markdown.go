package output

import (
	"fmt"
	"io"

	"github.com/loclens/loclens/internal/model"
)

func renderMarkdown(w io.Writer, summary model.Summary, byFile bool) error {
	if byFile {
		fmt.Fprintln(w, "| File | Language | Blank | Comment | Code |")
		fmt.Fprintln(w, "|---|---|---|---|---|")
		for _, f := range summary.Files {
			fmt.Fprintf(w, "| %s | %s | %d | %d | %d |\n", f.Path, f.Language, f.Blanks, f.Comments, f.Code)
		}
		fmt.Fprintf(w, "| **SUM** |  | %d | %d | %d |\n", summary.Totals.Blanks, summary.Totals.Comments, summary.Totals.Code)
		return nil
	}

	fmt.Fprintln(w, "| Language | Files | Blank | Comment | Code |")
	fmt.Fprintln(w, "|---|---|---|---|---|")
	for _, l := range summary.Languages {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d |\n", l.Language, l.Files, l.Blanks, l.Comments, l.Code)
	}
	fmt.Fprintf(w, "| **SUM** | %d | %d | %d | %d |\n",
		summary.Totals.Files, summary.Totals.Blanks, summary.Totals.Comments, summary.Totals.Code)
	return nil
}
