package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"os"

	"github.com/loclens/loclens/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	sumStyle    = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderTop(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// renderTable prints an aligned, lipgloss-styled table. Styling is
// skipped automatically when w is not a terminal (lipgloss degrades
// to plain text on its own, but we also avoid computing box borders
// for piped output since nothing will render them).
func renderTable(w io.Writer, summary model.Summary, byFile bool) error {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}

	if byFile {
		return renderFileTable(w, summary, tty)
	}
	return renderLanguageTable(w, summary, tty)
}

func renderLanguageTable(w io.Writer, summary model.Summary, tty bool) error {
	headers := []string{"Language", "Files", "Blank", "Comment", "Code"}
	rows := make([][]string, 0, len(summary.Languages)+1)
	for _, l := range summary.Languages {
		rows = append(rows, []string{
			l.Language,
			strconv.FormatInt(l.Files, 10),
			strconv.FormatInt(l.Blanks, 10),
			strconv.FormatInt(l.Comments, 10),
			strconv.FormatInt(l.Code, 10),
		})
	}
	sum := []string{
		"SUM", strconv.FormatInt(summary.Totals.Files, 10),
		strconv.FormatInt(summary.Totals.Blanks, 10),
		strconv.FormatInt(summary.Totals.Comments, 10),
		strconv.FormatInt(summary.Totals.Code, 10),
	}
	return writeTable(w, headers, rows, sum, tty)
}

func renderFileTable(w io.Writer, summary model.Summary, tty bool) error {
	headers := []string{"File", "Language", "Blank", "Comment", "Code"}
	rows := make([][]string, 0, len(summary.Files))
	for _, f := range summary.Files {
		rows = append(rows, []string{
			f.Path, f.Language,
			strconv.FormatInt(f.Blanks, 10),
			strconv.FormatInt(f.Comments, 10),
			strconv.FormatInt(f.Code, 10),
		})
	}
	sum := []string{
		"SUM", "",
		strconv.FormatInt(summary.Totals.Blanks, 10),
		strconv.FormatInt(summary.Totals.Comments, 10),
		strconv.FormatInt(summary.Totals.Code, 10),
	}
	return writeTable(w, headers, rows, sum, tty)
}

func writeTable(w io.Writer, headers []string, rows [][]string, sum []string, tty bool) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range append(append([][]string{}, rows...), sum) {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(row []string, style lipgloss.Style) {
		for i, cell := range row {
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			if tty {
				padded = style.Render(padded)
			}
			fmt.Fprint(w, padded, "  ")
		}
		fmt.Fprintln(w)
	}

	printRow(headers, headerStyle)
	for _, row := range rows {
		printRow(row, cellStyle)
	}
	printRow(sum, sumStyle)
	return nil
}
