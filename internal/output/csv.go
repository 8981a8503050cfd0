package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/loclens/loclens/internal/model"
)

func renderCSV(w io.Writer, summary model.Summary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"language", "files", "blank", "comment", "code"}); err != nil {
		return err
	}
	for _, l := range summary.Languages {
		if err := cw.Write([]string{
			l.Language,
			strconv.FormatInt(l.Files, 10),
			strconv.FormatInt(l.Blanks, 10),
			strconv.FormatInt(l.Comments, 10),
			strconv.FormatInt(l.Code, 10),
		}); err != nil {
			return err
		}
	}
	return cw.Write([]string{
		"SUM",
		strconv.FormatInt(summary.Totals.Files, 10),
		strconv.FormatInt(summary.Totals.Blanks, 10),
		strconv.FormatInt(summary.Totals.Comments, 10),
		strconv.FormatInt(summary.Totals.Code, 10),
	})
}
