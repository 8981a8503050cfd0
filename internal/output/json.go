package output

import (
	"encoding/json"
	"io"

	"github.com/loclens/loclens/internal/model"
)

func renderJSON(w io.Writer, summary model.Summary) error {
	report := model.ToReport(summary, "")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
