package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/loclens/loclens/internal/model"
)

func renderYAML(w io.Writer, summary model.Summary) error {
	report := model.ToReport(summary, "")
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(report)
}
