package cmdline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loclens/loclens/internal/diffrpt"
	"github.com/loclens/loclens/internal/model"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-report.json> <new-report.json>",
	Short: "Compare two exported JSON reports",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldReport, err := readReport(args[0])
	if err != nil {
		return err
	}
	newReport, err := readReport(args[1])
	if err != nil {
		return err
	}

	deltas := diffrpt.Diff(oldReport, newReport)
	w := cmd.OutOrStdout()
	for _, d := range deltas {
		switch {
		case d.Added:
			fmt.Fprintf(w, "+ %s: code=%d comment=%d blank=%d files=%d\n", d.Language, d.CodeDiff, d.CommentDiff, d.BlankDiff, d.NFilesDiff)
		case d.Removed:
			fmt.Fprintf(w, "- %s\n", d.Language)
		default:
			fmt.Fprintf(w, "  %s: code=%+d comment=%+d blank=%+d files=%+d\n", d.Language, d.CodeDiff, d.CommentDiff, d.BlankDiff, d.NFilesDiff)
		}
	}
	return nil
}

func readReport(path string) (model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Report{}, model.NewIOError(path, err)
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return model.Report{}, model.NewInvalidConfig("malformed report "+path, err)
	}
	return report, nil
}
