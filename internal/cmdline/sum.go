package cmdline

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/summation"
)

var sumCmd = &cobra.Command{
	Use:   "sum <report.json>...",
	Short: "Combine previously-exported JSON reports into one total",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSum,
}

func runSum(cmd *cobra.Command, args []string) error {
	reports := make([]model.Report, 0, len(args))
	for _, path := range args {
		r, err := readReport(path)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	combined := summation.Sum(reports...)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(combined); err != nil {
		return fmt.Errorf("encode combined report: %w", err)
	}
	return nil
}
