package cmdline

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/loclens/loclens/internal/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List every registered language name",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	reg, err := lang.New()
	if err != nil {
		return err
	}

	names := reg.Languages()
	sort.Strings(names)

	w := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
