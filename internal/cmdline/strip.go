package cmdline

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/strip"
)

var stripFlags struct {
	language string
	output   string
}

var stripCmd = &cobra.Command{
	Use:   "strip <file>",
	Short: "Print a file with comment lines removed",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

func init() {
	stripCmd.Flags().StringVar(&stripFlags.language, "lang", "", "force the language instead of detecting it from the extension")
	stripCmd.Flags().StringVarP(&stripFlags.output, "output", "o", "", "write to this file instead of stdout")
}

func runStrip(cmd *cobra.Command, args []string) error {
	path := args[0]

	reg, err := lang.New()
	if err != nil {
		return err
	}

	var rs *lang.Ruleset
	var ok bool
	if stripFlags.language != "" {
		rs, ok = reg.GetCI(stripFlags.language)
	} else {
		rs, ok = reg.Detect(path)
	}
	if !ok {
		return model.NewInvalidPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.NewIOError(path, err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	if stripFlags.output != "" {
		outFile, err := os.Create(stripFlags.output)
		if err != nil {
			return model.NewIOError(stripFlags.output, err)
		}
		defer outFile.Close()
		out = outFile
	}

	return strip.Strip(out, f, rs)
}
