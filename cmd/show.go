package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlm-sim/mlm-namelist/namelist"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Validate a written namelist and print it",
	Long:  "Load a namelist file with strict parsing, validate it, and re-encode it to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := namelist.ParseFormat(formatName)
		if err != nil {
			return err
		}
		nl, err := namelist.Load(args[0], format)
		if err != nil {
			return err
		}
		logrus.Debugf("loaded %s (uuid %s)", args[0], nl.Meta.UUID)

		out := cmd.OutOrStdout()
		if err := namelist.Encode(out, nl, format); err != nil {
			return err
		}
		if format == namelist.FormatJSON {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
