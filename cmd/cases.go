package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlm-sim/mlm-namelist/namelist"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the predefined case names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range namelist.Cases() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}
