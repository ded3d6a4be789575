package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlm-sim/mlm-namelist/namelist"
)

var (
	// CLI flags for namelist generation
	outputRoot string // stats_io.output_root written into the namelist
	outputDir  string // Directory the namelist file is written to
	formatName string // Output encoding (json, yaml)
	dump       bool   // Print the namelist before writing it
	logLevel   string // Log verbosity level
)

// rootCmd builds and writes the namelist for the case named on the command line
var rootCmd = &cobra.Command{
	Use:   "namelist <case_name>",
	Short: "Generate the parameter namelist for a mixed-layer model case",
	Long: "Build the namelist for a predefined case, stamp it with a fresh run UUID, " +
		"and write it to <simname>.in in the output directory.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// The case is resolved before any other input is checked.
		c, err := namelist.ParseCase(args[0])
		if err != nil {
			fmt.Fprintln(out, "Not a valid case name")
			return err
		}
		if outputRoot == "" {
			return errors.New(`required flag "output-root" not set`)
		}

		format, err := namelist.ParseFormat(formatName)
		if err != nil {
			return err
		}

		nl, err := namelist.Build(c, namelist.Config{OutputRoot: outputRoot})
		if err != nil {
			return err
		}

		w := namelist.NewWriter(outputDir, format, nil)
		if dump {
			w.Dump = out
		}
		_, err = writeNamelist(out, w, nl)
		return err
	},
}

// writeNamelist writes nl with w, reporting a missing simulation name on out.
func writeNamelist(out io.Writer, w *namelist.Writer, nl *namelist.Namelist) (string, error) {
	path, err := w.Write(nl)
	if err != nil {
		var missing *namelist.MissingMetadataError
		if errors.As(err, &missing) {
			fmt.Fprintln(out, "Casename not specified in namelist dictionary!")
			fmt.Fprintln(out, "FatalError")
		}
		return "", err
	}
	return path, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", string(namelist.FormatJSON), "Namelist encoding (json, yaml)")

	rootCmd.Flags().StringVar(&outputRoot, "output-root", "", "Statistics output root written to stats_io.output_root (required)")
	rootCmd.Flags().StringVar(&outputDir, "dir", ".", "Directory the namelist file is written to")
	rootCmd.Flags().BoolVar(&dump, "dump", true, "Print the namelist to stdout before writing it")
}
