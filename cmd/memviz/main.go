package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"memviz/internal/report"
)

func newRootCommand() *cobra.Command {
	var opts report.Options

	cmd := &cobra.Command{
		Use:   "memviz [PROGRAM]",
		Short: "Visualize system and per-process memory usage with bar charts",
		Long: "Prints a bar chart of system memory usage, or, given a program name,\n" +
			"the resident memory of every running instance of that program.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Program = args[0]
			}
			if opts.BarLength <= 0 {
				return fmt.Errorf("invalid bar length %d: must be positive", opts.BarLength)
			}
			return report.New(cmd.OutOrStdout()).Run(opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.HumanReadable, "human-readable", "H", false, "Print sizes in human readable format")
	flags.IntVarP(&opts.BarLength, "length", "l", 20, "Length of the bar graph in characters")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
