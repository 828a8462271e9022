package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/codecbench"
	"github.com/arloliu/codecbench/bench"
)

// newRootCmd builds the codecbench command.
//
// The command takes exactly one argument, the input file, and recognizes no
// flags: an argument starting with "-" is a file name. Progress goes to
// stderr through slog and the result table to stdout. Only a failure to load
// the input (or bad usage) makes it return an error; codec failures appear as
// N/A rows.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codecbench <file>",
		Short: "Benchmark compression codecs against a file",
		Long: `codecbench loads a file into memory and measures compression ratio,
compression throughput and decompression throughput for every registered
codec, printing one table row per codec in a fixed order.`,
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			return codecbench.RunFile(cmd.OutOrStdout(), args[0], bench.WithLogger(logger))
		},
	}

	return cmd
}
