package main

import (
	"fmt"

	"github.com/cwbudde/clprobe/internal/opencl"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		backend := "stub"
		if opencl.Built {
			backend = "linked"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "clprobe version %s (opencl: %s)\n", version, backend)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
