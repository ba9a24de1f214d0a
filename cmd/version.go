package cmd

import (
	"fmt"
	"runtime"

	"github.com/fugue/rfc3339/format"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/fugue/rfc3339/cmd.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rfc3339 %s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  Fixed Buffer: %t\n", format.Bounded)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
