// Command replay plays scripted input scenarios against the routing core
// without opening a window, and reports every answer that differs from the
// script.
//
//	replay run testdata/menu.json
//	replay run -v testdata/*.json
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "replay",
	Short: "Headless input-routing scenario runner",
	Long: `replay - drives an interact.Context frame by frame from a JSON scenario and
checks ShouldProcessInput, focus and capture answers against the script.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every check and routing decision")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
