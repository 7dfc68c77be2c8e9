package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "snag",
	Short:   "A convenience HTTP client with verb helpers, cookie jars, and concurrent batches",
	Version: version,
	Long: `Snag is a small terminal HTTP client. It wraps the standard transport
with per-verb commands, header and transport-option flags, cookie-jar
files, and a concurrent batch runner with per-request logging.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(headCmd)
	RootCmd.AddCommand(optionsCmd)
	RootCmd.AddCommand(batchCmd)
}
