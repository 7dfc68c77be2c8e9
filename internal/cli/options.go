package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options URL",
	Short: "Make an OPTIONS request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodOptions, args[0])
	},
}

func init() {
	addCommonFlags(optionsCmd)
}
