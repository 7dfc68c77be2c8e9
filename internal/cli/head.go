package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var headCmd = &cobra.Command{
	Use:   "head URL",
	Short: "Make a HEAD request; the response body is never fetched",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodHead, args[0])
	},
}

func init() {
	addCommonFlags(headCmd)
}
