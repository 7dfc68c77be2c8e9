package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Make a DELETE request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodDelete, args[0])
	},
}

func init() {
	addCommonFlags(deleteCmd)
	addResultFlags(deleteCmd)
}
