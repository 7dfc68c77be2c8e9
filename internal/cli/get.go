package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodGet, args[0])
	},
}

func init() {
	addCommonFlags(getCmd)
	addResultFlags(getCmd)
	getCmd.Flags().StringArrayP("query", "q", []string{}, "Query parameter as 'key=value' (repeatable)")
}
