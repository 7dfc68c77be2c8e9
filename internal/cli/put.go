package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request with a form-encoded body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodPut, args[0])
	},
}

func init() {
	addCommonFlags(putCmd)
	addResultFlags(putCmd)
	putCmd.Flags().StringArrayP("data", "d", []string{}, "Form field as 'key=value' (repeatable)")
}
