package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request with a form-encoded body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodPost, args[0])
	},
}

func init() {
	addCommonFlags(postCmd)
	addResultFlags(postCmd)
	postCmd.Flags().StringArrayP("data", "d", []string{}, "Form field as 'key=value' (repeatable)")
}
