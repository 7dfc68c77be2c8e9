package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch URL",
	Short: "Make a PATCH request with a form-encoded body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, http.MethodPatch, args[0])
	},
}

func init() {
	addCommonFlags(patchCmd)
	addResultFlags(patchCmd)
	patchCmd.Flags().StringArrayP("data", "d", []string{}, "Form field as 'key=value' (repeatable)")
}
