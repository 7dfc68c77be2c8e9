package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/snaghttp/snag/internal/extract"
	snaghttp "github.com/snaghttp/snag/internal/http"
	"github.com/snaghttp/snag/internal/output"
	"github.com/snaghttp/snag/internal/schema"
)

// runRequest executes one verb command against the given URL and prints
// the outcome. Exits non-zero on transport failure or a failed schema
// check; HTTP error statuses still print the body and exit zero.
func runRequest(cmd *cobra.Command, method, rawURL string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	client := clientFromFlags(cmd, rawURL)
	formatter := output.NewFormatter(verbose, noColor)

	req := snaghttp.NewRequest(method, rawURL)

	if cmd.Flags().Lookup("query") != nil {
		query, _ := cmd.Flags().GetStringArray("query")
		req.WithQueryParams(parseKeyValues(query))
	}
	if cmd.Flags().Lookup("data") != nil {
		data, _ := cmd.Flags().GetStringArray("data")
		req.WithFormData(parseKeyValues(data))
	}
	if method == http.MethodHead {
		req.NoBody = true
	}

	if verbose {
		fmt.Print(formatter.FormatRequest(req))
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Print(formatter.FormatResponse(resp))
	}

	printBody(cmd, resp.Body)
}

// printBody applies the --extract and --schema flags before printing.
func printBody(cmd *cobra.Command, body string) {
	if cmd.Flags().Lookup("schema") != nil {
		schemaPath, _ := cmd.Flags().GetString("schema")
		if schemaPath != "" {
			result, err := schema.ValidateFile(body, schemaPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !result.Valid {
				for _, violation := range result.Violations {
					fmt.Fprintf(os.Stderr, "schema violation: %s\n", violation)
				}
				os.Exit(1)
			}
		}
	}

	if cmd.Flags().Lookup("extract") != nil {
		path, _ := cmd.Flags().GetString("extract")
		if path != "" {
			value, err := extract.Field(body, path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(value)
			return
		}
	}

	if body != "" {
		fmt.Println(body)
	}
}
