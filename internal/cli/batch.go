package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snaghttp/snag/internal/config"
	snaghttp "github.com/snaghttp/snag/internal/http"
	"github.com/snaghttp/snag/internal/log"
	"github.com/snaghttp/snag/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch [URL...]",
	Short: "Run independent requests concurrently and collect every result",
	Long: `Batch dispatches all requests at once and waits for every one to
finish. Failures are logged per index and never abort the batch. Entries
come from URL arguments or from a YAML profile given with --config.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		var client *snaghttp.Client
		var entries []snaghttp.BatchRequest

		if configPath != "" {
			profile, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			client, entries = clientFromProfile(cmd, profile)
		} else {
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "Error: no URLs given and no --config profile")
				os.Exit(1)
			}
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			client = clientFromFlags(cmd, "", snaghttp.WithBatchConcurrency(concurrency))
			for _, u := range args {
				entries = append(entries, snaghttp.BatchRequest{URL: u})
			}
		}

		results := client.Batch(entries)

		failed := 0
		for _, result := range results {
			if result.Err != nil {
				failed++
			}
			if verbose {
				fmt.Printf("[%d] status=%d err=%v\n", result.Index, result.StatusCode, result.Err)
			}
			if result.Body != "" {
				fmt.Println(result.Body)
			}
		}

		if verbose {
			formatter := output.NewFormatter(verbose, noColor)
			fmt.Print(formatter.FormatSummary(results.Summary()))
		}

		if failed > 0 {
			os.Exit(1)
		}
	},
}

// clientFromProfile builds a client from a loaded YAML profile. Flag
// values still win for verbosity and color; everything else comes from
// the profile.
func clientFromProfile(cmd *cobra.Command, profile *config.Profile) (*snaghttp.Client, []snaghttp.BatchRequest) {
	noColor, _ := cmd.Flags().GetBool("no-color")

	timeout, err := profile.TimeoutDuration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile := profile.LogFile
	if logFile == "" {
		logFile = log.DefaultLogFile
	}
	loggerOpts := []log.Option{log.WithPath(logFile)}
	if noColor {
		loggerOpts = append(loggerOpts, log.WithNoColor())
	}

	clientOpts := []snaghttp.ClientOption{
		snaghttp.WithTimeout(timeout),
		snaghttp.WithLogger(log.New(loggerOpts...)),
		snaghttp.WithBatchConcurrency(profile.Concurrency),
	}
	if profile.CookieJar != "" {
		clientOpts = append(clientOpts, snaghttp.WithCookieFile(profile.CookieJar))
	}

	client := snaghttp.NewClient(profile.BaseURL, clientOpts...)

	for name, value := range profile.Headers {
		client.AddHeader(name, value)
	}
	for key, value := range profile.ClientOptions() {
		client.AddOption(key, value)
	}

	return client, profile.BatchRequests()
}

func init() {
	addCommonFlags(batchCmd)
	batchCmd.Flags().StringP("config", "c", "", "YAML profile with client defaults and batch entries")
	batchCmd.Flags().Int("concurrency", 0, "Cap on in-flight requests (0 = unbounded)")
}
