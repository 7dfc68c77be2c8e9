package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	snaghttp "github.com/snaghttp/snag/internal/http"
	"github.com/snaghttp/snag/internal/log"
)

// addCommonFlags registers the flags shared by every request command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as 'Name: value' (repeatable)")
	cmd.Flags().StringArrayP("option", "O", []string{}, "Transport option as 'key=value' (repeatable)")
	cmd.Flags().String("cookie-jar", "", "Cookie-jar file read before and written after each request")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Overall request timeout")
	cmd.Flags().String("log-file", log.DefaultLogFile, "Log destination file")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// addResultFlags registers flags that post-process the response body.
func addResultFlags(cmd *cobra.Command) {
	cmd.Flags().String("extract", "", "Print only the field at this gjson path")
	cmd.Flags().String("schema", "", "Validate the response body against this JSON Schema file")
}

// clientFromFlags builds a client for the given base URL from the
// command's common flags, plus any extra options the caller needs.
func clientFromFlags(cmd *cobra.Command, baseURL string, extra ...snaghttp.ClientOption) *snaghttp.Client {
	headers, _ := cmd.Flags().GetStringArray("header")
	options, _ := cmd.Flags().GetStringArray("option")
	cookieJar, _ := cmd.Flags().GetString("cookie-jar")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	logFile, _ := cmd.Flags().GetString("log-file")
	noColor, _ := cmd.Flags().GetBool("no-color")

	loggerOpts := []log.Option{log.WithPath(logFile)}
	if noColor {
		loggerOpts = append(loggerOpts, log.WithNoColor())
	}

	clientOpts := []snaghttp.ClientOption{
		snaghttp.WithTimeout(timeout),
		snaghttp.WithLogger(log.New(loggerOpts...)),
	}
	if cookieJar != "" {
		clientOpts = append(clientOpts, snaghttp.WithCookieFile(cookieJar))
	}
	clientOpts = append(clientOpts, extra...)

	client := snaghttp.NewClient(baseURL, clientOpts...)

	for name, value := range parseHeaders(headers) {
		client.AddHeader(name, value)
	}
	for key, value := range parseKeyValues(options) {
		client.AddOption(snaghttp.Option(key), parseOptionValue(value))
	}

	return client
}

// parseHeaders parses repeated "Name: value" flags
func parseHeaders(raw []string) map[string]string {
	headers := make(map[string]string)
	for _, h := range raw {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return headers
}

// parseKeyValues parses repeated "key=value" flags
func parseKeyValues(raw []string) map[string]string {
	pairs := make(map[string]string)
	for _, kv := range raw {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			pairs[strings.TrimSpace(parts[0])] = parts[1]
		}
	}
	return pairs
}

// parseOptionValue coerces a flag value into the most specific type:
// bool, int, duration, then string.
func parseOptionValue(value string) interface{} {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return value
}
