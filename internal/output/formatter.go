package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	snaghttp "github.com/snaghttp/snag/internal/http"
)

// Formatter renders requests, responses and batch summaries for the
// console.
type Formatter struct {
	Verbose bool
	NoColor bool
}

// NewFormatter creates a formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
	}
}

// FormatRequest formats an outbound request for display
func (f *Formatter) FormatRequest(req *snaghttp.Request) string {
	var buf strings.Builder

	methodColor := color.New(color.FgBlue, color.Bold)
	if f.NoColor {
		methodColor.DisableColor()
	}

	target := req.URL
	if len(req.Params) > 0 {
		target += "?" + req.Params.Encode()
	}

	buf.WriteString(fmt.Sprintf("▶ %s %s\n", methodColor.Sprint(req.Method), target))

	if f.Verbose && len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
		}
	}

	if f.Verbose && len(req.Form) > 0 {
		buf.WriteString(fmt.Sprintf("  Body: %s\n", req.Form.Encode()))
	}

	return buf.String()
}

// FormatResponse formats a completed response for display
func (f *Formatter) FormatResponse(resp *snaghttp.Response) string {
	var buf strings.Builder

	statusColor := color.New(color.Bold)
	if resp.IsSuccess() {
		statusColor.Add(color.FgGreen)
	} else if resp.IsRedirect() {
		statusColor.Add(color.FgYellow)
	} else {
		statusColor.Add(color.FgRed)
	}
	if f.NoColor {
		statusColor.DisableColor()
	}

	buf.WriteString(fmt.Sprintf("◀ %s (%dms)\n", statusColor.Sprint(resp.Status), resp.DurationMillis()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(values, ", ")))
		}
	}

	return buf.String()
}

// FormatSummary formats a batch summary block
func (f *Formatter) FormatSummary(s snaghttp.Summary) string {
	var buf strings.Builder

	buf.WriteString("Batch summary:\n")
	buf.WriteString(fmt.Sprintf("  total:   %d\n", s.Total))
	buf.WriteString(fmt.Sprintf("  failed:  %d\n", s.Failed))

	if s.Total > s.Failed {
		buf.WriteString(fmt.Sprintf("  min:     %s\n", s.Min))
		buf.WriteString(fmt.Sprintf("  avg:     %s\n", s.Avg))
		buf.WriteString(fmt.Sprintf("  p50:     %s\n", s.P50))
		buf.WriteString(fmt.Sprintf("  p90:     %s\n", s.P90))
		buf.WriteString(fmt.Sprintf("  p99:     %s\n", s.P99))
		buf.WriteString(fmt.Sprintf("  max:     %s\n", s.Max))
	}

	return buf.String()
}
