package output

import (
	"net/http"
	"strings"
	"testing"
	"time"

	snaghttp "github.com/snaghttp/snag/internal/http"
)

func TestFormatRequest(t *testing.T) {
	req := snaghttp.NewRequest("GET", "http://example.com/api").WithQueryParams(map[string]string{"a": "1"})

	formatter := NewFormatter(false, true)
	out := formatter.FormatRequest(req)

	if !strings.Contains(out, "GET http://example.com/api?a=1") {
		t.Errorf("Expected method and URL in output, got %q", out)
	}
}

func TestFormatRequest_VerboseIncludesHeadersAndBody(t *testing.T) {
	req := snaghttp.NewRequest("POST", "http://example.com").
		WithHeader("Accept", "application/json").
		WithFormData(map[string]string{"name": "jo"})

	formatter := NewFormatter(true, true)
	out := formatter.FormatRequest(req)

	if !strings.Contains(out, "Accept: application/json") {
		t.Errorf("Expected header in verbose output, got %q", out)
	}
	if !strings.Contains(out, "name=jo") {
		t.Errorf("Expected body in verbose output, got %q", out)
	}
}

func TestFormatResponse(t *testing.T) {
	resp := &snaghttp.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    http.Header{"Content-Type": []string{"text/plain"}},
		Duration:   42 * time.Millisecond,
	}

	formatter := NewFormatter(false, true)
	out := formatter.FormatResponse(resp)

	if !strings.Contains(out, "200 OK") || !strings.Contains(out, "(42ms)") {
		t.Errorf("Expected status and duration in output, got %q", out)
	}
}

func TestFormatSummary(t *testing.T) {
	s := snaghttp.Summary{
		Total:  3,
		Failed: 1,
		Min:    time.Millisecond,
		Max:    3 * time.Millisecond,
	}

	formatter := NewFormatter(false, true)
	out := formatter.FormatSummary(s)

	if !strings.Contains(out, "total:   3") || !strings.Contains(out, "failed:  1") {
		t.Errorf("Expected counts in summary, got %q", out)
	}
}
