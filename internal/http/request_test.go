package http

import (
	"io"
	"net/http"
	"testing"
)

func TestRequest_QueryEncoding(t *testing.T) {
	req := NewRequest("GET", "http://example.com/api").WithQueryParams(map[string]string{
		"a": "1",
		"b": "x y",
	})

	httpReq, err := req.Build()
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	// url.Values.Encode sorts keys and form-encodes values.
	expected := "http://example.com/api?a=1&b=x+y"
	if httpReq.URL.String() != expected {
		t.Errorf("Expected URL %s, got %s", expected, httpReq.URL.String())
	}
}

func TestRequest_EmptyQueryLeavesURLUnchanged(t *testing.T) {
	req := NewRequest("GET", "http://example.com/api").WithQueryParams(map[string]string{})

	httpReq, err := req.Build()
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if httpReq.URL.String() != "http://example.com/api" {
		t.Errorf("Expected unchanged URL, got %s", httpReq.URL.String())
	}
}

func TestRequest_HeaderLastWriteWins(t *testing.T) {
	req := NewRequest("GET", "http://example.com")
	req.WithHeader("X-Token", "first")
	req.WithHeader("X-Token", "second")

	if req.Headers["X-Token"] != "second" {
		t.Errorf("Expected header X-Token: second, got %s", req.Headers["X-Token"])
	}

	httpReq, err := req.Build()
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if got := httpReq.Header.Get("X-Token"); got != "second" {
		t.Errorf("Expected built header X-Token: second, got %s", got)
	}
}

func TestRequest_FormBody(t *testing.T) {
	req := NewRequest("POST", "http://example.com/submit").WithFormData(map[string]string{
		"name": "jo",
		"tag":  "a b",
	})

	httpReq, err := req.Build()
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if ct := httpReq.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Expected form content type, got %s", ct)
	}

	body, _ := io.ReadAll(httpReq.Body)
	if string(body) != "name=jo&tag=a+b" {
		t.Errorf("Expected form body name=jo&tag=a+b, got %s", string(body))
	}
}

func TestRequest_NoBody(t *testing.T) {
	req := NewRequest(http.MethodHead, "http://example.com").WithFormData(map[string]string{"a": "1"})
	req.NoBody = true

	httpReq, err := req.Build()
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if httpReq.Body != nil {
		t.Error("Expected no body on HEAD request")
	}
}
