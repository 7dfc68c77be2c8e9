package http

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request represents a fully-specified outbound request. It is built
// fresh per call and never persisted.
type Request struct {
	Method  string
	URL     string
	Params  url.Values
	Form    url.Values
	Headers map[string]string
	NoBody  bool
}

// NewRequest creates a request for the given method and target URL
func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method:  method,
		URL:     rawURL,
		Params:  make(url.Values),
		Form:    make(url.Values),
		Headers: make(map[string]string),
	}
}

// WithQueryParams adds query parameters to the request. Keys are
// percent-encoded and sorted lexicographically when the URL is built.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	for key, value := range params {
		r.Params.Set(key, value)
	}
	return r
}

// WithFormData sets the form-encoded request body
func (r *Request) WithFormData(data map[string]string) *Request {
	for key, value := range data {
		r.Form.Set(key, value)
	}
	return r
}

// WithHeader adds a header to the request; last write wins
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// Build constructs an http.Request. A non-empty parameter map is appended
// to the URL after a literal "?"; an empty map leaves the URL unchanged.
func (r *Request) Build() (*http.Request, error) {
	target := r.URL
	if len(r.Params) > 0 {
		target = target + "?" + r.Params.Encode()
	}

	var body io.Reader
	if len(r.Form) > 0 && !r.NoBody {
		body = strings.NewReader(r.Form.Encode())
	}

	req, err := http.NewRequest(r.Method, target, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
