package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/snaghttp/snag/internal/log"
)

// Transform is an optional mapping applied to a response body before it
// is returned to the caller.
type Transform func(string) string

// Client owns the configuration shared by every request it issues: base
// URL, header map, transport options, cookie-jar path, timeout and logger.
// The base URL is fixed at construction; everything else can be upserted
// between requests.
type Client struct {
	baseURL     string
	headers     map[string]string
	options     map[Option]interface{}
	cookieFile  string
	timeout     time.Duration
	logger      *log.Logger
	concurrency int
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a client for the given base URL with default options
func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL: baseURL,
		headers: make(map[string]string),
		options: defaultOptions(),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = log.New()
	}

	return client
}

// WithTimeout sets the overall request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a default header sent on every request
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithOption sets a transport option at construction time
func WithOption(key Option, value interface{}) ClientOption {
	return func(c *Client) {
		c.options[key] = value
	}
}

// WithCookieFile sets the cookie-jar file used to persist and replay
// cookies across requests.
func WithCookieFile(path string) ClientOption {
	return func(c *Client) {
		c.cookieFile = path
	}
}

// WithLogger injects a shared logger. The logger's lifetime may exceed
// the client's.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBatchConcurrency caps the number of in-flight requests during a
// batch. Zero means unbounded, which is the default.
func WithBatchConcurrency(n int) ClientOption {
	return func(c *Client) {
		c.concurrency = n
	}
}

// AddHeader upserts a header; last write wins. Header syntax is not
// validated.
func (c *Client) AddHeader(key, value string) {
	c.headers[key] = value
}

// AddOption upserts a transport option; the key is not validated
func (c *Client) AddOption(key Option, value interface{}) {
	c.options[key] = value
}

// SetCookieFile replaces the cookie-jar path. It takes effect on the
// next request; in-flight requests keep the jar they started with.
func (c *Client) SetCookieFile(path string) {
	c.cookieFile = path
}

// Get issues a GET request with the given query parameters
func (c *Client) Get(params map[string]string, transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodGet, c.baseURL).WithQueryParams(params)
	return c.run(req, transforms)
}

// Post issues a POST request with a form-encoded body
func (c *Client) Post(data map[string]string, transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodPost, c.baseURL).WithFormData(data)
	return c.run(req, transforms)
}

// Put issues a PUT request with a form-encoded body
func (c *Client) Put(data map[string]string, transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodPut, c.baseURL).WithFormData(data)
	return c.run(req, transforms)
}

// Patch issues a PATCH request with a form-encoded body
func (c *Client) Patch(data map[string]string, transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodPatch, c.baseURL).WithFormData(data)
	return c.run(req, transforms)
}

// Delete issues a DELETE request with no body
func (c *Client) Delete(transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodDelete, c.baseURL)
	return c.run(req, transforms)
}

// Head issues a HEAD request; the response body is never fetched
func (c *Client) Head(transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodHead, c.baseURL)
	req.NoBody = true
	return c.run(req, transforms)
}

// Options issues an OPTIONS request with no body
func (c *Client) Options(transforms ...Transform) (string, error) {
	req := NewRequest(http.MethodOptions, c.baseURL)
	return c.run(req, transforms)
}

// Do executes one request synchronously and normalizes the outcome.
// Transport failures are logged at ERROR level and returned as an error
// alongside a nil response; HTTP-level failures (4xx/5xx) are not errors
// at this layer. The resulting status code is logged at DEBUG level.
func (c *Client) Do(req *Request) (*Response, error) {
	resp, err := c.send(req, c.options)
	if err != nil {
		c.logger.Error(fmt.Sprintf("%s %s failed: %v", req.Method, req.URL, err))
		return nil, err
	}

	c.logger.Debug(fmt.Sprintf("%s %s completed with status %d", req.Method, req.URL, resp.StatusCode))
	return resp, nil
}

// run executes a request and reduces the outcome to the plain body the
// verb methods return. The body is empty on transport failure, with the
// error carried separately so callers can tell the two apart.
func (c *Client) run(req *Request, transforms []Transform) (string, error) {
	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}

	body := resp.Body
	for _, transform := range transforms {
		body = transform(body)
	}

	return body, nil
}

// send performs the exchange with the given option set. It does no
// logging; callers decide how to record the outcome.
func (c *Client) send(req *Request, opts map[Option]interface{}) (*Response, error) {
	httpReq, err := req.Build()
	if err != nil {
		return nil, err
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	var jar http.CookieJar
	if c.cookieFile != "" {
		jar = newFileJar(c.cookieFile)
	}

	httpClient := buildHTTPClient(opts, c.timeout, jar)

	start := time.Now()
	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var body []byte
	if !req.NoBody && boolOption(opts, ReturnBody, true) {
		body, err = io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, err
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       string(body),
		Duration:   time.Since(start),
	}, nil
}
