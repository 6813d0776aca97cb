// Package http implements the request/response pipeline shared by all DocWal
// resource clients: request encoding (JSON or multipart), the API key header,
// timeouts, and classification of responses into typed errors.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/docwal/docwal-go/internal/constants"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// File is a single multipart file part.
type File struct {
	// Name is the filename sent in the part header.
	Name string
	// Reader supplies the file content.
	Reader io.Reader
}

// Request describes one API call. Exactly one of Body or Files drives the
// request encoding: when Files is non-empty the whole payload, Body fields
// included, is sent as multipart form data; otherwise Body is sent as JSON.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    map[string]interface{}
	Files   map[string]File
	Headers map[string]string
}

// Response is the raw result of a successful API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client for the DocWal API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     docwal.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the end-to-end timeout for each call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger docwal.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: "docwal-go/" + docwal.Version,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	} else if client.httpClient.Timeout == 0 {
		client.httpClient.Timeout = client.timeout
	}

	return client
}

// Do executes a single API call. On HTTP error statuses it returns the raw
// response together with a classified *docwal.Error; on transport faults it
// returns a *docwal.Error with no status code.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &docwal.Error{
			Kind:    docwal.ErrorKindGeneric,
			Message: fmt.Sprintf("Request failed: %v", err),
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode >= constants.HTTPStatusBadRequest {
		return resp, classifyStatus(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body map[string]interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body map[string]interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// encodeBody renders the request payload. Multipart wins over JSON: when
// files are attached, every JSON field is re-encoded as a form field instead.
func encodeBody(req *Request) (io.Reader, string, error) {
	if len(req.Files) > 0 {
		return encodeMultipart(req)
	}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}

	return nil, "", nil
}

func encodeMultipart(req *Request) (io.Reader, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	fields := make([]string, 0, len(req.Body))
	for field := range req.Body {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		value, err := formValue(req.Body[field])
		if err != nil {
			return nil, "", fmt.Errorf("encoding form field %q: %w", field, err)
		}

		err = writer.WriteField(field, value)
		if err != nil {
			return nil, "", fmt.Errorf("writing form field %q: %w", field, err)
		}
	}

	names := make([]string, 0, len(req.Files))
	for name := range req.Files {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		file := req.Files[name]

		part, err := writer.CreateFormFile(name, file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %q: %w", name, err)
		}

		_, err = io.Copy(part, file.Reader)
		if err != nil {
			return nil, "", fmt.Errorf("copying file part %q: %w", name, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// formValue renders one JSON field as a multipart form value. Strings pass
// through verbatim; everything else is JSON-encoded.
func formValue(value interface{}) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}
}

// transportError wraps connection-level faults. These carry no status code:
// the call never produced an HTTP response.
func (c *Client) transportError(err error) *docwal.Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &docwal.Error{
			Kind:    docwal.ErrorKindGeneric,
			Message: fmt.Sprintf("Request timeout after %d seconds", int(c.timeout.Seconds())),
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &docwal.Error{
			Kind:    docwal.ErrorKindGeneric,
			Message: fmt.Sprintf("Failed to connect to %s", c.baseURL),
		}
	}

	return &docwal.Error{
		Kind:    docwal.ErrorKindGeneric,
		Message: fmt.Sprintf("Request failed: %v", err),
	}
}

// classifyStatus maps an HTTP error status to a typed error. The message
// prefers the response body's "error" field where the API supplies one; an
// empty or unparsable body falls back to the status-derived default.
func classifyStatus(statusCode int, body []byte) *docwal.Error {
	apiErr := &docwal.Error{StatusCode: statusCode, RawBody: body}

	switch statusCode {
	case constants.HTTPStatusUnauthorized:
		apiErr.Kind = docwal.ErrorKindAuthentication
		apiErr.Message = "Invalid API key"
	case constants.HTTPStatusForbidden:
		apiErr.Kind = docwal.ErrorKindPermission
		apiErr.Message = errorMessage(body, "Permission denied")
	case constants.HTTPStatusNotFound:
		apiErr.Kind = docwal.ErrorKindNotFound
		apiErr.Message = "Resource not found"
	case constants.HTTPStatusTooManyRequests:
		apiErr.Kind = docwal.ErrorKindRateLimit
		apiErr.Message = "Rate limit exceeded"
	case constants.HTTPStatusBadRequest:
		apiErr.Kind = docwal.ErrorKindValidation
		apiErr.Message = errorMessage(body, "HTTP 400")
	default:
		apiErr.Kind = docwal.ErrorKindGeneric
		apiErr.Message = errorMessage(body, fmt.Sprintf("HTTP %d", statusCode))
	}

	return apiErr
}

// errorMessage extracts the "error" field from an error response body,
// falling back to the given default when the body is empty or not JSON.
func errorMessage(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}

	var payload struct {
		Error string `json:"error"`
	}

	err := json.Unmarshal(body, &payload)
	if err != nil || payload.Error == "" {
		return fallback
	}

	return payload.Error
}
