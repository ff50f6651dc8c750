package parseapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// DefaultBaseURL is the address the parsing service listens on by default.
const DefaultBaseURL = "http://localhost:8000"

var errNullResponse = errors.New("response body is null")

// Client calls the parse endpoint of a parsing service.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a new Client with the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		logger:     logger.With("base_url", baseURL),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// WithHTTPClient returns a copy of c that sends requests using hc.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c2 := *c
	c2.httpClient = hc
	return &c2
}

// Endpoint returns the full URL of the parse endpoint.
func (c *Client) Endpoint() string {
	return c.baseURL + "/parse"
}

// Parse sends req to the service and returns the decoded response. A request
// with empty fields is rejected with a *ValidationError before anything is
// sent. A non-2xx response is returned as an *HTTPError.
func (c *Client) Parse(ctx context.Context, req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	url := c.Endpoint() + "?" + req.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug(
		"sending parse request",
		"url", url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed *Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("failed to decode response: %w", errNullResponse)
	}

	c.logger.Debug(
		"received parse response",
		"status", parsed.Status,
		"output_file", parsed.OutputFile,
		"xlsx_output", parsed.XLSXOutput)

	return parsed, nil
}
