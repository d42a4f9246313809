package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jikan/jikan-cli/internal/debug"
)

const (
	// DefaultAPIRoot is the public Jikan API host.
	DefaultAPIRoot = "https://api.jikan.moe"

	// DefaultVersion is the API version requested when none is configured.
	DefaultVersion = 3

	DefaultTimeout = 30 * time.Second
)

// Client is the Jikan API client.
//
// All requests are plain GETs against <APIRoot>/v<version>/<path>. The
// client holds no per-request state: calls issued concurrently on the same
// client are fully independent. The API version may be changed between
// calls with SetVersion; each request snapshots the versioned base URL at
// the moment it is issued, so a version change never affects requests
// already in flight.
type Client struct {
	APIRoot   string
	HTTP      *http.Client
	UserAgent string

	versionMu sync.Mutex
	version   int
}

// New creates a new Jikan API client. An empty apiRoot selects the public
// Jikan host.
func New(apiRoot string) *Client {
	if apiRoot == "" {
		apiRoot = DefaultAPIRoot
	}

	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12

	return &Client{
		APIRoot: strings.TrimRight(apiRoot, "/"),
		version: DefaultVersion,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}
}

// SetVersion switches the API version used by subsequent requests.
// Requests already in flight keep the version they started with.
func (c *Client) SetVersion(v int) error {
	if v <= 0 {
		return &ValidationError{Param: "version", Reason: "must be a positive integer"}
	}
	c.versionMu.Lock()
	c.version = v
	c.versionMu.Unlock()
	return nil
}

// Version returns the API version currently in effect.
func (c *Client) Version() int {
	c.versionMu.Lock()
	defer c.versionMu.Unlock()
	return c.version
}

// baseURL snapshots the versioned API root for a single request.
func (c *Client) baseURL() string {
	return fmt.Sprintf("%s/v%d", c.APIRoot, c.Version())
}

// get issues the single GET for a request spec and returns the decoded
// JSON body. A non-200 status becomes an *APIError carrying the raw
// response; a 200 with a malformed body becomes a *DecodeError.
func (c *Client) get(ctx context.Context, spec requestSpec) (json.RawMessage, error) {
	reqURL := buildURL(c.baseURL(), spec.segments, spec.query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "url", reqURL, "error", err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "url", reqURL, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Header:     resp.Header,
		}
	}

	if err := json.Unmarshal(body, new(any)); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	return json.RawMessage(body), nil
}
