package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Failure taxonomy shared by every data-provider adapter. Adapters wrap these
// sentinels with provider-specific context; the orchestrator matches on them
// with errors.Is to pick the user-facing message.
var (
	ErrNotFound      = errors.New("not found")
	ErrMisconfigured = errors.New("provider not configured")
	ErrInvalidData   = errors.New("invalid provider data")
	ErrUnavailable   = errors.New("provider unavailable")
)

// Client is a thin JSON-over-HTTP client with a fixed per-provider timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetJSON issues a GET for path relative to the provider base URL and decodes
// the body into result. Transport failures (timeout, DNS, refused connection)
// map to ErrUnavailable, a 404 maps to ErrNotFound, and any other non-200
// status becomes a generic upstream error carrying the response body.
func (c *Client) GetJSON(ctx context.Context, path string, result any) error {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w (status 404)", ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provider error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	return nil
}
