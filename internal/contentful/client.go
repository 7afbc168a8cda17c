package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const deliveryBaseURL = "https://cdn.contentful.com"

var (
	// ErrNotConfigured means the space id or access token is missing.
	// Read calls short-circuit to an empty result instead of hitting
	// the network.
	ErrNotConfigured = errors.New("contentful credentials not configured")

	ErrEntryNotFound = errors.New("entry not found")
)

// Transport is the read contract the resolver depends on. Both the
// real delivery client and test fakes implement it.
type Transport interface {
	FetchEntries(ctx context.Context, contentType string, query url.Values) ([]Entry, error)
	FetchEntry(ctx context.Context, id string) (*Entry, error)
}

// Client reads published entries from the Contentful delivery API
type Client struct {
	baseURL     string
	spaceID     string
	accessToken string
	environment string
	httpClient  *http.Client
	logger      *zap.Logger
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithBaseURL overrides the delivery endpoint, used in tests
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithEnvironment selects a Contentful environment other than master
func WithEnvironment(env string) ClientOption {
	return func(c *Client) {
		if env != "" {
			c.environment = env
		}
	}
}

// NewClient creates a delivery API client. Missing credentials are
// allowed: reads then return ErrNotConfigured and callers fall back.
func NewClient(spaceID, accessToken string, logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     deliveryBaseURL,
		spaceID:     spaceID,
		accessToken: accessToken,
		environment: "master",
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchEntries returns all published entries of the given content
// type. Any transport failure is logged and surfaced as an error the
// caller treats as an empty result; nothing is retried here.
func (c *Client) FetchEntries(ctx context.Context, contentType string, query url.Values) ([]Entry, error) {
	if c.spaceID == "" || c.accessToken == "" {
		c.logger.Warn("Missing Contentful credentials",
			zap.Bool("has_space_id", c.spaceID != ""),
			zap.Bool("has_access_token", c.accessToken != ""),
		)
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("content_type", contentType)

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.spaceID, c.environment, params.Encode())

	var resp entriesResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		c.logger.Error("Failed to fetch entries",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("Fetched entries",
		zap.String("content_type", contentType),
		zap.Int("total", resp.Total),
		zap.Int("items", len(resp.Items)),
	)
	return resp.Items, nil
}

// FetchEntry returns a single published entry by id, or nil when the
// entry does not exist or the transport fails
func (c *Client) FetchEntry(ctx context.Context, id string) (*Entry, error) {
	if c.spaceID == "" || c.accessToken == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries/%s",
		c.baseURL, c.spaceID, c.environment, url.PathEscape(id))

	var entry Entry
	if err := c.get(ctx, endpoint, &entry); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		c.logger.Error("Failed to fetch entry", zap.String("entry_id", id), zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrEntryNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
