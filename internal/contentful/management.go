package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const managementBaseURL = "https://api.contentful.com"

// ErrNoManagementToken means the privileged management credential was
// not supplied. The write path is only used by the seed tool.
var ErrNoManagementToken = errors.New("contentful management token not configured")

// ContentTypeField describes one field of a content type definition
type ContentTypeField struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Required    bool              `json:"required"`
	LinkType    string            `json:"linkType,omitempty"`
	Items       *ContentTypeItems `json:"items,omitempty"`
	Validations []map[string]any  `json:"validations,omitempty"`
}

// ContentTypeItems describes array item constraints
type ContentTypeItems struct {
	Type        string           `json:"type"`
	LinkType    string           `json:"linkType,omitempty"`
	Validations []map[string]any `json:"validations,omitempty"`
}

// ContentType is a content type definition for the management API
type ContentType struct {
	ID           string             `json:"-"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	DisplayField string             `json:"displayField"`
	Fields       []ContentTypeField `json:"fields"`
}

// ManagementClient writes content types and entries through the
// Contentful management API. Every write is create-then-publish;
// errors propagate to the caller, this path has no fallback semantics.
type ManagementClient struct {
	baseURL     string
	spaceID     string
	token       string
	environment string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewManagementClient creates a management API client
func NewManagementClient(spaceID, token string, logger *zap.Logger, opts ...ManagementOption) *ManagementClient {
	c := &ManagementClient{
		baseURL:     managementBaseURL,
		spaceID:     spaceID,
		token:       token,
		environment: "master",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ManagementOption customizes a ManagementClient
type ManagementOption func(*ManagementClient)

// WithManagementBaseURL overrides the management endpoint, used in tests
func WithManagementBaseURL(base string) ManagementOption {
	return func(c *ManagementClient) { c.baseURL = base }
}

// CreateContentType creates and publishes a content type definition.
// An already existing definition is left untouched.
func (c *ManagementClient) CreateContentType(ctx context.Context, ct ContentType) error {
	if c.token == "" {
		return ErrNoManagementToken
	}

	path := fmt.Sprintf("/spaces/%s/environments/%s/content_types/%s",
		c.spaceID, c.environment, url.PathEscape(ct.ID))

	// skip when the definition already exists
	var existing struct {
		Sys Sys `json:"sys"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, nil, &existing)
	if err == nil {
		c.logger.Warn("Content type already exists", zap.String("content_type", ct.ID))
		return nil
	}
	if !errors.Is(err, ErrEntryNotFound) {
		return fmt.Errorf("checking content type %s: %w", ct.ID, err)
	}

	var created struct {
		Sys Sys `json:"sys"`
	}
	if err := c.do(ctx, http.MethodPut, path, nil, ct, &created); err != nil {
		return fmt.Errorf("creating content type %s: %w", ct.ID, err)
	}

	publishPath := path + "/published"
	headers := map[string]string{"X-Contentful-Version": strconv.Itoa(created.Sys.Version)}
	if err := c.do(ctx, http.MethodPut, publishPath, headers, nil, nil); err != nil {
		return fmt.Errorf("publishing content type %s: %w", ct.ID, err)
	}

	c.logger.Info("Content type created and published", zap.String("content_type", ct.ID))
	return nil
}

// CreateEntry creates and publishes an entry. Field values are
// wrapped in the en-US locale map the management API requires.
func (c *ManagementClient) CreateEntry(ctx context.Context, contentTypeID string, fields map[string]any) (string, error) {
	if c.token == "" {
		return "", ErrNoManagementToken
	}

	localized := make(map[string]any, len(fields))
	for k, v := range fields {
		localized[k] = map[string]any{defaultLocale: v}
	}

	path := fmt.Sprintf("/spaces/%s/environments/%s/entries", c.spaceID, c.environment)
	headers := map[string]string{"X-Contentful-Content-Type": contentTypeID}

	var created struct {
		Sys Sys `json:"sys"`
	}
	body := map[string]any{"fields": localized}
	if err := c.do(ctx, http.MethodPost, path, headers, body, &created); err != nil {
		return "", fmt.Errorf("creating entry for %s: %w", contentTypeID, err)
	}

	publishPath := fmt.Sprintf("%s/%s/published", path, url.PathEscape(created.Sys.ID))
	publishHeaders := map[string]string{"X-Contentful-Version": strconv.Itoa(created.Sys.Version)}
	if err := c.do(ctx, http.MethodPut, publishPath, publishHeaders, nil, nil); err != nil {
		return "", fmt.Errorf("publishing entry %s: %w", created.Sys.ID, err)
	}

	c.logger.Info("Entry created and published",
		zap.String("content_type", contentTypeID),
		zap.String("entry_id", created.Sys.ID),
	)
	return created.Sys.ID, nil
}

func (c *ManagementClient) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.contentful.management.v1+json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrEntryNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
