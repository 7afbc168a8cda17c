package contentful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientFetchEntries(t *testing.T) {
	t.Run("fetches and decodes entries", func(t *testing.T) {
		var gotPath, gotAuth, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.URL.Query().Get("content_type")

			json.NewEncoder(w).Encode(map[string]any{
				"total": 1,
				"items": []map[string]any{
					{
						"sys":    map[string]any{"id": "e1", "type": "Entry"},
						"fields": map[string]any{"name": "North Spore"},
					},
				},
			})
		}))
		defer server.Close()

		client := NewClient("space1", "token1", zap.NewNop(), WithBaseURL(server.URL))
		entries, err := client.FetchEntries(context.Background(), "supplier", nil)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "e1", entries[0].Sys.ID)
		assert.Equal(t, "North Spore", entries[0].Fields["name"])
		assert.Equal(t, "/spaces/space1/environments/master/entries", gotPath)
		assert.Equal(t, "Bearer token1", gotAuth)
		assert.Equal(t, "supplier", gotContentType)
	})

	t.Run("missing credentials short-circuit", func(t *testing.T) {
		client := NewClient("", "", zap.NewNop())
		_, err := client.FetchEntries(context.Background(), "supplier", nil)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("space1", "token1", zap.NewNop(), WithBaseURL(server.URL))
		_, err := client.FetchEntries(context.Background(), "supplier", nil)
		assert.Error(t, err)
	})

	t.Run("custom environment in path", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode(map[string]any{"total": 0, "items": []any{}})
		}))
		defer server.Close()

		client := NewClient("space1", "token1", zap.NewNop(),
			WithBaseURL(server.URL), WithEnvironment("staging"))
		_, err := client.FetchEntries(context.Background(), "faq", nil)

		require.NoError(t, err)
		assert.Equal(t, "/spaces/space1/environments/staging/entries", gotPath)
	})
}

func TestClientFetchEntry(t *testing.T) {
	t.Run("not found maps to sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient("space1", "token1", zap.NewNop(), WithBaseURL(server.URL))
		_, err := client.FetchEntry(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestManagementCreateEntry(t *testing.T) {
	t.Run("creates then publishes", func(t *testing.T) {
		var requests []string
		var createBody map[string]any
		var publishVersion string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.Method+" "+r.URL.Path)

			switch {
			case r.Method == http.MethodPost:
				assert.Equal(t, "supplier", r.Header.Get("X-Contentful-Content-Type"))
				json.NewDecoder(r.Body).Decode(&createBody)
				json.NewEncoder(w).Encode(map[string]any{
					"sys": map[string]any{"id": "new1", "version": 1},
				})
			case r.Method == http.MethodPut:
				publishVersion = r.Header.Get("X-Contentful-Version")
				json.NewEncoder(w).Encode(map[string]any{
					"sys": map[string]any{"id": "new1", "version": 2},
				})
			}
		}))
		defer server.Close()

		client := NewManagementClient("space1", "mtoken", zap.NewNop(), WithManagementBaseURL(server.URL))
		id, err := client.CreateEntry(context.Background(), "supplier", map[string]any{"name": "Out-Grow"})

		require.NoError(t, err)
		assert.Equal(t, "new1", id)
		assert.Equal(t, "1", publishVersion)
		require.Len(t, requests, 2)
		assert.Equal(t, "PUT /spaces/space1/environments/master/entries/new1/published", requests[1])

		// field values are wrapped in the en-US locale map
		fields := createBody["fields"].(map[string]any)
		name := fields["name"].(map[string]any)
		assert.Equal(t, "Out-Grow", name["en-US"])
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		client := NewManagementClient("space1", "", zap.NewNop())
		_, err := client.CreateEntry(context.Background(), "supplier", nil)
		assert.ErrorIs(t, err, ErrNoManagementToken)
	})
}

func TestManagementCreateContentType(t *testing.T) {
	t.Run("skips existing definition", func(t *testing.T) {
		var putSeen bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				putSeen = true
			}
			json.NewEncoder(w).Encode(map[string]any{
				"sys": map[string]any{"id": "supplier", "version": 3},
			})
		}))
		defer server.Close()

		client := NewManagementClient("space1", "mtoken", zap.NewNop(), WithManagementBaseURL(server.URL))
		err := client.CreateContentType(context.Background(), ContentType{ID: "supplier", Name: "Supplier"})

		require.NoError(t, err)
		assert.False(t, putSeen)
	})

	t.Run("creates and publishes a new definition", func(t *testing.T) {
		var requests []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.Method+" "+r.URL.Path)
			if r.Method == http.MethodGet {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"sys": map[string]any{"id": "faq", "version": 1},
			})
		}))
		defer server.Close()

		client := NewManagementClient("space1", "mtoken", zap.NewNop(), WithManagementBaseURL(server.URL))
		err := client.CreateContentType(context.Background(), ContentType{ID: "faq", Name: "FAQ", DisplayField: "question"})

		require.NoError(t, err)
		require.Len(t, requests, 3)
		assert.Equal(t, "PUT /spaces/space1/environments/master/content_types/faq/published", requests[2])
	})
}
