package content

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"spawnsmart/internal/contentful"
	"spawnsmart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTransport serves canned entries per content type and counts
// fetches so tests can assert the load runs exactly once
type fakeTransport struct {
	mu      sync.Mutex
	entries map[string][]contentful.Entry
	errs    map[string]error
	calls   int64
}

func (f *fakeTransport) FetchEntries(ctx context.Context, contentType string, query url.Values) ([]contentful.Entry, error) {
	atomic.AddInt64(&f.calls, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[contentType]; ok {
		return nil, err
	}
	return f.entries[contentType], nil
}

func (f *fakeTransport) FetchEntry(ctx context.Context, id string) (*contentful.Entry, error) {
	return nil, contentful.ErrEntryNotFound
}

func entry(id string, fields map[string]any) contentful.Entry {
	return contentful.Entry{
		Sys:    contentful.Sys{ID: id, Type: "Entry"},
		Fields: fields,
	}
}

func link(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{"type": "Link", "linkType": "Entry", "id": id},
	}
}

func supplierEntries() []contentful.Entry {
	return []contentful.Entry{
		entry("sup1", map[string]any{
			"id":          "northspore",
			"name":        "North Spore",
			"description": "Premium sterile substrates",
			"url":         "https://northspore.com",
			"featured":    true,
			"type":        "substrate",
		}),
		entry("sup2", map[string]any{
			"id":          "outgrow",
			"name":        "Out-Grow",
			"description": "Quality grain spawn products",
			"url":         "https://www.out-grow.com",
			"featured":    false,
			"type":        "grain",
		}),
	}
}

func TestResolverSuppliers(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{
			"supplier": supplierEntries(),
			"product": {
				entry("p1", map[string]any{
					"name":        "Boomr Bag",
					"description": "Ready-to-fruit substrate",
					"supplier":    link("sup1"),
				}),
				entry("p2", map[string]any{
					"name":        "Orphan Product",
					"description": "links to nothing",
					"supplier":    link("sup-gone"),
				}),
			},
		},
	}
	resolver := NewResolver(transport, zap.NewNop())
	ctx := context.Background()

	t.Run("products join their supplier", func(t *testing.T) {
		suppliers := resolver.GetAllSuppliers(ctx)
		require.Len(t, suppliers, 2)

		var northspore *domain.Supplier
		for i := range suppliers {
			if suppliers[i].ID == "northspore" {
				northspore = &suppliers[i]
			}
		}
		require.NotNil(t, northspore)
		require.Len(t, northspore.Products, 1)
		assert.Equal(t, "Boomr Bag", northspore.Products[0].Name)
		assert.Equal(t, "northspore", northspore.Products[0].SupplierID)
	})

	t.Run("unjoinable products are dropped", func(t *testing.T) {
		for _, s := range resolver.GetAllSuppliers(ctx) {
			for _, p := range s.Products {
				assert.NotEqual(t, "Orphan Product", p.Name)
			}
		}
	})

	t.Run("featured filter", func(t *testing.T) {
		featured := resolver.GetFeaturedSuppliers(ctx)
		require.Len(t, featured, 1)
		assert.Equal(t, "northspore", featured[0].ID)
	})

	t.Run("type filter", func(t *testing.T) {
		grain := resolver.GetAllSuppliersByType(ctx, domain.SupplierGrain)
		require.Len(t, grain, 1)
		assert.Equal(t, "outgrow", grain[0].ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		assert.NotNil(t, resolver.GetSupplierByID(ctx, "outgrow"))
		assert.Nil(t, resolver.GetSupplierByID(ctx, "missing"))
	})

	t.Run("source marker reflects the cms load", func(t *testing.T) {
		assert.Equal(t, SourceCMS, resolver.DataSource("supplier"))
	})
}

func TestResolverLoadsOnce(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{"supplier": supplierEntries()},
	}
	resolver := NewResolver(transport, zap.NewNop())
	ctx := context.Background()

	resolver.GetAllSuppliers(ctx)
	first := atomic.LoadInt64(&transport.calls)
	require.Greater(t, first, int64(0))

	// subsequent getters hit the loaded collections, not the transport
	resolver.GetAllSporeData(ctx)
	resolver.GetFAQs(ctx, "general")
	resolver.GetRandomStaticFact(ctx)
	assert.Equal(t, first, atomic.LoadInt64(&transport.calls))
}

func TestResolverConcurrentLoadCoalesces(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{"supplier": supplierEntries()},
	}
	resolver := NewResolver(transport, zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver.GetAllSuppliers(ctx)
		}()
	}
	wg.Wait()

	// one load sequence: one fetch per content type, not per caller
	assert.LessOrEqual(t, atomic.LoadInt64(&transport.calls), int64(7))
}

func TestResolverReload(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{"supplier": supplierEntries()},
	}
	resolver := NewResolver(transport, zap.NewNop())
	ctx := context.Background()

	require.Len(t, resolver.GetAllSuppliers(ctx), 2)

	transport.mu.Lock()
	transport.entries["supplier"] = supplierEntries()[:1]
	transport.mu.Unlock()

	resolver.Reload(ctx)
	assert.Len(t, resolver.GetAllSuppliers(ctx), 1)
}

func TestResolverSporeFallback(t *testing.T) {
	t.Run("cms failure falls back to the bundled dataset", func(t *testing.T) {
		transport := &fakeTransport{
			errs: map[string]error{"spore": errors.New("boom")},
		}
		resolver := NewResolver(transport, zap.NewNop())

		spores := resolver.GetAllSporeData(context.Background())
		assert.NotEmpty(t, spores)
		assert.Equal(t, SourceFallback, resolver.DataSource("spore"))
	})

	t.Run("empty cms also falls back", func(t *testing.T) {
		transport := &fakeTransport{}
		resolver := NewResolver(transport, zap.NewNop())

		spores := resolver.GetAllSporeData(context.Background())
		assert.NotEmpty(t, spores)
		assert.Equal(t, SourceFallback, resolver.DataSource("spore"))
	})

	t.Run("cms entries win over the bundled dataset", func(t *testing.T) {
		transport := &fakeTransport{
			entries: map[string][]contentful.Entry{
				"spore": {
					entry("sp1", map[string]any{
						"mushroomType":      "Psilocybe cubensis",
						"subtype":           "Golden Teacher",
						"growingConditions": "Beginner-friendly; warm and humid.",
					}),
				},
			},
		}
		resolver := NewResolver(transport, zap.NewNop())

		spores := resolver.GetAllSporeData(context.Background())
		require.Len(t, spores, 1)
		assert.Equal(t, "Golden Teacher", spores[0].Name)
		assert.Equal(t, domain.DifficultyBeginner, spores[0].Difficulty)
		assert.Equal(t, "10-14 days", spores[0].ColonizationTime)
		assert.Equal(t, SourceCMS, resolver.DataSource("spore"))
	})
}

func TestResolverFactsFallback(t *testing.T) {
	t.Run("empty cms serves the exact fallback list", func(t *testing.T) {
		transport := &fakeTransport{}
		resolver := NewResolver(transport, zap.NewNop())
		ctx := context.Background()

		fact := resolver.GetRandomStaticFact(ctx)
		assert.Contains(t, FallbackFacts(), fact)
		assert.Equal(t, SourceFallback, resolver.DataSource("mushroomFact"))
	})

	t.Run("cms facts replace the fallback list entirely", func(t *testing.T) {
		transport := &fakeTransport{
			entries: map[string][]contentful.Entry{
				"mushroomFact": {
					entry("f1", map[string]any{"fact": "Fungi predate land plants."}),
				},
			},
		}
		resolver := NewResolver(transport, zap.NewNop())

		fact := resolver.GetRandomStaticFact(context.Background())
		assert.Equal(t, "Fungi predate land plants.", fact)
		assert.Equal(t, SourceCMS, resolver.DataSource("mushroomFact"))
	})
}

func TestResolverFAQOrdering(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{
			"faq": {
				entry("q1", map[string]any{"question": "third", "answer": "a", "category": "general", "order": float64(30)}),
				entry("q2", map[string]any{"question": "first", "answer": "b", "category": "general", "order": float64(5)}),
				entry("q3", map[string]any{"question": "second", "answer": "c", "category": "general", "order": float64(12)}),
			},
		},
	}
	resolver := NewResolver(transport, zap.NewNop())

	faqs := resolver.GetFAQs(context.Background(), "general")
	require.Len(t, faqs, 3)

	assert.Equal(t, "first", faqs[0].Question)
	assert.Equal(t, "second", faqs[1].Question)
	assert.Equal(t, "third", faqs[2].Question)
	// orders are renumbered 1-based regardless of CMS values
	for i, faq := range faqs {
		assert.Equal(t, i+1, faq.Order)
	}
}

func TestResolverComponentContent(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{
			"componentContent": {
				entry("c1", map[string]any{
					"componentId": "calculator",
					"title":       "Custom Title",
					"labels":      map[string]any{"save": "Store"},
				}),
			},
		},
	}
	resolver := NewResolver(transport, zap.NewNop())
	ctx := context.Background()

	t.Run("cms entry merges nested objects flat", func(t *testing.T) {
		fields := resolver.GetComponentContent(ctx, "calculator")
		assert.Equal(t, "Custom Title", fields["title"])
		assert.Equal(t, "Store", fields["save"])
	})

	t.Run("unknown component falls back to built-in copy", func(t *testing.T) {
		fields := resolver.GetComponentContent(ctx, "header")
		assert.Equal(t, "SpawnSmart", fields["title"])
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, resolver.GetComponentContent(ctx, "no-such-component"))
	})
}

func TestResolverSporeStoreJoin(t *testing.T) {
	transport := &fakeTransport{
		entries: map[string][]contentful.Entry{
			"supplier": supplierEntries(),
			"spore": {
				entry("sp1", map[string]any{
					"mushroomType": "Gourmet",
					"subtype":      "Blue Oyster",
					"store":        link("sup1"),
				}),
			},
		},
	}
	resolver := NewResolver(transport, zap.NewNop())

	spores := resolver.GetAllSporeData(context.Background())
	require.Len(t, spores, 1)
	assert.Equal(t, []string{"North Spore"}, spores[0].Suppliers)
}
