package contentful

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func richTextDoc(values ...string) map[string]any {
	children := make([]any, 0, len(values))
	for _, v := range values {
		children = append(children, map[string]any{
			"nodeType": "paragraph",
			"content": []any{
				map[string]any{"nodeType": "text", "value": v},
			},
		})
	}
	return map[string]any{
		"nodeType": "document",
		"content":  children,
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil yields empty", nil, ""},
		{"plain string passes through", "hello", "hello"},
		{"empty map yields empty", map[string]any{}, ""},
		{
			"locale wrapper is unwrapped",
			map[string]any{"en-US": "wrapped"},
			"wrapped",
		},
		{
			"nested locale wrapper is unwrapped recursively",
			map[string]any{"en-US": map[string]any{"en-US": "deep"}},
			"deep",
		},
		{
			"rich text joins leaves with spaces",
			richTextDoc("first", "second", "third"),
			"first second third",
		},
		{
			"locale-wrapped rich text",
			map[string]any{"en-US": richTextDoc("only")},
			"only",
		},
		{
			"entry link yields empty",
			map[string]any{"sys": map[string]any{"type": "Link", "linkType": "Entry", "id": "abc"}},
			"",
		},
		{"number renders as text", float64(42), "42"},
		{"bool renders as text", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.in))
		})
	}
}

func TestExtractImageURL(t *testing.T) {
	asset := map[string]any{
		"fields": map[string]any{
			"file": map[string]any{
				"url": "//images.ctfassets.net/abc/pic.png",
			},
		},
	}

	t.Run("asset url is upgraded to https", func(t *testing.T) {
		assert.Equal(t, "https://images.ctfassets.net/abc/pic.png", ExtractImageURL(asset))
	})

	t.Run("locale-wrapped asset resolves", func(t *testing.T) {
		wrapped := map[string]any{"en-US": asset}
		assert.Equal(t, "https://images.ctfassets.net/abc/pic.png", ExtractImageURL(wrapped))
	})

	t.Run("absolute url passes through", func(t *testing.T) {
		v := map[string]any{"url": "https://example.com/x.png"}
		assert.Equal(t, "https://example.com/x.png", ExtractImageURL(v))
	})

	t.Run("bare string url is upgraded", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/x.jpg", ExtractImageURL("//cdn.example.com/x.jpg"))
		assert.Equal(t, "https://cdn.example.com/y.jpg", ExtractImageURL(map[string]any{"en-US": "//cdn.example.com/y.jpg"}))
	})

	t.Run("unresolvable input yields the placeholder", func(t *testing.T) {
		assert.Equal(t, DefaultImageURL, ExtractImageURL(nil))
		assert.Equal(t, DefaultImageURL, ExtractImageURL(""))
		assert.Equal(t, DefaultImageURL, ExtractImageURL(map[string]any{}))
	})
}

// Plain strings always survive extraction unchanged
func TestProperty_PlainStringIdentity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("plain strings pass through", prop.ForAll(
		func(s string) bool {
			return ExtractText(s) == s
		},
		gen.AnyString(),
	))

	properties.Property("locale-wrapped strings unwrap to themselves", prop.ForAll(
		func(s string) bool {
			return ExtractText(map[string]any{"en-US": s}) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Rich-text flattening preserves document order
func TestProperty_RichTextOrder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("leaves appear space-joined in order", prop.ForAll(
		func(words []string) bool {
			kept := make([]string, 0, len(words))
			for _, w := range words {
				if w != "" {
					kept = append(kept, w)
				}
			}
			return ExtractText(richTextDoc(words...)) == strings.Join(kept, " ")
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Extraction never panics and always yields a string, whatever the shape
func TestProperty_ExtractionIsTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// shape index selects one of the encodings the CMS can produce
	buildShape := func(shape int, s string) any {
		switch shape % 6 {
		case 0:
			return s
		case 1:
			return float64(len(s))
		case 2:
			return nil
		case 3:
			return map[string]any{"en-US": s}
		case 4:
			return map[string]any{"unexpected": s}
		default:
			return []any{s, s}
		}
	}

	properties.Property("ExtractText never panics", prop.ForAll(
		func(shape int, s string) (ok bool) {
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			_ = ExtractText(buildShape(shape, s))
			return true
		},
		gen.IntRange(0, 5),
		gen.AnyString(),
	))

	properties.Property("ExtractImageURL never returns empty", prop.ForAll(
		func(shape int, s string) bool {
			return ExtractImageURL(buildShape(shape, s)) != ""
		},
		gen.IntRange(0, 5),
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
