package contentful

import (
	"fmt"
	"strings"
)

const (
	// defaultLocale is the only locale this space publishes
	defaultLocale = "en-US"

	// maxStringify caps the best-effort rendering of unknown shapes
	maxStringify = 100

	// DefaultImageURL is returned when no asset URL can be resolved
	DefaultImageURL = "https://via.placeholder.com/150"
)

// fieldShape is the closed set of field encodings the CMS produces
type fieldShape int

const (
	shapeNil fieldShape = iota
	shapePlain
	shapeLocaleMap
	shapeRichText
	shapeLink
	shapeUnknown
)

func classify(v any) fieldShape {
	switch t := v.(type) {
	case nil:
		return shapeNil
	case string:
		return shapePlain
	case map[string]any:
		if _, ok := t[defaultLocale]; ok {
			return shapeLocaleMap
		}
		if nt, _ := t["nodeType"].(string); nt != "" {
			if _, ok := t["content"]; ok {
				return shapeRichText
			}
		}
		if sys, ok := t["sys"].(map[string]any); ok {
			if lt, _ := sys["linkType"].(string); lt != "" {
				return shapeLink
			}
		}
		return shapeUnknown
	default:
		return shapeUnknown
	}
}

// ExtractText reduces any field value the CMS can produce to a plain
// string. Plain strings pass through, locale wrappers are unwrapped,
// rich-text documents are flattened in document order, links and
// unresolvable inputs degrade to "". Total over its input: never
// panics, never returns anything but a string.
func ExtractText(v any) string {
	switch classify(v) {
	case shapeNil:
		return ""
	case shapePlain:
		return v.(string)
	case shapeLocaleMap:
		return ExtractText(unwrapLocale(v))
	case shapeRichText:
		return richTextString(v.(map[string]any))
	case shapeLink:
		return ""
	default:
		return stringify(v)
	}
}

// unwrapLocale selects the en-US value from a locale wrapper.
// Non-wrapper values pass through unchanged.
func unwrapLocale(v any) any {
	if m, ok := v.(map[string]any); ok {
		if inner, ok := m[defaultLocale]; ok {
			return inner
		}
	}
	return v
}

// richTextString walks a rich-text document depth-first and joins the
// leaf text values in document order with single spaces.
func richTextString(node map[string]any) string {
	var parts []string
	collectText(node, &parts)
	return strings.Join(parts, " ")
}

func collectText(v any, parts *[]string) {
	node, ok := v.(map[string]any)
	if !ok {
		return
	}
	if nt, _ := node["nodeType"].(string); nt == "text" {
		if s, ok := node["value"].(string); ok && s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	children, ok := node["content"].([]any)
	if !ok {
		return
	}
	for _, child := range children {
		collectText(child, parts)
	}
}

// stringify renders an unrecognized shape without failing, capped so a
// pathological value cannot flood the caller
func stringify(v any) string {
	switch t := v.(type) {
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		return trimFloat(t)
	case map[string]any:
		// the only recognized keys are gone at this point
		return ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := ExtractText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return clip(strings.Join(parts, " "))
	default:
		return clip(fmt.Sprintf("%v", t))
	}
}

func clip(s string) string {
	if len(s) > maxStringify {
		return s[:maxStringify]
	}
	return s
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%v", f)
	return clip(s)
}

// ExtractImageURL resolves an asset-bearing field value to an image
// URL. Protocol-relative URLs are upgraded to https. Unresolvable
// input yields DefaultImageURL, never an error.
func ExtractImageURL(v any) string {
	v = unwrapLocale(v)
	if s, ok := v.(string); ok && s != "" {
		return upgradeProtocol(s)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return DefaultImageURL
	}

	// direct asset shape: fields.file.url, each level possibly
	// locale-wrapped
	if fields, ok := unwrapLocale(m["fields"]).(map[string]any); ok {
		if file, ok := unwrapLocale(fields["file"]).(map[string]any); ok {
			if u, ok := unwrapLocale(file["url"]).(string); ok && u != "" {
				return upgradeProtocol(u)
			}
		}
	}

	if u, ok := unwrapLocale(m["url"]).(string); ok && u != "" {
		return upgradeProtocol(u)
	}

	return DefaultImageURL
}

func upgradeProtocol(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
