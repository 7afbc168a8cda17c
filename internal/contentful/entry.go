package contentful

// Sys holds the system metadata of an entry or asset
type Sys struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	LinkType    string `json:"linkType,omitempty"`
	ContentType *struct {
		Sys Sys `json:"sys"`
	} `json:"contentType,omitempty"`
	Version int `json:"version,omitempty"`
}

// Entry is a raw CMS record: a system id plus a map of field values.
// Field values are decoded JSON and may be plain strings, locale
// wrappers, rich-text documents, entry links, or arbitrary objects.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// entriesResponse is the delivery API envelope for entry queries
type entriesResponse struct {
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
	Items []Entry `json:"items"`
}

// LinkID extracts the target entry id from a link-shaped field value.
// Returns "" when the value is not a link.
func LinkID(v any) string {
	v = unwrapLocale(v)
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return ""
	}
	if lt, _ := sys["linkType"].(string); lt != "Entry" && lt != "Asset" {
		return ""
	}
	id, _ := sys["id"].(string)
	return id
}

// LinkIDs extracts target ids from an array-of-links field value
func LinkIDs(v any) []string {
	v = unwrapLocale(v)
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(arr))
	for _, item := range arr {
		if id := LinkID(item); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
