package exam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	KindText  = "text"
	KindImage = "image"
)

// ResolveContent turns a question or answer's authored content into a single
// display value plus a display kind. The preview value wins when present;
// structured values are rendered as compact JSON; image-typed values that are
// not already absolute URLs or data URIs get the storage base prefixed.
func ResolveContent(typ string, content, preview interface{}, storageBase string) (string, string) {
	value := renderValue(chooseContent(content, preview))
	if value == "" {
		// Empty content is always text, whatever the declared type says.
		return "", KindText
	}

	kind := KindText
	switch strings.ToLower(typ) {
	case "figure", "image":
		kind = KindImage
	}

	if kind == KindImage && !strings.HasPrefix(value, "http") && !strings.HasPrefix(value, "data:image") {
		value = strings.TrimSuffix(storageBase, "/") + "/" + strings.TrimLeft(value, "/")
	}
	return value, kind
}

func chooseContent(content, preview interface{}) interface{} {
	if !isEmptyValue(preview) {
		return preview
	}
	if !isEmptyValue(content) {
		return content
	}
	return nil
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return stripOuterQuotes(strings.TrimSpace(t))
	case map[string]interface{}, []interface{}:
		return compactJSON(t)
	default:
		return stripOuterQuotes(strings.TrimSpace(fmt.Sprintf("%v", t)))
	}
}

// stripOuterQuotes removes exactly one pair of matching straight quotes.
func stripOuterQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func compactJSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}
