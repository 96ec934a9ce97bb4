package emit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/doctools/docsmith/internal/classify"
)

// methodOrder lists the recognized HTTP methods in pick priority.
var methodOrder = []string{"get", "post", "put", "delete", "patch"}

// pathPrefix is the API prefix stripped from paths when deriving titles and
// file identifiers.
const pathPrefix = "/api/"

// descriptionLimit caps frontmatter descriptions; longer text is hard-cut
// to 157 characters plus an ellipsis.
const descriptionLimit = 160

var identStrip = regexp.MustCompile(`[^a-z0-9-]`)

// Endpoint describes one OpenAPI path item as rendered into a page.
type Endpoint struct {
	Path        string
	Method      string
	Summary     string
	Description string
	Deprecated  bool
}

// FromPathItem extracts the endpoint descriptor for one path. The first
// recognized method wins; a path item with none defaults to POST with empty
// summary and description — a fallback, not an error.
func FromPathItem(p string, item map[string]any) Endpoint {
	for _, m := range methodOrder {
		raw, ok := item[m]
		if !ok {
			continue
		}
		op, _ := raw.(map[string]any)
		return Endpoint{
			Path:        p,
			Method:      strings.ToUpper(m),
			Summary:     asString(op["summary"]),
			Description: asString(op["description"]),
			Deprecated:  asBool(op["deprecated"]),
		}
	}
	return Endpoint{Path: p, Method: "POST"}
}

// Identifier derives the page file stem for an endpoint path: prefix
// stripped, lower-cased, slashes joined with hyphens, everything outside
// [a-z0-9-] dropped.
func Identifier(p string) string {
	name := strings.ToLower(strings.ReplaceAll(p, pathPrefix, ""))
	name = strings.ReplaceAll(name, "/", "-")
	return identStrip.ReplaceAllString(name, "")
}

// Page renders the MDX document for the endpoint.
func (e Endpoint) Page(category string, icons map[string]string) string {
	title := e.Summary
	if title == "" {
		title = strings.ReplaceAll(e.Path, pathPrefix, "")
	}

	desc := e.Description
	if desc == "" {
		desc = e.Summary
	}
	if desc == "" {
		desc = fmt.Sprintf("API endpoint for %s", e.Path)
	}
	if r := []rune(desc); len(r) > descriptionLimit {
		desc = string(r[:descriptionLimit-3]) + "..."
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "description: %q\n", desc)
	fmt.Fprintf(&b, "openapi: \"%s %s\"\n", e.Method, e.Path)
	fmt.Fprintf(&b, "icon: %q\n", classify.PageIcon(category, icons))
	if e.Deprecated {
		b.WriteString("deprecated: true\n")
	}
	b.WriteString("---\n\n")

	if e.Description != "" && e.Description != e.Summary {
		b.WriteString(e.Description)
		b.WriteString("\n\n")
	}

	if e.Deprecated {
		b.WriteString("<Warning>\nThis endpoint is deprecated and may be removed in a future version.\n</Warning>\n\n")
	}

	b.WriteString("<Note>\nThe parameters and response fields below are automatically generated from the OpenAPI specification.\n</Note>\n")
	return b.String()
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
