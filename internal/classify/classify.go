// Package classify assigns navigation items to grouping buckets using
// injected lookup tables. All functions are pure: callers own the tables
// and classification never mutates them.
package classify

import "strings"

// Sentinel bucket names. Both are always rendered after every declared
// bucket when non-empty.
const (
	OtherServices   = "Other Services"
	OtherOperations = "Other Operations"
)

// DefaultIcon is the fallback icon when no rule matches.
const DefaultIcon = "circle-dot"

// Bucket names one service grouping and the exact member names it owns.
type Bucket struct {
	Name    string
	Members []string
}

// Table is an ordered list of buckets. Order is load-bearing: Service tests
// buckets first to last, and the tree builder emits groups in the same order.
type Table []Bucket

// Service returns the name of the first bucket whose member list contains
// name exactly. A name no bucket claims falls into OtherServices.
func Service(name string, t Table) string {
	for _, b := range t {
		for _, m := range b.Members {
			if m == name {
				return b.Name
			}
		}
	}
	return OtherServices
}

// ActionGroup pairs an accordion bucket name with the keywords that route a
// page into it.
type ActionGroup struct {
	Name     string
	Keywords []string
}

// Action returns the accordion bucket for a page file stem. Groups are tried
// in order and the first one with a keyword appearing anywhere in the
// lower-cased stem wins; a stem matching nothing lands in OtherOperations.
func Action(stem string, groups []ActionGroup) string {
	stem = strings.ToLower(stem)
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if strings.Contains(stem, kw) {
				return g.Name
			}
		}
	}
	return OtherOperations
}

// ActionToken extracts the verb that leads a page file stem. The category
// prefix up to the first "-" is dropped and the leading alphabetic run of
// the remainder is returned. A stem with no separator is used whole; a stem
// with no alphabetic lead yields "other".
func ActionToken(stem string) string {
	stem = strings.ToLower(stem)
	if i := strings.IndexByte(stem, '-'); i >= 0 {
		stem = stem[i+1:]
	}
	end := 0
	for end < len(stem) && stem[end] >= 'a' && stem[end] <= 'z' {
		end++
	}
	if end == 0 {
		return "other"
	}
	return stem[:end]
}

// Label renders a category directory name as a display label: hyphens
// become spaces, each word is capitalized.
func Label(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// IconRule maps a match key to an icon name. Rules are tried in declaration
// order, first match wins.
type IconRule struct {
	Key  string
	Icon string
}

// ActionIcon resolves an icon for an action token by prefix match.
func ActionIcon(token string, rules []IconRule) (string, bool) {
	for _, r := range rules {
		if strings.HasPrefix(token, r.Key) {
			return r.Icon, true
		}
	}
	return "", false
}

// CategoryIcon resolves an icon for a category directory name by substring
// match, falling back to DefaultIcon.
func CategoryIcon(category string, rules []IconRule) string {
	for _, r := range rules {
		if strings.Contains(category, r.Key) {
			return r.Icon
		}
	}
	return DefaultIcon
}

// PageIcon resolves the icon stamped on freshly generated pages by exact
// category match, falling back to DefaultIcon.
func PageIcon(category string, icons map[string]string) string {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return DefaultIcon
}
