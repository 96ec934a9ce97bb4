package nav

import (
	"path"
	"strings"

	"github.com/doctools/docsmith/internal/classify"
)

// BuildServices partitions flat category groups into service-level groups.
// The partition is stable: each service keeps its categories in input order.
// Services are emitted in the table's declaration order, with the
// OtherServices catch-all appended last when non-empty. Services that
// receive no categories are omitted. An empty input yields an empty result.
func BuildServices(categories []Group, table classify.Table) []Group {
	byService := make(map[string][]Entry)
	for _, c := range categories {
		svc := classify.Service(c.Name, table)
		byService[svc] = append(byService[svc], GroupEntry(c))
	}

	var out []Group
	for _, b := range table {
		if entries := byService[b.Name]; len(entries) > 0 {
			out = append(out, Group{Name: b.Name, Pages: entries})
		}
	}
	if entries := byService[classify.OtherServices]; len(entries) > 0 {
		out = append(out, Group{Name: classify.OtherServices, Pages: entries})
	}
	return out
}

// BuildAccordion partitions leaf pages into action-type groups. Pages keep
// their input order inside each group; groups are emitted in the action
// table's declared order with OtherOperations last, and empty groups are
// never emitted.
func BuildAccordion(pages []string, actions []classify.ActionGroup) []Group {
	byAction := make(map[string][]Entry)
	for _, p := range pages {
		bucket := classify.Action(pageStem(p), actions)
		byAction[bucket] = append(byAction[bucket], LeafEntry(p))
	}

	var out []Group
	for _, a := range actions {
		if entries := byAction[a.Name]; len(entries) > 0 {
			out = append(out, Group{Name: a.Name, Pages: entries})
		}
	}
	if entries := byAction[classify.OtherOperations]; len(entries) > 0 {
		out = append(out, Group{Name: classify.OtherOperations, Pages: entries})
	}
	return out
}

// Accordionize regroups a flat category into accordion sub-groups when it
// holds more than limit pages. Categories at or under the limit, and
// categories that already contain sub-groups, come back unchanged.
func Accordionize(g Group, limit int, actions []classify.ActionGroup) Group {
	if len(g.Pages) <= limit || !g.Flat() {
		return g
	}
	pages := make([]string, len(g.Pages))
	for i, e := range g.Pages {
		pages[i] = e.Leaf
	}
	sub := BuildAccordion(pages, actions)
	entries := make([]Entry, len(sub))
	for i, s := range sub {
		entries[i] = GroupEntry(s)
	}
	return Group{Name: g.Name, Pages: entries}
}

// pageStem returns the final path element of a navigation page reference
// without any extension.
func pageStem(p string) string {
	base := path.Base(p)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
