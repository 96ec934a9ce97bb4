// Package report produces the llms.txt and llms-full.txt project
// summaries from the navigation document and the generated docs tree.
// Everything here is read-only and degrades to zero counts when an input
// is missing — the summarizer never fails a run.
package report

import (
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/config"
)

// ShortFile and FullFile are the report locations relative to the docs root.
const (
	ShortFile = "llms.txt"
	FullFile  = "llms-full.txt"
)

// coreThreshold is the endpoint count above which a category is presented
// as a core service in the reports.
const coreThreshold = 10

// Summarizer reads the docs tree and renders the two report texts.
type Summarizer struct {
	FS          billy.Filesystem
	NavFile     string
	EndpointDir string
	SplitDir    string
	Meta        config.Project
}

// CategoryCount is one generated category directory and its page count.
type CategoryCount struct {
	Name  string
	Count int
}

type tabSummary struct {
	Name   string
	Groups []string
}

type navSummary struct {
	Total  int
	Counts map[string]int
	Tabs   []tabSummary
}

type fileCounts struct {
	Pages     int
	SplitSets int
	Scripts   int
	Workflows int
}

// navigation walks the navigation document, counting leaf pages per group
// name. A missing or malformed document yields an empty summary.
func (s *Summarizer) navigation() navSummary {
	out := navSummary{Counts: map[string]int{}}

	data, err := util.ReadFile(s.FS, s.NavFile)
	if err != nil {
		return out
	}
	root, err := oj.Parse(data)
	if err != nil {
		return out
	}

	tabsExpr, err := jp.ParseString("$.navigation.tabs[*]")
	if err != nil {
		return out
	}
	for _, t := range tabsExpr.Get(root) {
		tab, ok := t.(map[string]any)
		if !ok {
			continue
		}
		ts := tabSummary{Name: asString(tab["tab"])}
		if groups, ok := tab["groups"].([]any); ok {
			for _, g := range groups {
				if gm, ok := g.(map[string]any); ok {
					ts.Groups = append(ts.Groups, asString(gm["group"]))
				}
			}
		}
		out.Tabs = append(out.Tabs, ts)
	}

	navExpr, err := jp.ParseString("$.navigation")
	if err != nil {
		return out
	}
	for _, v := range navExpr.Get(root) {
		countLeaves(v, "", out.Counts)
	}
	for _, n := range out.Counts {
		out.Total += n
	}
	return out
}

// countLeaves attributes every string inside a "pages" list to the nearest
// enclosing group name. Nested groups shadow their parent, so a leaf is
// counted exactly once, under its innermost group.
func countLeaves(v any, current string, counts map[string]int) {
	switch t := v.(type) {
	case map[string]any:
		if g, ok := t["group"].(string); ok {
			current = g
		}
		for k, val := range t {
			if k == "pages" {
				list, ok := val.([]any)
				if !ok {
					continue
				}
				for _, p := range list {
					if _, isLeaf := p.(string); isLeaf {
						if current != "" {
							counts[current]++
						}
						continue
					}
					countLeaves(p, current, counts)
				}
				continue
			}
			countLeaves(val, current, counts)
		}
	case []any:
		for _, item := range t {
			countLeaves(item, current, counts)
		}
	}
}

// categories returns per-category page counts from the generated tree,
// sorted by count descending then name.
func (s *Summarizer) categories() []CategoryCount {
	infos, err := s.FS.ReadDir(s.EndpointDir)
	if err != nil {
		return nil
	}
	var out []CategoryCount
	for _, d := range infos {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		count := s.countSuffix(s.FS.Join(s.EndpointDir, d.Name()), ".mdx")
		if count == 0 {
			continue
		}
		out = append(out, CategoryCount{Name: classify.Label(d.Name()), Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// files gathers the generated-content counts used by both reports.
func (s *Summarizer) files() fileCounts {
	fc := fileCounts{
		Pages:   s.countSuffix(s.EndpointDir, ".mdx"),
		Scripts: s.countSuffix("scripts", ""),
	}
	fc.Workflows = s.countSuffix(".github/workflows", ".yml") + s.countSuffix(".github/workflows", ".yaml")

	if infos, err := s.FS.ReadDir(s.SplitDir); err == nil {
		for _, fi := range infos {
			name := fi.Name()
			if !fi.IsDir() && strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, "_") {
				fc.SplitSets++
			}
		}
	}
	return fc
}

// countSuffix counts files under dir, recursively, whose name ends in
// suffix. An empty suffix counts every file. Missing directories count as
// zero.
func (s *Summarizer) countSuffix(dir, suffix string) int {
	infos, err := s.FS.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, fi := range infos {
		if fi.IsDir() {
			n += s.countSuffix(s.FS.Join(dir, fi.Name()), suffix)
			continue
		}
		if suffix == "" || strings.HasSuffix(fi.Name(), suffix) {
			n++
		}
	}
	return n
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
