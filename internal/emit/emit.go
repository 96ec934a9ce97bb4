// Package emit generates per-endpoint MDX pages and the flat navigation
// listing from OpenAPI split files.
package emit

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/nav"
)

// NavigationFile is the flat per-category listing written next to the
// generated pages, ready to be merged into the navigation document.
const NavigationFile = "_navigation.json"

// IndexFile lists the category display names inside the split directory.
const IndexFile = "_index.json"

// displaySuffix is trimmed from category display names coming from the
// index document.
const displaySuffix = " Webservice"

// Emitter writes one MDX page per OpenAPI path item. It operates on a
// filesystem rooted at the docs directory so navigation paths come out
// relative to the docs root.
type Emitter struct {
	FS       billy.Filesystem
	SplitDir string            // split category files, relative to FS root
	OutDir   string            // generated pages, relative to FS root
	Icons    map[string]string // exact-match category icon table
	Log      io.Writer         // progress and per-item warnings; nil discards
}

// CategoryResult records the pages generated for one category.
type CategoryResult struct {
	Name  string   // category file stem
	Pages []string // navigation page references, sorted
}

// Result summarizes a generation run.
type Result struct {
	Categories []CategoryResult
	Pages      int
}

// Run processes every split category file, writes the endpoint pages, and
// emits the flat navigation listing. A category file that cannot be read or
// parsed is reported and skipped; the batch continues.
func (e *Emitter) Run() (*Result, error) {
	files, err := e.categoryFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no category files in %s", e.SplitDir)
	}

	res := &Result{}
	for _, name := range files {
		cat, err := e.category(name)
		if err != nil {
			e.logf("warning: %s: %v\n", name, err)
			continue
		}
		if len(cat.Pages) == 0 {
			e.logf("warning: no paths found in %s\n", name)
			continue
		}
		res.Categories = append(res.Categories, cat)
		res.Pages += len(cat.Pages)
	}

	groups, err := e.navigation(res.Categories)
	if err != nil {
		return nil, err
	}
	data, err := nav.MarshalGroups(groups)
	if err != nil {
		return nil, fmt.Errorf("encode navigation listing: %w", err)
	}
	navPath := e.FS.Join(e.OutDir, NavigationFile)
	if err := util.WriteFile(e.FS, navPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", navPath, err)
	}
	return res, nil
}

// categoryFiles lists the split directory's category files, sorted, with
// underscore-prefixed support files excluded.
func (e *Emitter) categoryFiles() ([]string, error) {
	infos, err := e.FS.ReadDir(e.SplitDir)
	if err != nil {
		return nil, fmt.Errorf("read split dir %s: %w", e.SplitDir, err)
	}
	var files []string
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, "_") {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

// category writes the pages for one split file and returns their
// navigation references. A single page that fails to write is reported and
// skipped without failing the category.
func (e *Emitter) category(filename string) (CategoryResult, error) {
	data, err := util.ReadFile(e.FS, e.FS.Join(e.SplitDir, filename))
	if err != nil {
		return CategoryResult{}, err
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("parse: %w", err)
	}
	doc, _ := parsed.(map[string]any)
	paths, _ := doc["paths"].(map[string]any)

	category := strings.TrimSuffix(filename, ".json")
	dir := e.FS.Join(e.OutDir, category)
	if err := e.FS.MkdirAll(dir, 0o755); err != nil {
		return CategoryResult{}, fmt.Errorf("create %s: %w", dir, err)
	}

	keys := make([]string, 0, len(paths))
	for p := range paths {
		keys = append(keys, p)
	}
	sort.Strings(keys)

	seen := make(map[string]string)
	var pages []string
	for _, p := range keys {
		item, _ := paths[p].(map[string]any)
		id := Identifier(p)
		prev, collided := seen[id]
		if collided {
			e.logf("warning: %s: identifier %q for %s collides with %s, last write wins\n", category, id, p, prev)
		}
		seen[id] = p

		content := FromPathItem(p, item).Page(category, e.Icons)
		file := e.FS.Join(dir, id+".mdx")
		if err := util.WriteFile(e.FS, file, []byte(content), 0o644); err != nil {
			e.logf("warning: write %s: %v\n", file, err)
			continue
		}
		if !collided {
			pages = append(pages, path.Join(e.OutDir, category, id))
		}
	}
	sort.Strings(pages)

	e.logf("generated %d endpoint(s) in %s/\n", len(pages), category)
	return CategoryResult{Name: category, Pages: pages}, nil
}

// navigation builds the flat per-category listing, resolving display names
// from the split index document.
func (e *Emitter) navigation(cats []CategoryResult) ([]nav.Group, error) {
	display, err := e.displayNames()
	if err != nil {
		return nil, err
	}

	groups := make([]nav.Group, 0, len(cats))
	for _, c := range cats {
		name, ok := display[c.Name]
		if !ok {
			name = classify.Label(c.Name)
		}
		entries := make([]nav.Entry, len(c.Pages))
		for i, p := range c.Pages {
			entries[i] = nav.LeafEntry(p)
		}
		groups = append(groups, nav.Group{Name: name, Pages: entries})
	}
	return groups, nil
}

// displayNames maps category file stems to display names using the index
// document. A missing index is a hard error: the navigation listing cannot
// be labeled without it.
func (e *Emitter) displayNames() (map[string]string, error) {
	indexPath := e.FS.Join(e.SplitDir, IndexFile)
	data, err := util.ReadFile(e.FS, indexPath)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexPath, err)
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse index %s: %w", indexPath, err)
	}
	doc, _ := parsed.(map[string]any)
	categories, _ := doc["categories"].([]any)

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		s, ok := c.(string)
		if !ok {
			continue
		}
		key := strings.ToLower(s)
		key = strings.ReplaceAll(key, strings.ToLower(displaySuffix), "")
		key = strings.ReplaceAll(key, " ", "-")
		names[key] = strings.ReplaceAll(s, displaySuffix, "")
	}
	return names, nil
}

func (e *Emitter) logf(format string, args ...any) {
	if e.Log != nil {
		fmt.Fprintf(e.Log, format, args...)
	}
}
