package emit

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/doctools/docsmith/internal/classify"
)

var iconLine = regexp.MustCompile(`icon: "[^"]*"`)

// RewriteIcons recomputes each generated page's icon from its action verb
// and category directory, rewriting the frontmatter in place when it
// changed. Returns the number of updated files. Per-file read/write
// failures are reported and skipped; the rest of the batch continues.
func (e *Emitter) RewriteIcons(actions, categories []classify.IconRule) (int, error) {
	dirs, err := e.FS.ReadDir(e.OutDir)
	if err != nil {
		return 0, fmt.Errorf("read endpoint dir %s: %w", e.OutDir, err)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })

	updated := 0
	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		category := d.Name()
		catDir := e.FS.Join(e.OutDir, category)
		files, err := e.FS.ReadDir(catDir)
		if err != nil {
			e.logf("warning: read %s: %v\n", catDir, err)
			continue
		}
		sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".mdx") {
				continue
			}
			stem := strings.TrimSuffix(f.Name(), ".mdx")
			icon := iconFor(category, stem, actions, categories)
			p := e.FS.Join(catDir, f.Name())

			data, err := util.ReadFile(e.FS, p)
			if err != nil {
				e.logf("warning: read %s: %v\n", p, err)
				continue
			}
			out := iconLine.ReplaceAll(data, []byte(fmt.Sprintf("icon: %q", icon)))
			if bytes.Equal(out, data) {
				continue
			}
			if err := util.WriteFile(e.FS, p, out, 0o644); err != nil {
				e.logf("warning: write %s: %v\n", p, err)
				continue
			}
			updated++
		}
	}
	return updated, nil
}

// iconFor prefers an action-verb icon and falls back to the category icon.
func iconFor(category, stem string, actions, categories []classify.IconRule) string {
	token := classify.ActionToken(stem)
	if icon, ok := classify.ActionIcon(token, actions); ok {
		return icon
	}
	return classify.CategoryIcon(category, categories)
}
