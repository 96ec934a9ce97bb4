package report

import (
	"fmt"
	"strings"
)

// Short renders the concise llms.txt report.
func (s *Summarizer) Short() string {
	nav := s.navigation()
	fc := s.files()
	cats := s.categories()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Meta.Name)
	fmt.Fprintf(&b, "%s\n\n", s.Meta.Tagline)

	b.WriteString("## Project Overview\n\n")
	fmt.Fprintf(&b, "**Purpose**: Developer documentation and generated API reference\n")
	fmt.Fprintf(&b, "**API Coverage**: %d endpoints across %d categories\n", nav.Total, len(cats))
	fmt.Fprintf(&b, "**Generated Content**: %d endpoint pages from %d OpenAPI category files\n\n", fc.Pages, fc.SplitSets)

	b.WriteString("## Navigation Structure\n\n")
	for _, t := range nav.Tabs {
		fmt.Fprintf(&b, "- **%s Tab**: %s\n", t.Name, strings.Join(t.Groups, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Technical Implementation\n\n")
	fmt.Fprintf(&b, "- **Base URL**: `%s`\n", s.Meta.BaseURL)
	fmt.Fprintf(&b, "- **OpenAPI Source**: `%s`\n", s.Meta.SpecURL)
	fmt.Fprintf(&b, "- **Automation**: %d maintenance scripts, %d workflow definitions\n\n", fc.Scripts, fc.Workflows)

	b.WriteString("## API Categories\n\n")
	b.WriteString("### Core Services\n")
	core := 0
	for _, c := range cats {
		if c.Count > coreThreshold && core < 5 {
			fmt.Fprintf(&b, "- **%s**: %d endpoints\n", c.Name, c.Count)
			core++
		}
	}
	b.WriteString("\n### Additional Categories\n")
	rest := 0
	for _, c := range cats {
		if c.Count <= coreThreshold && rest < 10 {
			fmt.Fprintf(&b, "- **%s**: %d endpoints\n", c.Name, c.Count)
			rest++
		}
	}
	b.WriteString("\n")

	b.WriteString("## Content Guidelines\n\n")
	b.WriteString("All generated pages carry YAML frontmatter with `title`, `description`,\n")
	b.WriteString("an `openapi` operation reference, and an `icon`. Deprecated endpoints\n")
	b.WriteString("additionally carry `deprecated: true` and a warning callout.\n")
	return b.String()
}

// Full renders the comprehensive llms-full.txt report.
func (s *Summarizer) Full() string {
	nav := s.navigation()
	fc := s.files()
	cats := s.categories()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Complete Reference\n\n", s.Meta.Name)
	fmt.Fprintf(&b, "%s\n\n", s.Meta.Tagline)

	b.WriteString("## Project Overview\n\n")
	fmt.Fprintf(&b, "This documentation site covers %d API endpoints organized into %d\n", nav.Total, len(cats))
	b.WriteString("categories. Endpoint pages, the navigation tree, and these context\n")
	b.WriteString("files are regenerated from the OpenAPI specification; hand-written\n")
	b.WriteString("guides and the site configuration are maintained alongside them.\n\n")

	b.WriteString("## Site Structure\n\n")
	b.WriteString("```\n")
	b.WriteString("docs/\n")
	fmt.Fprintf(&b, "├── %s            # navigation document (single persisted config)\n", s.NavFile)
	fmt.Fprintf(&b, "├── %s/   # generated endpoint pages (%d)\n", s.EndpointDir, fc.Pages)
	fmt.Fprintf(&b, "├── %s/  # OpenAPI split files (%d categories)\n", s.SplitDir, fc.SplitSets)
	fmt.Fprintf(&b, "├── scripts/             # maintenance tooling (%d)\n", fc.Scripts)
	fmt.Fprintf(&b, "└── .github/workflows/   # scheduled regeneration (%d)\n", fc.Workflows)
	b.WriteString("```\n\n")

	b.WriteString("## Navigation\n\n")
	for _, t := range nav.Tabs {
		fmt.Fprintf(&b, "### %s\n", t.Name)
		for _, g := range t.Groups {
			if n, ok := nav.Counts[g]; ok && n > 0 {
				fmt.Fprintf(&b, "- %s (%d pages)\n", g, n)
			} else {
				fmt.Fprintf(&b, "- %s\n", g)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## API Categories\n\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "- **%s**: %d endpoints\n", c.Name, c.Count)
	}
	b.WriteString("\n")

	b.WriteString("## API Integration\n\n")
	fmt.Fprintf(&b, "- **Base URL**: `%s`\n", s.Meta.BaseURL)
	fmt.Fprintf(&b, "- **OpenAPI Source**: `%s`\n", s.Meta.SpecURL)
	b.WriteString("- **Page Identifiers**: derived from endpoint paths — prefix stripped,\n")
	b.WriteString("  lower-cased, slash-joined with hyphens\n\n")

	b.WriteString("## Maintenance\n\n")
	b.WriteString("- `docsmith generate` — regenerate endpoint pages and the flat listing\n")
	b.WriteString("- `docsmith navigation` — merge the flat listing into the navigation document\n")
	b.WriteString("- `docsmith accordion` — regroup large categories by action type\n")
	b.WriteString("- `docsmith services` — add service-level groupings\n")
	b.WriteString("- `docsmith summarize` — refresh these context files\n\n")

	b.WriteString("The navigation document is backed up verbatim before every merge; a\n")
	b.WriteString("bad run is reverted by restoring the backup file.\n")
	return b.String()
}
