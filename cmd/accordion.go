package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/emit"
	"github.com/doctools/docsmith/internal/nav"
)

var accordionNames []string

var accordionCmd = &cobra.Command{
	Use:   "accordion",
	Short: "Regroup large categories into action-type accordions and refresh page icons",
	Long: `Rewrites each generated page's icon from its action verb, then regroups
every category holding more than the configured limit of pages into
action-type sub-groups (Create & Add, Get & Find, Update & Modify,
Delete & Remove, Other Operations). With --group, only the named categories
are regrouped and every other group is left byte-untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		em := &emit.Emitter{
			FS:     docsFS(),
			OutDir: cfg.EndpointDir,
			Log:    os.Stdout,
		}
		updated, err := em.RewriteIcons(classify.DefaultActionIcons(), classify.DefaultCategoryIcons())
		if err != nil {
			return err
		}
		fmt.Printf("Updated icons in %d endpoint files.\n", updated)

		m := merger()
		existing, err := m.ReadGroups()
		if err != nil {
			return err
		}
		actions := classify.DefaultActionGroups()

		if len(accordionNames) > 0 {
			named := make(map[string]bool, len(accordionNames))
			for _, n := range accordionNames {
				named[n] = true
			}
			var replacements []nav.Group
			for _, g := range existing {
				if named[g.Name] {
					replacements = append(replacements, nav.Accordionize(g, cfg.AccordionLimit, actions))
				}
			}
			if err := m.Merge(nav.ReplaceNamed(accordionNames...), replacements); err != nil {
				return err
			}
			fmt.Printf("Backed up navigation document to %s.\n", m.BackupPath)
			fmt.Printf("Regrouped %d named categories in %q tab.\n", len(replacements), cfg.TabName)
			return nil
		}

		var groups []nav.Group
		accordions := 0
		if len(existing) > 1 {
			for _, g := range existing[1:] {
				out := nav.Accordionize(g, cfg.AccordionLimit, actions)
				if !out.Flat() {
					accordions++
				}
				groups = append(groups, out)
			}
		}
		if err := m.Merge(nav.ReplaceAll(), groups); err != nil {
			return err
		}
		fmt.Printf("Backed up navigation document to %s.\n", m.BackupPath)
		fmt.Printf("Updated %q tab: %d groups, %d with accordions.\n", cfg.TabName, len(groups), accordions)
		return nil
	},
}

func init() {
	accordionCmd.Flags().StringArrayVar(&accordionNames, "group", nil, "regroup only the named category groups (repeatable)")
	rootCmd.AddCommand(accordionCmd)
}
