package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/nav"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Reclassify the tab's categories into service-level groups",
	Long: `Reads the existing category groups of the configured tab (keeping the
introduction entry in place) and regroups them into service-level sections:
Service -> Category -> pages. Categories no service claims land in a final
"Other Services" section.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := merger()
		existing, err := m.ReadGroups()
		if err != nil {
			return err
		}
		if len(existing) <= 1 {
			fmt.Printf("Tab %q has no category groups to reclassify.\n", cfg.TabName)
			return nil
		}

		services := nav.BuildServices(existing[1:], classify.DefaultServiceTable())
		if err := m.Merge(nav.ReplaceAll(), services); err != nil {
			return err
		}

		fmt.Printf("Backed up navigation document to %s.\n", m.BackupPath)
		fmt.Printf("Updated %q tab with %d service groups:\n", cfg.TabName, len(services))
		for _, s := range services {
			fmt.Printf("  %s: %d categories\n", s.Name, len(s.Pages))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
