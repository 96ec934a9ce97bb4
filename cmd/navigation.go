package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/emit"
	"github.com/doctools/docsmith/internal/nav"
)

var navigationCmd = &cobra.Command{
	Use:   "navigation",
	Short: "Merge the generated navigation listing into the navigation document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing := filepath.Join(cfg.DocsRoot, cfg.EndpointDir, emit.NavigationFile)
		data, err := os.ReadFile(listing)
		if err != nil {
			return fmt.Errorf("read navigation listing %s: %w", listing, err)
		}
		var groups []nav.Group
		if err := json.Unmarshal(data, &groups); err != nil {
			return fmt.Errorf("decode navigation listing %s: %w", listing, err)
		}
		fmt.Printf("Loaded %d endpoint categories from %s.\n", len(groups), listing)

		m := merger()
		if err := m.Merge(nav.ReplaceAll(), groups); err != nil {
			return err
		}
		fmt.Printf("Backed up navigation document to %s.\n", m.BackupPath)
		fmt.Printf("Updated %q tab with %d endpoint groups.\n", cfg.TabName, len(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navigationCmd)
}
