package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/emit"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate endpoint pages and the flat navigation listing from OpenAPI split files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		em := &emit.Emitter{
			FS:       docsFS(),
			SplitDir: cfg.SplitDir,
			OutDir:   cfg.EndpointDir,
			Icons:    classify.DefaultPageIcons(),
			Log:      os.Stdout,
		}
		res, err := em.Run()
		if err != nil {
			return err
		}

		fmt.Printf("\nGenerated %d endpoint pages across %d categories.\n", res.Pages, len(res.Categories))
		fmt.Printf("Navigation listing written to %s.\n", path.Join(cfg.DocsRoot, cfg.EndpointDir, emit.NavigationFile))
		fmt.Println("\nSummary by category:")
		for _, c := range res.Categories {
			fmt.Printf("  %s: %d endpoints\n", c.Name, len(c.Pages))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
