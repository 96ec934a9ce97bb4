// Package cmd wires the docsmith subcommands. Each command is one batch
// transform over the docs tree; they share configuration resolved once
// before any command runs.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/config"
	"github.com/doctools/docsmith/internal/nav"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docsmith",
	Short: "Docsmith: maintenance toolkit for a generated documentation site",
	Long: `Docsmith regenerates endpoint documentation pages from OpenAPI split
files and keeps the site's navigation document organized, with a verbatim
backup taken before every navigation rewrite.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to docsmith.hcl (built-in defaults apply when absent)")
}

// docsFS returns a filesystem rooted at the docs directory, so generated
// navigation paths come out relative to the docs root.
func docsFS() billy.Filesystem {
	return osfs.New(cfg.DocsRoot)
}

func merger() *nav.Merger {
	return &nav.Merger{
		Path:       filepath.Join(cfg.DocsRoot, cfg.NavigationFile),
		BackupPath: filepath.Join(cfg.DocsRoot, cfg.BackupFile),
		TabName:    cfg.TabName,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
