package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/doctools/docsmith/internal/report"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write the llms.txt and llms-full.txt project summaries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := docsFS()
		s := &report.Summarizer{
			FS:          fs,
			NavFile:     cfg.NavigationFile,
			EndpointDir: cfg.EndpointDir,
			SplitDir:    cfg.SplitDir,
			Meta:        *cfg.Project,
		}

		if err := util.WriteFile(fs, report.ShortFile, []byte(s.Short()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", report.ShortFile, err)
		}
		if err := util.WriteFile(fs, report.FullFile, []byte(s.Full()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", report.FullFile, err)
		}
		fmt.Printf("Wrote %s and %s under %s.\n", report.ShortFile, report.FullFile, cfg.DocsRoot)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
