package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtoc/internal/pipeline"
)

func newGenerateCommand(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Write the table of contents into every document",
		Long: `Number every document under the documentation root and replace the body
of each document's TOC section with the table of contents as seen from that
document. Documents without the section are left untouched.`,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "docs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			log := newLogger(cfg, cmd.ErrOrStderr())

			src, err := newSource(cfg)
			if err != nil {
				return err
			}
			report, err := newGenerator(cfg, src, log, dryRun, false).Run(cmd.Context())
			if err != nil {
				return commandError(err, generateFailedCode, "generate failed")
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, report)
			}
			for _, res := range report.Results {
				printResult(out, res)
			}
			if dryRun {
				printWarning(out, count(report.Count(pipeline.StatusOutdated), "document would change", "documents would change"))
				return nil
			}
			printSuccess(out, count(report.Count(pipeline.StatusUpdated), "document updated", "documents updated"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}
