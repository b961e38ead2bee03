package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtoc/internal/linkcheck"
	"github.com/dgallion1/mdtoc/internal/parser"
	"github.com/dgallion1/mdtoc/internal/pipeline"
)

type checkOutput struct {
	Report   *pipeline.Report    `json:"report"`
	Problems []linkcheck.Problem `json:"problems"`
}

func newCheckCommand(opts *globalOptions) *cobra.Command {
	var links bool

	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Verify that every table of contents is current",
		Long: `Compute every document's table of contents without writing anything and
fail when any TOC section differs from it. Unless --links=false, the links
inside each TOC section are also resolved against the documentation root.`,
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
			report, runErr := newGenerator(cfg, src, log, false, true).Run(cmd.Context())
			if runErr != nil && !errors.Is(runErr, pipeline.ErrOutOfDate) {
				return commandError(runErr, checkFailedCode, "check failed")
			}

			var problems []linkcheck.Problem
			if links {
				docs, err := src.Discover(cmd.Context())
				if err != nil {
					return commandError(err, checkFailedCode, "check failed")
				}
				checker := linkcheck.New(os.DirFS(cfg.Root), parser.NewMarkdownParser(), cfg.Marker, cfg.Title)
				if problems, err = checker.Check(docs); err != nil {
					return commandError(err, checkFailedCode, "check failed")
				}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if err := outputJSON(out, checkOutput{Report: report, Problems: problems}); err != nil {
					return err
				}
			} else {
				for _, p := range report.Outdated() {
					printWarning(out, p+": table of contents out of date")
				}
				for _, p := range problems {
					if p.Severity == linkcheck.SeverityError {
						printProblem(out, p.String())
					} else {
						printWarning(out, p.String())
					}
				}
			}

			if runErr != nil {
				return commandError(runErr, checkFailedCode, "check failed")
			}
			if linkcheck.HasErrors(problems) {
				return commandError(fmt.Errorf("%s in table of contents sections", count(len(problems), "problem", "problems")),
					checkFailedCode, "check failed")
			}
			if !opts.jsonOutput {
				printSuccess(out, count(len(report.Results), "document is up to date", "documents are up to date"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&links, "links", true, "also verify the links inside each TOC section")
	return cmd
}
