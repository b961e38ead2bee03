package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/outline"
	"github.com/dgallion1/mdtoc/internal/toc"
)

type listEntry struct {
	doctree.OutlineEntry
	Label string `json:"label"`
}

func newListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list [root]",
		Short:   "Print the numbered outline of the documentation root",
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
			entries, err := newGenerator(cfg, src, log, true, false).Outline(cmd.Context())
			if err != nil {
				return commandError(err, listFailedCode, "list failed")
			}

			out := cmd.OutOrStdout()
			labels := outline.Labels(entries)
			if opts.jsonOutput {
				items := make([]listEntry, len(entries))
				for i, e := range entries {
					items[i] = listEntry{OutlineEntry: e, Label: labels[i]}
				}
				return outputJSON(out, items)
			}

			if len(entries) == 0 {
				_, _ = dimColor.Fprintf(out, "  no documents under %s\n", cfg.Root)
				return nil
			}
			for i, e := range entries {
				title := e.Title
				if title == "" {
					title = toc.Title(e.Path)
				}
				_, _ = infoColor.Fprintf(out, "%s%s", strings.Repeat("  ", e.Depth), labels[i])
				fmt.Fprintf(out, " %s ", title)
				_, _ = dimColor.Fprintf(out, "(%s)\n", e.Path)
			}
			return nil
		},
	}
}

