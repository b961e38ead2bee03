package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions holds the persistent flags. Flags that are set override the
// MDTOC_* environment configuration.
type globalOptions struct {
	root              string
	marker            string
	section           string
	extensions        []string
	exclude           []string
	frontMatterTitles bool
	logLevel          string
	logFormat         string
	jsonOutput        bool
}

// SetVersion sets the version reported by "mdtoc version" and --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute runs the mdtoc command line. SIGINT and SIGTERM cancel the
// command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the mdtoc command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:     "mdtoc",
		Version: version,
		Short:   "Numbered table of contents for a tree of markdown documents",
		Long: `mdtoc numbers every markdown document under a documentation root in
outline order (1, 1.1, 1.2, 2, ...) and writes the resulting table of
contents into a named section of each document, with links relative to
that document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.root, "root", "", "documentation root (env MDTOC_ROOT, default \"docs\")")
	flags.StringVar(&opts.marker, "marker", "", "heading marker of the TOC section (env MDTOC_MARKER, default \"##\")")
	flags.StringVar(&opts.section, "section", "", "heading text of the TOC section (env MDTOC_SECTION, default \"Contents\")")
	flags.StringSliceVar(&opts.extensions, "ext", nil, "document extensions (env MDTOC_EXTENSIONS, default \".md\")")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "glob patterns of paths to skip (env MDTOC_EXCLUDE)")
	flags.BoolVar(&opts.frontMatterTitles, "frontmatter-titles", false, "use front matter titles in the TOC (env MDTOC_FRONTMATTER_TITLES)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (env MDTOC_LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "text or json (env MDTOC_LOG_FORMAT)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")

	root.AddGroup(
		&cobra.Group{ID: "docs", Title: "Documentation:"},
		&cobra.Group{ID: "cli-tooling", Title: "CLI & Tooling:"},
	)

	root.AddCommand(
		newGenerateCommand(opts),
		newCheckCommand(opts),
		newListCommand(opts),
		newServeCommand(opts),
		&cobra.Command{
			Use:     "version",
			Short:   "Print the mdtoc version",
			Args:    cobra.NoArgs,
			GroupID: "cli-tooling",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	root.SetHelpCommandGroupID("cli-tooling")

	return root
}
