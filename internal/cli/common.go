package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtoc/internal/config"
	"github.com/dgallion1/mdtoc/internal/fsops"
	"github.com/dgallion1/mdtoc/internal/pipeline"
	"github.com/dgallion1/mdtoc/internal/source"
)

const (
	configInvalidCode  = "CONFIG_INVALID"
	sourceInvalidCode  = "SOURCE_INVALID"
	generateFailedCode = "GENERATE_FAILED"
	checkFailedCode    = "CHECK_FAILED"
	listFailedCode     = "LIST_FAILED"
	serveFailedCode    = "SERVE_FAILED"
)

// loadConfig reads the environment configuration, applies the flags that
// were set and an optional root argument, and validates the result.
func loadConfig(cmd *cobra.Command, opts *globalOptions, args []string) (config.Config, error) {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if flags.Changed("marker") {
		cfg.Marker = opts.marker
	}
	if flags.Changed("section") {
		cfg.Title = opts.section
	}
	if flags.Changed("ext") {
		cfg.Extensions = opts.extensions
	}
	if flags.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if flags.Changed("frontmatter-titles") {
		cfg.FrontMatterTitles = opts.frontMatterTitles
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
			WithTextCode(configInvalidCode)
	}
	return cfg, nil
}

// newLogger builds the logger every command passes down.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func newSource(cfg config.Config) (*source.Source, error) {
	src, err := source.New(os.DirFS(cfg.Root), source.Options{
		Extensions:        cfg.Extensions,
		Exclude:           cfg.Exclude,
		FrontMatterTitles: cfg.FrontMatterTitles,
	})
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid document source").
			WithTextCode(sourceInvalidCode)
	}
	return src, nil
}

func newGenerator(cfg config.Config, src *source.Source, log *slog.Logger, dryRun, check bool) *pipeline.Generator {
	return pipeline.NewGenerator(cfg.Root, src, fsops.NewRealFS(), log, pipeline.Options{
		Marker: cfg.Marker,
		Title:  cfg.Title,
		DryRun: dryRun,
		Check:  check,
	})
}

// commandError classifies a failed command. Errors that already carry a
// category keep it.
func commandError(err error, code, msg string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
