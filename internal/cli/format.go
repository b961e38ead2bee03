package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dgallion1/mdtoc/internal/pipeline"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printProblem(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printResult prints one document's outcome, e.g. "  1.2  updated    b/c.md".
func printResult(w io.Writer, res pipeline.Result) {
	clr := dimColor
	switch res.Status {
	case pipeline.StatusUpdated:
		clr = successColor
	case pipeline.StatusOutdated:
		clr = warningColor
	}
	fmt.Fprintf(w, "  %-8s ", res.Label)
	_, _ = clr.Fprintf(w, "%-10s", res.Status)
	fmt.Fprintf(w, " %s\n", res.Path)
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

func count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
