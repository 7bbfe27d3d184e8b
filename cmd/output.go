package cmd

import (
	"fmt"
	"io"
	"os"

	"roll-checker/core/reconcile"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// useColor reports whether stdout is an interactive terminal.
func useColor() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printSummary writes a one-screen summary of an outcome, colored on terminals.
func printSummary(w io.Writer, outcome *reconcile.Outcome) {
	if !useColor() {
		color.NoColor = true
	}
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	res := outcome.Result
	fmt.Fprintf(w, "Source:    %s (%s)\n", outcome.Source, outcome.Location)
	fmt.Fprintf(w, "Scanned:   %d files\n", outcome.Scanned)
	if outcome.NoMatches {
		fmt.Fprintln(w, yellow("No files were found in the source."))
		return
	}

	fmt.Fprintf(w, "Found:     %s / %d\n", green(res.FoundCount), res.TotalExpected)
	if res.MissingCount > 0 {
		fmt.Fprintf(w, "Missing:   %s\n", red(res.MissingCount))
	} else {
		fmt.Fprintf(w, "Missing:   %s\n", green(0))
	}
	if res.DuplicateCount > 0 {
		fmt.Fprintf(w, "Duplicates: %s\n", yellow(res.DuplicateCount))
	}
	if len(res.Oversized) > 0 {
		fmt.Fprintf(w, "Oversized: %s\n", yellow(len(res.Oversized)))
	}
	if res.IgnoredCount > 0 {
		fmt.Fprintf(w, "Ignored:   %d\n", res.IgnoredCount)
	}
}
