package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"roll-checker/core/reconcile"
	"roll-checker/core/utils"
)

const (
	rule       = "----------------------------------------"
	perRow     = 10
	minPadding = 3
)

// Options controls optional report sections.
type Options struct {
	// Width is the zero-padding width of identifiers. Defaults to 3.
	Width int
	// SizeCeilingMB is the configured ceiling, shown in the size warning lines. Zero hides them.
	SizeCeilingMB float64
	// CheckDuplicates renders the duplicate count and block.
	CheckDuplicates bool
	// NoMatches notes that the source returned no files at all.
	NoMatches bool
	// GeneratedAt is printed in the footer. Defaults to now.
	GeneratedAt time.Time
}

// Format renders result as a text report.
func Format(result *reconcile.Result, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = minPadding
	}
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	ceiling := strconv.FormatFloat(opts.SizeCeilingMB, 'f', -1, 64)

	var b strings.Builder

	b.WriteString("AUDIT SUMMARY\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Total Expected:  %d\n", result.TotalExpected)
	fmt.Fprintf(&b, "Found:           %d\n", result.FoundCount)
	fmt.Fprintf(&b, "Missing:         %d\n", result.MissingCount)
	if opts.CheckDuplicates && result.DuplicateCount > 0 {
		fmt.Fprintf(&b, "Duplicates:      %d\n", result.DuplicateCount)
	}
	if opts.SizeCeilingMB > 0 && len(result.Oversized) > 0 {
		fmt.Fprintf(&b, "Size Warnings:   %d files exceed %s MB\n", len(result.Oversized), ceiling)
	}
	if result.IgnoredCount > 0 {
		fmt.Fprintf(&b, "Ignored:         %d\n", result.IgnoredCount)
	}
	if opts.NoMatches {
		b.WriteString("\nNo files were found in the source.\n")
	}

	b.WriteString("\n\nMISSING ROLLS\n")
	b.WriteString(rule + "\n")
	if len(result.MissingIdentifiers) > 0 {
		writeGrid(&b, result.MissingIdentifiers, width)
	} else {
		b.WriteString("All expected files are present.\n")
	}

	if len(result.FoundIdentifiers) > 0 {
		b.WriteString("\n\nFOUND ROLLS\n")
		b.WriteString(rule + "\n")
		writeGrid(&b, result.FoundIdentifiers, width)
	}

	if opts.CheckDuplicates && len(result.Duplicates) > 0 {
		b.WriteString("\n\nDUPLICATE SUBMISSIONS\n")
		b.WriteString(rule + "\n")
		for _, dup := range result.Duplicates {
			fmt.Fprintf(&b, "\nRoll %s (%d copies):\n", pad(dup.Identifier, width), len(dup.FileNames))
			for i, name := range dup.FileNames {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
			}
		}
	}

	if len(result.Oversized) > 0 {
		fmt.Fprintf(&b, "\n\nFILES EXCEEDING SIZE LIMIT (%s MB)\n", ceiling)
		b.WriteString(rule + "\n")
		for _, o := range result.Oversized {
			fmt.Fprintf(&b, "Roll %s: %s MB  %s\n", pad(o.Identifier, width), utils.BytesToMegabytes(o.SizeBytes), o.FileName)
		}
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))

	return b.String()
}

// writeGrid prints ids padded to width, perRow to a line.
func writeGrid(b *strings.Builder, ids []int, width int) {
	for _, row := range chunk(ids, perRow) {
		cells := make([]string, len(row))
		for i, id := range row {
			cells[i] = pad(id, width)
		}
		b.WriteString(strings.Join(cells, "  ") + "\n")
	}
}

func pad(id, width int) string {
	return fmt.Sprintf("%0*d", width, id)
}

func chunk(ids []int, size int) [][]int {
	var rows [][]int
	for len(ids) > size {
		rows = append(rows, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		rows = append(rows, ids)
	}
	return rows
}
