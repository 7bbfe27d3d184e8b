package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"roll-checker/core/utils"

	"github.com/spf13/cobra"
)

var (
	extractExtension  string
	extractCandidates bool
	extractJSON       bool
)

// extractCmd prints the file list recovered from a captured snapshot.
var extractCmd = &cobra.Command{
	Use:   "extract <snapshot|->",
	Short: "List the files found in a captured folder page",
	Long: `Runs the listing extractor over a captured folder page (HTML) or a snapshot
JSON document and prints the recovered file names and sizes. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		var ext *string
		if cmd.Flags().Changed("extension") {
			ext = &extractExtension
		}

		res, err := rt.auditService(nil).Extract(data, ext, extractCandidates)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if extractJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSIZE (MB)")
		for _, f := range res.Files {
			fmt.Fprintf(tw, "%s\t%s\n", f.Name, utils.BytesToMegabytes(f.SizeBytes))
		}
		if extractCandidates {
			fmt.Fprintln(tw, "\nSTRATEGY\tNAME\tSIZE")
			for _, c := range res.Candidates {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Strategy, c.Name, c.Size)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d files\n", len(res.Files))
		return nil
	},
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

func init() {
	extractCmd.Flags().StringVar(&extractExtension, "extension", ".pdf", "Only keep files with this extension (empty for all)")
	extractCmd.Flags().BoolVar(&extractCandidates, "candidates", false, "Also print every strategy candidate")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output JSON")
	RootCmd.AddCommand(extractCmd)
}
