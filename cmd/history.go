package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"roll-checker/feature/history"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historySource string
	historyLimit  int
	historyJSON   bool
)

// historyCmd lists recorded audit runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded audit runs",
	Long:  `Lists audit runs recorded in the history database, most recent first. Requires DATABASE_ENABLED=true.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, repo, err := historyRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		runs, err := repo.List(cmd.Context(), historySource, historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if historyJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		if !useColor() {
			color.NoColor = true
		}
		failed := color.New(color.FgRed).SprintFunc()

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTARTED\tSOURCE\tLOCATION\tFOUND\tMISSING\tDUPLICATES\tSTATUS")
		for _, r := range runs {
			status := r.Status
			if status == history.StatusFailed {
				status = failed(status)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\t%d\t%d\t%s\n",
				r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Source, r.Location,
				r.FoundCount, r.TotalExpected, r.MissingCount, r.DuplicateCount, status)
		}
		return tw.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded audit run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, repo, err := historyRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		run, err := repo.Get(cmd.Context(), args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("audit run %s not found", args[0])
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*history.Run
			MissingIdentifiers []int `json:"missing_identifiers"`
		}{run, run.MissingIdentifiers()})
	},
}

func historyRuntime() (*runtime, *history.Repository, error) {
	rt, err := newRuntime()
	if err != nil {
		return nil, nil, err
	}
	repo := rt.historyRepo()
	if repo == nil {
		rt.close()
		return nil, nil, errors.New("audit history needs a database, set DATABASE_ENABLED=true")
	}
	return rt, repo, nil
}

func init() {
	historyCmd.Flags().StringVar(&historySource, "source", "", "Only runs from this source (local, bucket, snapshot, remote)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Maximum number of runs")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output JSON")
	historyCmd.AddCommand(historyShowCmd)
	RootCmd.AddCommand(historyCmd)
}
