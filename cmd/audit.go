package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"roll-checker/feature/audit"
	"roll-checker/feature/audit/sources"

	"github.com/spf13/cobra"
)

var (
	auditStart      int
	auditEnd        int
	auditTemplate   string
	auditMaxSize    float64
	auditIgnore     string
	auditExtension  string
	auditDuplicates bool
	auditSave       bool
	auditJSON       bool
	auditQuiet      bool
	auditFromBucket bool
)

// auditCmd is the parent command for audits. Unset flags fall back to the saved
// settings, then to the audit configuration.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit submitted rolls against the expected range",
	Long: `Reconcile the files of a source against the expected roll range and print
the audit report.

Examples:
  # Audit a local folder, rolls 001 to 140
  roll-checker audit local ./submissions --start 1 --end 140

  # Rolls embedded as 18842826NNN, flag files over 5 MB, skip 13 and 42
  roll-checker audit local ./submissions --template 18842826___ --max-size 5 --ignore "13,42"

  # Audit a bucket prefix and upload the report
  roll-checker audit bucket 2024/ --save-report

  # Audit a captured folder page
  roll-checker audit snapshot ./folder.html

  # Audit a public shared folder
  roll-checker audit remote https://drive.google.com/drive/folders/abc123`,
}

var auditLocalCmd = &cobra.Command{
	Use:   "local <folder>",
	Short: "Audit a local folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd, sources.KindLocal, args[0])
	},
}

var auditBucketCmd = &cobra.Command{
	Use:   "bucket [prefix]",
	Short: "Audit a prefix of the storage bucket",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		return runAudit(cmd, sources.KindBucket, prefix)
	},
}

var auditSnapshotCmd = &cobra.Command{
	Use:   "snapshot <path|key>",
	Short: "Audit a captured snapshot (HTML page or snapshot JSON)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd, sources.KindSnapshot, args[0])
	},
}

var auditRemoteCmd = &cobra.Command{
	Use:   "remote <folder-url>",
	Short: "Audit a public shared folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd, sources.KindRemote, args[0])
	},
}

func init() {
	flags := auditCmd.PersistentFlags()
	flags.IntVar(&auditStart, "start", 1, "First expected roll number")
	flags.IntVar(&auditEnd, "end", 140, "Last expected roll number")
	flags.StringVar(&auditTemplate, "template", "", "Roll number template, '_' marks each roll digit (e.g. 18842826___)")
	flags.Float64Var(&auditMaxSize, "max-size", 0, "Flag files larger than this many MB (0 disables)")
	flags.StringVar(&auditIgnore, "ignore", "", "Comma separated roll numbers to skip")
	flags.StringVar(&auditExtension, "extension", ".pdf", "Only consider files with this extension (empty for all)")
	flags.BoolVar(&auditDuplicates, "check-duplicates", true, "Include the duplicate submissions section")
	flags.BoolVar(&auditSave, "save-report", false, "Write Audit_Report.txt into the folder, or upload it for other sources")
	flags.BoolVar(&auditJSON, "json", false, "Print the outcome as JSON instead of the report")
	flags.BoolVarP(&auditQuiet, "quiet", "q", false, "Print only the summary")

	auditSnapshotCmd.Flags().BoolVar(&auditFromBucket, "from-bucket", false, "Read the snapshot from the storage bucket")

	auditCmd.AddCommand(auditLocalCmd, auditBucketCmd, auditSnapshotCmd, auditRemoteCmd)
	RootCmd.AddCommand(auditCmd)
}

// auditRequest builds a request from the flags the user actually set.
func auditRequest(cmd *cobra.Command, kind, location string) audit.Request {
	flags := cmd.Flags()
	req := audit.Request{
		Source:     kind,
		Location:   location,
		FromBucket: auditFromBucket,
		SaveReport: auditSave,
		Template:   auditTemplate,
	}
	if flags.Changed("start") {
		req.RangeStart = &auditStart
	}
	if flags.Changed("end") {
		req.RangeEnd = &auditEnd
	}
	if flags.Changed("max-size") {
		req.SizeCeilingMB = &auditMaxSize
	}
	if flags.Changed("ignore") {
		req.Ignore = &auditIgnore
	}
	if flags.Changed("extension") {
		req.Extension = &auditExtension
	}
	if flags.Changed("check-duplicates") {
		req.CheckDuplicates = &auditDuplicates
	}
	return req
}

func runAudit(cmd *cobra.Command, kind, location string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	if kind == sources.KindBucket && location == "" {
		location = rt.cfg.Storage.Prefix
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := rt.auditService(rt.historyRepo())
	res, err := svc.Run(ctx, auditRequest(cmd, kind, location))
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case auditJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case auditQuiet:
		printSummary(out, res.Outcome)
	default:
		fmt.Fprintln(out, res.Report)
		printSummary(out, res.Outcome)
	}

	if res.ReportLocation != "" {
		fmt.Fprintf(out, "Report saved to %s\n", res.ReportLocation)
	}
	if res.ReportError != "" {
		fmt.Fprintf(os.Stderr, "Report was not saved: %s\n", res.ReportError)
	}
	return nil
}
