package cmd

import (
	"errors"

	"roll-checker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd runs every configured integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket and history database",
	Long:  `Checks that the rolls bucket and its report prefix exist and that the audit history table has the expected columns.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// historySchemaCmd represents the integrity history command
var historySchemaCmd = &cobra.Command{
	Use:   "history",
	Short: "Check the audit history table schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, historySchemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

var errIntegrity = errors.New("integrity checks failed")

func runIntegrityChecks(cmd *cobra.Command, structure, schema bool) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()
	svc := rt.integrityService()
	logg := rt.logger
	failed := false

	if structure {
		logg.Info("Checking bucket structure...", zap.String("bucket", rt.cfg.Storage.Bucket))
		report, err := svc.CheckStructure(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Storage disabled, skipping structure check")
		case err != nil:
			logg.Error("Structure check failed", zap.Error(err))
			failed = true
		case report.OK():
			logg.Info("Structure is intact.")
		default:
			logg.Warn("Bucket structure incomplete",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing))

			if fixFlag {
				logg.Info("Fixing bucket structure...")
				if err := svc.FixStructure(ctx, report); err != nil {
					logg.Error("Failed to fix structure", zap.Error(err))
					failed = true
				} else {
					logg.Info("Structure fixed successfully.")
				}
			} else {
				logg.Info("Run 'integrity structure --fix' to create what is missing.")
				failed = true
			}
		}
	}

	if schema {
		logg.Info("Checking history schema...")
		report, err := svc.CheckHistory()
		switch {
		case errors.Is(err, integrity.ErrDatabaseDisabled):
			logg.Info("Database disabled, skipping history check")
		case err != nil:
			logg.Error("History schema check failed", zap.Error(err))
			failed = true
		case report.Error != "":
			logg.Error("Inspection error", zap.String("table", report.Table), zap.String("error", report.Error))
			failed = true
		case report.Matched:
			logg.Info("History schema matches.", zap.String("table", report.Table))
		default:
			logg.Warn("Missing columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			failed = true
		}
	}

	if failed {
		return errIntegrity
	}
	return nil
}
