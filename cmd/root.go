package cmd

import (
	"fmt"
	"os"

	"roll-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "roll-checker",
	Short: "Roll submission auditor",
	Long: `roll-checker reconciles the files submitted for a range of roll numbers
against what is expected, reporting missing, duplicate and oversized submissions.
Files can be read from a local folder, an S3/MinIO bucket, a captured snapshot
or a public shared folder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
