package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iksnae/data-donation/internal"
	"github.com/iksnae/data-donation/internal/bridge"
	"github.com/spf13/cobra"
)

var (
	runSessionID string
	runPlatform  string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive donation flow",
	Long: `Run the donation flow in the terminal: select an export file, review
the extracted tables, and decide whether to donate them.

Donations are stored in a local SQLite database (see --db). A random
session ID is generated unless --session is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		donation, err := donationFor(runPlatform)
		if err != nil {
			return err
		}

		sessionID := runSessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		sink, err := bridge.OpenSQLiteSink(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open donation database: %w", err)
		}
		defer func() {
			if err := sink.Close(); err != nil {
				internal.LogWarn("Failed to close donation database: %v", err)
			}
		}()

		internal.LogInfo("Starting %s donation flow, session %s", donation.Platform, sessionID)
		host := bridge.NewTerminalBridge(sink)
		return donation.Run(cmd.Context(), sessionID, host)
	},
}

// donationFor maps a platform name to its flow configuration.
func donationFor(platform string) (internal.Donation, error) {
	switch platform {
	case "tiktok", "TikTok":
		return internal.TikTokDonation(), nil
	default:
		return internal.Donation{}, fmt.Errorf("unsupported platform: %s (supported: tiktok)", platform)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runSessionID, "session", "", "Session ID (default: random UUID)")
	runCmd.Flags().StringVar(&runPlatform, "platform", "tiktok", "Platform whose export to process")
}
