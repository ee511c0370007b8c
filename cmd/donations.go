package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/data-donation/internal"
	"github.com/iksnae/data-donation/internal/bridge"
	"github.com/spf13/cobra"
)

var (
	// Styles
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	donatedAtStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// donationsCmd represents the donations command
var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "List stored donations",
	Long:  `List the donations stored in the local donation database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sink, err := bridge.OpenSQLiteSink(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open donation database: %w", err)
		}
		defer func() {
			if err := sink.Close(); err != nil {
				internal.LogWarn("Failed to close donation database: %v", err)
			}
		}()

		donations, err := sink.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list donations: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(donations) == 0 {
			fmt.Fprintln(out, "No donations stored.")
			return nil
		}

		fmt.Fprintln(out, listHeaderStyle.Render(fmt.Sprintf("%d donation(s)", len(donations))))
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSIZE\tDONATED AT")
		for _, d := range donations {
			donatedAt := ""
			if !d.DonatedAt.IsZero() {
				donatedAt = d.DonatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				keyStyle.Render(d.Key),
				sizeStyle.Render(fmt.Sprintf("%d B", len(d.Payload))),
				donatedAtStyle.Render(donatedAt),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(donationsCmd)
}
