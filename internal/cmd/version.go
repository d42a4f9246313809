package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/update"
)

func newVersionCmd() *cobra.Command {
	var checkUpdate bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "jikan-cli %s\n", version)

			if checkUpdate {
				result := update.CheckForUpdate(cmd.Context(), version)
				switch {
				case result == nil:
					fmt.Fprintln(cmd.OutOrStdout(), "update check skipped")
				case result.UpdateAvailable:
					fmt.Fprintf(cmd.OutOrStdout(), "update available: %s (%s)\n", result.LatestVersion, result.UpdateURL)
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "up to date")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "check GitHub for a newer release")
	return cmd
}
