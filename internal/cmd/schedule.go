package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [day]",
		Short: "Fetch the weekly broadcast schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var raw json.RawMessage
			if len(args) == 0 {
				raw, err = client.Schedule().Get(cmd.Context())
			} else {
				day, derr := resolveEnum("schedule day", args[0], api.ScheduleDays)
				if derr != nil {
					return derr
				}
				raw, err = client.Schedule().Day(cmd.Context(), day)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
