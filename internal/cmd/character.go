package cmd

import (
	"github.com/spf13/cobra"
)

func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character <id> [request]",
		Aliases: []string{"char"},
		Short:   "Fetch a character record",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "character id")
			if err != nil {
				return err
			}
			request := ""
			if len(args) == 2 {
				request = args[1]
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Character().Detail(cmd.Context(), id, request)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
