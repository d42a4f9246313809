package cmd

import (
	"github.com/spf13/cobra"
)

func newMagazineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magazine <id> [page]",
		Short: "List manga serialized in a magazine",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "magazine id")
			if err != nil {
				return err
			}
			page := 0
			if len(args) == 2 {
				if page, err = parseID(args[1], "page"); err != nil {
					return err
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Magazine().Get(cmd.Context(), id, page)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
