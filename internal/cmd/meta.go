package cmd

import (
	"github.com/spf13/cobra"
)

func newMetaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Fetch API metadata",
	}
	cmd.AddCommand(newMetaRequestsCmd(), newMetaStatusCmd())
	return cmd
}

func newMetaRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requests [type] [period] [offset]",
		Short: "Fetch API request metrics",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, period := "", ""
			offset := 0
			var err error
			if len(args) >= 1 {
				typ = args[0]
			}
			if len(args) >= 2 {
				period = args[1]
			}
			if len(args) == 3 {
				if offset, err = parseID(args[2], "offset"); err != nil {
					return err
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Meta().Requests(cmd.Context(), typ, period, offset)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}

func newMetaStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Fetch the API's own status report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Meta().Status(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}
