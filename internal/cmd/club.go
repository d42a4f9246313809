package cmd

import (
	"github.com/spf13/cobra"
)

func newClubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club <id>",
		Short: "Fetch a club record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "club id")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Club().ByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}

	cmd.AddCommand(newClubMembersCmd())
	return cmd
}

func newClubMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <id> <page>",
		Short: "List club members",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "club id")
			if err != nil {
				return err
			}
			page, err := parseID(args[1], "page")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Club().Members(cmd.Context(), id, page)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}
