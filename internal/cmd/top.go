package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
)

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top <type> [page] [subtype]",
		Short: "Fetch rankings",
		Long:  "Fetch top-ranked entries. The subtype (for example \"upcoming\" or \"movie\") requires a page, since it occupies the segment after it.",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := resolveEnum("top type", args[0], api.TopTypes)
			if err != nil {
				return err
			}
			page := 0
			if len(args) >= 2 {
				if page, err = parseID(args[1], "page"); err != nil {
					return err
				}
			}
			subtype := ""
			if len(args) == 3 {
				subtype = args[2]
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Top().Get(cmd.Context(), typ, page, subtype)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
