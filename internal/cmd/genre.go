package cmd

import (
	"github.com/spf13/cobra"
)

var genreTypes = []string{"anime", "manga"}

func newGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genre <type> <genre-id> [page]",
		Short: "List entries for a genre",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := resolveEnum("genre type", args[0], genreTypes)
			if err != nil {
				return err
			}
			genreID, err := parseID(args[1], "genre id")
			if err != nil {
				return err
			}
			page := 0
			if len(args) == 3 {
				if page, err = parseID(args[2], "page"); err != nil {
					return err
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Genre().Get(cmd.Context(), typ, genreID, page)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
