package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
)

func newSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season <year> <name> | season archive | season later",
		Short: "Fetch seasonal anime",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var raw json.RawMessage
			if len(args) == 1 {
				switch args[0] {
				case "archive":
					raw, err = client.Season().Archive(ctx)
				case "later":
					raw, err = client.Season().Later(ctx)
				default:
					return fmt.Errorf("expected <year> <name>, \"archive\" or \"later\"")
				}
			} else {
				year, perr := parseID(args[0], "season year")
				if perr != nil {
					return perr
				}
				name, perr := resolveEnum("season name", args[1], api.SeasonNames)
				if perr != nil {
					return perr
				}
				raw, err = client.Season().Get(ctx, year, name)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	return cmd
}
