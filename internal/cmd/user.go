package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
)

func newUserCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "user <username> <request> [extra...]",
		Short: "Fetch user data",
		Long:  "Fetch user data by request type (profile, history, friends, animelist, mangalist). Extra positional arguments become path segments after the request; --param values go to the query string.",
		Example: strings.TrimSpace(`
  # Profile
  jikan user yTrev profile

  # Anime history
  jikan user yTrev history anime

  # Anime list filtered by title
  jikan user yTrev animelist --param "q=Kimetsu no Yaiba"
`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, request := args[0], args[1]
			extra := args[2:]

			var query *api.Query
			if len(params) > 0 {
				query = api.NewQuery()
				for _, p := range params {
					key, value, ok := strings.Cut(p, "=")
					if !ok || key == "" {
						return fmt.Errorf("--param expects key=value, got %q", p)
					}
					query.Set(key, value)
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.User().Get(cmd.Context(), username, request, extra, query)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "query parameter as key=value (repeatable)")
	return cmd
}
