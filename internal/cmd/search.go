package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
)

func newSearchCmd() *cobra.Command {
	var page int
	var params []string

	cmd := &cobra.Command{
		Use:   "search <type> [term]",
		Short: "Search anime, manga, people or characters",
		Long:  "Search one resource category. A search term must be at least 3 characters; extra API parameters can be passed with --param.",
		Example: strings.TrimSpace(`
  # Search anime
  jikan search anime "one piece"

  # Filter by genre without a term
  jikan search manga --param genre=4 --page 2
`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := resolveEnum("search type", args[0], api.SearchTypes)
			if err != nil {
				return err
			}

			query := api.NewQuery()
			if len(args) == 2 {
				query.Set("q", args[1])
			}
			if page > 0 {
				query.Set("page", page)
			}
			for _, p := range params {
				key, value, ok := strings.Cut(p, "=")
				if !ok || key == "" {
					return fmt.Errorf("--param expects key=value, got %q", p)
				}
				query.Set(key, value)
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Search().Do(cmd.Context(), api.SearchType(typ), query)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().StringArrayVar(&params, "param", nil, "extra query parameter as key=value (repeatable)")
	return cmd
}
