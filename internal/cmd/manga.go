package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newMangaCmd() *cobra.Command {
	var request string
	var page int

	cmd := &cobra.Command{
		Use:   "manga <id>",
		Short: "Fetch a manga record",
		Example: strings.TrimSpace(`
  # Base record
  jikan manga 74341

  # Reviews, page 2
  jikan manga 74341 --request reviews --page 2
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "manga id")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			raw, err := client.Manga().Detail(cmd.Context(), id, request, page)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}

	cmd.Flags().StringVar(&request, "request", "", "sub-request (characters, news, pictures, stats, forum, moreinfo, reviews, recommendations, userupdates)")
	cmd.Flags().IntVar(&page, "page", 0, "page for paged sub-requests")
	return cmd
}
