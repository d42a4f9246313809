package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jikan/jikan-cli/internal/api"
)

func newAnimeCmd() *cobra.Command {
	var request string
	var page int
	var with []string

	cmd := &cobra.Command{
		Use:   "anime <id>",
		Short: "Fetch an anime record",
		Long:  "Fetch an anime by its MyAnimeList ID, a single sub-request, or the base record plus several sub-requests fetched concurrently.",
		Example: strings.TrimSpace(`
  # Base record
  jikan anime 20507

  # Episodes, page 2
  jikan anime 20507 --request episodes --page 2

  # Base record plus episodes and news, fetched concurrently
  jikan anime 20507 --with episodes,news

  # Just the title
  jikan anime 20507 --jq .title
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "anime id")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(with) > 0 {
				if request != "" {
					return fmt.Errorf("--with cannot be combined with --request")
				}
				merged, err := fetchAnimeWith(ctx, client, id, with)
				if err != nil {
					return err
				}
				return printResult(cmd, merged)
			}

			raw, err := client.Anime().Detail(ctx, id, request, page)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}

	cmd.Flags().StringVar(&request, "request", "", "sub-request (episodes, characters_staff, news, pictures, videos, stats, forum, moreinfo, reviews, recommendations, userupdates)")
	cmd.Flags().IntVar(&page, "page", 0, "page for paged sub-requests")
	cmd.Flags().StringSliceVar(&with, "with", nil, "sub-requests to fetch alongside the base record")
	return cmd
}

// fetchAnimeWith fetches the base record plus the named sub-requests
// concurrently and merges them into one object keyed by request name.
func fetchAnimeWith(ctx context.Context, client *api.Client, id int, requests []string) (json.RawMessage, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	merged := make(map[string]json.RawMessage, len(requests)+1)

	g.Go(func() error {
		raw, err := client.Anime().ByID(ctx, id)
		if err != nil {
			return err
		}
		mu.Lock()
		merged["anime"] = raw
		mu.Unlock()
		return nil
	})

	for _, request := range requests {
		request := request
		g.Go(func() error {
			raw, err := client.Anime().Detail(ctx, id, request, 0)
			if err != nil {
				return fmt.Errorf("%s: %w", request, err)
			}
			mu.Lock()
			merged[request] = raw
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}
