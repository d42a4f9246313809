package api

import (
	"context"
	"encoding/json"
)

// SeasonNames lists the season names the API accepts.
var SeasonNames = []string{"winter", "spring", "summer", "fall"}

// Get retrieves the anime airing in one season. Both the year and the
// season name are required.
func (s SeasonService) Get(ctx context.Context, year int, season string) (json.RawMessage, error) {
	if err := validID("season year", year); err != nil {
		return nil, err
	}
	if err := validString("season name", season); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("season"), num(year), str(season)},
	})
}

// Archive lists all seasons available in the archive.
func (s SeasonService) Archive(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, requestSpec{
		segments: []segment{str("season"), str("archive")},
	})
}

// Later lists anime announced for upcoming seasons.
func (s SeasonService) Later(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, requestSpec{
		segments: []segment{str("season"), str("later")},
	})
}
