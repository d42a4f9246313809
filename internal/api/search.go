package api

import (
	"context"
	"encoding/json"
)

// SearchType selects which resource category a search runs against.
type SearchType string

const (
	SearchAnime     SearchType = "anime"
	SearchManga     SearchType = "manga"
	SearchPerson    SearchType = "person"
	SearchCharacter SearchType = "character"
)

// SearchTypes lists the valid search categories.
var SearchTypes = []string{
	string(SearchAnime),
	string(SearchManga),
	string(SearchPerson),
	string(SearchCharacter),
}

// Do runs a search against one resource category. The query is optional;
// when it carries a "q" term the term must be at least 3 characters, which
// is enforced here rather than left to the API.
func (s SearchService) Do(ctx context.Context, typ SearchType, query *Query) (json.RawMessage, error) {
	if err := validString("search type", string(typ)); err != nil {
		return nil, err
	}
	if q, ok := query.Get("q"); ok {
		if err := validSearchQuery(q); err != nil {
			return nil, err
		}
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("search"), str(string(typ))},
		query:    query,
	})
}

// Anime searches anime by term.
func (s SearchService) Anime(ctx context.Context, q string) (json.RawMessage, error) {
	return s.Do(ctx, SearchAnime, NewQuery().Set("q", q))
}

// Manga searches manga by term.
func (s SearchService) Manga(ctx context.Context, q string) (json.RawMessage, error) {
	return s.Do(ctx, SearchManga, NewQuery().Set("q", q))
}
