package api

import (
	"context"
	"encoding/json"
	"strconv"
)

// User request types recognized by the API.
const (
	UserProfile   = "profile"
	UserHistory   = "history"
	UserFriends   = "friends"
	UserAnimeList = "animelist"
	UserMangaList = "mangalist"
)

// Get retrieves user data. Both the username and the request type are
// required. extra holds additional path segments after the request name
// (history kind, list filter, friends page); empty entries are dropped.
// Query parameters always land in the query string, never in the path.
func (s UserService) Get(ctx context.Context, username, request string, extra []string, query *Query) (json.RawMessage, error) {
	if err := validString("username", username); err != nil {
		return nil, err
	}
	if err := validString("user request", request); err != nil {
		return nil, err
	}
	segments := []segment{str("user"), str(username), str(request)}
	for _, e := range extra {
		segments = append(segments, optStr(e))
	}
	return s.get(ctx, requestSpec{segments: segments, query: query})
}

// Profile retrieves the user's profile.
func (s UserService) Profile(ctx context.Context, username string) (json.RawMessage, error) {
	return s.Get(ctx, username, UserProfile, nil, nil)
}

// History retrieves the user's list history. kind is "anime", "manga" or
// empty for both.
func (s UserService) History(ctx context.Context, username, kind string) (json.RawMessage, error) {
	return s.Get(ctx, username, UserHistory, []string{kind}, nil)
}

// Friends retrieves the user's friends, 100 per page. Page 0 drops the
// page segment.
func (s UserService) Friends(ctx context.Context, username string, page int) (json.RawMessage, error) {
	var extra []string
	if page > 0 {
		extra = []string{strconv.Itoa(page)}
	}
	return s.Get(ctx, username, UserFriends, extra, nil)
}

// AnimeList retrieves the user's anime list. filter is a list status such
// as "watching" or empty for all; query carries search and sort options.
func (s UserService) AnimeList(ctx context.Context, username, filter string, query *Query) (json.RawMessage, error) {
	return s.Get(ctx, username, UserAnimeList, []string{filter}, query)
}

// MangaList retrieves the user's manga list. Same shape as AnimeList.
func (s UserService) MangaList(ctx context.Context, username, filter string, query *Query) (json.RawMessage, error) {
	return s.Get(ctx, username, UserMangaList, []string{filter}, query)
}
