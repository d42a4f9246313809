package api

import (
	"context"
	"encoding/json"
)

// Anime sub-requests recognized by the API.
const (
	AnimeCharactersStaff = "characters_staff"
	AnimeEpisodes        = "episodes"
	AnimeNews            = "news"
	AnimePictures        = "pictures"
	AnimeVideos          = "videos"
	AnimeStats           = "stats"
	AnimeForum           = "forum"
	AnimeMoreInfo        = "moreinfo"
	AnimeReviews         = "reviews"
	AnimeRecommendations = "recommendations"
	AnimeUserUpdates     = "userupdates"
)

// ByID retrieves the base anime record.
func (s AnimeService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, "", 0)
}

// Detail retrieves an anime sub-request. An empty request selects the base
// record; page 0 drops the page segment. A page with an empty request would
// shift the page into the request position, so never combine the two.
func (s AnimeService) Detail(ctx context.Context, id int, request string, page int) (json.RawMessage, error) {
	if err := validID("anime id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("anime"), num(id), optStr(request), optNum(page)},
	})
}

// Episodes lists episodes, 100 per page.
func (s AnimeService) Episodes(ctx context.Context, id, page int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeEpisodes, page)
}

// CharactersStaff lists characters and staff credits.
func (s AnimeService) CharactersStaff(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeCharactersStaff, 0)
}

// News lists related news articles.
func (s AnimeService) News(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeNews, 0)
}

// Pictures lists promotional pictures.
func (s AnimeService) Pictures(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimePictures, 0)
}

// Videos lists promo videos and episode links.
func (s AnimeService) Videos(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeVideos, 0)
}

// Stats retrieves watch statistics and score distribution.
func (s AnimeService) Stats(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeStats, 0)
}

// Forum lists forum topics.
func (s AnimeService) Forum(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeForum, 0)
}

// MoreInfo retrieves the free-form additional info section.
func (s AnimeService) MoreInfo(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeMoreInfo, 0)
}

// Reviews lists reviews, 20 per page.
func (s AnimeService) Reviews(ctx context.Context, id, page int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeReviews, page)
}

// Recommendations lists user recommendations.
func (s AnimeService) Recommendations(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeRecommendations, 0)
}

// UserUpdates lists recent list updates, 75 per page.
func (s AnimeService) UserUpdates(ctx context.Context, id, page int) (json.RawMessage, error) {
	return s.Detail(ctx, id, AnimeUserUpdates, page)
}
