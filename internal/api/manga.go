package api

import (
	"context"
	"encoding/json"
)

// Manga sub-requests recognized by the API.
const (
	MangaCharacters      = "characters"
	MangaNews            = "news"
	MangaPictures        = "pictures"
	MangaStats           = "stats"
	MangaForum           = "forum"
	MangaMoreInfo        = "moreinfo"
	MangaReviews         = "reviews"
	MangaRecommendations = "recommendations"
	MangaUserUpdates     = "userupdates"
)

// ByID retrieves the base manga record.
func (s MangaService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, "", 0)
}

// Detail retrieves a manga sub-request. Same segment rules as anime:
// empty request means the base record, page 0 drops the page segment.
func (s MangaService) Detail(ctx context.Context, id int, request string, page int) (json.RawMessage, error) {
	if err := validID("manga id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("manga"), num(id), optStr(request), optNum(page)},
	})
}

// Characters lists character appearances.
func (s MangaService) Characters(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaCharacters, 0)
}

// News lists related news articles.
func (s MangaService) News(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaNews, 0)
}

// Pictures lists cover and promotional pictures.
func (s MangaService) Pictures(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaPictures, 0)
}

// Stats retrieves read statistics and score distribution.
func (s MangaService) Stats(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaStats, 0)
}

// Forum lists forum topics.
func (s MangaService) Forum(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaForum, 0)
}

// MoreInfo retrieves the free-form additional info section.
func (s MangaService) MoreInfo(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaMoreInfo, 0)
}

// Reviews lists reviews, 20 per page.
func (s MangaService) Reviews(ctx context.Context, id, page int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaReviews, page)
}

// Recommendations lists user recommendations.
func (s MangaService) Recommendations(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaRecommendations, 0)
}

// UserUpdates lists recent list updates, 75 per page.
func (s MangaService) UserUpdates(ctx context.Context, id, page int) (json.RawMessage, error) {
	return s.Detail(ctx, id, MangaUserUpdates, page)
}
