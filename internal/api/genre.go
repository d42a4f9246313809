package api

import (
	"context"
	"encoding/json"
)

// Get lists entries for one genre of anime or manga. Page 0 drops the
// page segment.
func (s GenreService) Get(ctx context.Context, typ string, genreID, page int) (json.RawMessage, error) {
	if err := validString("genre type", typ); err != nil {
		return nil, err
	}
	if err := validID("genre id", genreID); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("genre"), str(typ), num(genreID), optNum(page)},
	})
}
