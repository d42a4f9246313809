package api

import (
	"context"
	"encoding/json"
)

// Get lists manga serialized in a magazine. Page 0 drops the page segment.
func (s MagazineService) Get(ctx context.Context, magazineID, page int) (json.RawMessage, error) {
	if err := validID("magazine id", magazineID); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("magazine"), num(magazineID), optNum(page)},
	})
}
