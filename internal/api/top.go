package api

import (
	"context"
	"encoding/json"
)

// TopTypes lists the ranking categories the API accepts.
var TopTypes = []string{"anime", "manga", "people", "characters"}

// Get retrieves a ranking page. Page 0 drops the page segment and subtype
// "" drops the subtype. The subtype segment follows the page segment, so a
// subtype without a page would be read as a page by the API; pass a page
// whenever a subtype is given.
func (s TopService) Get(ctx context.Context, typ string, page int, subtype string) (json.RawMessage, error) {
	if err := validString("top type", typ); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("top"), str(typ), optNum(page), optStr(subtype)},
	})
}
