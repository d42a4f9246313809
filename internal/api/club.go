package api

import (
	"context"
	"encoding/json"
)

// ByID retrieves a club record.
func (s ClubService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	if err := validID("club id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("club"), num(id)},
	})
}

// Members lists club members, 36 per page. The page is required.
func (s ClubService) Members(ctx context.Context, id, page int) (json.RawMessage, error) {
	if err := validID("club id", id); err != nil {
		return nil, err
	}
	if err := validID("page", page); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("club"), num(id), str("members"), num(page)},
	})
}
