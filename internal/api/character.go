package api

import (
	"context"
	"encoding/json"
)

const CharacterPictures = "pictures"

// ByID retrieves the base character record.
func (s CharacterService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, "")
}

// Detail retrieves a character sub-request; an empty request selects the
// base record.
func (s CharacterService) Detail(ctx context.Context, id int, request string) (json.RawMessage, error) {
	if err := validID("character id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("character"), num(id), optStr(request)},
	})
}

// Pictures lists the character's pictures.
func (s CharacterService) Pictures(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, CharacterPictures)
}
