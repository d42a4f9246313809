package api

import (
	"context"
	"encoding/json"
)

const PersonPictures = "pictures"

// ByID retrieves the base person record.
func (s PersonService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, "")
}

// Detail retrieves a person sub-request; an empty request selects the base
// record.
func (s PersonService) Detail(ctx context.Context, id int, request string) (json.RawMessage, error) {
	if err := validID("person id", id); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("person"), num(id), optStr(request)},
	})
}

// Pictures lists the person's pictures.
func (s PersonService) Pictures(ctx context.Context, id int) (json.RawMessage, error) {
	return s.Detail(ctx, id, PersonPictures)
}
