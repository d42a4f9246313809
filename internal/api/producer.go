package api

import (
	"context"
	"encoding/json"
)

// Get lists anime credited to a producer. Page 0 drops the page segment.
func (s ProducerService) Get(ctx context.Context, producerID, page int) (json.RawMessage, error) {
	if err := validID("producer id", producerID); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("producer"), num(producerID), optNum(page)},
	})
}
