package api

import (
	"context"
	"encoding/json"
)

// Requests retrieves API request metrics. All arguments are optional:
// typ ("anime", "manga", ...), period ("today", "weekly", "monthly") and
// offset narrow the report, with zero values dropping their segment. A
// later argument without the earlier ones would shift positions, so fill
// them left to right.
func (s MetaService) Requests(ctx context.Context, typ, period string, offset int) (json.RawMessage, error) {
	return s.get(ctx, requestSpec{
		segments: []segment{str("meta"), str("requests"), optStr(typ), optStr(period), optNum(offset)},
	})
}

// Status retrieves the API's own status report.
func (s MetaService) Status(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, requestSpec{
		segments: []segment{str("meta"), str("status")},
	})
}
