package api

import (
	"context"
	"encoding/json"
)

// ScheduleDays lists the day segments the API accepts. "other" and
// "unknown" cover entries without a broadcast day.
var ScheduleDays = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday", "other", "unknown",
}

// Get retrieves the full weekly broadcast schedule.
func (s ScheduleService) Get(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, requestSpec{
		segments: []segment{str("schedule")},
	})
}

// Day retrieves the schedule for a single day.
func (s ScheduleService) Day(ctx context.Context, day string) (json.RawMessage, error) {
	if err := validString("schedule day", day); err != nil {
		return nil, err
	}
	return s.get(ctx, requestSpec{
		segments: []segment{str("schedule"), str(day)},
	})
}
