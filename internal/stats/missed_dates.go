package stats

import (
	"time"

	"github.com/limbo/attendance/pkg/entity"
)

// ComputeMissedDates lists, in ascending order, every day in [start, today]
// that has no record and isn't offDay. A holiday record still counts as a
// record. The scan always stops at today, whatever the semester end date is.
func ComputeMissedDates(start, today entity.Date, records []entity.AttendanceRecord, offDay time.Weekday) []string {
	missed := make([]string, 0)
	if start.IsZero() || today.IsZero() || start.After(today) {
		return missed
	}
	recorded := make(map[string]struct{}, len(records))
	for _, record := range records {
		recorded[record.Date.String()] = struct{}{}
	}
	for day := start; !day.After(today); day = day.AddDays(1) {
		if day.Weekday() == offDay {
			continue
		}
		key := day.String()
		if _, ok := recorded[key]; !ok {
			missed = append(missed, key)
		}
	}
	return missed
}
