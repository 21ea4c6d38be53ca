// Package stats turns raw attendance records into per-subject and overall
// figures, finds days without a record and ranks users by attendance.
// Nothing here performs I/O except through the fetcher handed to
// ComputeLeaderboard.
package stats

import (
	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/pkg/entity"
)

// Percentage returns attended/total as a whole percent rounded half up,
// or 0 when total is 0. Integer arithmetic keeps 2/3 at 67 and 1/8 at 13.
func Percentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return (attended*200 + total) / (total * 2)
}

// ComputeUserStats folds records into per-subject counts. Every subject in
// subjects is present in the result. Holiday records and entries naming a
// subject outside the list are skipped. Input order doesn't matter.
func ComputeUserStats(records []entity.AttendanceRecord, subjects []string) entity.Stats {
	subjectStats := make(map[string]entity.SubjectStats, len(subjects))
	for _, subject := range subjects {
		subjectStats[subject] = entity.SubjectStats{}
	}
	for _, record := range records {
		if record.IsHoliday {
			continue
		}
		for _, entry := range record.SubjectAttendance {
			s, ok := subjectStats[entry.Subject]
			if !ok {
				continue
			}
			s.Total++
			if entry.Status == entity.StatusAttended {
				s.Attended++
			}
			subjectStats[entry.Subject] = s
		}
	}
	result := entity.Stats{SubjectStats: subjectStats}
	for subject, s := range subjectStats {
		s.Percentage = Percentage(s.Attended, s.Total)
		subjectStats[subject] = s
		result.TotalClasses += s.Total
		result.AttendedClasses += s.Attended
	}
	result.OverallPercentage = Percentage(result.AttendedClasses, result.TotalClasses)
	return result
}

// ComputeUserStatsFor is ComputeUserStats for records that must all belong
// to userID. A foreign record yields ErrMixedUserRecords.
func ComputeUserStatsFor(userID uuid.UUID, records []entity.AttendanceRecord, subjects []string) (entity.Stats, error) {
	if err := checkOwner(userID, records); err != nil {
		return entity.Stats{}, err
	}
	return ComputeUserStats(records, subjects), nil
}

func checkOwner(userID uuid.UUID, records []entity.AttendanceRecord) error {
	for _, record := range records {
		if record.UserID != userID {
			return errorvalues.ErrMixedUserRecords
		}
	}
	return nil
}
