package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/stats"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID   = uuid.New()
	subjects = []string{"Math", "Physics", "Chemistry"}
)

func record(date string, holiday bool, entries ...entity.PeriodEntry) entity.AttendanceRecord {
	d, err := entity.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return entity.AttendanceRecord{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              d,
		IsHoliday:         holiday,
		SubjectAttendance: entries,
	}
}

func attended(subject string, period int) entity.PeriodEntry {
	return entity.PeriodEntry{Subject: subject, Period: period, Status: entity.StatusAttended}
}

func missed(subject string, period int) entity.PeriodEntry {
	return entity.PeriodEntry{Subject: subject, Period: period, Status: entity.StatusNotAttended}
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		Desc     string
		Attended int
		Total    int
		Result   int
	}{
		{Desc: "no classes", Attended: 0, Total: 0, Result: 0},
		{Desc: "two of three rounds up", Attended: 2, Total: 3, Result: 67},
		{Desc: "one of three rounds down", Attended: 1, Total: 3, Result: 33},
		{Desc: "half is exact", Attended: 1, Total: 2, Result: 50},
		{Desc: "half point rounds up", Attended: 1, Total: 8, Result: 13},
		{Desc: "all attended", Attended: 7, Total: 7, Result: 100},
		{Desc: "none attended", Attended: 0, Total: 9, Result: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, stats.Percentage(tc.Attended, tc.Total))
		})
	}
}

func TestComputeUserStats(t *testing.T) {
	t.Run("single record scenario", func(t *testing.T) {
		records := []entity.AttendanceRecord{
			record("2024-01-01", false, attended("Math", 1), missed("Physics", 2)),
		}
		result := stats.ComputeUserStats(records, []string{"Math", "Physics"})
		assert.Equal(t, entity.SubjectStats{Total: 1, Attended: 1, Percentage: 100}, result.SubjectStats["Math"])
		assert.Equal(t, entity.SubjectStats{Total: 1, Attended: 0, Percentage: 0}, result.SubjectStats["Physics"])
		assert.Equal(t, 2, result.TotalClasses)
		assert.Equal(t, 1, result.AttendedClasses)
		assert.Equal(t, 50, result.OverallPercentage)
	})
	t.Run("every subject present without records", func(t *testing.T) {
		result := stats.ComputeUserStats(nil, subjects)
		require.Len(t, result.SubjectStats, len(subjects))
		for _, s := range subjects {
			assert.Equal(t, entity.SubjectStats{}, result.SubjectStats[s])
		}
		assert.Equal(t, 0, result.OverallPercentage)
	})
	t.Run("holidays are ignored", func(t *testing.T) {
		records := []entity.AttendanceRecord{
			record("2024-01-01", true, attended("Math", 1), attended("Physics", 2)),
			record("2024-01-02", false, missed("Math", 1)),
		}
		result := stats.ComputeUserStats(records, subjects)
		assert.Equal(t, entity.SubjectStats{Total: 1, Attended: 0, Percentage: 0}, result.SubjectStats["Math"])
		assert.Equal(t, entity.SubjectStats{}, result.SubjectStats["Physics"])
		assert.Equal(t, 1, result.TotalClasses)
	})
	t.Run("unknown subjects are ignored", func(t *testing.T) {
		records := []entity.AttendanceRecord{
			record("2024-01-01", false, attended("Biology", 1), attended("Math", 2)),
		}
		result := stats.ComputeUserStats(records, subjects)
		_, ok := result.SubjectStats["Biology"]
		assert.False(t, ok)
		assert.Equal(t, 1, result.TotalClasses)
		assert.Equal(t, 100, result.OverallPercentage)
	})
	t.Run("same period subject counted twice a day", func(t *testing.T) {
		records := []entity.AttendanceRecord{
			record("2024-01-01", false, attended("Math", 1), missed("Math", 2), attended("Math", 3)),
		}
		result := stats.ComputeUserStats(records, subjects)
		assert.Equal(t, entity.SubjectStats{Total: 3, Attended: 2, Percentage: 67}, result.SubjectStats["Math"])
	})
}

func TestComputeUserStatsProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	all := append([]string{"Unknown"}, subjects...)
	for i := range 50 {
		records := make([]entity.AttendanceRecord, 0)
		start := entity.NewDate(2024, 1, 1)
		for d := range rnd.Intn(30) {
			entries := make([]entity.PeriodEntry, 0, entity.PeriodsPerDay)
			for p := 1; p <= entity.PeriodsPerDay; p++ {
				status := entity.StatusNotAttended
				if rnd.Intn(2) == 0 {
					status = entity.StatusAttended
				}
				entries = append(entries, entity.PeriodEntry{Subject: all[rnd.Intn(len(all))], Period: p, Status: status})
			}
			records = append(records, entity.AttendanceRecord{
				UserID:            userID,
				Date:              start.AddDays(d),
				IsHoliday:         rnd.Intn(5) == 0,
				SubjectAttendance: entries,
			})
		}
		result := stats.ComputeUserStats(records, subjects)

		for _, s := range subjects {
			_, ok := result.SubjectStats[s]
			assert.True(t, ok, "iteration %d: subject %s missing", i, s)
		}
		nonHoliday := make([]entity.AttendanceRecord, 0, len(records))
		for _, r := range records {
			if !r.IsHoliday {
				nonHoliday = append(nonHoliday, r)
			}
		}
		assert.Equal(t, result, stats.ComputeUserStats(nonHoliday, subjects), "iteration %d: holidays changed totals", i)

		expected := 0
		if result.TotalClasses > 0 {
			expected = int(math.Round(float64(result.AttendedClasses*100) / float64(result.TotalClasses)))
		}
		assert.Equal(t, expected, result.OverallPercentage, "iteration %d", i)

		shuffled := append([]entity.AttendanceRecord(nil), records...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, result, stats.ComputeUserStats(shuffled, subjects), "iteration %d: order dependent", i)
	}
}

func TestComputeUserStatsFor(t *testing.T) {
	own := record("2024-01-01", false, attended("Math", 1))
	foreign := record("2024-01-02", false, attended("Math", 1))
	foreign.UserID = uuid.New()
	testCases := []struct {
		Desc    string
		Records []entity.AttendanceRecord
		Error   error
	}{
		{Desc: "own records", Records: []entity.AttendanceRecord{own}, Error: nil},
		{Desc: "no records", Records: nil, Error: nil},
		{Desc: "mixed users", Records: []entity.AttendanceRecord{own, foreign}, Error: errorvalues.ErrMixedUserRecords},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result, err := stats.ComputeUserStatsFor(userID, tc.Records, subjects)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Len(t, result.SubjectStats, len(subjects))
			}
		})
	}
}
