package stats_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/stats"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(name string) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Subjects: []string{"Math"},
	}
}

// recordsWith gives user attended classes out of total, all for Math.
func recordsWith(user *entity.User, attendedCount, total int) []entity.AttendanceRecord {
	entries := make([]entity.PeriodEntry, 0, total)
	for i := range total {
		status := entity.StatusNotAttended
		if i < attendedCount {
			status = entity.StatusAttended
		}
		entries = append(entries, entity.PeriodEntry{Subject: "Math", Period: i%entity.PeriodsPerDay + 1, Status: status})
	}
	return []entity.AttendanceRecord{{
		ID:                uuid.New(),
		UserID:            user.ID,
		Date:              entity.NewDate(2024, 1, 1),
		SubjectAttendance: entries,
	}}
}

func fetcherFrom(data map[uuid.UUID][]entity.AttendanceRecord) stats.RecordFetcher {
	return func(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error) {
		return data[userID], nil
	}
}

func names(entries []entity.LeaderboardEntry) []string {
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Name)
	}
	return result
}

func TestComputeLeaderboard(t *testing.T) {
	ctx := context.Background()
	t.Run("equal percentages keep input order", func(t *testing.T) {
		a, b := newUser("a"), newUser("b")
		data := map[uuid.UUID][]entity.AttendanceRecord{
			a.ID: recordsWith(a, 8, 10),
			b.ID: recordsWith(b, 8, 10),
		}
		result, err := stats.ComputeLeaderboard(ctx, []*entity.User{a, b}, fetcherFrom(data), stats.LeaderboardOpts{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, names(result))
		assert.Equal(t, 80, result[0].Percentage)
		assert.Equal(t, 10, result[0].TotalClasses)
		assert.Equal(t, 8, result[0].AttendedClasses)
		assert.Equal(t, a.Email, result[0].Email)
	})
	t.Run("higher percentage first", func(t *testing.T) {
		a, b, c := newUser("a"), newUser("b"), newUser("c")
		data := map[uuid.UUID][]entity.AttendanceRecord{
			a.ID: recordsWith(a, 1, 4),
			b.ID: recordsWith(b, 3, 4),
			c.ID: recordsWith(c, 2, 4),
		}
		result, err := stats.ComputeLeaderboard(ctx, []*entity.User{a, b, c}, fetcherFrom(data), stats.LeaderboardOpts{Concurrency: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c", "a"}, names(result))
	})
	t.Run("users without classes go after zero percent users", func(t *testing.T) {
		idle, lazy := newUser("idle"), newUser("lazy")
		data := map[uuid.UUID][]entity.AttendanceRecord{
			lazy.ID: recordsWith(lazy, 0, 5),
		}
		result, err := stats.ComputeLeaderboard(ctx, []*entity.User{idle, lazy}, fetcherFrom(data), stats.LeaderboardOpts{})
		require.NoError(t, err)
		assert.Equal(t, []string{"lazy", "idle"}, names(result))
		assert.Equal(t, 0, result[1].TotalClasses)
	})
	t.Run("no users", func(t *testing.T) {
		result, err := stats.ComputeLeaderboard(ctx, nil, fetcherFrom(nil), stats.LeaderboardOpts{})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("fetch error", func(t *testing.T) {
		fetchErr := errors.New("db error")
		fetch := func(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error) {
			return nil, fetchErr
		}
		_, err := stats.ComputeLeaderboard(ctx, []*entity.User{newUser("a")}, fetch, stats.LeaderboardOpts{})
		assert.ErrorIs(t, err, fetchErr)
	})
	t.Run("foreign record", func(t *testing.T) {
		a, b := newUser("a"), newUser("b")
		data := map[uuid.UUID][]entity.AttendanceRecord{
			a.ID: recordsWith(b, 1, 1),
		}
		_, err := stats.ComputeLeaderboard(ctx, []*entity.User{a}, fetcherFrom(data), stats.LeaderboardOpts{})
		assert.ErrorIs(t, err, errorvalues.ErrMixedUserRecords)
	})
	t.Run("concurrency limit respected", func(t *testing.T) {
		users := make([]*entity.User, 0, 20)
		for range 20 {
			users = append(users, newUser("u"))
		}
		var running, peak atomic.Int32
		fetch := func(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			return nil, nil
		}
		result, err := stats.ComputeLeaderboard(ctx, users, fetch, stats.LeaderboardOpts{Concurrency: 3})
		require.NoError(t, err)
		assert.Len(t, result, len(users))
		assert.LessOrEqual(t, peak.Load(), int32(3))
	})
}

func TestComputeLeaderboardProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := range 20 {
		users := make([]*entity.User, 0)
		data := make(map[uuid.UUID][]entity.AttendanceRecord)
		for range rnd.Intn(15) {
			u := newUser("u")
			total := rnd.Intn(8)
			if total > 0 {
				data[u.ID] = recordsWith(u, rnd.Intn(total+1), total)
			}
			users = append(users, u)
		}
		parallel, err := stats.ComputeLeaderboard(context.Background(), users, fetcherFrom(data), stats.LeaderboardOpts{})
		require.NoError(t, err)
		sequential, err := stats.ComputeLeaderboard(context.Background(), users, fetcherFrom(data), stats.LeaderboardOpts{Concurrency: 1})
		require.NoError(t, err)

		assert.Len(t, parallel, len(users), "iteration %d", i)
		assert.Equal(t, sequential, parallel, "iteration %d", i)
		for j := 1; j < len(parallel); j++ {
			assert.GreaterOrEqual(t, parallel[j-1].Percentage, parallel[j].Percentage, "iteration %d", i)
		}
	}
}

func TestRankEntries(t *testing.T) {
	entries := []entity.LeaderboardEntry{
		{Name: "none", Percentage: 0, TotalClasses: 0},
		{Name: "half", Percentage: 50, TotalClasses: 2},
		{Name: "zero", Percentage: 0, TotalClasses: 3},
		{Name: "full", Percentage: 100, TotalClasses: 1},
		{Name: "half2", Percentage: 50, TotalClasses: 4},
	}
	stats.RankEntries(entries)
	assert.Equal(t, []string{"full", "half", "half2", "zero", "none"}, names(entries))
}
