package stats

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/limbo/attendance/pkg/entity"
	"golang.org/x/sync/errgroup"
)

// RecordFetcher loads every attendance record of one user.
type RecordFetcher func(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error)

type LeaderboardOpts struct {
	// Concurrency caps simultaneous fetches. Zero or less means one goroutine per user.
	Concurrency int
}

// ComputeLeaderboard computes every user's overall stats and orders them by
// percentage, highest first. Equal percentages keep input order, except that
// users with no recorded classes go after users that have some.
func ComputeLeaderboard(ctx context.Context, users []*entity.User, fetch RecordFetcher, opts LeaderboardOpts) ([]entity.LeaderboardEntry, error) {
	entries := make([]entity.LeaderboardEntry, len(users))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, user := range users {
		g.Go(func() error {
			records, err := fetch(gctx, user.ID)
			if err != nil {
				return err
			}
			userStats, err := ComputeUserStatsFor(user.ID, records, user.Subjects)
			if err != nil {
				return err
			}
			entries[i] = entity.LeaderboardEntry{
				UserID:          user.ID,
				Name:            user.Name,
				Email:           user.Email,
				Percentage:      userStats.OverallPercentage,
				TotalClasses:    userStats.TotalClasses,
				AttendedClasses: userStats.AttendedClasses,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	RankEntries(entries)
	return entries, nil
}

// RankEntries sorts entries in place with the leaderboard ordering.
func RankEntries(entries []entity.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].TotalClasses > 0 && entries[j].TotalClasses == 0
	})
}
