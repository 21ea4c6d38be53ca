package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/limbo/attendance/internal/repository"
	"github.com/limbo/attendance/internal/stats"
	"github.com/limbo/attendance/pkg/entity"
)

type LeaderboardService struct {
	usersRepo   repository.UsersRepositoryI
	recordsRepo repository.AttendanceRepositoryI
	cache       repository.LeaderboardCacheI
	concurrency int
}

func NewLeaderboardService(usersRepo repository.UsersRepositoryI, recordsRepo repository.AttendanceRepositoryI, cache repository.LeaderboardCacheI, concurrency int) *LeaderboardService {
	if cache == nil {
		cache = repository.NopLeaderboardCache{}
	}
	return &LeaderboardService{
		usersRepo:   usersRepo,
		recordsRepo: recordsRepo,
		cache:       cache,
		concurrency: concurrency,
	}
}

// Leaderboard serves the cached ranking when there is one and recomputes it
// otherwise. Cache failures only cost a recomputation. A ranking computed while
// a write invalidated the cache is returned but not stored.
func (ls *LeaderboardService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	cached, ok, err := ls.cache.Get(ctx)
	if err != nil {
		slog.Warn("leaderboard cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}
	gen, genErr := ls.cache.Generation(ctx)
	if genErr != nil {
		slog.Warn("leaderboard cache generation read failed", slog.String("error", genErr.Error()))
	}
	users, err := ls.usersRepo.ListSetupComplete(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository error: %w", err)
	}
	entries, err := stats.ComputeLeaderboard(ctx, users, ls.recordsRepo.GetByUserID, stats.LeaderboardOpts{
		Concurrency: ls.concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("computing leaderboard error: %w", err)
	}
	if genErr != nil {
		return entries, nil
	}
	stored, err := ls.cache.Set(ctx, gen, entries)
	switch {
	case err != nil:
		slog.Warn("leaderboard cache write failed", slog.String("error", err.Error()))
	case !stored:
		slog.Debug("leaderboard changed while computing, not cached")
	}
	return entries, nil
}
