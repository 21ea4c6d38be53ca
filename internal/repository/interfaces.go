package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/attendance/pkg/entity"
)

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/limbo/attendance/internal/repository UsersRepositoryI,AttendanceRepositoryI,LeaderboardCacheI

type UsersRepositoryI interface {
	// Creates new user. ID, Email and Name are necessary
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used on sign-in
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Stores semester setup and marks it complete. Fails with ErrSetupCompleted
	// if the user already went through setup
	CompleteSetup(ctx context.Context, user *entity.User) error
	// Lists users with finished setup in creation order
	ListSetupComplete(ctx context.Context) ([]*entity.User, error)
}

type AttendanceRepositoryI interface {
	// Creates a record. Second record for the same (user, date) fails with ErrAttendanceExists
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	// Inspects if user already has a record for date
	Exists(ctx context.Context, userID uuid.UUID, date entity.Date) (bool, error)
	// Lists every record of user, newest date first
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error)
}

type LeaderboardCacheI interface {
	// Returns cached leaderboard. ok is false on a miss
	Get(ctx context.Context) (entries []entity.LeaderboardEntry, ok bool, err error)
	// Returns the invalidation generation. Read it before computing a leaderboard
	Generation(ctx context.Context) (int64, error)
	// Stores entries computed at generation gen. stored is false when an
	// invalidation happened since gen was read
	Set(ctx context.Context, gen int64, entries []entity.LeaderboardEntry) (stored bool, err error)
	// Drops the cached leaderboard and bumps the generation
	Invalidate(ctx context.Context) error
	Ping(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Address string
	TTL     time.Duration
}
