package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/repository"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/limbo/attendance/pkg/identity"
)

type UserService struct {
	repo   repository.UsersRepositoryI
	cache  repository.LeaderboardCacheI
	offDay time.Weekday
}

func NewUserService(usersRepo repository.UsersRepositoryI, cache repository.LeaderboardCacheI, offDay time.Weekday) *UserService {
	if cache == nil {
		cache = repository.NopLeaderboardCache{}
	}
	return &UserService{
		repo:   usersRepo,
		cache:  cache,
		offDay: offDay,
	}
}

func (us *UserService) Authenticate(ctx context.Context, ident *identity.Identity) (*entity.User, bool, error) {
	if ident == nil || ident.Email == "" {
		return nil, false, errorvalues.ErrInvalidIdentity
	}
	user, err := us.repo.FindByEmail(ctx, ident.Email)
	if err == nil {
		return user, !user.IsSetupComplete, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, false, fmt.Errorf("repository searching error: %w", err)
	}
	user = &entity.User{
		ID:    uuid.New(),
		Email: ident.Email,
		Name:  ident.Name,
	}
	err = us.repo.Create(ctx, user)
	if err != nil {
		// Another sign-in with the same email won the insert
		if errors.Is(err, errorvalues.ErrUserExists) {
			existing, err := us.repo.FindByEmail(ctx, ident.Email)
			if err != nil {
				return nil, false, fmt.Errorf("repository searching error: %w", err)
			}
			return existing, !existing.IsSetupComplete, nil
		}
		return nil, false, fmt.Errorf("repository creating error: %w", err)
	}
	created, err := us.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, false, fmt.Errorf("repository searching error: %w", err)
	}
	return created, true, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) CompleteSetup(ctx context.Context, id uuid.UUID, req *SetupRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty setup", errorvalues.ErrValidation)
	}
	normalized := *req
	normalized.Subjects = make([]string, 0, len(req.Subjects))
	for _, s := range req.Subjects {
		normalized.Subjects = append(normalized.Subjects, strings.TrimSpace(s))
	}
	normalized.offDay = us.offDay
	if err := validateStruct(normalized); err != nil {
		return err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsSetupComplete {
		return errorvalues.ErrSetupCompleted
	}
	user.Semester = normalized.Semester
	user.Subjects = normalized.Subjects
	user.StartDate = normalized.StartDate
	user.EndDate = normalized.EndDate
	user.Timetable = normalized.Timetable
	err = us.repo.CompleteSetup(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSetupCompleted) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository updating error: %w", err)
	}
	invalidateLeaderboard(ctx, us.cache)
	return nil
}

func invalidateLeaderboard(ctx context.Context, cache repository.LeaderboardCacheI) {
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("leaderboard cache invalidation failed", slog.String("error", err.Error()))
	}
}
