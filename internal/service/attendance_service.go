package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/repository"
	"github.com/limbo/attendance/internal/stats"
	"github.com/limbo/attendance/pkg/entity"
)

type AttendanceOpts struct {
	// Zone that decides which calendar day "today" is. Nil means UTC
	Location *time.Location
	// Weekday without classes, skipped when looking for missed days
	OffDay time.Weekday
	// Clock, time.Now when nil
	Now func() time.Time
}

type AttendanceService struct {
	usersRepo   repository.UsersRepositoryI
	recordsRepo repository.AttendanceRepositoryI
	cache       repository.LeaderboardCacheI
	loc         *time.Location
	offDay      time.Weekday
	now         func() time.Time
}

func NewAttendanceService(usersRepo repository.UsersRepositoryI, recordsRepo repository.AttendanceRepositoryI, cache repository.LeaderboardCacheI, opts AttendanceOpts) *AttendanceService {
	if usersRepo == nil || recordsRepo == nil {
		log.Fatal("on attendance service provided nil repos")
	}
	if cache == nil {
		cache = repository.NopLeaderboardCache{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AttendanceService{
		usersRepo:   usersRepo,
		recordsRepo: recordsRepo,
		cache:       cache,
		loc:         opts.Location,
		offDay:      opts.OffDay,
		now:         opts.Now,
	}
}

func (serv *AttendanceService) today() entity.Date {
	return entity.DateOf(serv.now(), serv.loc)
}

func (serv *AttendanceService) Enter(ctx context.Context, userID uuid.UUID, req *EnterAttendanceRequest) (*entity.AttendanceRecord, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty attendance", errorvalues.ErrValidation)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := serv.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsSetupComplete {
		return nil, errorvalues.ErrSetupIncomplete
	}
	if req.Date.After(serv.today()) {
		return nil, errorvalues.ErrAttendanceDateNotAllowed
	}
	exist, err := serv.recordsRepo.Exists(ctx, userID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("repository error: %w", err)
	}
	if exist {
		return nil, errorvalues.ErrAttendanceExists
	}
	entries := make([]entity.PeriodEntry, 0, len(req.SubjectAttendance))
	if !req.IsHoliday {
		entries = append(entries, req.SubjectAttendance...)
	}
	record := &entity.AttendanceRecord{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              req.Date,
		IsHoliday:         req.IsHoliday,
		SubjectAttendance: entries,
		CreatedAt:         serv.now().UTC(),
	}
	err = serv.recordsRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAttendanceExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	invalidateLeaderboard(ctx, serv.cache)
	return record, nil
}

func (serv *AttendanceService) Status(ctx context.Context, userID uuid.UUID) (*StatusResult, error) {
	user, records, err := serv.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	userStats, err := stats.ComputeUserStatsFor(userID, records, user.Subjects)
	if err != nil {
		return nil, err
	}
	today := serv.today()
	entered := false
	for _, r := range records {
		if r.Date.Equal(today) {
			entered = true
			break
		}
	}
	return &StatusResult{
		TodayAttendanceEntered: entered,
		Stats:                  userStats,
	}, nil
}

func (serv *AttendanceService) TodaySchedule(ctx context.Context, userID uuid.UUID) (*TodaySchedule, error) {
	user, err := serv.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := serv.today()
	return &TodaySchedule{
		Date:     today,
		Day:      today.Weekday().String(),
		Schedule: user.Timetable.Day(today.Weekday()),
		Subjects: subjectsOf(user),
	}, nil
}

func (serv *AttendanceService) Records(ctx context.Context, userID uuid.UUID) (*RecordsOverview, error) {
	user, records, err := serv.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	userStats, err := stats.ComputeUserStatsFor(userID, records, user.Subjects)
	if err != nil {
		return nil, err
	}
	return &RecordsOverview{
		Records:     records,
		Stats:       userStats,
		MissedDates: stats.ComputeMissedDates(user.StartDate, serv.today(), records, serv.offDay),
		Subjects:    subjectsOf(user),
	}, nil
}

func (serv *AttendanceService) Subject(ctx context.Context, userID uuid.UUID, subject string) (*SubjectOverview, error) {
	user, records, err := serv.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	userStats, err := stats.ComputeUserStatsFor(userID, records, user.Subjects)
	if err != nil {
		return nil, err
	}
	subjectRecords := make([]SubjectRecord, 0)
	for _, r := range records {
		if r.IsHoliday {
			continue
		}
		for _, entry := range r.SubjectAttendance {
			if entry.Subject == subject {
				subjectRecords = append(subjectRecords, SubjectRecord{Date: r.Date, Attendance: entry})
				break
			}
		}
	}
	return &SubjectOverview{
		Subject: subject,
		Records: subjectRecords,
		Stats:   userStats.SubjectStats[subject],
	}, nil
}

func (serv *AttendanceService) getUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	return user, nil
}

// load fetches the user with all of their records, newest first.
func (serv *AttendanceService) load(ctx context.Context, userID uuid.UUID) (*entity.User, []entity.AttendanceRecord, error) {
	user, err := serv.getUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	records, err := serv.recordsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("repository error: %w", err)
	}
	return user, records, nil
}

func subjectsOf(user *entity.User) []string {
	if user.Subjects == nil {
		return []string{}
	}
	return user.Subjects
}
