package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/limbo/attendance/pkg/identity"
)

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/limbo/attendance/internal/service UserServiceI,AttendanceServiceI,LeaderboardServiceI

type SetupRequest struct {
	Semester  int              `validate:"required,min=1,max=8"`
	Subjects  []string         `validate:"required,min=2,unique,dive,subject_name"`
	StartDate entity.Date      `validate:"required"`
	EndDate   entity.Date      `validate:"required"`
	Timetable entity.Timetable `validate:"required"`

	offDay time.Weekday
}

type EnterAttendanceRequest struct {
	Date              entity.Date          `validate:"required"`
	IsHoliday         bool
	SubjectAttendance []entity.PeriodEntry `validate:"dive"`
}

type StatusResult struct {
	TodayAttendanceEntered bool `json:"todayAttendanceEntered"`
	entity.Stats
}

type TodaySchedule struct {
	Date     entity.Date `json:"date"`
	Day      string      `json:"day"`
	Schedule []string    `json:"schedule"`
	Subjects []string    `json:"subjects"`
}

type RecordsOverview struct {
	Records     []entity.AttendanceRecord `json:"records"`
	Stats       entity.Stats              `json:"stats"`
	MissedDates []string                  `json:"missedDates"`
	Subjects    []string                  `json:"subjects"`
}

type SubjectRecord struct {
	Date       entity.Date        `json:"date"`
	Attendance entity.PeriodEntry `json:"attendance"`
}

type SubjectOverview struct {
	Subject string              `json:"subject"`
	Records []SubjectRecord     `json:"records"`
	Stats   entity.SubjectStats `json:"stats"`
}

type UserServiceI interface {
	// Finds the user owning the identity or creates one. isNew is true for a
	// created user and for a user that hasn't finished setup yet
	Authenticate(ctx context.Context, ident *identity.Identity) (user *entity.User, isNew bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Validates and stores semester setup. Allowed once per user
	CompleteSetup(ctx context.Context, id uuid.UUID, req *SetupRequest) error
}

type AttendanceServiceI interface {
	// Stores attendance for one day. Requires finished setup
	Enter(ctx context.Context, userID uuid.UUID, req *EnterAttendanceRequest) (*entity.AttendanceRecord, error)
	Status(ctx context.Context, userID uuid.UUID) (*StatusResult, error)
	TodaySchedule(ctx context.Context, userID uuid.UUID) (*TodaySchedule, error)
	Records(ctx context.Context, userID uuid.UUID) (*RecordsOverview, error)
	Subject(ctx context.Context, userID uuid.UUID, subject string) (*SubjectOverview, error)
}

type LeaderboardServiceI interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}
