package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/repository"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttendanceRepoWithConn(conn)
	record := entity.AttendanceRecord{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   entity.NewDate(2024, time.January, 2),
		SubjectAttendance: []entity.PeriodEntry{
			{Subject: "Math", Period: 1, Status: entity.StatusAttended},
		},
		CreatedAt: time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC),
	}
	payload, err := sonic.Marshal(record.SubjectAttendance)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`INSERT INTO attendance_records (id, user_id, record_date, is_holiday, entries, created_at) VALUES ($1, $2, $3, $4, $5, $6);`)
	args := []any{record.ID, record.UserID, record.Date.Time(), record.IsHoliday, payload, record.CreatedAt}

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Error        error
	}{
		{
			Desc: "created",
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc: "same date twice",
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			Error: errorvalues.ErrAttendanceExists,
		},
		{
			Desc: "unknown user",
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			Error: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Create(ctx, &record)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
	t.Run("holiday stores empty list", func(t *testing.T) {
		holiday := entity.AttendanceRecord{ID: uuid.New(), UserID: record.UserID, Date: record.Date.AddDays(1), IsHoliday: true, CreatedAt: record.CreatedAt}
		conn.ExpectExec(query).
			WithArgs(holiday.ID, holiday.UserID, holiday.Date.Time(), true, []byte("[]"), record.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Create(ctx, &holiday))
	})
	t.Run("stored creation time is the returned one", func(t *testing.T) {
		precise := time.Date(2024, time.January, 3, 9, 30, 0, 123456789, time.FixedZone("UTC+5", 5*60*60))
		truncated := time.Date(2024, time.January, 3, 4, 30, 0, 123456000, time.UTC)
		rec := entity.AttendanceRecord{ID: uuid.New(), UserID: record.UserID, Date: record.Date.AddDays(2), IsHoliday: true, CreatedAt: precise}
		conn.ExpectExec(query).
			WithArgs(rec.ID, rec.UserID, rec.Date.Time(), true, []byte("[]"), truncated).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		require.NoError(t, repo.Create(ctx, &rec))
		assert.Equal(t, truncated, rec.CreatedAt)
	})
	t.Run("missing creation time is filled", func(t *testing.T) {
		rec := entity.AttendanceRecord{ID: uuid.New(), UserID: record.UserID, Date: record.Date.AddDays(3), IsHoliday: true}
		conn.ExpectExec(query).
			WithArgs(rec.ID, rec.UserID, rec.Date.Time(), true, []byte("[]"), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		require.NoError(t, repo.Create(ctx, &rec))
		assert.False(t, rec.CreatedAt.IsZero())
		assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &record)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrAttendanceExists)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRecordExists(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttendanceRepoWithConn(conn)
	userID := uuid.New()
	date := entity.NewDate(2024, time.January, 2)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM attendance_records WHERE user_id = $1 AND record_date = $2);`)
	t.Run("exists", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userID, date.Time()).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.Exists(ctx, userID, date)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("doesn't exist", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userID, date.Time()).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		exists, err := repo.Exists(ctx, userID, date)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userID, date.Time()).WillReturnError(errors.New("db error"))
		_, err := repo.Exists(ctx, userID, date)
		assert.Error(t, err)
	})
}

func TestGetRecordsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttendanceRepoWithConn(conn)
	userID := uuid.New()
	created := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, user_id, record_date, is_holiday, entries, created_at FROM attendance_records WHERE user_id = $1 ORDER BY record_date DESC;`)
	columns := []string{"id", "user_id", "record_date", "is_holiday", "entries", "created_at"}
	t.Run("listed", func(t *testing.T) {
		workday := entity.AttendanceRecord{
			ID:     uuid.New(),
			UserID: userID,
			Date:   entity.NewDate(2024, time.January, 3),
			SubjectAttendance: []entity.PeriodEntry{
				{Subject: "Math", Period: 1, Status: entity.StatusAttended},
				{Subject: "Physics", Period: 2, Status: entity.StatusNotAttended},
			},
			CreatedAt: created,
		}
		holiday := entity.AttendanceRecord{
			ID:                uuid.New(),
			UserID:            userID,
			Date:              entity.NewDate(2024, time.January, 2),
			IsHoliday:         true,
			SubjectAttendance: []entity.PeriodEntry{},
			CreatedAt:         created,
		}
		conn.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(columns).
			AddRow(workday.ID, userID, workday.Date.Time(), false, []byte(`[{"subject":"Math","period":1,"status":"attended"},{"subject":"Physics","period":2,"status":"not attended"}]`), created).
			AddRow(holiday.ID, userID, holiday.Date.Time(), true, []byte(`[]`), created))
		result, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []entity.AttendanceRecord{workday, holiday}, result)
	})
	t.Run("corrupted entries", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), userID, time.Now(), false, []byte(`{`), created))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}
