package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/pkg/entity"
)

type AttendanceRepository struct {
	conn PgConnection
}

func NewAttendanceRepo(cfg DBConfig) *AttendanceRepository {
	return NewAttendanceRepoWithConn(NewPool(cfg))
}

func NewAttendanceRepoWithConn(conn PgConnection) *AttendanceRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attendanceRepo: " + err.Error())
	}
	return &AttendanceRepository{
		conn: conn,
	}
}

func (ar *AttendanceRepository) Create(ctx context.Context, record *entity.AttendanceRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	entries := record.SubjectAttendance
	if entries == nil {
		entries = []entity.PeriodEntry{}
	}
	payload, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("encoding entries error: " + err.Error())
	}
	// Stored with microsecond precision, so the caller's copy is truncated to match
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.CreatedAt = record.CreatedAt.UTC().Truncate(time.Microsecond)
	_, err = ar.conn.Exec(
		ctx,
		`INSERT INTO attendance_records (id, user_id, record_date, is_holiday, entries, created_at) VALUES ($1, $2, $3, $4, $5, $6);`,
		record.ID,
		record.UserID,
		record.Date.Time(),
		record.IsHoliday,
		payload,
		record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAttendanceExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating attendance record error: " + err.Error())
	}
	return nil
}

func (ar *AttendanceRepository) Exists(ctx context.Context, userID uuid.UUID, date entity.Date) (bool, error) {
	var exists bool
	row := ar.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_records WHERE user_id = $1 AND record_date = $2);`,
		userID,
		date.Time(),
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if record exists error: " + err.Error())
	}
	return exists, nil
}

func (ar *AttendanceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.AttendanceRecord, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, record_date, is_holiday, entries, created_at FROM attendance_records WHERE user_id = $1 ORDER BY record_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("getting attendance records error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.AttendanceRecord, 0, 16)
	for rows.Next() {
		var (
			record  entity.AttendanceRecord
			date    time.Time
			payload []byte
		)
		err = rows.Scan(&record.ID, &record.UserID, &date, &record.IsHoliday, &payload, &record.CreatedAt)
		if err != nil {
			return nil, errors.New("record row parsing error: " + err.Error())
		}
		record.Date = entity.DateFromDB(date)
		record.SubjectAttendance = make([]entity.PeriodEntry, 0, entity.PeriodsPerDay)
		if len(payload) > 0 {
			if err = sonic.Unmarshal(payload, &record.SubjectAttendance); err != nil {
				return nil, errors.New("decoding entries error: " + err.Error())
			}
		}
		result = append(result, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected record rows error: " + err.Error())
	}
	return result, nil
}
