package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/pkg/entity"
)

const userColumns = `id, email, name, COALESCE(semester, 0), COALESCE(subjects, '{}'), start_date, end_date, timetable, is_setup_complete, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return NewUsersRepoWithConn(NewPool(cfg))
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (id, email, name) VALUES ($1, $2, $3);`, user.ID, user.Email, user.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) CompleteSetup(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	timetable, err := sonic.Marshal(user.Timetable)
	if err != nil {
		return errors.New("encoding timetable error: " + err.Error())
	}
	ct, err := ur.conn.Exec(ctx,
		`UPDATE users SET semester = $1, subjects = $2, start_date = $3, end_date = $4, timetable = $5, is_setup_complete = TRUE, updated_at = NOW() WHERE id = $6 AND is_setup_complete = FALSE;`,
		user.Semester,
		user.Subjects,
		user.StartDate.Time(),
		user.EndDate.Time(),
		timetable,
		user.ID,
	)
	if err != nil {
		return errors.New("completing setup error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		var complete bool
		err = ur.conn.QueryRow(ctx, `SELECT is_setup_complete FROM users WHERE id = $1;`, user.ID).Scan(&complete)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("inspecting setup state error: " + err.Error())
		}
		return errorvalues.ErrSetupCompleted
	}
	return nil
}

func (ur *UsersRepository) ListSetupComplete(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM users WHERE is_setup_complete = TRUE ORDER BY created_at, id;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.User, 0, 8)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.New("user row parsing error: " + err.Error())
		}
		result = append(result, user)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user rows error: " + err.Error())
	}
	return result, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user       entity.User
		semester   int32
		start, end *time.Time
		timetable  []byte
	)
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&semester,
		&user.Subjects,
		&start,
		&end,
		&timetable,
		&user.IsSetupComplete,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Semester = int(semester)
	if start != nil {
		user.StartDate = entity.DateFromDB(*start)
	}
	if end != nil {
		user.EndDate = entity.DateFromDB(*end)
	}
	if len(timetable) > 0 {
		if err := sonic.Unmarshal(timetable, &user.Timetable); err != nil {
			return nil, errors.New("decoding timetable error: " + err.Error())
		}
	}
	return &user, nil
}
