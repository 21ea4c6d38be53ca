package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/internal/service"
	"github.com/limbo/attendance/pkg/entity"
	"github.com/limbo/attendance/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type SessionRequest struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Success   bool   `json:"success"`
	IsNewUser bool   `json:"isNewUser"`
	Token     string `json:"token"`
}

type UserView struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	IsSetupComplete bool   `json:"isSetupComplete"`
}

type SetupRequest struct {
	Semester  int              `json:"semester"`
	Subjects  []string         `json:"subjects"`
	StartDate entity.Date      `json:"startDate"`
	EndDate   entity.Date      `json:"endDate"`
	Timetable entity.Timetable `json:"timetable"`
}

type EnterAttendanceRequest struct {
	Date              entity.Date          `json:"date"`
	IsHoliday         bool                 `json:"isHoliday"`
	SubjectAttendance []entity.PeriodEntry `json:"subjectAttendance"`
}

type EnterAttendanceResponse struct {
	Success bool                     `json:"success"`
	Record  *entity.AttendanceRecord `json:"record"`
}

type LeaderboardResponse struct {
	Leaderboard []entity.LeaderboardEntry `json:"leaderboard"`
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "Attendance Tracker API"})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	status := http.StatusOK
	report := map[string]any{"status": "ok"}
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			slog.Error("health check failed", slog.String("check", hc.Name), slog.String("error", err.Error()))
			report[hc.Name] = false
			status = http.StatusServiceUnavailable
			report["status"] = "degraded"
			continue
		}
		report[hc.Name] = true
	}
	httputil.WriteJSONResponse(w, status, report)
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SessionRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Token == "" {
		logger.Error("session error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "identity token is required", nil)
		return
	}
	ident, err := s.identityVerifier.Verify(req.Token)
	if err != nil {
		logger.Error("session error: identity rejected", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid identity token", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, isNew, err := s.userService.Authenticate(ctx, ident)
	if err != nil {
		logger.Error("session error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during authentication", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("session error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.SetSessionCookie(w, SessionCookie, token, s.jwtService.TTL(), s.secureCookies)
	httputil.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		Success:   true,
		IsNewUser: isNew,
		Token:     token,
	})
	logger.Info("session created", slog.String("uid", user.ID.String()))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearSessionCookie(w, SessionCookie, s.secureCookies)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get user error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get user error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"user": UserView{
			ID:              user.ID.String(),
			Email:           user.Email,
			Name:            user.Name,
			IsSetupComplete: user.IsSetupComplete,
		},
	})
}

func (s *Server) Setup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("setup error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("setup error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.userService.CompleteSetup(ctx, uid, &service.SetupRequest{
		Semester:  req.Semester,
		Subjects:  req.Subjects,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Timetable: req.Timetable,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("setup error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid setup", err)
		case errors.Is(err, errorvalues.ErrSetupCompleted):
			logger.Error("setup error: repeated setup")
			httputil.WriteErrorResponse(w, http.StatusConflict, "setup already completed", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("setup error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("setup error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during setup", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("setup completed")
}

func (s *Server) EnterAttendance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("enter attendance error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req EnterAttendanceRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("enter attendance error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	record, err := s.attendanceService.Enter(ctx, uid, &service.EnterAttendanceRequest{
		Date:              req.Date,
		IsHoliday:         req.IsHoliday,
		SubjectAttendance: req.SubjectAttendance,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("enter attendance error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid attendance", err)
		case errors.Is(err, errorvalues.ErrAttendanceDateNotAllowed):
			logger.Error("enter attendance error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "attendance can't be entered for a future date", nil)
		case errors.Is(err, errorvalues.ErrSetupIncomplete):
			logger.Error("enter attendance error: setup incomplete")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "complete setup first", nil)
		case errors.Is(err, errorvalues.ErrAttendanceExists):
			logger.Error("enter attendance error: repeated date")
			httputil.WriteErrorResponse(w, http.StatusConflict, "Attendance already entered for this date", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("enter attendance error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("enter attendance error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while entering attendance", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, EnterAttendanceResponse{Success: true, Record: record})
	logger.Info("attendance entered", slog.String("date", record.Date.String()))
}

func (s *Server) AttendanceStatus(w http.ResponseWriter, r *http.Request) {
	s.readAttendance(w, r, "status", func(ctx context.Context, uid uuid.UUID) (any, error) {
		return s.attendanceService.Status(ctx, uid)
	})
}

func (s *Server) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	s.readAttendance(w, r, "today schedule", func(ctx context.Context, uid uuid.UUID) (any, error) {
		return s.attendanceService.TodaySchedule(ctx, uid)
	})
}

func (s *Server) AttendanceRecords(w http.ResponseWriter, r *http.Request) {
	s.readAttendance(w, r, "records", func(ctx context.Context, uid uuid.UUID) (any, error) {
		return s.attendanceService.Records(ctx, uid)
	})
}

func (s *Server) SubjectAttendance(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "name")
	// chi routes on RawPath when it is set, leaving the param escaped
	if r.URL.RawPath != "" {
		var err error
		subject, err = url.PathUnescape(subject)
		if err != nil {
			GetLoggerFromCtx(r.Context()).Error("attendance subject error: malformed subject name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "malformed subject name", nil)
			return
		}
	}
	if subject == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "subject name is required", nil)
		return
	}
	s.readAttendance(w, r, "subject", func(ctx context.Context, uid uuid.UUID) (any, error) {
		return s.attendanceService.Subject(ctx, uid, subject)
	})
}

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*3)
	defer cancel()
	entries, err := s.leaderboardService.Leaderboard(ctx)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
	logger.Info("leaderboard provided")
}

// readAttendance runs one of the per-user attendance reads and writes its
// result or the mapped error.
func (s *Server) readAttendance(w http.ResponseWriter, r *http.Request, op string, read func(ctx context.Context, uid uuid.UUID) (any, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("attendance " + op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := read(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("attendance " + op + " error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("attendance "+op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading attendance", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
}
