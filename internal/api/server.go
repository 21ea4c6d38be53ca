package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/attendance/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// HealthCheck reports a dependency as unhealthy by returning an error.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	attendanceService  service.AttendanceServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	identityVerifier   IdentityVerifierI
	healthChecks       []HealthCheck
	corsOrigin         string
	secureCookies      bool
}

type ServicesList struct {
	UserService        service.UserServiceI
	AttendanceService  service.AttendanceServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
	IdentityVerifier   IdentityVerifierI
	HealthChecks       []HealthCheck
	// Allowed origin for browser requests. Empty reflects the request origin
	CORSOrigin    string
	SecureCookies bool
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		attendanceService:  servicesOptions.AttendanceService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		identityVerifier:   servicesOptions.IdentityVerifier,
		healthChecks:       servicesOptions.HealthChecks,
		corsOrigin:         servicesOptions.CORSOrigin,
		secureCookies:      servicesOptions.SecureCookies,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.CORSMiddleware, s.MetricsMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Get("/", s.Root)
		r.Post("/auth/session", s.CreateSession)
		r.Post("/auth/logout", s.Logout)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/auth/user", s.CurrentUser)
			r.Post("/user/setup", s.Setup)
			r.Get("/attendance/status", s.AttendanceStatus)
			r.Post("/attendance/enter", s.EnterAttendance)
			r.Get("/attendance/today-schedule", s.TodaySchedule)
			r.Get("/attendance/records", s.AttendanceRecords)
			r.Get("/attendance/subject/{name}", s.SubjectAttendance)
			r.Get("/leaderboard", s.Leaderboard)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts the server down gracefully.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
