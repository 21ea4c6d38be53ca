package main

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/attendance/internal/api"
	"github.com/limbo/attendance/internal/repository"
	"github.com/limbo/attendance/internal/service"
	"github.com/limbo/attendance/pkg/cleanup"
	"github.com/limbo/attendance/pkg/config"
	"github.com/limbo/attendance/pkg/identity"
	jwtservice "github.com/limbo/attendance/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	recordsRepo := repository.NewAttendanceRepoWithConn(pool)

	healthChecks := []api.HealthCheck{{Name: "postgres", Check: pool.Ping}}
	var cache repository.LeaderboardCacheI = repository.NopLeaderboardCache{}
	if addr := cfg.GetString("REDIS_ADDR"); addr != "" {
		redisCache := repository.NewLeaderboardCache(&repository.RedisCfg{
			Address: addr,
			TTL:     cfg.GetDuration("LEADERBOARD_CACHE_TTL", time.Minute),
		})
		cache = redisCache
		healthChecks = append(healthChecks, api.HealthCheck{Name: "redis", Check: redisCache.Ping})
	} else {
		slog.Warn("REDIS_ADDR is empty, leaderboard is computed on every request")
	}

	offDay := cfg.GetWeekday("OFF_DAY", time.Sunday)
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	serv := api.New(&api.ServicesList{
		UserService: service.NewUserService(usersRepo, cache, offDay),
		AttendanceService: service.NewAttendanceService(usersRepo, recordsRepo, cache, service.AttendanceOpts{
			Location: cfg.GetLocation("APP_TIMEZONE"),
			OffDay:   offDay,
		}),
		LeaderboardService: service.NewLeaderboardService(usersRepo, recordsRepo, cache, cfg.GetInt("LEADERBOARD_CONCURRENCY", 8)),
		JwtService:         jwtservice.New(secret, cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		IdentityVerifier:   identityVerifier(cfg),
		HealthChecks:       healthChecks,
		CORSOrigin:         cfg.GetString("CORS_ORIGIN"),
		SecureCookies:      cfg.GetBool("SECURE_COOKIES", false),
	})
	if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func identityVerifier(cfg *config.Config) api.IdentityVerifierI {
	switch mode := strings.ToLower(cfg.GetStringOr("IDENTITY_MODE", "google")); mode {
	case "insecure":
		slog.Warn("identity tokens are decoded without verification")
		return identity.InsecureDecoder{}
	case "google":
		clientID := cfg.GetString("GOOGLE_CLIENT_ID")
		if clientID == "" {
			log.Fatal("GOOGLE_CLIENT_ID is required in google identity mode")
		}
		return identity.NewGoogleVerifier(clientID)
	default:
		log.Fatal("unknown IDENTITY_MODE: " + mode)
		return nil
	}
}
