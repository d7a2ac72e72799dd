// Package routes wires repositories, usecases, and handlers onto the
// fiber app. Auth and health are public; everything else sits behind
// the JWT middleware.
package routes

import (
	"log"

	"able-match/internal/config"
	"able-match/internal/database"
	"able-match/internal/delivery/http/handler"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/infrastructure/cache"
	"able-match/internal/pkg/jwt"
	"able-match/internal/repository"
	"able-match/internal/usecase"
	"able-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	authMw *middleware.AuthMiddleware

	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	users        *handler.UserHandler
	jobs         *handler.JobHandler
	matches      *handler.MatchHandler
	applications *handler.ApplicationHandler
	socket       *ws.Handler
}

func NewRegistry(d Deps) *Registry {
	userRepo := repository.NewPostgresUserRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	matchRepo := repository.NewPostgresMatchRepository(d.DB)
	appRepo := repository.NewPostgresApplicationRepository(d.DB)
	txRunner := repository.NewPostgresTxRunner(d.DB)

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	var ucCache usecase.Cache
	if d.Cache != nil {
		ucCache = d.Cache
	}
	notifier := ws.NewNotifier(d.Hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, ucCache)
	jobUC := usecase.NewJobUsecase(userRepo, jobRepo)
	appUC := usecase.NewApplicationUsecase(userRepo, jobRepo, appRepo, txRunner, ucCache)
	matchingUC := usecase.NewMatchingUsecase(userRepo, jobRepo)
	generationUC := usecase.NewMatchGenerationUsecase(userRepo, jobRepo, matchRepo, appRepo, ucCache, notifier)
	listUC := usecase.NewMatchListUsecase(matchRepo, jobRepo, appRepo, ucCache, d.Config.Redis.TTL)
	actionUC := usecase.NewMatchActionUsecase(matchRepo, txRunner, ucCache)

	var dbPinger handler.Pinger
	if d.DB != nil {
		dbPinger = d.DB
	}
	var cachePinger handler.Pinger
	if d.Cache != nil {
		cachePinger = d.Cache
	}

	return &Registry{
		authMw:       middleware.NewAuthMiddleware(jwtSvc),
		health:       handler.NewHealthHandler(dbPinger, cachePinger),
		auth:         handler.NewAuthHandler(authUC),
		users:        handler.NewUserHandler(userUC),
		jobs:         handler.NewJobHandler(jobUC, appUC),
		matches:      handler.NewMatchHandler(matchingUC, generationUC, listUC, actionUC),
		applications: handler.NewApplicationHandler(appUC),
		socket:       ws.NewHandler(d.Hub, d.Logger, middleware.UserIDFromCtx),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.authMw.Middleware())
	r.users.RegisterRoutes(protected)
	r.jobs.RegisterRoutes(protected)
	r.matches.RegisterRoutes(protected)
	r.applications.RegisterRoutes(protected)

	protected.Get("/ws/matches", r.socket.HandleMatchesWS)
}
