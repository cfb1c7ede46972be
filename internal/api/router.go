package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/songcontest/contest-api/docs"
	"github.com/songcontest/contest-api/internal/api/handler"
	"github.com/songcontest/contest-api/internal/api/middleware"
	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

// Services are the use cases the HTTP layer exposes.
type Services struct {
	Auth         ports.AuthService
	Votes        ports.VoteService
	Accounts     ports.AccountService
	Countries    ports.CountryService
	Competitions ports.CompetitionService
	Participants ports.ParticipantService
	Health       map[string]handler.DependencyCheck
}

// Options configure the router. Nil Registerer/Gatherer use the Prometheus defaults.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
	Logger      zerolog.Logger
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.TokenHeader,
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "contest_http",
		Registerer: opts.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Votes, svc.Accounts)
	voteHandler := handler.NewVoteHandler(svc.Votes)
	countryHandler := handler.NewCountryHandler(svc.Countries)
	competitionHandler := handler.NewCompetitionHandler(svc.Competitions)
	participantHandler := handler.NewParticipantHandler(svc.Participants)
	healthHandler := handler.NewHealthHandler(svc.Health)

	auth := middleware.Auth(opts.JWTSecret)
	can := func(r domain.Resource, a domain.Action) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{auth, middleware.Authorize(svc.Auth, r, a)}
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Api Running...")
	})

	// --- Operational ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Users & auth ---
	api.POST("/users", authHandler.Register)
	api.GET("/users/votes", userHandler.Votes, can(domain.ResourceVote, domain.ActionRead)...)
	api.DELETE("/users", userHandler.Delete, can(domain.ResourceAccount, domain.ActionDelete)...)
	api.POST("/auth", authHandler.Login)
	api.GET("/auth", authHandler.Me, can(domain.ResourceAccount, domain.ActionRead)...)

	// --- Countries ---
	countries := api.Group("/countries")
	countries.GET("", countryHandler.List)
	countries.GET("/:id", countryHandler.Get)
	countries.POST("", countryHandler.Create, can(domain.ResourceCountry, domain.ActionCreate)...)
	countries.PUT("/:id", countryHandler.Update, can(domain.ResourceCountry, domain.ActionUpdate)...)
	countries.DELETE("/:id", countryHandler.Delete, can(domain.ResourceCountry, domain.ActionDelete)...)

	// --- Competitions ---
	competitions := api.Group("/competitions")
	competitions.GET("", competitionHandler.List)
	competitions.GET("/:id", competitionHandler.Get)
	competitions.POST("", competitionHandler.Create, can(domain.ResourceCompetition, domain.ActionCreate)...)
	competitions.PUT("/:id", competitionHandler.Update, can(domain.ResourceCompetition, domain.ActionUpdate)...)
	competitions.DELETE("/:id", competitionHandler.Delete, can(domain.ResourceCompetition, domain.ActionDelete)...)

	// --- Participants & votes ---
	participants := api.Group("/participants")
	participants.GET("", participantHandler.List)
	participants.GET("/year/:year", participantHandler.ListByYear)
	participants.GET("/:id", participantHandler.Get)
	participants.POST("", participantHandler.Create, can(domain.ResourceParticipant, domain.ActionCreate)...)
	participants.PUT("/:id", participantHandler.Update, can(domain.ResourceParticipant, domain.ActionUpdate)...)
	participants.DELETE("/:id", participantHandler.Delete, can(domain.ResourceParticipant, domain.ActionDelete)...)

	participants.POST("/vote/:id/:vote", voteHandler.CastFromPath, can(domain.ResourceVote, domain.ActionCreate)...)
	participants.POST("/vote/:id", voteHandler.CastFromBody, can(domain.ResourceVote, domain.ActionCreate)...)
	participants.GET("/:id/votes", voteHandler.Tally, can(domain.ResourceVote, domain.ActionRead)...)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
