package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/DevBaweja/dating-app-backend/internal/config"
	"github.com/DevBaweja/dating-app-backend/internal/datastore/postgres"
	redisClient "github.com/DevBaweja/dating-app-backend/internal/datastore/redis"
	"github.com/DevBaweja/dating-app-backend/internal/email"
	matchRepo "github.com/DevBaweja/dating-app-backend/internal/repository/match"
	profileRepo "github.com/DevBaweja/dating-app-backend/internal/repository/profile"
	userRepo "github.com/DevBaweja/dating-app-backend/internal/repository/user"
	routesV1 "github.com/DevBaweja/dating-app-backend/internal/routes/v1"
	authUseCase "github.com/DevBaweja/dating-app-backend/internal/usecase/auth"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/match"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/profile"
	"github.com/DevBaweja/dating-app-backend/pkg/jwt"
	"github.com/DevBaweja/dating-app-backend/pkg/validator"
	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
	log        *logrus.Logger
}

func NewServer(ctx context.Context, w io.Writer, cfg config.IConfig) (*Server, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(w)

	jwt.Init(cfg.Get("JWT_SECRET"))

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	redisConn, err := redisClient.Connect(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	users := userRepo.New(database)
	profiles := profileRepo.New(database)
	matches := matchRepo.NewMatchRepo(database, redisConn, log)

	var mailer email.Sender = email.NoopSender{}
	if key := cfg.Get("SENDGRID_API_KEY"); key != "" {
		mailer = email.NewSendGridSender(key, cfg.Get("EMAIL_FROM"), log)
	} else {
		log.Warn("SENDGRID_API_KEY not set, password reset emails disabled")
	}

	authCase := authUseCase.New(users, mailer, cfg.Get("FRONTEND_URL"), log)
	matchCase := match.NewMatchUseCase(matches, profiles)
	profileCase := profile.NewProfileUseCase(profiles, users, matches, log)

	e := echo.New()
	e.Validator = validator.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database: database,
		log:      log,
	}

	server.RegisterRoutes(e, authCase, profileCase, matchCase, users)
	return server, nil
}

func (s *Server) RegisterRoutes(
	e *echo.Echo,
	authCase authUseCase.IAuthUseCase,
	profileCase profile.IProfileUseCase,
	matchCase match.IMatchUseCase,
	users userRepo.IUserRepo,
) {
	e.GET("/healthz", s.handleHealthCheck)
	e.GET("/health", s.handleHealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	routesV1.InitV1Routes(e, authCase, profileCase, matchCase, users)
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
