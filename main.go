package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/railgoteam/railroad-api/config"
	"github.com/railgoteam/railroad-api/internal/handler"
	"github.com/railgoteam/railroad-api/internal/middleware"
	"github.com/railgoteam/railroad-api/internal/password"
	"github.com/railgoteam/railroad-api/internal/repository"
	"github.com/railgoteam/railroad-api/internal/service"
	"github.com/railgoteam/railroad-api/internal/validation"
	"github.com/railgoteam/railroad-api/pkg/database"
	"github.com/railgoteam/railroad-api/pkg/logging"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	stationRepo := repository.NewStationRepository(db)
	trainRepo := repository.NewTrainRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	hasher := password.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry())
	userSvc := service.NewUserService(userRepo, hasher, tokens)
	stationSvc := service.NewStationService(stationRepo, trainRepo)
	trainSvc := service.NewTrainService(trainRepo, stationRepo)
	bookingSvc := service.NewBookingService(bookingRepo, trainRepo, userRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "railroad-api"})
	})

	handler.NewUserHandler(userSvc).RegisterRoutes(e, tokens)
	handler.NewStationHandler(stationSvc).RegisterRoutes(e, tokens)
	handler.NewTrainHandler(trainSvc).RegisterRoutes(e, tokens)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, tokens)

	logger.Info("railroad api starting", zap.String("port", cfg.ServerPort))
	if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
