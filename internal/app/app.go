package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/adcahya/cosmetic-shop/booking-service/config"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/controller"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/infrastructure/mailer"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/infrastructure/storage"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/infrastructure/tracing"
	localmiddleware "github.com/adcahya/cosmetic-shop/booking-service/internal/middleware"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/repository"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/service"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	// the service still runs untraced when the collector is unreachable
	if traceProvider != nil {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()

		tracer := traceProvider.Tracer("booking-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				// span creation and naming
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				// add the context to the request
				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	e.Static("/storage", app.Config.StorageConfig.BaseDir)

	g := e.Group("/api/v1")

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	fileStore := storage.CreateLocalFileStore(app.Config.StorageConfig.BaseDir)
	bookingMailer := mailer.CreateMailer(app.Config.SMTPConfig)

	bookingRepo := repository.CreateBookingRepository(app.DB)
	cosmeticRepo := repository.CreateCosmeticRepository(app.DB)

	bookingSvc := service.CreateBookingService(bookingRepo, cosmeticRepo, fileStore, bookingMailer)
	catalogSvc := service.CreateCatalogService(cosmeticRepo, bookingRepo)

	controller.CreateBookingController(g, bookingSvc)
	controller.CreateCatalogController(g, catalogSvc)
	controller.CreateAdminController(g, bookingSvc, catalogSvc)

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
