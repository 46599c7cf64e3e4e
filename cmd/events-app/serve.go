package main

import (
	"context"
	"errors"
	"events-app-backend/cmd/events-app/apis"
	"events-app-backend/cmd/events-app/holiday"
	"events-app-backend/cmd/events-app/logging"
	"events-app-backend/cmd/events-app/metrics"
	"events-app-backend/cmd/events-app/repository"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := openDB(cfg, logger)
		if err != nil {
			return err
		}

		err = repository.Migrate(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		if cfg.APIKey == "" {
			logger.Warn().Msg("API_KEY is not set; /holidays will fail")
		}

		holidayClient := holiday.NewClient(
			cfg.HolidayBaseURL,
			cfg.APIKey,
			holiday.WithCountry(cfg.HolidayCountry),
		)

		e := newServer(cfg, db, holidayClient, logger)

		go func() {
			logger.Info().Int("port", cfg.Port).Msg("starting events-app")
			err := e.Start(fmt.Sprintf(":%d", cfg.Port))
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("http server error")
			}
		}()

		shutdown(e, logger)
		return nil
	},
}

func newServer(cfg EnvCfg, db *gorm.DB, holidayClient apis.IHolidayClient, logger zerolog.Logger) *echo.Echo {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.Recover(),
		metrics.Middleware(),
		logging.RequestLogger(logger),
	)

	rootg := e.Group("")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	apis.
		NewHomeAPI().
		Setup(rootg)

	eventRepo := repository.NewEventRepo(db)
	guestRepo := repository.NewGuestRepo(db)

	apis.
		NewEventAPI(eventRepo).
		Setup(rootg)

	apis.
		NewGuestAPI(guestRepo, eventRepo, logger, cfg.Debug).
		Setup(rootg)

	apis.
		NewHolidayAPI(holidayClient, logger).
		Setup(rootg)

	rootg.GET("/metrics", metrics.Handler())

	return e
}

func shutdown(e *echo.Echo, logger zerolog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
