package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"robot-npa-dashboard/config"
	"robot-npa-dashboard/internal/repository/static"
	"robot-npa-dashboard/internal/service/charts"
	"robot-npa-dashboard/internal/service/formatter"
	"robot-npa-dashboard/internal/service/report"
	"robot-npa-dashboard/internal/transport/api"
	"robot-npa-dashboard/internal/transport/middleware"
	"robot-npa-dashboard/internal/transport/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить веб-дашборд",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogger(cfg)

			e, err := newServer(cfg)
			if err != nil {
				return err
			}
			return run(cmd.Context(), e, cfg)
		},
	}
}

// newServer собирает echo со всеми маршрутами
func newServer(cfg *config.Config) (*echo.Echo, error) {
	// Инициализируем сервисы
	reports := report.NewService(static.NewSource(nil), nil, cfg.DefaultPeriodDays)
	renderer := charts.NewRenderer(cfg.ChartWidth, cfg.ChartHeight)
	summaries, err := formatter.NewSummaryFormatter()
	if err != nil {
		return nil, err
	}

	// Создаем Echo сервер
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recovery())
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.CORS())

	// API и служебные маршруты
	api.SetupRoutes(e, api.NewReportAPI(reports, summaries))

	// Веб-интерфейс
	web.SetupRoutes(e, web.NewHandler(reports, renderer))

	return e, nil
}

// run запускает сервер и останавливает его по сигналу
func run(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting dashboard server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error().Err(err).Msg("server stopped")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
