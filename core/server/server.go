package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"salon-api/core/cache"
	"salon-api/core/config"
	"salon-api/core/constants"
	"salon-api/core/database"
	"salon-api/core/logger"
	"salon-api/modules/auth"
	"salon-api/modules/calendar"
	"salon-api/modules/clients"
	"salon-api/modules/purchases"
	"salon-api/modules/sales"
	"salon-api/modules/settings"
)

// Run loads configuration, opens the backing stores, wires every module and
// serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}

	redisCache := cache.NewRedisCache(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	tokenStore, calendarService, err := calendar.Init(e, cfg, db)
	if err != nil {
		return fmt.Errorf("init calendar module: %w", err)
	}
	auth.Init(e, tokenStore)
	sales.Init(e, db, calendarService)
	clients.Init(e, db)
	purchases.Init(e, db)
	settings.Init(e, db, redisCache)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
