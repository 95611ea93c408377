package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enoki-admin/core/cache"
	"enoki-admin/core/config"
	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/middleware"
	"enoki-admin/core/worker"
	"enoki-admin/modules/account"
	"enoki-admin/modules/course"
	"enoki-admin/modules/department"
	"enoki-admin/modules/kiosk"
	"enoki-admin/modules/notification"
	"enoki-admin/modules/rfid"
	"enoki-admin/modules/schedule"
	"enoki-admin/modules/student"
	"enoki-admin/modules/teacher"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires config, storage, the background worker, and every module, then
// serves until interrupted.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	rdb, err := cache.Init(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	mw := middleware.New(cfg)
	w := worker.New(cfg.Redis)

	// Module wiring. The schedule engine is shared with the teacher module
	// so saves run the same validation as the dry-run endpoint.
	engine := schedule.Init(e, cfg, mw)
	teacher.Init(e, &db, engine, mw)
	student.Init(e, &db, mw)
	department.Init(e, &db, mw)
	course.Init(e, &db, mw)
	account.Init(e, &db, cfg, mw)

	notificationSvc := notification.Init(e.Group("/api/v1/private"), &db, mw)
	kiosk.Init(e, &db, rdb, w, notificationSvc, mw)
	bridge := rfid.Init(e, cfg, rdb, mw)

	w.Start()

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down...")
		bridge.Close()
		w.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "address", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
