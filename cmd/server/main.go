package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minglemoody/internal/config"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/handler"
	"github.com/minglemoody/internal/logging"
	"github.com/minglemoody/internal/router"
	"github.com/minglemoody/internal/storage/driver"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "text").Fatalf("failed to load config: %v", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close(db.DB)

	if cfg.AuthEnabled() {
		if err := db.EnsureUser(db.DB, cfg.AdminUserName, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to ensure admin user: %v", err)
		}
	} else {
		log.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, admin panel is unauthenticated")
	}

	backend, err := driver.Open(cfg, db.DB)
	if err != nil {
		log.Fatalf("failed to open content storage: %v", err)
	}
	defer backend.Close()

	store := content.NewStore(backend, log.WithField("component", "content"))
	api := handler.NewAPI(db.DB, store, log, cfg.AuthEnabled())

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, router.Options{
		SessionSecret:      cfg.SessionSecret,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		Logger:             log,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.ListenAddr,
			"storage": cfg.StorageDriver,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	log.Info("server stopped")
}
