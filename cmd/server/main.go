package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"volunteer-hub/internal/config"
	apphttp "volunteer-hub/internal/http"
	"volunteer-hub/internal/repository/sqlite"
	"volunteer-hub/internal/service"
	"volunteer-hub/internal/session"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	version, err := sqlite.Migrate(db, cfg.Seed.Reset)
	if err != nil {
		logger.Fatalf("migrate database: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"path":    cfg.Database.Path,
		"version": version,
		"reset":   cfg.Seed.Reset,
	}).Info("database ready")

	store := sqlite.NewStore(db)

	report, err := service.Seed(ctx, store, service.AdminAccount{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	})
	if err != nil {
		logger.Fatalf("seed database: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"admin":         cfg.Seed.AdminEmail,
		"admin_created": report.AdminCreated,
		"activities":    report.ActivitiesCreated,
	}).Info("seed complete")

	if strings.TrimSpace(cfg.Auth.SessionSecret) == "" {
		logger.Warn("no session secret configured, sessions will not survive a restart")
	}
	sessions, err := session.NewManager(session.Options{
		Secret: []byte(cfg.Auth.SessionSecret),
		TTL:    time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		Secure: cfg.Auth.SecureCookies,
	})
	if err != nil {
		logger.Fatalf("setup sessions: %v", err)
	}

	userService := service.NewUserService(store)
	activityService := service.NewActivityService(store)
	registrationService := service.NewRegistrationService(store)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler, err := apphttp.NewHandler(userService, activityService, registrationService, sessions, logger)
	if err != nil {
		logger.Fatalf("setup handler: %v", err)
	}
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
