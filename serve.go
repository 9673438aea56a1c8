package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"catalog_api/internal/api"
	"catalog_api/internal/middleware"
	"catalog_api/internal/repository"
	"catalog_api/internal/service"
	"catalog_api/internal/storage"
	"catalog_api/pkg/config"
	"catalog_api/pkg/logger"
)

func runServe(cmd *cobra.Command, args []string) error {
	// 載入應用程式配置
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if address != "" {
		cfg.Server.Address = address
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	// 初始化資料庫連線池
	db, err := storage.Open(cfg.DB, log)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		return err
	}
	// 確保在程序結束時關閉連線池
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 資料庫暫時無法連線時照樣啟動，由各個請求回報錯誤
	if err := db.Ping(ctx); err != nil {
		log.Warn("database is not reachable yet", "driver", cfg.DB.Driver, "host", cfg.DB.Host, "error", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg.Echo)

	handler, err := newHandler(cfg, services, db, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting catalog api",
		"address", cfg.Server.Address,
		"db_driver", cfg.DB.Driver,
		"pool_size", cfg.DB.PoolSize,
		"echo_url", cfg.Echo.URL,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}

	stats := db.Stats()
	log.Info("server stopped gracefully",
		"pool_wait_count", stats.WaitCount,
		"pool_wait_duration", stats.WaitDuration,
	)
	return nil
}

// newHandler 建立 gin 路由並包上 CORS
func newHandler(cfg *config.Config, services *service.Services, db *storage.Database, log *slog.Logger) (http.Handler, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())

	if err := api.SetupRoutes(r, services, api.Options{
		Welcome: cfg.Welcome,
		DB:      db,
		Logger:  log,
	}); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})(r), nil
}
