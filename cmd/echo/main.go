// Command echo 以 HTTP 提供 Keyword Echo Service，供本機開發或非 Lambda 環境部署
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"catalog_api/internal/echo"
	"catalog_api/internal/middleware"
	"catalog_api/pkg/config"
	"catalog_api/pkg/logger"
)

var (
	configPath string
	address    string
	name       string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "echo",
	Short:        "Keyword Echo Service",
	Long:         `Answers GET /say?keyword=<kw> with "<name> says <kw>." as plain text.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&address, "address", ":3001", "Address to listen on")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Directory containing config.yaml")
	rootCmd.Flags().StringVar(&name, "name", "", "Name used in the answer (overrides echo.name)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel, "text")

	if name == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		name = cfg.Echo.Name
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    address,
		Handler: echo.NewRouter(name, middleware.RequestID(), middleware.Logger(log), gin.Recovery()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting keyword echo service", "address", address, "name", name)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("echo service stopped with error", "error", err)
		return err
	}
	return nil
}
