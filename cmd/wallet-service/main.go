package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/internal/container"
	"github.com/oksasatya/go-ddd-wallet/internal/router"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger("wallet-service", cfg.Env)

	// The wallet service has no search index and sends no email.
	c, err := container.Open(context.Background(), cfg, logger, container.Options{Migrations: container.WalletMigrations})
	if err != nil {
		logger.WithError(err).Fatal("startup failed")
	}
	defer c.Close()

	r := router.NewEngine(cfg)
	reg := router.NewRegistry(r)
	router.InitWalletModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("wallet service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
	logger.Info("server exited properly")
}
