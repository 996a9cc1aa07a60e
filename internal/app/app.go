package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/payingzee/sellerpanel/internal/config"
	"github.com/payingzee/sellerpanel/internal/panel"
	"github.com/payingzee/sellerpanel/internal/upstream"
	"github.com/payingzee/sellerpanel/pgk/logger"
	"github.com/payingzee/sellerpanel/pgk/session"

	httpController "github.com/payingzee/sellerpanel/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	tokens := session.NewFileStore(cfg.TokenPath)
	api := upstream.New(cfg.SellerAPIURL, tokens, cfg.RequestTimeout)

	orders := panel.NewOrders(api, lg, cfg.PollInterval)
	shell := panel.NewShell(tokens)

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(orders, shell, lg)
	router = httpController.InitRoutes(router, handlers)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orders.Mount(signalCtx)

	lg.Infof("starting panel on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down panel...")

	orders.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("panel shutdown success")
	return nil
}
