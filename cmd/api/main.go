package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"service_documents/internal/adapter/http/routes"
	"service_documents/internal/config"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Documents API
// @version         1.0
// @description     Quotes, work orders and completion reports stored on service records.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitOTel(ctx, cfg.OTel, log)

	app, err := buildApp(ctx, *cfg, log)
	if err != nil {
		log.Fatal("failed to wire application", "error", err)
	}
	defer app.close()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: routes.NewRouter(*cfg, app.handlers, log),
	}

	go func() {
		log.Info("http server listening", "addr", srv.Addr, "store", cfg.Store.Driver, "uploads", cfg.Uploads.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("otel shutdown failed", "error", err)
	}
}
