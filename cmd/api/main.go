package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "ordem_servico/docs"
	"ordem_servico/internal/adapter/http/routes"
	"ordem_servico/internal/infrastructure/config"
	"ordem_servico/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Ordem de Serviço API
// @version         1.0
// @description     Service order listing, filters and create/update forms backed by the Estoque Fácil API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ShopToken
// @in header
// @name X-Shop-Token
// @description Shop token; may also be sent as the token query parameter.

func main() {
	cfg := config.Load()

	_, flush, err := logging.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := routes.NewServer(ctx, cfg)
	if err != nil {
		zap.L().Fatal("[api][main] wiring failed", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil {
			zap.L().Fatal("[api][main] server stopped", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	zap.L().Info("[api][main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("[api][main] shutdown", zap.Error(err))
	}
}
