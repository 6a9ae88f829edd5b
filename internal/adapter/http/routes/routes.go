package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "ordem_servico/docs"
	"ordem_servico/internal/adapter/http/handlers"
	"ordem_servico/internal/adapter/persistence/repository"
	"ordem_servico/internal/infrastructure/broker"
	"ordem_servico/internal/infrastructure/config"
	"ordem_servico/internal/infrastructure/database"
	"ordem_servico/internal/infrastructure/estoquefacil"
	"ordem_servico/internal/infrastructure/payments"
	"ordem_servico/internal/usecase"
	"ordem_servico/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1. Payments is optional.
type Handlers struct {
	Orders   *handlers.OrderHandler
	Forms    *handlers.OrderFormHandler
	Clients  *handlers.ClientHandler
	Payments *handlers.OrderPaymentHandler
}

// NewRouter mounts every route. Everything but ping requires a shop token.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("", handlers.RequireSession())
	addOrderRoutes(protected, h)
	if h.Payments != nil {
		addPaymentRoutes(protected, h.Payments)
	}
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("[http][router] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// Server is the wired API: the HTTP server plus what must be drained on
// shutdown.
type Server struct {
	HTTP *http.Server

	views     *usecase.OrderViewUseCase
	publisher interface{ Close() error }
}

// NewServer wires the use cases and adapters from cfg. DynamoDB is only
// reached when a journal or payments table is configured, RabbitMQ only when
// a URI is set.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	gateway := estoquefacil.NewClient(cfg.APIBaseURL, cfg.HTTPClientTimeout)

	var (
		journal     interfaces.ISyncJournalRepository
		paymentRepo interfaces.IOrderPaymentRepository
	)
	if cfg.JournalEnabled() || cfg.PaymentsEnabled() {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, err
		}
		if cfg.JournalEnabled() {
			if cfg.DynamoDBEndpoint != "" {
				if err := database.EnsureTable(ctx, ddb, cfg.SyncJournalTable, "order_number"); err != nil {
					return nil, err
				}
			}
			journal = repository.NewSyncJournalDynamoRepository(ddb, cfg.SyncJournalTable)
		}
		if cfg.PaymentsEnabled() {
			if cfg.DynamoDBEndpoint != "" {
				if err := database.EnsureTable(ctx, ddb, cfg.PaymentsTable, "order_number"); err != nil {
					return nil, err
				}
			}
			paymentRepo = repository.NewOrderPaymentDynamoRepository(ddb, cfg.PaymentsTable)
		}
	}

	var publisher interface {
		interfaces.IEventPublisher
		Close() error
	} = broker.NoopPublisher{}
	if cfg.BrokerEnabled() {
		p, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			return nil, err
		}
		publisher = p
	}

	views := usecase.NewOrderViewUseCase(gateway, journal, publisher, cfg.PDFBaseURL, cfg.CommitTimeout)
	forms := usecase.NewOrderFormUseCase(gateway, views, journal, publisher)
	clients := usecase.NewClientUseCase(gateway)

	h := Handlers{
		Orders:  handlers.NewOrderHandler(views),
		Forms:   handlers.NewOrderFormHandler(forms),
		Clients: handlers.NewClientHandler(clients),
	}

	if paymentRepo != nil {
		var paymentGateway interfaces.IPaymentGateway
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			zap.L().Warn("[payment][wiring] Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}
		paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, views, paymentGateway, cfg.PaymentGatewayMock, cfg.SandboxPayerEmail)
		h.Payments = handlers.NewOrderPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock)
	}

	return &Server{
		HTTP: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		},
		views:     views,
		publisher: publisher,
	}, nil
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (s *Server) ListenAndServe() error {
	zap.L().Info("[http][server] listening", zap.String("addr", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for background commits and closes
// the broker connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		s.views.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		zap.L().Warn("[http][server] background commits still running at shutdown")
	}

	return errors.Join(err, s.publisher.Close())
}
