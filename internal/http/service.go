package http

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvergaraz/puntoventa/internal/config"
	"github.com/mvergaraz/puntoventa/internal/http/metric"
	"github.com/mvergaraz/puntoventa/internal/http/middleware"
	"github.com/mvergaraz/puntoventa/internal/service"
	"github.com/mvergaraz/puntoventa/pkg/validator"
)

type messageResponse struct {
	Message string `json:"mensaje"`
}

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metric.Metrics
	res      *responder

	productSvc  service.ProductService
	customerSvc service.CustomerService
	saleSvc     service.SaleService
	reportSvc   service.ReportService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
	customerSvc service.CustomerService,
	saleSvc service.SaleService,
	reportSvc service.ReportService,
) *Service {
	logger := log.With(slog.String("service", "http"))
	registry := prometheus.NewRegistry()

	return &Service{
		cfg:         cfg,
		logger:      logger,
		registry:    registry,
		metrics:     metric.New(registry),
		res:         newResponder(logger, validator.NewDefaultValidator()),
		productSvc:  productSvc,
		customerSvc: customerSvc,
		saleSvc:     saleSvc,
		reportSvc:   reportSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	newProductHandler(s.productSvc, s.res).Register(r)
	newCustomerHandler(s.customerSvc, s.res).Register(r)
	newSaleHandler(s.saleSvc, s.res).Register(r)
	newReportHandler(s.reportSvc, s.res).Register(r)

	r.Get("/", s.root)
	r.Get("/health", s.health)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) root(w http.ResponseWriter, r *http.Request) {
	s.res.JSON(w, r, http.StatusOK, map[string]any{
		"mensaje": "Sistema de Punto de Venta API",
		"endpoints": map[string]string{
			"productos": "/productos",
			"clientes":  "/clientes",
			"ventas":    "/ventas",
			"reportes":  "/reportes",
		},
	})
}

func (s *Service) health(w http.ResponseWriter, r *http.Request) {
	s.res.JSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API funcionando correctamente",
	})
}
