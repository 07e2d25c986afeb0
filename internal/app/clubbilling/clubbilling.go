// Package clubbilling собирает сервис биллинга: хранилище, миграции,
// кеш, очередь событий, бизнес-сервисы и HTTP-сервер.
package clubbilling

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/clubhouse/club-billing/internal/cache"
	"github.com/clubhouse/club-billing/internal/config"
	"github.com/clubhouse/club-billing/internal/events"
	"github.com/clubhouse/club-billing/internal/lib/rabbitmq"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/metrics"
	"github.com/clubhouse/club-billing/internal/migrations"
	billingservice "github.com/clubhouse/club-billing/internal/services/billing"
	recalcservice "github.com/clubhouse/club-billing/internal/services/recalc"
	"github.com/clubhouse/club-billing/internal/storage/repository"
)

// App держит собранный HTTP-сервер и соединения, которые нужно
// закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	rabbit *amqp.Connection
}

// New создает приложение: подключается к Postgres, накатывает миграции,
// инициализирует Redis и RabbitMQ, регистрирует метрики и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.AddressRabbitMQ, cfg.ConnectRetries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetBillingQueues())
	if err != nil {
		return nil, err
	}
	publisher := events.New(ch, logger)

	metrics.Register()

	billingService := billingservice.NewBillingService(db, db, db, cacheRedis, publisher, logger)
	recalcService := recalcservice.NewRecalcService(db, billingService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, billingService, recalcService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		rabbit: conn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.rabbit.Close(); cerr != nil {
			a.logger.Warn("failed to close rabbitmq connection", sl.Err(cerr))
		}
		a.db.DB.Close()
		return err
	}
}
