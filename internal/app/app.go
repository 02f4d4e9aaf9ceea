package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/kitchen-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/kitchen-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/kitchen-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure/events"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure/rabbitmq"
	"github.com/DRSN-tech/kitchen-backend/internal/repository/memory"
	"github.com/DRSN-tech/kitchen-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/kitchen-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/clients"
	"github.com/DRSN-tech/kitchen-backend/pkg/closer"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp собирает хранилище сессий, брокер заказов, use case и оба сервера.
// Ресурсы регистрируются в closer в порядке создания и закрываются в обратном.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0),
	}

	sessions, err := a.initSessionRepository()
	if err != nil {
		a.closeOnInitError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	publisher, err := a.initOrderPublisher()
	if err != nil {
		a.closeOnInitError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kitchenUC := usecase.NewKitchenUC(sessions, publisher, logger)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	a.grpcSrv.RegisterServices(kitchenUC)

	r := chi.NewRouter()
	v1Http.NewRouter(r, logger).Init(kitchenUC)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

// Run запускает серверы и блокируется до сигнала или падения одного из них.
func (a *App) Run() error {
	errCh := make(chan error, 2)

	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initSessionRepository() (usecase.SessionRepository, error) {
	if a.cfg.Session.Store != config.SessionStoreRedis {
		a.logger.Infof("session store: memory")
		return memory.NewSessionRepo(a.cfg.Session.TTL), nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, err
	}

	a.logger.Infof("session store: redis at %s, ttl %s", a.cfg.Redis.Addr, a.cfg.Session.TTL)
	return redis.NewSessionRepo(redisClient, redisConv.NewSessionConverter(), a.cfg.Session, a.logger), nil
}

func (a *App) initOrderPublisher() (usecase.OrderPublisher, error) {
	var publisher usecase.OrderPublisher

	switch a.cfg.Broker.Kind {
	case config.BrokerKafka:
		producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
		a.closer.Add("kafka producer", func(context.Context) error {
			return producer.Close()
		})

		if err := producer.EnsureTopic(startupTimeout); err != nil {
			a.logger.Errorf(err, "failed to ensure kafka topic %s", a.cfg.Kafka.Topic)
			return nil, err
		}
		publisher = producer

	case config.BrokerRabbitMQ:
		rmq, err := rabbitmq.NewPublisher(a.cfg.RabbitMQ, a.logger)
		if err != nil {
			a.logger.Errorf(err, "failed to connect to rabbitmq")
			return nil, err
		}
		a.closer.Add("rabbitmq publisher", func(context.Context) error {
			return rmq.Close()
		})
		publisher = rmq

	default:
		a.logger.Warnf("ORDER_BROKER=none: confirmed orders are only logged")
		return events.NewLogPublisher(a.logger), nil
	}

	a.logger.Infof("order broker: %s", a.cfg.Broker.Kind)
	return events.NewRetryingPublisher(publisher, a.logger,
		a.cfg.Broker.MaxRetries, a.cfg.Broker.BaseBackoff, a.cfg.Broker.MaxBackoff), nil
}

func (a *App) closeOnInitError() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Warnf("cleanup after failed start: %v", err)
	}
}
