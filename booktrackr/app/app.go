package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/booktrackr/booktrackr/config"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/events"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/handler"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/repository"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/server"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/store"
	"github.com/Astemirdum/booktrackr/booktrackr/migrations"
	"github.com/Astemirdum/booktrackr/pkg/kafka"
	"github.com/Astemirdum/booktrackr/pkg/logger"
	"github.com/Astemirdum/booktrackr/pkg/postgres"
	"github.com/Astemirdum/booktrackr/pkg/sqlite"
)

const shutdownTimeout = 5 * time.Second

// NewRepository opens the configured slot storage. The returned func releases it.
func NewRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres init: %w", err)
		}
		repo, err := repository.NewRepository(db, log)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("repo: %w", err)
		}
		return repo, db.Close, nil
	default:
		db, err := sqlite.NewSqliteDB(&cfg.Sqlite, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite init: %w", err)
		}
		repo, err := repository.NewSqliteRepository(db, log)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("repo: %w", err)
		}
		return repo, func() { _ = db.Close() }, nil
	}
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (events.Publisher, func()) {
	if !cfg.Enabled() {
		log.Info("kafka is not configured, book events are not published")
		return events.Nop{}, func() {}
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Warn("kafka.NewProducer, book events are not published", zap.Error(err))
		return events.Nop{}, func() {}
	}
	return events.NewKafkaPublisher(producer, log), func() {
		if err := producer.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "booktrackr")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	repo, closeRepo, err := NewRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	pub, closePub := newPublisher(cfg.Kafka, log)
	defer closePub()

	svc := newService(cfg, store.New(repo, log), pub, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)

	var consumer sarama.ConsumerGroup
	if cfg.Kafka.Enabled() {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.ImportConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer: %w", err)
		}
		g.Go(func() error {
			return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.ImportBooks, log), kafka.ImportTopic)
		})
	}

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)

	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.NamedError("cause", context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				log.Error("consumer.Close", zap.Error(err))
			}
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
