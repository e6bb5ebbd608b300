package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bike-rental/pkg/circuit_breaker"
	"github.com/Astemirdum/bike-rental/pkg/kafka"
	"github.com/Astemirdum/bike-rental/pkg/lock"
	"github.com/Astemirdum/bike-rental/pkg/logger"
	"github.com/Astemirdum/bike-rental/pkg/postgres"
	"github.com/Astemirdum/bike-rental/reservation/config"
	"github.com/Astemirdum/bike-rental/reservation/internal/handler"
	"github.com/Astemirdum/bike-rental/reservation/internal/repository"
	"github.com/Astemirdum/bike-rental/reservation/internal/server"
	"github.com/Astemirdum/bike-rental/reservation/internal/service"
	"github.com/Astemirdum/bike-rental/reservation/migrations"
)

const (
	cbRecordLength     = 10
	cbTimeout          = 5 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "reservation")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}

	locker, closeLocker := newLocker(cfg, log)
	defer closeLocker()

	svc := service.NewService(repo, locker, log)

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka producer")
		}
	} else {
		log.Info("kafka disabled, rental events are not published")
	}

	h := handler.New(svc, handler.NewEventLog(producer, kafka.RentalsTopic), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	if producer != nil {
		g.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("kafka produce", zap.Error(perr))
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if producer != nil {
			producer.AsyncClose()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// newLocker picks the redis lock when redis is configured; a single instance
// can run on the in-process lock alone.
func newLocker(cfg *config.Config, log *zap.Logger) (lock.Locker, func()) {
	if !cfg.Redis.Enabled() {
		return lock.NewMemory(), func() {}
	}
	client := lock.NewRedisClient(cfg.Redis)
	cb := circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests)
	return lock.NewRedis(client, cb, cfg.Lock, log), func() {
		if err := client.Close(); err != nil {
			log.Warn("redis close", zap.Error(err))
		}
	}
}
