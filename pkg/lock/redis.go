package lock

import (
	"context"
	"time"

	"github.com/Astemirdum/bike-rental/pkg/circuit_breaker"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

const keyPrefix = "lock:"

// deletes the key only while it still carries our token
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

type redisLocker struct {
	client *redis.Client
	cb     circuit_breaker.CircuitBreaker
	cfg    Config
	log    *zap.Logger
}

func NewRedis(client *redis.Client, cb circuit_breaker.CircuitBreaker, cfg Config, log *zap.Logger) Locker {
	return &redisLocker{
		client: client,
		cb:     cb,
		cfg:    cfg,
		log:    log.Named("lock"),
	}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = keyPrefix + key
	token := uuid.NewString()

	for {
		var acquired bool
		err := l.cb.Call(func() error {
			var err error
			acquired, err = l.client.SetNX(ctx, key, token, l.cfg.TTL).Result()
			return err
		})
		if err != nil {
			return nil, errors.Wrap(err, "redis lock")
		}
		if acquired {
			break
		}

		t := time.NewTimer(l.cfg.RetryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := unlockScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn("unlock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
