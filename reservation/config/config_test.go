package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("RESERVATION_HTTP_PORT", "8070")
	t.Setenv("KAFKA_ADDRS", "kafka:9092,kafka2:9092")
	t.Setenv("LOCK_TTL", "3s")

	c := NewConfig(WithLogLevel(zapcore.WarnLevel), WithWriteTimeout(time.Minute))

	require.Equal(t, "8070", c.Server.Port)
	require.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	require.Equal(t, time.Minute, c.Server.WriteTimeout)
	require.Equal(t, zapcore.WarnLevel, c.Log.LogLevel)
	require.Equal(t, []string{"kafka:9092", "kafka2:9092"}, c.Kafka.Addrs)
	require.True(t, c.Kafka.Enabled())
	require.Equal(t, 3*time.Second, c.Lock.TTL)
	require.False(t, c.Redis.Enabled())

	require.Same(t, c, NewConfig())
}
