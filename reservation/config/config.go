package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/bike-rental/pkg/kafka"
	"github.com/Astemirdum/bike-rental/pkg/lock"
	"github.com/Astemirdum/bike-rental/pkg/logger"
	"github.com/Astemirdum/bike-rental/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RESERVATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RESERVATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer       `yaml:"server"`
	Database postgres.DB      `yaml:"db"`
	Redis    lock.RedisConfig `yaml:"redis"`
	Lock     lock.Config      `yaml:"lock"`
	Kafka    kafka.Config     `yaml:"kafka"`
	Log      logger.Log       `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
