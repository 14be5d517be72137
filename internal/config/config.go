package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyUserID    = key("user_id")
	KeyRequestID = key("request_id")
)

type Config struct {
	Service struct {
		Name string `env:"SERVICE_NAME" env-default:"social-service"`
		Port string `env:"SERVICE_PORT" env-default:"8080"`
		Env  string `env:"SERVICE_ENV" env-default:"dev"`
	}
	Logger struct {
		Level  string `env:"LOG_LEVEL" env-default:"info"`
		Format string `env:"LOG_FORMAT" env-default:"json"`
	}
	Postgres struct {
		Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
		Port     string `env:"POSTGRES_PORT" env-default:"5432"`
		User     string `env:"POSTGRES_USER" env-default:"postgres"`
		Password string `env:"POSTGRES_PASSWORD" env-required:"true"`
		Database string `env:"POSTGRES_DB" env-default:"social"`
	}
	Auth struct {
		Secret   string        `env:"JWT_SECRET" env-required:"true"`
		TokenTTL time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	}
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
