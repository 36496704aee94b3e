package config

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

const DefaultPageSize = 6

// TimeZone is the viewer time zone used for calendar-day grouping and log timestamps.
var TimeZone = time.UTC

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Store struct {
		LoadDelay time.Duration `env:"STORE_LOAD_DELAY" envDefault:"1s"`
		PageSize  int           `env:"DIRECTORY_PAGE_SIZE" envDefault:"6"`
	}

	Avatar struct {
		BaseURL   string `env:"AVATAR_BASE_URL" envDefault:"https://ui-avatars.com/api/"`
		CacheSize int    `env:"AVATAR_CACHE_SIZE" envDefault:"512"`
	}

	RabbitMq struct {
		Enabled      bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri      string `env:"RABBITMQ_URL"`
		Exchange     string `env:"RABBITMQ_EXCHANGE" envDefault:"booking.events"`
		CommandQueue string `env:"RABBITMQ_COMMAND_QUEUE" envDefault:"booking.commands"`
		CommandBind  string `env:"RABBITMQ_COMMAND_BIND" envDefault:"*.directory-svc.#"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Окружение всегда в нижнем регистре
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if cfg.Store.PageSize < 1 {
		cfg.Store.PageSize = DefaultPageSize
	}

	if cfg.Store.LoadDelay < 0 {
		cfg.Store.LoadDelay = 0
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
		cfg.App.Timezone = loc.String()
	}
	TimeZone = loc

	return cfg, nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
