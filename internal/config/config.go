package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeServer   = "server"
	ModeTerminal = "terminal"

	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode         string        `yaml:"mode" env:"MODE" env-default:"server"`
	HTTPPort     string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort   string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	SessionStore string        `yaml:"session-store" env:"SESSION_STORE" env-default:"memory"`
	SessionTTL   time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"1h"`
	Redis        Redis         `yaml:"redis"`
	Players      Players       `yaml:"players"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Players holds the default names used when a client does not send any.
type Players struct {
	XName string `yaml:"x-name" env-default:"Player1"`
	OName string `yaml:"o-name" env-default:"Player2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Mode {
	case ModeServer, ModeTerminal:
	default:
		return fmt.Errorf("unknown mode %q", that.Mode)
	}

	switch that.SessionStore {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown session store %q", that.SessionStore)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
