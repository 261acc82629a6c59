package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const minBoardSide = 4

var (
	ErrBoardTooSmall     = errors.New("board must be at least 4x4")
	ErrInvalidLineLimit  = errors.New("tcp max-line-bytes must be positive")
	ErrInvalidPortConfig = errors.New("port must not be empty")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	TCPPort    string `yaml:"tcp-port" env:"TCP_PORT" env-default:"7878"`
	TCP        TCP    `yaml:"tcp"`
	Board      Board  `yaml:"board"`
	Redis      Redis  `yaml:"redis"`
}

type TCP struct {
	IdleTimeout  time.Duration `yaml:"idle-timeout" env:"TCP_IDLE_TIMEOUT" env-default:"5m"`
	MaxLineBytes int           `yaml:"max-line-bytes" env:"TCP_MAX_LINE_BYTES" env-default:"4096"`
}

type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"10"`
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"10"`
}

type Redis struct {
	Disabled   bool          `yaml:"disabled" env:"REDIS_DISABLED"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"30m"`
}

// MustLoad - load all configurations from the yml file at path, env variables take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads and validates the configuration.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.HTTPPort == "" || that.SocketPort == "" || that.TCPPort == "" {
		return ErrInvalidPortConfig
	}

	if that.Board.Width < minBoardSide || that.Board.Height < minBoardSide {
		return fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, that.Board.Width, that.Board.Height)
	}

	if that.TCP.MaxLineBytes <= 0 {
		return ErrInvalidLineLimit
	}

	return nil
}

func (that *Board) Size() entity.Size {
	return entity.Size{Width: that.Width, Height: that.Height}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
