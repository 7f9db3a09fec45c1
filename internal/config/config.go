package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// 支持的内容存储驱动。
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string `env:"LISTEN_ADDR"`
	Port               string `env:"PORT" envDefault:"8080"`
	DatabasePath       string `env:"DATABASE_PATH" envDefault:"minglemoody.db"`
	SessionSecret      string `env:"SESSION_SECRET" envDefault:"minglemoody-dev-secret"`
	GinMode            string `env:"GIN_MODE" envDefault:"release"`
	StorageDriver      string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	RedisAddress       string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	AdminUserName      string `env:"ADMIN_USERNAME"`
	AdminPassword      string `env:"ADMIN_PASSWORD"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string `env:"LOG_FORMAT" envDefault:"text"`
	LoginRatePerMinute int    `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}

	cfg.DatabasePath = strings.TrimSpace(cfg.DatabasePath)
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "minglemoody.db"
	}

	cfg.SessionSecret = strings.TrimSpace(cfg.SessionSecret)
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "minglemoody-dev-secret"
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageDriverSQLite
	}

	cfg.GinMode = strings.ToLower(strings.TrimSpace(cfg.GinMode))
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}

	cfg.AdminUserName = strings.TrimSpace(cfg.AdminUserName)
	cfg.AdminPassword = strings.TrimSpace(cfg.AdminPassword)

	if cfg.LoginRatePerMinute <= 0 {
		cfg.LoginRatePerMinute = 10
	}

	return cfg, nil
}

// Validate 检查配置组合是否可用。
func (c AppConfig) Validate() error {
	switch c.StorageDriver {
	case StorageDriverSQLite, StorageDriverMemory:
	case StorageDriverRedis:
		if strings.TrimSpace(c.RedisAddress) == "" {
			return errors.New("redis address cannot be empty when using redis storage")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported gin mode %q", c.GinMode)
	}
	return nil
}

// AuthEnabled 表示是否配置了后台管理员账号。
func (c AppConfig) AuthEnabled() bool {
	return c.AdminUserName != "" && c.AdminPassword != ""
}
