package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда значения конфигурации недопустимы
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Pricing  PricingConfig  `toml:"pricing"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки JWT
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

// RedisConfig настройки кэша результатов поиска.
// Пустой URL отключает кэш.
type RedisConfig struct {
	URL            string `toml:"url"`
	SearchTTLSec   int    `toml:"search_ttl_sec"`
	DialTimeoutSec int    `toml:"dial_timeout_sec"`
}

// Enabled возвращает true, если кэш настроен
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// PricingConfig параметры расчета стоимости
type PricingConfig struct {
	CommissionPercent int64  `toml:"commission_percent"`
	ExtrasPolicy      string `toml:"extras_policy"`
	TermsVersion      string `toml:"terms_version"`
}

// BookingConfig параметры создания бронирований
type BookingConfig struct {
	// RevalidateOnCreate повторно проверяет доступность окна внутри транзакции создания
	RevalidateOnCreate bool `toml:"revalidate_on_create"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "garages",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "garage_service",
		},
		Auth: AuthConfig{
			TokenTTLHours: 7 * 24,
			BcryptCost:    10,
		},
		Redis: RedisConfig{
			SearchTTLSec:   60,
			DialTimeoutSec: 5,
		},
		Pricing: PricingConfig{
			CommissionPercent: domain.DefaultCommissionPercent,
			ExtrasPolicy:      string(domain.ExtrasLenient),
			TermsVersion:      domain.DefaultTermsVersion,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Pricing.CommissionPercent < 0 || c.Pricing.CommissionPercent > 100 {
		return fmt.Errorf("%w: pricing.commission_percent must be in 0..100, got %d", ErrInvalidConfig, c.Pricing.CommissionPercent)
	}
	if !domain.ExtrasPolicy(c.Pricing.ExtrasPolicy).IsValid() {
		return fmt.Errorf("%w: pricing.extras_policy must be lenient or strict, got %q", ErrInvalidConfig, c.Pricing.ExtrasPolicy)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty (set it in config or JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}
	if c.Redis.Enabled() && c.Redis.SearchTTLSec <= 0 {
		return fmt.Errorf("%w: redis.search_ttl_sec must be positive", ErrInvalidConfig)
	}
	return nil
}
