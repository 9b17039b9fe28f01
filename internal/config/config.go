package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Sync backends
const (
	SyncBackendNone     = "none"
	SyncBackendPostgres = "postgres"
	SyncBackendRedis    = "redis"
	SyncBackendS3       = "s3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Auth    AuthConfig    `toml:"auth"`
	Booking BookingConfig `toml:"booking"`
	Storage StorageConfig `toml:"storage"`
	Sync    SyncConfig    `toml:"sync"`
	TextGen TextGenConfig `toml:"textgen"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level       string `toml:"level"`
	File        string `toml:"file"`
	Environment string `toml:"environment"` // development - консольный вывод, иначе JSON
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	// Пароль администратора. Пустой - API открыт без авторизации
	AdminPassword string `toml:"admin_password"`
	TokenSecret   string `toml:"token_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

type BookingConfig struct {
	// Запрещать назначать номер на обслуживании при создании/редактировании брони
	BlockMaintenanceRooms bool `toml:"block_maintenance_rooms"`
	// Количество номеров для расчета загрузки на дашборде
	CapacityRooms int `toml:"capacity_rooms"`
}

type StorageConfig struct {
	SnapshotFile            string `toml:"snapshot_file"`
	AutosaveIntervalSeconds int    `toml:"autosave_interval_seconds"`
}

type SyncConfig struct {
	Backend  string             `toml:"backend"`
	Timeout  int                `toml:"timeout"` // секунды
	Postgres PostgresSyncConfig `toml:"postgres"`
	Redis    RedisSyncConfig    `toml:"redis"`
	S3       S3SyncConfig       `toml:"s3"`
}

type PostgresSyncConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Table           string `toml:"table"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c PostgresSyncConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisSyncConfig struct {
	URL       string `toml:"url"`
	KeyPrefix string `toml:"key_prefix"`
}

type S3SyncConfig struct {
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region"`
	Bucket    string `toml:"bucket"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Prefix    string `toml:"prefix"`
}

type TextGenConfig struct {
	Enabled     bool    `toml:"enabled"`
	URL         string  `toml:"url"`
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	Timeout     int     `toml:"timeout"` // секунды
}

// Load читает TOML конфигурацию. Перед разбором подгружает .env (если есть)
// и подставляет переменные окружения вида ${VAR} в текст файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, заполняет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level:       "info",
			Environment: "production",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "pet-hotel-service",
		},
		Auth: AuthConfig{
			TokenTTLHours: 12,
		},
		Booking: BookingConfig{
			CapacityRooms: 15,
		},
		Storage: StorageConfig{
			SnapshotFile:            "data/pethotel.json",
			AutosaveIntervalSeconds: 30,
		},
		Sync: SyncConfig{
			Backend: SyncBackendNone,
			Timeout: 10,
			Postgres: PostgresSyncConfig{
				Port:         5432,
				SSLMode:      "disable",
				Table:        "settings",
				MaxOpenConns: 5,
				MaxIdleConns: 2,
			},
			Redis: RedisSyncConfig{
				KeyPrefix: "pethotel:sync:",
			},
			S3: S3SyncConfig{
				Region: "us-east-1",
				Prefix: "pethotel/",
			},
		},
		TextGen: TextGenConfig{
			URL:         "https://generativelanguage.googleapis.com/v1beta",
			Model:       "gemini-3-flash-preview",
			Temperature: 0.7,
			Timeout:     20,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Storage.AutosaveIntervalSeconds < 0 {
		return fmt.Errorf("%w: storage.autosave_interval_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Booking.CapacityRooms <= 0 {
		return fmt.Errorf("%w: booking.capacity_rooms must be positive", ErrInvalidConfig)
	}

	switch c.Sync.Backend {
	case SyncBackendNone, "":
		c.Sync.Backend = SyncBackendNone
	case SyncBackendPostgres:
		if c.Sync.Postgres.Host == "" || c.Sync.Postgres.DBName == "" {
			return fmt.Errorf("%w: sync.postgres host and dbname are required", ErrInvalidConfig)
		}
	case SyncBackendRedis:
		if c.Sync.Redis.URL == "" {
			return fmt.Errorf("%w: sync.redis.url is required", ErrInvalidConfig)
		}
	case SyncBackendS3:
		if c.Sync.S3.Bucket == "" {
			return fmt.Errorf("%w: sync.s3.bucket is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown sync.backend %q", ErrInvalidConfig, c.Sync.Backend)
	}

	if c.Auth.AdminPassword != "" && c.Auth.TokenSecret == "" {
		return fmt.Errorf("%w: auth.token_secret is required when admin_password is set", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}

	if c.TextGen.Enabled && c.TextGen.APIKey == "" {
		return fmt.Errorf("%w: textgen.api_key is required when textgen is enabled", ErrInvalidConfig)
	}

	return nil
}
