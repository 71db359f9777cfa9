package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/chefdechef/booking-service/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	Email         EmailConfig         `toml:"email"`
	ExchangeRates ExchangeRatesConfig `toml:"exchange_rates"`
	Auth          AuthConfig          `toml:"auth"`
	Events        EventsConfig        `toml:"events"`
	CORS          CORSConfig          `toml:"cors"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	RequestTimeout  int `toml:"request_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-параметры заявок
type BookingConfig struct {
	AvailabilityPolicy string `toml:"availability_policy"`
	TimeZone           string `toml:"time_zone"`
}

// EmailConfig параметры отправки писем через Resend
type EmailConfig struct {
	APIURL     string `toml:"api_url"`
	APIKey     string `toml:"api_key"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
	SiteURL    string `toml:"site_url"`
	Timeout    int    `toml:"timeout"`
}

// ExchangeRatesConfig параметры курсов валют
type ExchangeRatesConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

// AuthConfig параметры проверки сессии администратора
type AuthConfig struct {
	JWTSecret    string   `toml:"jwt_secret"`
	AllowedRoles []string `toml:"allowed_roles"`
	CookieName   string   `toml:"cookie_name"`
}

// EventsConfig параметры публикации доменных событий
type EventsConfig struct {
	Enabled   bool   `toml:"enabled"`
	RabbitURL string `toml:"rabbit_url"`
	Exchange  string `toml:"exchange"`
}

// CORSConfig разрешенные источники
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// secrets значения из окружения, перекрывающие файл конфигурации
type secrets struct {
	DBPassword     string `envconfig:"DB_PASSWORD"`
	ResendAPIKey   string `envconfig:"RESEND_API_KEY"`
	AdminJWTSecret string `envconfig:"ADMIN_JWT_SECRET"`
	RabbitURL      string `envconfig:"RABBIT_URL"`
}

// Load читает TOML, затем .env и переменные окружения, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var s secrets
	if err := envconfig.Process("", &s); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if s.DBPassword != "" {
		c.Database.Password = s.DBPassword
	}
	if s.ResendAPIKey != "" {
		c.Email.APIKey = s.ResendAPIKey
	}
	if s.AdminJWTSecret != "" {
		c.Auth.JWTSecret = s.AdminJWTSecret
	}
	if s.RabbitURL != "" {
		c.Events.RabbitURL = s.RabbitURL
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking_service"
	}

	if c.Booking.AvailabilityPolicy == "" {
		c.Booking.AvailabilityPolicy = string(domain.DefaultAvailabilityPolicy)
	}
	if c.Booking.TimeZone == "" {
		c.Booking.TimeZone = "Europe/Chisinau"
	}

	if c.Email.APIURL == "" {
		c.Email.APIURL = "https://api.resend.com"
	}
	if c.Email.Timeout == 0 {
		c.Email.Timeout = 10
	}

	if c.ExchangeRates.URL == "" {
		c.ExchangeRates.URL = "https://api.exchangerate-api.com/v4/latest/EUR"
	}
	if c.ExchangeRates.Timeout == 0 {
		c.ExchangeRates.Timeout = 5
	}
	if c.ExchangeRates.CacheTTL == 0 {
		c.ExchangeRates.CacheTTL = 4 * 60 * 60
	}

	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "admin_session"
	}

	if c.Events.Exchange == "" {
		c.Events.Exchange = "ensemble.events"
	}
}

// Validate проверяет диапазоны и перечисления
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: server.request_timeout must be >= 0", ErrInvalidConfig)
	}
	if _, err := domain.ParseAvailabilityPolicy(c.Booking.AvailabilityPolicy); err != nil {
		return fmt.Errorf("%w: booking.availability_policy: %v", ErrInvalidConfig, err)
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("%w: booking.time_zone: %v", ErrInvalidConfig, err)
	}
	if c.ExchangeRates.CacheTTL < 0 {
		return fmt.Errorf("%w: exchange_rates.cache_ttl must be >= 0", ErrInvalidConfig)
	}
	if c.Email.From != "" {
		addr, err := mail.ParseAddress(c.Email.From)
		if err != nil || addr.Name != "" || addr.Address != c.Email.From {
			return fmt.Errorf("%w: email.from must be a bare address like noreply@example.com, got %q", ErrInvalidConfig, c.Email.From)
		}
	}
	if c.Events.Enabled && c.Events.RabbitURL == "" {
		return fmt.Errorf("%w: events.rabbit_url is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// IsConfigured база данных считается настроенной, если заданы хост и имя БД
func (d DatabaseConfig) IsConfigured() bool {
	return d.Host != "" && d.DBName != ""
}

// IsConfigured отправка писем возможна при наличии ключа и адреса администратора
func (e EmailConfig) IsConfigured() bool {
	return e.APIKey != "" && e.From != "" && e.AdminEmail != ""
}

// Location часовой пояс бизнеса для определения "сегодня"
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Policy политика доступности дат
func (b BookingConfig) Policy() domain.AvailabilityPolicy {
	p, err := domain.ParseAvailabilityPolicy(b.AvailabilityPolicy)
	if err != nil {
		return domain.DefaultAvailabilityPolicy
	}
	return p
}
