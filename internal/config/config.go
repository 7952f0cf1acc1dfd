package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	BackendURL      string        `env:"BACKEND_URL" envDefault:"http://localhost:4000"`
	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"secret"`
	Currency        string        `env:"CURRENCY" envDefault:"Rs."`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`
	RequestRate     float64       `env:"REQUEST_RATE" envDefault:"0"`
	NotifyBuffer    int           `env:"NOTIFY_BUFFER" envDefault:"50"`
}

// ServerConfig модель настроек HTTP-сервера админки
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	SessionSecret string
	SessionTTL    time.Duration
}

// BackendConfig модель настроек работы с REST API магазина
type BackendConfig struct {
	BaseURL string
	// RequestRate - запросов в секунду, 0 - без ограничения
	RequestRate float64
}

// DashboardConfig модель настроек сессии администратора
type DashboardConfig struct {
	Currency string
	// RefreshInterval - период фоновой перезагрузки заказов, 0 - выключено
	RefreshInterval time.Duration
	NotifyBuffer    int
}

// Config модель настроек сервиса
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Dashboard DashboardConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		backend  = pflag.StringP("backend", "b", args.BackendURL, "Shop backend base URL.")
		secret   = pflag.StringP("secret", "s", args.SessionSecret, "Secret to sign dashboard session JWT")
		currency = pflag.StringP("currency", "c", args.Currency, "Currency label for amounts.")
		refresh  = pflag.DurationP("refresh", "r", args.RefreshInterval, "Background order reload interval, 0 disables.")
		rps      = pflag.Float64P("rate", "q", args.RequestRate, "Max backend requests per second, 0 is unlimited.")
		buffer   = pflag.IntP("notify_buffer", "n", args.NotifyBuffer, "Notifications kept per session.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:    *server,
			LogLevel:      *logLevel,
			SessionSecret: *secret,
			SessionTTL:    12 * time.Hour,
		},
		Backend: BackendConfig{
			BaseURL:     *backend,
			RequestRate: *rps,
		},
		Dashboard: DashboardConfig{
			Currency:        *currency,
			RefreshInterval: *refresh,
			NotifyBuffer:    *buffer,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:    "localhost:8080",
			LogLevel:      "info",
			SessionSecret: "secret",
			SessionTTL:    12 * time.Hour,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:4000",
		},
		Dashboard: DashboardConfig{
			Currency:     "Rs.",
			NotifyBuffer: 50,
		},
	}
}
