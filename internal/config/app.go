package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

// Storage selects the subscription store: "postgres" or "sqlite".
type Storage struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type HTTPClient struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

type Provider struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// Providers lists fiat adapters by name in priority order.
type Providers struct {
	Order             []string `mapstructure:"order"`
	ExchangeRateAPI   Provider `mapstructure:"exchangerate_api"`
	ExchangeRateV6    Provider `mapstructure:"exchangerate_api_v6"`
	ExchangeRateHost  Provider `mapstructure:"exchangerate_host"`
	CurrencyConverter Provider `mapstructure:"currency_converter"`
}

type CoinGecko struct {
	URL            string  `mapstructure:"url"`
	APIKey         string  `mapstructure:"api_key"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Symbols overrides the built-in registry when non-empty.
type Symbols struct {
	Fiat   []string          `mapstructure:"fiat"`
	Crypto map[string]string `mapstructure:"crypto"`
}

type Scheduler struct {
	IntervalSeconds int    `mapstructure:"interval_seconds"`
	RepeatPolicy    string `mapstructure:"repeat_policy"`
	Workers         int    `mapstructure:"workers"`
}

type Kafka struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type Webhook struct {
	URL string `mapstructure:"url"`
}

type Delivery struct {
	Kind    string  `mapstructure:"kind"`
	Kafka   Kafka   `mapstructure:"kafka"`
	Webhook Webhook `mapstructure:"webhook"`
}

type Chat struct {
	SessionTTLSeconds int   `mapstructure:"session_ttl_seconds"`
	MaxSessions       int64 `mapstructure:"max_sessions"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Storage    Storage    `mapstructure:"storage"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Providers  Providers  `mapstructure:"providers"`
	CoinGecko  CoinGecko  `mapstructure:"coingecko"`
	Symbols    Symbols    `mapstructure:"symbols"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Delivery   Delivery   `mapstructure:"delivery"`
	Chat       Chat       `mapstructure:"chat"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads config.yaml from the working directory.
func Init() (*AppConfig, error) {
	return Load("config.yaml")
}

// Load reads the yaml file at path, then applies .env and environment overrides.
// A missing .env is fine.
func Load(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	setDefaults(v)
	bindEnv(v)

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	normalize(&cfg)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.sqlite_path", "fxalerts.db")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("http_client.user_agent", "fxalerts/1.0")

	v.SetDefault("providers.order", []string{"exchangerate_api", "currency_converter", "exchangerate_host", "exchangerate_api_v6"})
	v.SetDefault("providers.exchangerate_api.url", "https://api.exchangerate-api.com")
	v.SetDefault("providers.exchangerate_api_v6.url", "https://v6.exchangerate-api.com")
	v.SetDefault("providers.exchangerate_host.url", "https://api.exchangerate.host")
	v.SetDefault("providers.currency_converter.url", "https://currency-converter5.p.rapidapi.com")

	v.SetDefault("coingecko.url", "https://api.coingecko.com")
	v.SetDefault("coingecko.rate_limit", 0.5)
	v.SetDefault("coingecko.rate_limit_burst", 5)

	v.SetDefault("scheduler.interval_seconds", 60)
	v.SetDefault("scheduler.repeat_policy", "every_tick")
	v.SetDefault("scheduler.workers", 1)

	v.SetDefault("delivery.kind", "log")
	v.SetDefault("delivery.kafka.topic", "fx-alerts")

	v.SetDefault("chat.session_ttl_seconds", 600)
	v.SetDefault("chat.max_sessions", 10000)

	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	_ = v.BindEnv("storage.driver", "STORAGE_DRIVER")
	_ = v.BindEnv("storage.sqlite_path", "SQLITE_PATH")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// provider secrets
	_ = v.BindEnv("providers.exchangerate_api_v6.api_key", "EXCHANGERATE_API_KEY")
	_ = v.BindEnv("providers.exchangerate_host.api_key", "EXCHANGERATE_HOST_KEY")
	_ = v.BindEnv("providers.currency_converter.api_key", "RAPIDAPI_KEY")
	_ = v.BindEnv("coingecko.api_key", "COINGECKO_API_KEY")

	_ = v.BindEnv("delivery.kind", "DELIVERY_KIND")
	// comma separated, split by viper's decode hook
	_ = v.BindEnv("delivery.kafka.brokers", "KAFKA_BROKERS")
	_ = v.BindEnv("delivery.kafka.topic", "KAFKA_TOPIC")
	_ = v.BindEnv("delivery.webhook.url", "WEBHOOK_URL")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}

func normalize(cfg *AppConfig) {
	for i, name := range cfg.Providers.Order {
		cfg.Providers.Order[i] = strings.ToLower(strings.TrimSpace(name))
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	// viper lower-cases map keys
	if len(cfg.Symbols.Crypto) > 0 {
		crypto := make(map[string]string, len(cfg.Symbols.Crypto))
		for symbol, id := range cfg.Symbols.Crypto {
			crypto[strings.ToUpper(symbol)] = id
		}
		cfg.Symbols.Crypto = crypto
	}
}
