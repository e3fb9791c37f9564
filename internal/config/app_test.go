package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Chdir(dir)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "http_server:\n  port: \"9090\"\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, "postgres", cfg.Storage.Driver)
	require.Equal(t, 10, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, []string{"exchangerate_api", "currency_converter", "exchangerate_host", "exchangerate_api_v6"}, cfg.Providers.Order)
	require.Equal(t, "https://api.coingecko.com", cfg.CoinGecko.URL)
	require.Equal(t, 60, cfg.Scheduler.IntervalSeconds)
	require.Equal(t, "every_tick", cfg.Scheduler.RepeatPolicy)
	require.Equal(t, 1, cfg.Scheduler.Workers)
	require.Equal(t, "log", cfg.Delivery.Kind)
	require.Equal(t, 600, cfg.Chat.SessionTTLSeconds)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: " SQLite "
providers:
  order: [Exchangerate_Host, exchangerate_api]
symbols:
  fiat: [USD, EUR]
  crypto:
    BTC: bitcoin
scheduler:
  interval_seconds: 15
  repeat_policy: once_until_reset
  workers: 4
`)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("RAPIDAPI_KEY", "secret")
	t.Setenv("DELIVERY_KIND", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, []string{"exchangerate_host", "exchangerate_api"}, cfg.Providers.Order)
	require.Equal(t, []string{"USD", "EUR"}, cfg.Symbols.Fiat)
	require.Equal(t, map[string]string{"BTC": "bitcoin"}, cfg.Symbols.Crypto)
	require.Equal(t, 15, cfg.Scheduler.IntervalSeconds)
	require.Equal(t, "once_until_reset", cfg.Scheduler.RepeatPolicy)
	require.Equal(t, 4, cfg.Scheduler.Workers)
	require.Equal(t, "db.internal", cfg.DbServer.Host)
	require.Equal(t, "secret", cfg.Providers.CurrencyConverter.APIKey)
	require.Equal(t, "kafka", cfg.Delivery.Kind)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Delivery.Kafka.Brokers)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.yaml")

	require.ErrorContains(t, err, "error reading config file")
}

func TestDbServer_GetConnectionStr(t *testing.T) {
	cfg := DbServer{Host: "localhost", Port: "5432", User: "u", Pass: "p", Name: "fx"}
	require.Equal(t, "user=u password=p host=localhost port=5432 dbname=fx sslmode=disable", cfg.GetConnectionStr())
}
