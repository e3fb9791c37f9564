package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxalerts/internal/adapters/cache"
	"fxalerts/internal/adapters/httpclient"
	"fxalerts/internal/alert"
	alerthandler "fxalerts/internal/alert/handler"
	"fxalerts/internal/api"
	"fxalerts/internal/chat"
	chathandler "fxalerts/internal/chat/handler"
	"fxalerts/internal/config"
	"fxalerts/internal/delivery"
	"fxalerts/internal/metrics"
	httpserver "fxalerts/internal/platform/http"
	"fxalerts/internal/rate"
	ratehandler "fxalerts/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Subscription store
	repo, closeStore, err := openSubscriptionStore(startupCtx, appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to open subscription store")
		return err
	}
	defer closeStore()

	// Shared outbound HTTP client
	callTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	transport := httpclient.NewTransport(callTimeout, appCfg.HTTPClient.UserAgent)
	defer httpclient.CloseTransport(transport)

	// Rate providers and resolver
	fiat, err := buildFiatProviders(appCfg.Providers, transport)
	if err != nil {
		logrus.WithError(err).Error("Failed to build provider chain")
		return err
	}
	coinGecko := httpclient.NewCoinGeckoClient(
		transport,
		appCfg.CoinGecko.URL,
		appCfg.CoinGecko.APIKey,
		appCfg.CoinGecko.RateLimit,
		appCfg.CoinGecko.RateLimitBurst,
	)
	registry := rate.NewRegistry(appCfg.Symbols.Fiat, appCfg.Symbols.Crypto)
	resolver := rate.NewResolver(registry, fiat, coinGecko, callTimeout, m)
	logrus.Infof("✅ Rate resolver ready with %d fiat providers", len(fiat))

	// Services
	validator := rate.NewValidator(registry)
	rateService := rate.NewService(resolver, validator)
	alertService := alert.NewService(repo, validator)

	// Alert delivery
	notifier, closeNotifier, err := delivery.New(delivery.Config{
		Kind:         appCfg.Delivery.Kind,
		KafkaBrokers: appCfg.Delivery.Kafka.Brokers,
		KafkaTopic:   appCfg.Delivery.Kafka.Topic,
		WebhookURL:   appCfg.Delivery.Webhook.URL,
	}, transport)
	if err != nil {
		logrus.WithError(err).Error("Failed to build notifier")
		return err
	}
	defer func() {
		if closeErr := closeNotifier(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Notifier close failed")
		}
	}()

	// Scheduler
	policy, err := alert.ParseRepeatPolicy(appCfg.Scheduler.RepeatPolicy)
	if err != nil {
		logrus.WithError(err).Error("Invalid scheduler config")
		return err
	}
	evaluator := alert.NewEvaluator(repo, resolver, notifier,
		alert.WithWorkers(appCfg.Scheduler.Workers),
		alert.WithRepeatPolicy(policy),
		alert.WithMetrics(m),
	)
	scheduler := alert.NewScheduler(evaluator, time.Duration(appCfg.Scheduler.IntervalSeconds)*time.Second, m)
	// Ensure scheduler stops before the store and notifier close
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Chat sessions
	sessions, err := cache.NewSessionCache[chat.Session](
		appCfg.Chat.MaxSessions,
		time.Duration(appCfg.Chat.SessionTTLSeconds)*time.Second,
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to create chat session cache")
		return err
	}
	defer sessions.Close()

	// Handlers and router
	router := api.NewRouter(api.Handlers{
		Rate:         ratehandler.NewRateHandler(rateService),
		Subscription: alerthandler.NewSubscriptionHandler(alertService),
		Chat:         chathandler.NewMessageHandler(chat.NewDispatcher(rateService, alertService, sessions)),
		Metrics:      promhttp.Handler(),
	})

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
