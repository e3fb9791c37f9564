package delivery

import (
	"errors"
	"fmt"

	"fxalerts/internal/adapters"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	KindLog     = "log"
	KindKafka   = "kafka"
	KindWebhook = "webhook"
)

type Config struct {
	Kind         string
	KafkaBrokers []string
	KafkaTopic   string
	WebhookURL   string
}

// New builds the notifier for cfg.Kind. The returned close func is never nil.
func New(cfg Config, client *resty.Client) (adapters.Notifier, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Kind {
	case "", KindLog:
		return NewLogNotifier(logrus.StandardLogger()), noop, nil
	case KindKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return nil, noop, errors.New("kafka delivery needs brokers and topic")
		}
		n := NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		return n, n.Close, nil
	case KindWebhook:
		if cfg.WebhookURL == "" {
			return nil, noop, errors.New("webhook delivery needs a url")
		}
		return NewWebhookNotifier(client, cfg.WebhookURL), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown delivery kind %q", cfg.Kind)
	}
}
