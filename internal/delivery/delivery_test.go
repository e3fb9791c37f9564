package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

// --- LogNotifier ---

func TestLogNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	n := NewLogNotifier(logger)
	require.NoError(t, n.Send(context.Background(), 42, "Alert triggered: BTC/USD > 1 (current: 2)"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "Alert triggered: BTC/USD > 1 (current: 2)", entry["msg"])
	require.EqualValues(t, 42, entry["user_id"])
}

// --- KafkaNotifier ---

func TestKafkaNotifier_Send(t *testing.T) {
	w := &fakeWriter{}
	fixed := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	n := &KafkaNotifier{writer: w, now: func() time.Time { return fixed }}

	require.NoError(t, n.Send(context.Background(), 7, "hello"))

	require.Len(t, w.msgs, 1)
	require.Equal(t, []byte("7"), w.msgs[0].Key)
	require.True(t, w.msgs[0].Time.Equal(fixed))

	var ev AlertEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	require.Equal(t, AlertEvent{UserID: 7, Text: "hello", SentAt: fixed}, ev)

	require.NoError(t, n.Close())
	require.True(t, w.closed)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	n := &KafkaNotifier{writer: &fakeWriter{err: errors.New("leader not available")}, now: time.Now}

	err := n.Send(context.Background(), 7, "hello")

	require.Error(t, err)
	require.ErrorContains(t, err, "kafka: failed to write alert")
}

// --- WebhookNotifier ---

func TestWebhookNotifier_Send(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hook", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(resty.New(), srv.URL+"/hook")

	require.NoError(t, n.Send(context.Background(), 5, "hi"))
	require.Equal(t, webhookPayload{UserID: 5, Text: "hi"}, got)
}

func TestWebhookNotifier_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(resty.New(), srv.URL)

	err := n.Send(context.Background(), 5, "hi")
	require.EqualError(t, err, "webhook: unexpected status code 502")
}

// --- New ---

func TestNew_SelectsByKind(t *testing.T) {
	n, closeFn, err := New(Config{}, resty.New())
	require.NoError(t, err)
	require.IsType(t, &LogNotifier{}, n)
	require.NoError(t, closeFn())

	n, _, err = New(Config{Kind: KindWebhook, WebhookURL: "http://localhost/hook"}, resty.New())
	require.NoError(t, err)
	require.IsType(t, &WebhookNotifier{}, n)

	n, closeFn, err = New(Config{Kind: KindKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "alerts"}, resty.New())
	require.NoError(t, err)
	require.IsType(t, &KafkaNotifier{}, n)
	require.NoError(t, closeFn())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, _, err := New(Config{Kind: KindKafka}, resty.New())
	require.Error(t, err)

	_, _, err = New(Config{Kind: KindWebhook}, resty.New())
	require.Error(t, err)

	_, _, err = New(Config{Kind: "sms"}, resty.New())
	require.EqualError(t, err, `unknown delivery kind "sms"`)
}
