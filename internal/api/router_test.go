package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fxalerts/internal/adapters/cache"
	"fxalerts/internal/adapters/sqlite"
	"fxalerts/internal/alert"
	alerthandler "fxalerts/internal/alert/handler"
	"fxalerts/internal/chat"
	chathandler "fxalerts/internal/chat/handler"
	"fxalerts/internal/metrics"
	"fxalerts/internal/rate"
	ratehandler "fxalerts/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
)

type fixedResolver map[string]float64

func (r fixedResolver) Resolve(_ context.Context, base string, quote string) (float64, bool) {
	v, ok := r[strings.ToUpper(base)+"/"+strings.ToUpper(quote)]
	return v, ok
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	sessions, err := cache.NewSessionCache[chat.Session](64, time.Minute)
	require.NoError(t, err)
	t.Cleanup(sessions.Close)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.SubscriptionsTotal.Set(0)

	validator := rate.NewValidator(nil)
	rateService := rate.NewService(fixedResolver{"BTC/USD": 51000, "USD/EUR": 0.9}, validator)
	alertService := alert.NewService(sqlite.NewSubscriptionRepository(db), validator)

	router := NewRouter(Handlers{
		Rate:         ratehandler.NewRateHandler(rateService),
		Subscription: alerthandler.NewSubscriptionHandler(alertService),
		Chat:         chathandler.NewMessageHandler(chat.NewDispatcher(rateService, alertService, sessions)),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, http.MethodGet, srv.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, code)
}

func TestRouter_Rates(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, http.MethodGet, srv.URL+"/api/v1/rates/btc/usd", "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"base":"BTC","quote":"USD","value":51000}`, body)

	code, _ = do(t, http.MethodGet, srv.URL+"/api/v1/rates/b/usd", "")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/api/v1/rates/eur/kzt", "")
	require.Equal(t, http.StatusServiceUnavailable, code)
}

func TestRouter_ConvertAndSymbols(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, http.MethodGet, srv.URL+"/api/v1/convert?amount=10&from=usd&to=eur", "")
	require.Equal(t, http.StatusOK, code)
	var conv rate.Conversion
	require.NoError(t, json.Unmarshal([]byte(body), &conv))
	require.InDelta(t, 9.0, conv.Result, 1e-9)

	code, body = do(t, http.MethodGet, srv.URL+"/api/v1/symbols", "")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `"BTC"`)
}

func TestRouter_SubscriptionLifecycleWithChat(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1/users/42"

	code, _ := do(t, http.MethodPost, base+"/subscriptions", `{"base":"btc","quote":"usd","operator":">","threshold":50000}`)
	require.Equal(t, http.StatusCreated, code)

	code, body := do(t, http.MethodPost, base+"/messages", `{"text":"/subs"}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"reply":"Your alerts:\n1. BTC/USD > 50000"}`, body)

	code, _ = do(t, http.MethodDelete, base+"/subscriptions/BTC/USD", "")
	require.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, http.MethodDelete, base+"/subscriptions/BTC/USD", "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "fxalerts_")
}
