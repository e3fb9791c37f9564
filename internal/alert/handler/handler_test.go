package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fxalerts/internal/alert"
	"fxalerts/internal/domain"
	"fxalerts/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Subscribe(ctx context.Context, userID int64, base string, quote string, op string, threshold float64) (domain.Subscription, error) {
	args := m.Called(ctx, userID, base, quote, op, threshold)
	s, _ := args.Get(0).(domain.Subscription)
	return s, args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	subs, _ := args.Get(0).([]domain.Subscription)
	return subs, args.Error(1)
}

func (m *MockService) Unsubscribe(ctx context.Context, userID int64, base string, quote string) (int64, error) {
	args := m.Called(ctx, userID, base, quote)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

func withParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	return ej.Error
}

// --- ListSubscriptions ---

func TestHandler_ListSubscriptions_InvalidUser(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	req := withParams(httptest.NewRequest(http.MethodGet, "/users/abc/subscriptions", nil), "userID", "abc")
	rr := httptest.NewRecorder()

	h.ListSubscriptions(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid user id", decodeError(t, rr))
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_ListSubscriptions_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	subs := []domain.Subscription{{ID: 3, UserID: 42, Base: "BTC", Quote: "USD", Operator: domain.OpGreater, Threshold: 50000}}
	mockService.On("List", mock.Anything, int64(42)).Return(subs, nil).Once()

	req := withParams(httptest.NewRequest(http.MethodGet, "/users/42/subscriptions", nil), "userID", "42")
	rr := httptest.NewRecorder()

	h.ListSubscriptions(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res ListSubscriptionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Subscriptions, 1)
	require.Equal(t, ">", res.Subscriptions[0].Operator)
	require.InDelta(t, 50000.0, res.Subscriptions[0].Threshold, 1e-9)
	mockService.AssertExpectations(t)
}

func TestHandler_ListSubscriptions_Empty(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)
	mockService.On("List", mock.Anything, int64(42)).Return(nil, nil).Once()

	req := withParams(httptest.NewRequest(http.MethodGet, "/users/42/subscriptions", nil), "userID", "42")
	rr := httptest.NewRecorder()

	h.ListSubscriptions(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"subscriptions": []}`, rr.Body.String())
}

// --- CreateSubscription ---

func TestHandler_CreateSubscription_InvalidJSON(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	req := withParams(httptest.NewRequest(http.MethodPost, "/users/42/subscriptions", bytes.NewBufferString("{")), "userID", "42")
	rr := httptest.NewRecorder()

	h.CreateSubscription(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid request body", decodeError(t, rr))
	mockService.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CreateSubscription_UnknownField(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	body := `{"base":"BTC","quote":"USD","operator":">","threshold":1,"extra":1}`
	req := withParams(httptest.NewRequest(http.MethodPost, "/users/42/subscriptions", bytes.NewBufferString(body)), "userID", "42")
	rr := httptest.NewRecorder()

	h.CreateSubscription(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid request body", decodeError(t, rr))
}

func TestHandler_CreateSubscription_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		svcErr error
	}{
		{name: "operator", svcErr: domain.ErrInvalidOperator},
		{name: "threshold", svcErr: alert.ErrThresholdInvalid},
		{name: "same codes", svcErr: alert.ErrSameCodes},
		{name: "symbol", svcErr: rate.ErrBaseInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewSubscriptionHandler(mockService)

			body := `{"base":"BTC","quote":"USD","operator":">","threshold":50000}`
			req := withParams(httptest.NewRequest(http.MethodPost, "/users/42/subscriptions", bytes.NewBufferString(body)), "userID", "42")
			rr := httptest.NewRecorder()

			mockService.On("Subscribe", mock.Anything, int64(42), "BTC", "USD", ">", 50000.0).Return(domain.Subscription{}, tc.svcErr).Once()

			h.CreateSubscription(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tc.svcErr.Error(), decodeError(t, rr))
		})
	}
}

func TestHandler_CreateSubscription_ServiceError(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	body := `{"base":"BTC","quote":"USD","operator":">","threshold":50000}`
	req := withParams(httptest.NewRequest(http.MethodPost, "/users/42/subscriptions", bytes.NewBufferString(body)), "userID", "42")
	rr := httptest.NewRecorder()

	mockService.On("Subscribe", mock.Anything, int64(42), "BTC", "USD", ">", 50000.0).Return(domain.Subscription{}, errors.New("db down")).Once()

	h.CreateSubscription(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "failed to create subscription", decodeError(t, rr))
}

func TestHandler_CreateSubscription_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewSubscriptionHandler(mockService)

	body := `{"base":"btc","quote":"usd","operator":">=","threshold":50000}`
	req := withParams(httptest.NewRequest(http.MethodPost, "/users/42/subscriptions", bytes.NewBufferString(body)), "userID", "42")
	rr := httptest.NewRecorder()

	created := domain.Subscription{ID: 9, UserID: 42, Base: "BTC", Quote: "USD", Operator: domain.OpGreaterEqual, Threshold: 50000}
	mockService.On("Subscribe", mock.Anything, int64(42), "btc", "usd", ">=", 50000.0).Return(created, nil).Once()

	h.CreateSubscription(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var res SubscriptionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, int64(9), res.ID)
	require.Equal(t, "BTC", res.Base)
	require.Equal(t, ">=", res.Operator)
	mockService.AssertExpectations(t)
}

// --- DeleteSubscription ---

func TestHandler_DeleteSubscription(t *testing.T) {
	cases := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "removed", svcErr: nil, wantCode: http.StatusNoContent},
		{name: "not found", svcErr: domain.ErrSubscriptionNotFound, wantCode: http.StatusNotFound},
		{name: "invalid", svcErr: rate.ErrQuoteInvalid, wantCode: http.StatusBadRequest},
		{name: "store", svcErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewSubscriptionHandler(mockService)

			req := withParams(httptest.NewRequest(http.MethodDelete, "/users/42/subscriptions/btc/usd", nil),
				"userID", "42", "base", "btc", "quote", "usd")
			rr := httptest.NewRecorder()

			n := int64(0)
			if tc.svcErr == nil {
				n = 1
			}
			mockService.On("Unsubscribe", mock.Anything, int64(42), "btc", "usd").Return(n, tc.svcErr).Once()

			h.DeleteSubscription(rr, req)

			require.Equal(t, tc.wantCode, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}
