package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fxalerts/internal/alert"
	"fxalerts/internal/domain"
	"fxalerts/internal/rate"

	"github.com/go-chi/chi/v5"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID int64, base string, quote string, op string, threshold float64) (domain.Subscription, error)
	List(ctx context.Context, userID int64) ([]domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID int64, base string, quote string) (int64, error)
}

type Handler struct {
	service SubscriptionService
}

func NewSubscriptionHandler(service SubscriptionService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isValidationErr(err error) bool {
	return errors.Is(err, alert.ErrUserInvalid) ||
		errors.Is(err, alert.ErrSameCodes) ||
		errors.Is(err, alert.ErrThresholdInvalid) ||
		errors.Is(err, domain.ErrInvalidOperator) ||
		errors.Is(err, rate.ErrBaseRequired) ||
		errors.Is(err, rate.ErrQuoteRequired) ||
		errors.Is(err, rate.ErrSymbolInvalid)
}
