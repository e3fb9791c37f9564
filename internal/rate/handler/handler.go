package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fxalerts/internal/domain"
	"fxalerts/internal/rate"
)

const unavailableMsg = "rate unavailable, try again later"

type RateService interface {
	Convert(ctx context.Context, amount float64, from string, to string) (rate.Conversion, error)
	GetRate(ctx context.Context, base string, quote string) (rate.Quote, error)
	SupportedSymbols() rate.Symbols
}

type Handler struct {
	service RateService
}

func NewRateHandler(service RateService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func isValidationErr(err error) bool {
	return errors.Is(err, rate.ErrBaseRequired) ||
		errors.Is(err, rate.ErrQuoteRequired) ||
		errors.Is(err, rate.ErrSymbolInvalid) ||
		errors.Is(err, rate.ErrAmountInvalid)
}

func isUnavailableErr(err error) bool {
	return errors.Is(err, domain.ErrRateUnavailable)
}
