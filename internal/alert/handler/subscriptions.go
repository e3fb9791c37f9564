package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fxalerts/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type CreateSubscriptionRequest struct {
	Base      string  `json:"base" example:"BTC"`
	Quote     string  `json:"quote" example:"USD"`
	Operator  string  `json:"operator" example:">"`
	Threshold float64 `json:"threshold" example:"50000"`
}

type SubscriptionResponse struct {
	ID        int64   `json:"id" example:"1"`
	UserID    int64   `json:"user_id" example:"42"`
	Base      string  `json:"base" example:"BTC"`
	Quote     string  `json:"quote" example:"USD"`
	Operator  string  `json:"operator" example:">"`
	Threshold float64 `json:"threshold" example:"50000"`
}

type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

func toResponse(s domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Base:      s.Base,
		Quote:     s.Quote,
		Operator:  string(s.Operator),
		Threshold: s.Threshold,
	}
}

// ListSubscriptions godoc
// @Summary List alerts
// @Description List standing alerts of a user
// @Tags Subscriptions
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} ListSubscriptionsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users/{userID}/subscriptions [get]
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	subs, err := h.service.List(r.Context(), userID)
	if err != nil {
		msg := "ups, couldn't list subscriptions this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListSubscriptions", "user_id": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListSubscriptionsResponse{Subscriptions: make([]SubscriptionResponse, 0, len(subs))}
	for _, s := range subs {
		res.Subscriptions = append(res.Subscriptions, toResponse(s))
	}
	writeJSON(w, http.StatusOK, res)
}

// CreateSubscription godoc
// @Summary Create alert
// @Description Register an alert that fires while "rate operator threshold" holds
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param request body CreateSubscriptionRequest true "Alert"
// @Success 201 {object} SubscriptionResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users/{userID}/subscriptions [post]
func (h *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateSubscriptionRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.service.Subscribe(r.Context(), userID, req.Base, req.Quote, req.Operator, req.Threshold)
	if err != nil {
		if isValidationErr(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateSubscription", "user_id": userID}).Error("subscription wasn't created")
		writeError(w, http.StatusInternalServerError, "failed to create subscription")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(sub))
}

// DeleteSubscription godoc
// @Summary Delete alerts on a pair
// @Description Remove every alert of the user on base/quote
// @Tags Subscriptions
// @Param userID path int true "User ID"
// @Param base path string true "Base symbol"
// @Param quote path string true "Quote symbol"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users/{userID}/subscriptions/{base}/{quote} [delete]
func (h *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	base, quote := chi.URLParam(r, "base"), chi.URLParam(r, "quote")

	_, err := h.service.Unsubscribe(r.Context(), userID, base, quote)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubscriptionNotFound):
			writeError(w, http.StatusNotFound, "subscription not found")
		case isValidationErr(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteSubscription", "user_id": userID}).Error("subscription wasn't removed")
			writeError(w, http.StatusInternalServerError, "failed to remove subscription")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
