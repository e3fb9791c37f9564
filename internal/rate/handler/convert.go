package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"EUR"`
	Amount float64 `json:"amount" example:"100"`
	Rate   float64 `json:"rate" example:"0.9231"`
	Result float64 `json:"result" example:"92.31"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Convert amount of one symbol into another using a freshly resolved rate
// @Tags Rates
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source symbol"
// @Param to query string true "Target symbol"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(q.Get("amount")), ",", "."), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a number")
		return
	}

	res, err := h.service.Convert(r.Context(), amount, from, to)
	if err != nil {
		switch {
		case isValidationErr(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case isUnavailableErr(err):
			writeError(w, http.StatusServiceUnavailable, unavailableMsg)
		default:
			msg := "ups, couldn't convert this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse(res))
}
