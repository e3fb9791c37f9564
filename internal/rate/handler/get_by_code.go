package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetByCodesResponse struct {
	Base  string  `json:"base" example:"BTC"`
	Quote string  `json:"quote" example:"USD"`
	Value float64 `json:"value" example:"51000.5"`
}

// GetByCodes godoc
// @Summary Get live rate
// @Description Resolve how many quote units one base unit is worth right now
// @Tags Rates
// @Produce json
// @Param base path string true "Base symbol"
// @Param quote path string true "Quote symbol"
// @Success 200 {object} GetByCodesResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /rates/{base}/{quote} [get]
func (h *Handler) GetByCodes(w http.ResponseWriter, r *http.Request) {
	base := chi.URLParam(r, "base")
	quote := chi.URLParam(r, "quote")

	q, err := h.service.GetRate(r.Context(), base, quote)
	if err != nil {
		switch {
		case isValidationErr(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case isUnavailableErr(err):
			writeError(w, http.StatusServiceUnavailable, unavailableMsg)
		default:
			msg := "ups, couldn't get rate by codes this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByCodes", "base": base, "quote": quote}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, GetByCodesResponse{
		Base:  q.Base,
		Quote: q.Quote,
		Value: q.Value,
	})
}
