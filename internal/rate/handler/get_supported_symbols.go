package handler

import (
	"net/http"
)

type GetSupportedSymbolsResponse struct {
	Fiat   []string `json:"fiat" example:"EUR,USD"`
	Crypto []string `json:"crypto" example:"BTC,ETH"`
}

// GetSupportedSymbols godoc
// @Summary List known symbols
// @Description Symbols the registry classifies; other well-formed symbols are still attempted as fiat
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSupportedSymbolsResponse
// @Router /symbols [get]
func (h *Handler) GetSupportedSymbols(w http.ResponseWriter, _ *http.Request) {
	symbols := h.service.SupportedSymbols()
	writeJSON(w, http.StatusOK, GetSupportedSymbolsResponse{
		Fiat:   symbols.Fiat,
		Crypto: symbols.Crypto,
	})
}
