package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxMessageBytes = 4096

type MessageDispatcher interface {
	Handle(ctx context.Context, userID int64, text string) string
}

type Handler struct {
	dispatcher MessageDispatcher
}

func NewMessageHandler(dispatcher MessageDispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

type MessageRequest struct {
	Text string `json:"text" example:"100 USD to EUR"`
}

type MessageResponse struct {
	Reply string `json:"reply" example:"100 USD = 92 EUR\nRate: 0.92"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PostMessage godoc
// @Summary Send a chat message
// @Description Pass one chat message (command, conversion, alert phrase or wizard answer) and get the bot reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param request body MessageRequest true "Message"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errorResponse
// @Router /users/{userID}/messages [post]
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user id must be a positive integer"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxMessageBytes)
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is too long"})
		case errors.Is(err, io.EOF):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty body"})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		}
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}

	reply := h.dispatcher.Handle(r.Context(), userID, req.Text)
	writeJSON(w, http.StatusOK, MessageResponse{Reply: reply})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
