package feed

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"freshcart/internal/kafka"
)

const defaultLimit = 10

type Handler struct {
	service FeedService
	logger  *zap.SugaredLogger
}

func NewHandler(service FeedService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	limit := defaultLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.service.Recent(r.Context(), sessionID, limit)
	if err != nil {
		h.logger.Errorf("Failed to get notifications: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if len(events) == 0 {
		events = []kafka.Event{} // Пустой массив вместо null
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(events); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
