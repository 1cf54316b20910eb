// internal/handlers/leaderboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingo_progress/internal/model"
	"lingo_progress/internal/service"
	"lingo_progress/internal/webutil"
)

type LeaderboardHandler struct {
	service service.LeaderboardService
	logger  *slog.Logger
}

func NewLeaderboardHandler(s service.LeaderboardService, logger *slog.Logger) *LeaderboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaderboardHandler{
		service: s,
		logger:  logger,
	}
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeaderboard"))

	entries, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		logger.Error("Error loading leaderboard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
