// internal/handlers/challenge_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/service"
	"lingo_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ChallengeHandler struct {
	service service.ChallengeService
	logger  *slog.Logger
}

func NewChallengeHandler(s service.ChallengeService, logger *slog.Logger) *ChallengeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeHandler{
		service: s,
		logger:  logger,
	}
}

// SubmitAnswer resolves one answer to a challenge. Business rejections such as
// INSUFFICIENT_HEARTS come back as 422 with the state left unchanged.
func (h *ChallengeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID))

	challengeID, err := webutil.ParseUUIDParam(chi.URLParam(r, "challenge_id"), "challenge_id")
	if err != nil {
		logger.Warn("Invalid challenge id", slog.String("challenge_id", chi.URLParam(r, "challenge_id")))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), userID, challengeID, req.OptionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
