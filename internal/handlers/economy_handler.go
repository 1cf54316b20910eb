// internal/handlers/economy_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/service"
	"lingo_progress/internal/webutil"
)

type EconomyHandler struct {
	service service.EconomyService
	logger  *slog.Logger
}

func NewEconomyHandler(s service.EconomyService, logger *slog.Logger) *EconomyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EconomyHandler{
		service: s,
		logger:  logger,
	}
}

func (h *EconomyHandler) RefillHearts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RefillHearts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.RefillHearts(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("user_id", userID)), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// PurchaseHearts answers 200 with purchased=false. The client shows the message
// instead of treating the decline as a failure.
func (h *EconomyHandler) PurchaseHearts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PurchaseHearts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID))

	// A missing or malformed body is still a purchase attempt.
	var req model.PurchaseHeartsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Debug("Purchase body ignored", slog.Any("error", err))
		req = model.PurchaseHeartsRequest{}
	}

	err = h.service.PurchaseHearts(r.Context(), userID, &req)
	var appErr *model.AppError
	switch {
	case err == nil:
		webutil.RespondWithJSON(w, http.StatusOK, model.PurchaseHeartsResponse{Purchased: true}, logger)
	case errors.Is(err, model.ErrNotPurchasable) && errors.As(err, &appErr):
		webutil.RespondWithJSON(w, http.StatusOK, model.PurchaseHeartsResponse{
			Purchased: false,
			Code:      appErr.Detail.Code,
			Message:   appErr.Detail.Message,
		}, logger)
	default:
		webutil.HandleError(w, logger, err)
	}
}
