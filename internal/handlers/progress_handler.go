// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/service"
	"lingo_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// ListCourses returns every course, without units.
func (h *ProgressHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCourses"))

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		logger.Error("Error listing courses in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

// SelectCourse sets the caller's active course.
func (h *ProgressHandler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectCourse"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID))

	var req model.SelectCourseRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.SelectCourse(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course selected", slog.String("course_id", req.CourseID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	summary, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("user_id", userID)), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// GetUnits returns the active course's units with lock state.
func (h *ProgressHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUnits"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	schedule, err := h.service.GetUnitsWithLockState(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("user_id", userID)), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, schedule, logger)
}

func (h *ProgressHandler) GetActiveLesson(w http.ResponseWriter, r *http.Request) {
	h.getLesson(w, r, "GetActiveLesson", nil)
}

func (h *ProgressHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := webutil.ParseUUIDParam(chi.URLParam(r, "lesson_id"), "lesson_id")
	if err != nil {
		webutil.HandleError(w, h.logger.With(slog.String("handler", "GetLesson")), err)
		return
	}
	h.getLesson(w, r, "GetLesson", &lessonID)
}

func (h *ProgressHandler) getLesson(w http.ResponseWriter, r *http.Request, name string, lessonID *uuid.UUID) {
	logger := h.logger.With(slog.String("handler", name))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), userID, lessonID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("user_id", userID)), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}
