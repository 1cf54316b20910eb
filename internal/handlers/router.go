// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every API handler for route registration.
type Handlers struct {
	Progress    *ProgressHandler
	Challenge   *ChallengeHandler
	Economy     *EconomyHandler
	Leaderboard *LeaderboardHandler
}

// RegisterRoutes mounts the /api/v1 routes behind auth, which resolves the
// caller's user id.
func RegisterRoutes(r chi.Router, h Handlers, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/courses", h.Progress.ListCourses)
			r.Get("/leaderboard", h.Leaderboard.GetLeaderboard)
			r.Route("/progress", func(r chi.Router) {
				r.Get("/", h.Progress.GetProgress)
				r.Put("/active-course", h.Progress.SelectCourse)
			})
			r.Get("/units", h.Progress.GetUnits)
			r.Route("/lessons", func(r chi.Router) {
				r.Get("/active", h.Progress.GetActiveLesson)
				r.Get("/{lesson_id}", h.Progress.GetLesson)
			})
			r.Post("/challenges/{challenge_id}/answer", h.Challenge.SubmitAnswer)
			r.Route("/shop", func(r chi.Router) {
				r.Post("/refill", h.Economy.RefillHearts)
				r.Post("/purchase", h.Economy.PurchaseHearts)
			})
		})
	})
}
