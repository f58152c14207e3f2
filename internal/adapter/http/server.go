// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"momentum/internal/app"
	"momentum/internal/domain"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth          *app.AuthService
	profiles      *app.ProfileService
	workouts      *app.WorkoutService
	exercises     *app.ExerciseService
	meals         *app.MealService
	progress      *app.ProgressService
	notifications *app.NotificationService
	log           zerolog.Logger
}

// Services bundles the application services the server routes to.
type Services struct {
	Auth          *app.AuthService
	Profiles      *app.ProfileService
	Workouts      *app.WorkoutService
	Exercises     *app.ExerciseService
	Meals         *app.MealService
	Progress      *app.ProgressService
	Notifications *app.NotificationService
}

// New creates a Server wired to the given application services.
func New(svc Services, log zerolog.Logger) *Server {
	return &Server{
		auth:          svc.Auth,
		profiles:      svc.Profiles,
		workouts:      svc.Workouts,
		exercises:     svc.Exercises,
		meals:         svc.Meals,
		progress:      svc.Progress,
		notifications: svc.Notifications,
		log:           log,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	adminOnly := s.requireRole(app.RoleIs(domain.RoleAdmin))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Get("/verifysession", s.handleVerifySession)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", s.handleGetProfile)
				r.Post("/profile", s.handleUpdateProfile)
			})

			r.Route("/workout", func(r chi.Router) {
				r.Get("/", s.handleListWorkouts)
				r.With(adminOnly).Post("/", s.handleCreateWorkout)

				r.Get("/logs", s.handleListLogs)
				r.Post("/log", s.handleLogWorkout)
				r.Route("/log/{logID}", func(r chi.Router) {
					r.Get("/", s.handleGetLog)
					r.Post("/exercises", s.handleAppendExerciseLogs)
				})

				r.Route("/{workoutID}", func(r chi.Router) {
					r.Get("/", s.handleGetWorkout)
					r.With(adminOnly).Put("/", s.handleUpdateWorkout)
					r.With(adminOnly).Delete("/", s.handleDeleteWorkout)
					r.Get("/exercises", s.handleListExercises)
				})
			})

			r.Route("/exercise", func(r chi.Router) {
				r.With(adminOnly).Post("/", s.handleCreateExercise)
				r.Route("/{exerciseID}", func(r chi.Router) {
					r.Get("/", s.handleGetExercise)
					r.With(adminOnly).Put("/", s.handleUpdateExercise)
					r.With(adminOnly).Delete("/", s.handleDeleteExercise)
				})
			})

			r.Route("/meals", func(r chi.Router) {
				r.Get("/", s.handleListMeals)
				r.Post("/", s.handleCreateMeal)
				r.Put("/{mealID}", s.handleUpdateMeal)
				r.Delete("/{mealID}", s.handleDeleteMeal)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", s.handleListProgress)
				r.Post("/", s.handleAddProgress)
				r.Put("/{progressID}", s.handleUpdateProgress)
				r.Delete("/{progressID}", s.handleDeleteProgress)
			})

			r.Route("/notification", func(r chi.Router) {
				r.Get("/", s.handleListNotifications)
				r.Post("/", s.handleCreateNotification)
				r.Put("/{notificationID}/read", s.handleMarkNotificationRead)
				r.Delete("/{notificationID}", s.handleDeleteNotification)
			})
		})
	})

	return r
}
