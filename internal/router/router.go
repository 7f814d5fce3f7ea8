package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"learnbuddy-backend/internal/handlers"
	"learnbuddy-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	quizHandler *handlers.QuizHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Signup & Auth Routes ────
	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/", authHandler.Signup)
			r.Post("/verify_otp/", authHandler.VerifyOTP)
			r.Post("/resend_otp/", authHandler.ResendOTP)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/me", userHandler.GetMe)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/login/", authHandler.Login)
	})

	// ──── Score Route ────
	r.Get("/score/", userHandler.GetScore)

	// ──── Quiz Routes ────
	r.Post("/get-question", quizHandler.GetQuestion)
	r.Post("/submit-answer", quizHandler.SubmitAnswer)
	r.Post("/solve-question", quizHandler.SolveQuestion)
	r.Post("/chat", quizHandler.ChatSolve)

	return r
}
