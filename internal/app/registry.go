package app

import (
	"go-course-portal/internal/auth"
	"go-course-portal/internal/config"
	"go-course-portal/internal/course"
	"go-course-portal/internal/email"
	"go-course-portal/internal/middleware"
	"go-course-portal/internal/session"
	"go-course-portal/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, logger *zap.Logger, sessions *session.Store, clock clockwork.Clock) {
	// --- Repositories ---
	courseRepo := course.NewRepository()

	// --- Services ---
	mailer := email.NewLogService(logger)
	authService := auth.NewService(sessions, auth.Config{
		SubmitLatency:   cfg.Form.SubmitLatency,
		RedirectDelay:   cfg.Form.RedirectDelay,
		RedirectTarget:  cfg.Form.RedirectTarget,
		ResetCloseDelay: cfg.Form.ResetCloseDelay,
		FailureRate:     cfg.Form.FailureRate,
		Mode:            cfg.Form.ValidationMode,
		Clock:           clock,
		Mailer:          mailer,
	}, logger)
	courseService := course.NewService(courseRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	courseHandler := course.NewHandler(courseService)
	webHandler := web.NewHandler(authService, courseService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, auth.RoutesConfig{
			SubmitRPS:   cfg.RateLimit.SubmitRPS,
			SubmitBurst: cfg.RateLimit.SubmitBurst,
		})
		course.RegisterRoutes(api, courseHandler)
	}

	web.RegisterRoutes(router, webHandler, middleware.RateLimitByIP(cfg.RateLimit.SubmitRPS, cfg.RateLimit.SubmitBurst))
}
