package auth

import (
	"go-course-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RoutesConfig limits how fast one client may submit forms.
type RoutesConfig struct {
	SubmitRPS   float64
	SubmitBurst int
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, cfg RoutesConfig) {
	submitLimit := middleware.RateLimitByIP(cfg.SubmitRPS, cfg.SubmitBurst)

	forms := r.Group("/forms")
	{
		forms.POST("/registration", handler.StartRegistration)
		forms.POST("/login", handler.StartLogin)

		forms.GET("/:id", handler.Get)
		forms.DELETE("/:id", handler.End)
		forms.PATCH("/:id/fields", handler.SetFields)
		forms.POST("/:id/submit", submitLimit, handler.Submit)
		forms.POST("/:id/acknowledge", handler.Acknowledge)

		// Password reset dialog, login forms only.
		forms.POST("/:id/reset/open", handler.OpenReset)
		forms.DELETE("/:id/reset", handler.CloseReset)
		forms.PATCH("/:id/reset/fields", handler.SetResetFields)
		forms.POST("/:id/reset/submit", submitLimit, handler.SubmitReset)
	}
}
