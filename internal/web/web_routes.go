package web

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler, submitLimit gin.HandlerFunc) {
	r.GET("/", h.Index)

	login := r.Group("/login/:id")
	{
		login.GET("", h.ShowLogin)
		login.POST("", submitLimit, h.SubmitLogin)
		login.POST("/acknowledge", h.Acknowledge)
		login.POST("/reset/open", h.OpenReset)
		login.POST("/reset/close", h.CloseReset)
		login.POST("/reset/submit", submitLimit, h.SubmitReset)
	}

	r.GET("/register", h.StartRegistration)
	r.GET("/register/:id", h.ShowRegistration)
	r.POST("/register/:id", submitLimit, h.SubmitRegistration)

	r.GET("/course/:id", h.Course)

	r.NoRoute(h.NotFound)
}
