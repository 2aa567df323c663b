package course

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	courses := r.Group("/courses")
	{
		courses.GET("", handler.List)
		courses.GET("/:id", handler.GetByID)
	}
}
