package course

import (
	"net/http"

	"go-course-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /courses
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GET /courses/:id
func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}
