package auth

import (
	"net/http"

	autherrors "go-course-portal/internal/auth/errors"
	"go-course-portal/internal/pkg/apperror"
	"go-course-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

// POST /forms/registration
func (h *Handler) StartRegistration(c *gin.Context) {
	view, err := h.service.StartRegistration(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

// POST /forms/login
func (h *Handler) StartLogin(c *gin.Context) {
	view, err := h.service.StartLogin(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

// GET /forms/:id
func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// PATCH /forms/:id/fields
func (h *Handler) SetFields(c *gin.Context) {
	var req SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	view, err := h.service.SetFields(c.Request.Context(), c.Param("id"), req.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// POST /forms/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	res, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	h.submitted(c, res, err, false)
}

// POST /forms/:id/acknowledge
func (h *Handler) Acknowledge(c *gin.Context) {
	view, err := h.service.Acknowledge(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// POST /forms/:id/reset/open
func (h *Handler) OpenReset(c *gin.Context) {
	view, err := h.service.OpenReset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// DELETE /forms/:id/reset
func (h *Handler) CloseReset(c *gin.Context) {
	view, err := h.service.CloseReset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// PATCH /forms/:id/reset/fields
func (h *Handler) SetResetFields(c *gin.Context) {
	var req SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	view, err := h.service.SetResetFields(c.Request.Context(), c.Param("id"), req.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// POST /forms/:id/reset/submit
func (h *Handler) SubmitReset(c *gin.Context) {
	res, err := h.service.SubmitReset(c.Request.Context(), c.Param("id"))
	h.submitted(c, res, err, true)
}

// DELETE /forms/:id
func (h *Handler) End(c *gin.Context) {
	if err := h.service.End(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) submitted(c *gin.Context, res SubmitResult, err error, reset bool) {
	if err != nil {
		h.fail(c, err)
		return
	}
	if !res.Accepted {
		errs := res.View.Errors
		if reset && res.View.Reset != nil {
			errs = res.View.Reset.Errors
		}
		httpErr := apperror.ToHTTP(autherrors.ErrValidationFailed)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, errs)
		return
	}
	response.Success(c, http.StatusAccepted, res.View)
}

func (h *Handler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("form request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("X-Request-ID")),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
