// Package web serves the server-rendered pages: the welcome page with the
// login form, the registration page and the course details page.
package web

import (
	"errors"
	"net/http"
	"net/url"

	"go-course-portal/internal/auth"
	autherrors "go-course-portal/internal/auth/errors"
	"go-course-portal/internal/course"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type page struct {
	Title   string
	Refresh string
	Form    auth.FormView
	Course  course.CourseResponse
	Back    string
}

type Handler struct {
	auth    auth.Service
	courses course.Service
	logger  *zap.Logger
}

func NewHandler(authSvc auth.Service, courseSvc course.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("web.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("web.handler")
	}
	return &Handler{auth: authSvc, courses: courseSvc, logger: l}
}

// ==================== LOGIN ====================

// GET /
func (h *Handler) Index(c *gin.Context) {
	view, err := h.auth.StartLogin(c.Request.Context())
	if err != nil {
		h.internal(c, err)
		return
	}
	h.renderLogin(c, http.StatusOK, view)
}

// GET /login/:id
func (h *Handler) ShowLogin(c *gin.Context) {
	view, err := h.auth.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.restart(c, err, "/")
		return
	}
	if view.Kind != auth.KindLogin {
		h.NotFound(c)
		return
	}
	h.renderLogin(c, http.StatusOK, view)
}

// POST /login/:id
func (h *Handler) SubmitLogin(c *gin.Context) {
	id := c.Param("id")
	res, err := h.applyAndSubmit(c, id, auth.LoginFields)
	if err != nil {
		h.loginError(c, id, err)
		return
	}
	if !res.Accepted {
		h.renderLogin(c, http.StatusUnprocessableEntity, res.View)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/"+id)
}

// POST /login/:id/acknowledge
func (h *Handler) Acknowledge(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.auth.Acknowledge(c.Request.Context(), id); err != nil && !errors.Is(err, autherrors.ErrNothingToAcknowledge) {
		h.loginError(c, id, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/"+id)
}

// POST /login/:id/reset/open
func (h *Handler) OpenReset(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.auth.OpenReset(c.Request.Context(), id); err != nil {
		h.loginError(c, id, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/"+id)
}

// POST /login/:id/reset/close
func (h *Handler) CloseReset(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.auth.CloseReset(c.Request.Context(), id); err != nil {
		h.loginError(c, id, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/"+id)
}

// POST /login/:id/reset/submit
func (h *Handler) SubmitReset(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := h.auth.SetResetFields(ctx, id, formValues(c, auth.PasswordResetFields)); err != nil {
		h.loginError(c, id, err)
		return
	}
	res, err := h.auth.SubmitReset(ctx, id)
	if err != nil {
		h.loginError(c, id, err)
		return
	}
	if !res.Accepted {
		h.renderLogin(c, http.StatusUnprocessableEntity, res.View)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/"+id)
}

func (h *Handler) renderLogin(c *gin.Context, status int, view auth.FormView) {
	p := page{Title: "Вход", Form: view}
	if view.IsSubmitting || (view.Reset != nil && (view.Reset.IsSubmitting || view.Reset.IsSuccess)) {
		p.Refresh = "/login/" + view.ID
	}
	c.HTML(status, "index.html", p)
}

// loginError sends state conflicts back to the page, which shows the
// current state anyway.
func (h *Handler) loginError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, autherrors.ErrSessionNotFound), errors.Is(err, autherrors.ErrSessionClosed):
		c.Redirect(http.StatusSeeOther, "/")
	case isConflict(err):
		c.Redirect(http.StatusSeeOther, "/login/"+id)
	case errors.Is(err, autherrors.ErrWrongSessionKind), errors.Is(err, autherrors.ErrUnknownField):
		h.NotFound(c)
	default:
		h.internal(c, err)
	}
}

// ==================== REGISTRATION ====================

// GET /register
func (h *Handler) StartRegistration(c *gin.Context) {
	view, err := h.auth.StartRegistration(c.Request.Context())
	if err != nil {
		h.internal(c, err)
		return
	}
	h.renderRegistration(c, http.StatusOK, view)
}

// GET /register/:id
func (h *Handler) ShowRegistration(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	view, err := h.auth.Get(ctx, id)
	if err != nil {
		h.restart(c, err, "/register")
		return
	}
	if view.Kind != auth.KindRegistration {
		h.NotFound(c)
		return
	}

	if view.Redirect != "" {
		// The page is left behind, so is its session.
		if err := h.auth.End(ctx, id); err != nil && !errors.Is(err, autherrors.ErrSessionNotFound) {
			h.logger.Warn("end registration session", zap.String("session_id", id), zap.Error(err))
		}
		c.Redirect(http.StatusSeeOther, view.Redirect)
		return
	}
	h.renderRegistration(c, http.StatusOK, view)
}

// POST /register/:id
func (h *Handler) SubmitRegistration(c *gin.Context) {
	id := c.Param("id")
	res, err := h.applyAndSubmit(c, id, auth.RegistrationFields)
	if err != nil {
		switch {
		case errors.Is(err, autherrors.ErrSessionNotFound), errors.Is(err, autherrors.ErrSessionClosed):
			c.Redirect(http.StatusSeeOther, "/register")
		case isConflict(err):
			c.Redirect(http.StatusSeeOther, "/register/"+id)
		case errors.Is(err, autherrors.ErrUnknownField):
			h.NotFound(c)
		default:
			h.internal(c, err)
		}
		return
	}
	if !res.Accepted {
		h.renderRegistration(c, http.StatusUnprocessableEntity, res.View)
		return
	}
	c.Redirect(http.StatusSeeOther, "/register/"+id)
}

func (h *Handler) renderRegistration(c *gin.Context, status int, view auth.FormView) {
	p := page{Title: "Регистрация", Form: view}
	if view.IsSubmitting || view.IsSuccess {
		p.Refresh = "/register/" + view.ID
	}
	c.HTML(status, "register.html", p)
}

// ==================== COURSE ====================

// GET /course/:id
func (h *Handler) Course(c *gin.Context) {
	res, err := h.courses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			h.NotFound(c)
			return
		}
		h.internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "course.html", page{
		Title:  res.Title,
		Course: res,
		Back:   backLink(c.Request),
	})
}

// backLink points to the previous page when it is on this site, so the
// link behaves like a history back without leaving the site.
func backLink(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host {
		return "/"
	}
	if u.Path == "" || u.Path == r.URL.Path {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// ==================== SHARED ====================

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", page{Title: "Страница не найдена"})
}

func (h *Handler) applyAndSubmit(c *gin.Context, id string, fields []string) (auth.SubmitResult, error) {
	ctx := c.Request.Context()
	if values := formValues(c, fields); len(values) > 0 {
		if _, err := h.auth.SetFields(ctx, id, values); err != nil {
			return auth.SubmitResult{}, err
		}
	}
	return h.auth.Submit(ctx, id)
}

// restart sends the browser to a fresh page when the session is gone.
func (h *Handler) restart(c *gin.Context, err error, to string) {
	if errors.Is(err, autherrors.ErrSessionNotFound) || errors.Is(err, autherrors.ErrSessionClosed) {
		c.Redirect(http.StatusSeeOther, to)
		return
	}
	h.internal(c, err)
}

func (h *Handler) internal(c *gin.Context, err error) {
	h.logger.Error("page request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("X-Request-ID")),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// formValues collects the posted fields the form knows about. Fields missing
// from the post are left as they are.
func formValues(c *gin.Context, fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, name := range fields {
		if v, ok := c.GetPostForm(name); ok {
			out[name] = v
		}
	}
	return out
}

func isConflict(err error) bool {
	return errors.Is(err, autherrors.ErrSubmissionInProgress) ||
		errors.Is(err, autherrors.ErrAlreadySubmitted) ||
		errors.Is(err, autherrors.ErrResetClosed)
}
