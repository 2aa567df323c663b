package app

import (
	"net/http"

	"go-course-portal/internal/config"
	"go-course-portal/internal/middleware"
	"go-course-portal/internal/session"
	"go-course-portal/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// App holds what main has to release on shutdown.
type App struct {
	Router   *gin.Engine
	sessions *session.Store
}

// BuildApp wires the router. clock may be nil for the real clock.
func BuildApp(cfg config.Config, logger *zap.Logger, clock clockwork.Clock) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := session.NewStore(cfg.Form.SessionTTL, logger)
	registerModules(router, cfg, logger, sessions, clock)

	return &App{Router: router, sessions: sessions}, nil
}

// Close tears down every mounted form and its timers.
func (a *App) Close() {
	a.sessions.Close()
}
