// Package server wires the portfolio page, its JSON endpoints, the contact
// form and the admin pages into a gin engine.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aashiqfarid/portfolio/internal/config"
	"github.com/aashiqfarid/portfolio/internal/contact"
	"github.com/aashiqfarid/portfolio/internal/content"
	"github.com/aashiqfarid/portfolio/internal/logging"
	"github.com/aashiqfarid/portfolio/internal/metrics"
	"github.com/aashiqfarid/portfolio/internal/page"
	"github.com/aashiqfarid/portfolio/internal/typewriter"
	"github.com/aashiqfarid/portfolio/internal/visitors"
)

const streamPath = "/api/typewriter/stream"

// Deps are the collaborators New needs. Store and Tracker are nil when
// visitor tracking is off; the admin pages are only mounted with a Store.
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Portfolio content.Portfolio
	Contact   *contact.Service
	Store     *visitors.Store
	Tracker   *visitors.Tracker

	// Typewriter options for the event stream.
	Typewriter []typewriter.Option
	// Streams ends open typewriter streams when done. Nil leaves them
	// running until the client disconnects.
	Streams context.Context
}

func New(d Deps) (*gin.Engine, error) {
	if d.Config == nil || d.Contact == nil {
		return nil, errors.New("server: config and contact service are required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	view, err := page.Build(d.Portfolio, page.Options{Stream: streamPath})
	if err != nil {
		return nil, err
	}
	tmpl, err := page.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	// recovery runs innermost so the access log and metrics see the 500
	r.Use(logging.Middleware(d.Logger), metrics.Middleware(), logging.Recovery(d.Logger))
	if d.Tracker != nil {
		r.Use(d.Tracker.Middleware())
	}

	r.StaticFS("/static", http.FS(page.Static()))

	h := &handlers{
		logger:     d.Logger,
		portfolio:  d.Portfolio,
		view:       view,
		contact:    d.Contact,
		store:      d.Store,
		retention:  d.Config.TrackingRetention,
		typewriter: d.Typewriter,
		streams:    d.Streams,
	}
	r.GET("/", h.index)
	r.GET("/privacy", h.privacy)
	r.GET("/healthz", h.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/contact-form", h.contactForm)
	r.POST("/contact", h.submitContact)

	api := r.Group("/api")
	api.GET("/content", h.content)
	api.GET("/typewriter", h.typewriterConfig)
	api.GET("/typewriter/stream", h.typewriterStream)

	if d.Store != nil && d.Config.AdminEnabled() {
		a, err := newAdmin(d.Store, d.Logger, d.Config.AdminUsername, d.Config.AdminPassword, d.Config.TrackingRetention)
		if err != nil {
			return nil, err
		}
		a.register(r)
		d.Logger.Info("Admin access available at /admin/login")
	}

	return r, nil
}

// HTTPServer serves handler on addr. closeStreams, when set, runs as soon as
// Shutdown starts.
func HTTPServer(addr string, handler http.Handler, closeStreams context.CancelFunc) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if closeStreams != nil {
		srv.RegisterOnShutdown(closeStreams)
	}
	return srv
}
