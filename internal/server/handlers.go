package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aashiqfarid/portfolio/internal/contact"
	"github.com/aashiqfarid/portfolio/internal/content"
	"github.com/aashiqfarid/portfolio/internal/metrics"
	"github.com/aashiqfarid/portfolio/internal/page"
	"github.com/aashiqfarid/portfolio/internal/typewriter"
	"github.com/aashiqfarid/portfolio/internal/visitors"
)

const (
	msgSent        = "Thank you for your message! I'll get back to you soon."
	msgRateLimited = "You're sending messages too quickly. Please wait a minute and try again."
	msgSendFailed  = "Sorry, there was an error sending your message. Please try again later."
)

type handlers struct {
	logger     *zap.Logger
	portfolio  content.Portfolio
	view       page.View
	contact    *contact.Service
	store      *visitors.Store
	retention  time.Duration
	typewriter []typewriter.Option
	streams    context.Context
}

func (h *handlers) index(c *gin.Context) {
	metrics.PageRendersTotal.Inc()
	c.HTML(http.StatusOK, "index.html", h.view)
}

func (h *handlers) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":         "Privacy Policy",
		"retentionDays": int(h.retention.Hours() / 24),
	})
}

func (h *handlers) healthz(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) content(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolio)
}

type typewriterResponse struct {
	Roles  []string `json:"roles"`
	TypeMs int64    `json:"type_ms"`
	HoldMs int64    `json:"hold_ms"`
}

func (h *handlers) newTypewriter(c *gin.Context) (*typewriter.Typewriter, bool) {
	tw, err := typewriter.New(h.portfolio.Roles, h.typewriter...)
	if err != nil {
		h.logger.Error("Error creating typewriter", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "typewriter unavailable"})
		return nil, false
	}
	return tw, true
}

func (h *handlers) typewriterConfig(c *gin.Context) {
	tw, ok := h.newTypewriter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, typewriterResponse{
		Roles:  h.portfolio.Roles,
		TypeMs: tw.TypeDelay().Milliseconds(),
		HoldMs: tw.HoldDelay().Milliseconds(),
	})
}

type frameEvent struct {
	Text    string `json:"text"`
	Index   int    `json:"index"`
	DelayMs int64  `json:"delay_ms"`
}

// typewriterStream sends one "frame" event per typewriter step until the
// client goes away or the server starts shutting down.
func (h *handlers) typewriterStream(c *gin.Context) {
	tw, ok := h.newTypewriter(c)
	if !ok {
		return
	}

	metrics.TypewriterStreams.Inc()
	defer metrics.TypewriterStreams.Dec()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	if h.streams != nil {
		stop := context.AfterFunc(h.streams, cancel)
		defer stop()
	}

	err := tw.Run(ctx, func(f typewriter.Frame) error {
		c.SSEvent("frame", frameEvent{Text: f.Text, Index: f.Index, DelayMs: f.Delay.Milliseconds()})
		c.Writer.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn("Typewriter stream ended", zap.Error(err))
	}
}

// contactForm returns the bare form for HTMX swaps.
func (h *handlers) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", nil)
}

func (h *handlers) submitContact(c *gin.Context) {
	var m contact.Message
	if err := c.ShouldBind(&m); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": "Please fill in every field."})
		return
	}

	err := h.contact.Submit(c.Request.Context(), c.ClientIP(), m)

	var inputErr *contact.InputError
	switch {
	case err == nil:
		metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
		h.logger.Info("Contact message sent", zap.String("request_id", c.GetString("request_id")))
		c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": msgSent})
	case errors.As(err, &inputErr):
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": inputErr.Message})
	case errors.Is(err, contact.ErrRateLimited):
		metrics.ContactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": msgRateLimited})
	default:
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		h.logger.Error("Error sending contact email", zap.Error(err),
			zap.String("request_id", c.GetString("request_id")))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": msgSendFailed})
	}
}
