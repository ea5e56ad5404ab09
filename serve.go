package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aashiqfarid/portfolio/internal/config"
	"github.com/aashiqfarid/portfolio/internal/contact"
	"github.com/aashiqfarid/portfolio/internal/content"
	"github.com/aashiqfarid/portfolio/internal/logging"
	"github.com/aashiqfarid/portfolio/internal/server"
	"github.com/aashiqfarid/portfolio/internal/visitors"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 24 * time.Hour
	pruneInterval   = 10 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)

	if err := content.Validate(content.Default); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{
		Config:    cfg,
		Logger:    logger,
		Portfolio: content.Default,
	}

	if cfg.TrackingEnabled {
		store, err := visitors.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		deps.Store = store
		deps.Tracker = visitors.NewTracker(store, logger)
		logger.Info("Visitor tracking enabled with hashed IP addresses",
			zap.String("database", cfg.DatabasePath))
	}

	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP credentials not configured; contact form messages will not be delivered")
	}
	mailer := contact.NewSMTPMailer(contact.SMTPConfig{
		Addr:     cfg.SMTP.Addr(),
		Host:     cfg.SMTP.Host,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		To:       cfg.SMTP.To,
	})
	limiter := contact.NewLimiter(cfg.ContactRatePerMinute)
	deps.Contact = contact.NewService(mailer, limiter)

	streams, closeStreams := context.WithCancel(context.Background())
	defer closeStreams()
	deps.Streams = streams

	engine, err := server.New(deps)
	if err != nil {
		return err
	}
	srv := server.HTTPServer(":"+cfg.Port, engine, closeStreams)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if deps.Tracker != nil {
		g.Go(func() error {
			return deps.Tracker.Sweep(gctx, cfg.TrackingRetention, sweepInterval)
		})
	}
	g.Go(func() error {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := limiter.Prune(time.Hour); n > 0 {
					logger.Debug("Pruned idle contact limiters", zap.Int("count", n))
				}
			}
		}
	})

	err = g.Wait()
	if deps.Tracker != nil {
		deps.Tracker.Wait()
	}
	return err
}
