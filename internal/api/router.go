package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/khelan-mehta/cookie/internal/api/handlers/http/distress"
	"github.com/khelan-mehta/cookie/internal/api/handlers/http/responder"
	"github.com/khelan-mehta/cookie/internal/api/handlers/http/system"
	"github.com/khelan-mehta/cookie/internal/config"
	"github.com/khelan-mehta/cookie/internal/middleware"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	distressHandler *distress.Handler,
	responderHandler *responder.Handler,
	systemHandler *system.Handler,
) *Server {
	r := InitRouter(cfg, distressHandler, responderHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	distressHandler *distress.Handler,
	responderHandler *responder.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/distress", func(dr chi.Router) {
			dr.Use(middleware.Actor)
			dr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			dr.Post("/", distressHandler.DistressCreate)
			dr.Get("/nearby", distressHandler.DistressNearby)

			dr.Route("/{id}", func(cr chi.Router) {
				cr.Get("/", distressHandler.DistressGet)
				cr.Post("/offers", distressHandler.OfferSubmit)
				cr.Post("/select", distressHandler.ResponderSelect)
				cr.Post("/decline", distressHandler.OfferDecline)
				cr.Post("/location", distressHandler.LocationUpdate)
				cr.Post("/resolve", distressHandler.DistressResolve)
				cr.Post("/cancel", distressHandler.DistressCancel)
			})
		})

		api.Route("/responders", func(rr chi.Router) {
			rr.Use(middleware.Actor)
			rr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			rr.Post("/location", responderHandler.ResponderHeartbeat)
			rr.Post("/availability", responderHandler.ResponderAvailability)
		})

		// OPS
		api.Route("/ops", func(or chi.Router) {
			or.Use(middleware.APIKey(cfg.APIKey))
			or.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			or.Get("/stats", systemHandler.SystemStats)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
