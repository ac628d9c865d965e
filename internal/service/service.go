// Package service assembles the dispatch loop, the subscription handler,
// the gRPC front-end, and the optional admin feed into the single
// long-lived object a host embeds: create_service() in spec terms. The
// host owns the producer side of the returned event channel and the
// shutdown handle; everything downstream of that channel is this
// package's responsibility.
package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"geyserfanout/internal/admin"
	"geyserfanout/internal/config"
	"geyserfanout/internal/dispatch"
	"geyserfanout/internal/events"
	"geyserfanout/internal/filter"
	"geyserfanout/internal/grpcserver"
	"geyserfanout/internal/logging"
	"geyserfanout/internal/metrics"
	"geyserfanout/internal/subscribe"
)

// Service owns the dispatch loop, the gRPC front-end, and (optionally) the
// admin websocket feed for one running fan-out process.
type Service struct {
	cfg    *config.Config
	logger *logging.Logger

	eventsCh  chan events.Event
	controlCh chan any
	shutdown  chan struct{}

	grpcServer *grpcserver.Server

	adminFeed   *admin.Feed
	adminServer *http.Server
}

// New wires a Service from cfg. The dispatch loop is started immediately;
// Serve blocks accepting gRPC streams until Shutdown is called.
func New(cfg *config.Config, logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.NewTestLogger()
	}

	eventsCh := make(chan events.Event)
	controlCh := make(chan any)
	shutdown := make(chan struct{})

	var reporter dispatch.Reporter
	var adminFeed *admin.Feed
	var adminServer *http.Server
	if cfg.AdminAddr != "" {
		adminFeed = admin.NewFeed(logger.With(logging.String("component", "admin")))
		if cfg.AdminAuthSecret != "" {
			authenticator, err := admin.NewHMACAuthenticator(cfg.AdminAuthSecret)
			if err != nil {
				return nil, err
			}
			adminFeed = adminFeed.WithAuth(authenticator)
		}
		reporter = adminFeed
		mux := http.NewServeMux()
		mux.Handle("/", adminFeed)
		adminServer = &http.Server{
			Addr:    cfg.AdminAddr,
			Handler: logging.HTTPTraceMiddleware(logger)(mux),
		}
	}

	var loopOpts []dispatch.Option
	loopOpts = append(loopOpts, dispatch.WithGauge(metrics.ConnectionsTotal))
	if reporter != nil {
		loopOpts = append(loopOpts, dispatch.WithReporter(reporter))
	}
	loop := dispatch.New(eventsCh, controlCh, loopOpts...)

	// Run drains until both eventsCh and controlCh are closed (Shutdown);
	// it is never cancelled out from under a send in flight.
	go loop.Run(context.Background())

	handler := subscribe.New(controlCh, shutdown,
		subscribe.WithChannelCapacity(cfg.ChannelCapacity),
		subscribe.WithLimits(limitsFromConfig(cfg)),
		subscribe.WithUpdateRateLimit(cfg.UpdateRateWindow, cfg.UpdateRateBurst),
		subscribe.WithLogger(logger.With(logging.String("component", "subscribe"))),
	)

	grpcSrv, err := grpcserver.New(cfg.Addr, handler, logger.With(logging.String("component", "grpcserver")))
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:         cfg,
		logger:      logger,
		eventsCh:    eventsCh,
		controlCh:   controlCh,
		shutdown:    shutdown,
		grpcServer:  grpcSrv,
		adminFeed:   adminFeed,
		adminServer: adminServer,
	}, nil
}

// Events returns the producer side of the ingress event channel. The host
// sends Event values here. The host must stop sending before or during the
// call to Shutdown, which takes over ownership of the channel and closes
// it; a send racing a close panics, per ordinary Go channel semantics.
func (s *Service) Events() chan<- events.Event {
	return s.eventsCh
}

// Addr reports the gRPC front-end's bound listen address.
func (s *Service) Addr() net.Addr {
	return s.grpcServer.Addr()
}

// Serve blocks accepting gRPC streams and, if an admin address is
// configured, serving the admin feed, until Shutdown is called or either
// listener fails.
func (s *Service) Serve() error {
	errCh := make(chan error, 2)
	if s.adminServer != nil {
		go func() {
			if err := s.adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
	}
	go func() {
		errCh <- s.grpcServer.Serve()
	}()
	return <-errCh
}

// Shutdown is the one-shot signal: stop accepting new streams and let
// existing ones drain, then close the dispatch loop's inputs so it exits
// by draining to completion rather than being cancelled out from under a
// send. grpcServer.Shutdown blocks until every Subscribe handler goroutine
// has returned, which is what makes closing controlCh safe here: those
// handler goroutines are controlCh's only writers besides this method.
func (s *Service) Shutdown(ctx context.Context) {
	close(s.shutdown)
	s.grpcServer.Shutdown()
	if s.adminServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = s.adminServer.Shutdown(shutdownCtx)
	}
	close(s.controlCh)
	close(s.eventsCh)
}

func limitsFromConfig(cfg *config.Config) filter.Limits {
	return filter.Limits{
		MaxLabelsPerKind:   cfg.FilterMaxLabels,
		MaxPubkeysPerEntry: cfg.FilterMaxPubkeys,
		MaxTotalLabels:     cfg.FilterMaxLabels * 5,
	}
}
