// Package subscribe implements the per-connection subscription protocol:
// registering a new subscriber with the dispatch loop, ticking a keepalive,
// and forwarding inbound filter updates as dispatch control messages.
package subscribe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"geyserfanout/internal/dispatch"
	"geyserfanout/internal/events"
	"geyserfanout/internal/filter"
	"geyserfanout/internal/logging"
	pb "geyserfanout/internal/proto/pb"
)

const keepaliveInterval = 10 * time.Second

// Stream is the minimal bidirectional-stream surface the handler needs;
// *grpc's generated Geyser_SubscribeServer satisfies it.
type Stream interface {
	Send(*pb.SubscribeUpdate) error
	Recv() (*pb.SubscribeRequest, error)
	Context() context.Context
}

// Handler wires one accepted stream into the dispatch loop.
type Handler struct {
	control         chan<- any
	shutdown        <-chan struct{}
	limits          filter.Limits
	channelCapacity int
	updateWindow    time.Duration
	updateBurst     int
	logger          *logging.Logger
}

// Option configures a Handler at construction time.
type Option func(*Handler)

// WithLimits overrides the filter construction limits. Default is
// filter.DefaultLimits.
func WithLimits(l filter.Limits) Option {
	return func(h *Handler) { h.limits = l }
}

// WithChannelCapacity overrides the per-subscriber outbound queue depth.
func WithChannelCapacity(n int) Option {
	return func(h *Handler) { h.channelCapacity = n }
}

// WithUpdateRateLimit overrides the sliding window applied to inbound
// filter updates. A non-positive burst disables limiting.
func WithUpdateRateLimit(window time.Duration, burst int) Option {
	return func(h *Handler) { h.updateWindow, h.updateBurst = window, burst }
}

// WithLogger attaches a structured logger; defaults to the no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// New constructs a Handler submitting control messages onto control.
// shutdown is closed when the dispatch loop stops accepting registrations.
func New(control chan<- any, shutdown <-chan struct{}, opts ...Option) *Handler {
	h := &Handler{
		control:         control,
		shutdown:        shutdown,
		limits:          filter.DefaultLimits,
		channelCapacity: 100000,
		updateWindow:    time.Second,
		updateBurst:     20,
		logger:          logging.NewTestLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve runs the full per-subscription protocol against one accepted
// stream: registration, keepalive ticking, and inbound filter-update
// forwarding, until the stream ends or the subscriber is evicted.
func (h *Handler) Serve(stream Stream) error {
	id := dispatch.NextID()
	outbound := make(chan *dispatch.OutMsg, h.channelCapacity)
	done := make(chan struct{})
	defer close(done)

	select {
	case h.control <- dispatch.Register{ID: id, Filter: filter.Empty{}, Outbound: outbound, Done: done}:
	case <-h.shutdown:
		return status.Error(codes.Internal, "failed to add client")
	}
	h.logger.Info("subscriber registered", logging.Int64("id", int64(id)))

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	go h.runKeepalive(ctx, outbound)
	go h.runRequestReader(ctx, stream, id, outbound)

	return h.runWriter(ctx, stream, outbound)
}

// runWriter drains outbound and forwards each message to the client,
// stopping on a terminal OutMsg or stream error.
func (h *Handler) runWriter(ctx context.Context, stream Stream, outbound <-chan *dispatch.OutMsg) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-outbound:
			if !ok {
				return nil
			}
			if msg.Err != nil {
				if dispatch.ErrLagged(msg.Err) {
					h.logger.Error("subscriber evicted for lag", logging.Error(msg.Err))
					return status.Error(codes.Internal, "lagged")
				}
				var invalid *invalidFilterError
				if errors.As(msg.Err, &invalid) {
					return status.Error(codes.InvalidArgument, invalid.Error())
				}
				return status.Error(codes.Internal, msg.Err.Error())
			}
			upd := msg.Payload
			upd.Filters = msg.Labels
			if err := stream.Send(upd); err != nil {
				return err
			}
		}
	}
}

// runKeepalive attempts a non-blocking ping enqueue every 10 seconds. A
// full queue silently drops the ping; pings must never cause eviction.
func (h *Handler) runKeepalive(ctx context.Context, outbound chan<- *dispatch.OutMsg) {
	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()
	ping := &dispatch.OutMsg{Labels: nil, Payload: events.ProjectPing()}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case outbound <- ping:
			default:
			}
		}
	}
}

// runRequestReader reads inbound SubscribeRequests, builds a filter under
// configured limits, and forwards it as an UpdateFilter control message.
// A construction error enqueues a terminal InvalidArgument and ends the
// stream; excess updates beyond the configured rate are dropped silently.
func (h *Handler) runRequestReader(ctx context.Context, stream Stream, id uint64, outbound chan<- *dispatch.OutMsg) {
	limiter := newFilterUpdateLimiter(h.updateWindow, h.updateBurst, nil)
	for {
		req, err := stream.Recv()
		if err != nil {
			return
		}
		if !limiter.allowUpdate() {
			continue
		}
		f, err := filter.New(req, h.limits)
		if err != nil {
			outbound <- &dispatch.OutMsg{Err: &invalidFilterError{msg: fmt.Sprintf("failed to create filter: %s", err)}}
			return
		}
		select {
		case h.control <- dispatch.UpdateFilter{ID: id, Filter: f}:
			h.logger.Info("filter updated", logging.Int64("id", int64(id)))
		case <-ctx.Done():
			return
		case <-h.shutdown:
			return
		}
	}
}

// invalidFilterError marks a terminal OutMsg as originating from filter
// construction rather than lag-eviction, so runWriter can surface the
// InvalidArgument status spec'd for that path instead of Internal.
type invalidFilterError struct{ msg string }

func (e *invalidFilterError) Error() string { return e.msg }
