package subscribe

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"geyserfanout/internal/filter"
	pb "geyserfanout/internal/proto/pb"
)

// fakeStream is a minimal in-process Stream: Recv drains reqs in order (or
// blocks until closed), Send appends to sent.
type fakeStream struct {
	ctx context.Context

	reqs   chan *pb.SubscribeRequest
	closed chan struct{}

	mu   sync.Mutex
	sent []*pb.SubscribeUpdate
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{ctx: ctx, reqs: make(chan *pb.SubscribeRequest, 16), closed: make(chan struct{})}
}

func (s *fakeStream) Send(u *pb.SubscribeUpdate) error {
	s.mu.Lock()
	s.sent = append(s.sent, u)
	s.mu.Unlock()
	return nil
}

func (s *fakeStream) Recv() (*pb.SubscribeRequest, error) {
	select {
	case req, ok := <-s.reqs:
		if !ok {
			return nil, io.EOF
		}
		return req, nil
	case <-s.closed:
		return nil, io.EOF
	case <-s.ctx.Done():
		return nil, io.EOF
	}
}

func (s *fakeStream) Context() context.Context { return s.ctx }

func (s *fakeStream) push(req *pb.SubscribeRequest) { s.reqs <- req }

func (s *fakeStream) close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}

// TestHandlerMalformedFilterEndsStreamInvalidArgument covers S4: a
// SubscribeRequest that violates the configured filter limits must end the
// stream with a terminal InvalidArgument status, not a generic error.
func TestHandlerMalformedFilterEndsStreamInvalidArgument(t *testing.T) {
	control := make(chan any, 8)
	shutdown := make(chan struct{})
	defer close(shutdown)

	h := New(control, shutdown,
		WithLimits(filter.Limits{MaxLabelsPerKind: 1, MaxPubkeysPerEntry: 8, MaxTotalLabels: 5}),
		WithChannelCapacity(8),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := newFakeStream(ctx)

	// Drain the Register control message so Serve doesn't block on it.
	go func() {
		for range control {
		}
	}()

	// Two slot labels exceed MaxLabelsPerKind (1): filter.New must reject it.
	stream.push(&pb.SubscribeRequest{
		Slots: map[string]*pb.SubscribeRequestFilterSlots{
			"a": {}, "b": {},
		},
	})

	err := h.Serve(stream)
	if err == nil {
		t.Fatal("expected a terminal error for a malformed filter")
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a gRPC status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}
}

// TestHandlerRateLimitedFilterUpdateDroppedSilently covers S7: filter
// updates beyond the configured rate are dropped without error, and the
// stream stays open serving the last accepted filter.
func TestHandlerRateLimitedFilterUpdateDroppedSilently(t *testing.T) {
	control := make(chan any, 8)
	shutdown := make(chan struct{})
	defer close(shutdown)

	h := New(control, shutdown,
		WithLimits(filter.DefaultLimits),
		WithChannelCapacity(8),
		WithUpdateRateLimit(time.Minute, 1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := newFakeStream(ctx)

	var mu sync.Mutex
	var received int
	controlDone := make(chan struct{})
	go func() {
		defer close(controlDone)
		for range control {
			mu.Lock()
			received++
			mu.Unlock()
		}
	}()

	serveErr := make(chan error, 1)
	go func() { serveErr <- h.Serve(stream) }()

	// The burst is 1: only the first of these three filter updates may reach
	// the dispatch loop as an UpdateFilter control message, the rest must be
	// dropped silently by the rate limiter, never surfaced as an error.
	stream.push(&pb.SubscribeRequest{Slots: map[string]*pb.SubscribeRequestFilterSlots{"a": {}}})
	stream.push(&pb.SubscribeRequest{Slots: map[string]*pb.SubscribeRequestFilterSlots{"b": {}}})
	stream.push(&pb.SubscribeRequest{Slots: map[string]*pb.SubscribeRequestFilterSlots{"c": {}}})

	// Give runRequestReader time to process all three before simulating the
	// client disconnecting, which is what ends runWriter below.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("expected the stream to end cleanly on disconnect, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after the client disconnected")
	}

	close(control)
	<-controlDone

	mu.Lock()
	defer mu.Unlock()
	// Register (1) plus at most one accepted UpdateFilter: the other two
	// filter updates must never have reached the control channel.
	if received > 2 {
		t.Fatalf("expected at most 2 control messages (register + one update), got %d", received)
	}
}
