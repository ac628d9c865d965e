package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"geyserfanout/internal/dispatch"
	"geyserfanout/internal/events"
	pb "geyserfanout/internal/proto/pb"
	"geyserfanout/internal/subscribe"
)

// newBufconnPair wires a dispatch loop, a subscribe.Handler, and a
// grpcserver.geyserService together over an in-memory listener, mirroring
// how cmd/geyser-fanout assembles the real process.
func newBufconnPair(t *testing.T) (pb.GeyserClient, chan events.Event, func()) {
	t.Helper()

	eventsCh := make(chan events.Event)
	controlCh := make(chan any)
	shutdown := make(chan struct{})

	loop := dispatch.New(eventsCh, controlCh)
	ctx, cancelLoop := context.WithCancel(context.Background())
	go loop.Run(ctx)

	handler := subscribe.New(controlCh, shutdown, subscribe.WithChannelCapacity(16))

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterGeyserServer(grpcServer, &geyserService{handler: handler})
	go grpcServer.Serve(lis)

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	cleanup := func() {
		close(shutdown)
		cancelLoop()
		conn.Close()
		grpcServer.Stop()
	}
	return pb.NewGeyserClient(conn), eventsCh, cleanup
}

func TestSubscribeBasicDeliveryOverGRPC(t *testing.T) {
	client, eventsCh, cleanup := newBufconnPair(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	var owner [32]byte
	owner[0] = 0x42
	req := &pb.SubscribeRequest{
		Accounts: map[string]*pb.SubscribeRequestFilterAccounts{
			"a": {Owner: [][]byte{owner[:]}},
		},
	}
	if err := stream.Send(req); err != nil {
		t.Fatalf("Send request: %v", err)
	}

	// Give the request reader time to apply the filter before injecting
	// the event; a slower subscriber would simply see the event dropped
	// under the prior empty filter instead, so poll with a ping gap.
	time.Sleep(100 * time.Millisecond)

	eventsCh <- events.Event{
		Kind:    events.KindAccount,
		Slot:    7,
		Account: events.AccountInfo{Owner: owner},
	}

	for {
		upd, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if upd.GetPing() != nil {
			continue
		}
		if len(upd.Filters) != 1 || upd.Filters[0] != "a" {
			t.Fatalf("expected filters [a], got %v", upd.Filters)
		}
		if upd.GetAccount() == nil || upd.GetAccount().Slot != 7 {
			t.Fatalf("expected account update at slot 7, got %+v", upd)
		}
		return
	}
}
