package service

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"geyserfanout/internal/config"
	"geyserfanout/internal/events"
	pb "geyserfanout/internal/proto/pb"
)

func TestServiceBasicDeliveryEndToEnd(t *testing.T) {
	cfg := &config.Config{
		Addr:             "127.0.0.1:0",
		ChannelCapacity:  16,
		FilterMaxLabels:  config.DefaultFilterMaxLabels,
		FilterMaxPubkeys: config.DefaultFilterMaxPubkeys,
		UpdateRateWindow: config.DefaultUpdateRateWindow,
		UpdateRateBurst:  config.DefaultUpdateRateBurst,
	}

	svc, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	go svc.Serve()
	defer svc.Shutdown(context.Background())

	conn, err := grpc.NewClient(svc.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	client := pb.NewGeyserClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if err := stream.Send(&pb.SubscribeRequest{
		Slots: map[string]*pb.SubscribeRequestFilterSlots{"s": {}},
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	svc.Events() <- events.Event{Kind: events.KindSlot, Slot: 42}

	for {
		upd, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if upd.GetPing() != nil {
			continue
		}
		if upd.GetSlot() == nil || upd.GetSlot().Slot != 42 {
			t.Fatalf("expected slot update at 42, got %+v", upd)
		}
		return
	}
}
