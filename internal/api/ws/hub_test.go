package ws

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestHub_ShutdownUnblocksUnregister(t *testing.T) {
	// Unreachable address: the subscription never delivers, so the hub idles
	// until the context is cancelled.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	h := NewHub(rdb, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	cancel()

	select {
	case <-h.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("hub did not close its done channel after shutdown")
	}

	// A client disconnecting after the hub stopped must not hang.
	client := &Client{hub: h, send: make(chan []byte, 1)}
	finished := make(chan struct{})
	go func() {
		select {
		case h.unregister <- client:
		case <-h.done:
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("unregister blocked after the hub stopped")
	}
}
