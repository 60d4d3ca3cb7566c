// Package ws bridges the notification broker to connected websocket clients.
// The hub subscribes to the Redis notification channels and fans each message
// out to registered clients; admin clients additionally receive the
// admin-scoped stream.
package ws

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/infrastructure/notify"
)

// Hub owns the set of connected clients. All membership changes go through
// the register/unregister channels so the Run loop is the only goroutine
// touching the client set.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	rdb        *redis.Client
	log        zerolog.Logger
}

func NewHub(rdb *redis.Client, log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		log:        log,
	}
}

// Run subscribes to both notification channels and pumps messages to clients
// until ctx is cancelled. Slow clients are skipped, not waited on. The done
// channel closes when Run returns so clients never block handing themselves
// to a hub that is gone.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	sub := h.rdb.Subscribe(ctx, notify.ChannelAll, notify.ChannelAdmin)
	defer sub.Close()
	messages := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.log.Debug().Bool("admin", client.admin).Msg("websocket client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				h.log.Debug().Bool("admin", client.admin).Msg("websocket client disconnected")
			}

		case msg, ok := <-messages:
			if !ok {
				return
			}
			adminOnly := msg.Channel == notify.ChannelAdmin
			for client := range h.clients {
				if adminOnly && !client.admin {
					continue
				}
				select {
				case client.send <- []byte(msg.Payload):
				default:
					// Client can't keep up; dropping beats blocking the hub.
				}
			}
		}
	}
}
