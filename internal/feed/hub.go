// Package feed streams newly created reports to connected websocket
// clients. Creation events travel through Redis Pub/Sub, so every backend
// instance fans out the same stream regardless of which one stored the
// report.
package feed

import (
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"wheely/backend/internal/models"
)

// Subscriber provides the Redis subscription the hub listens on.
type Subscriber interface {
	SubscribeReports() *redis.PubSub
}

// Hub tracks connected clients and fans report events out to them.
type Hub struct {
	clients map[*Client]bool

	RegisterCh   chan *Client
	UnregisterCh chan *Client
	BroadcastCh  chan models.Report

	storage Subscriber
}

// NewHub creates a hub over the given event subscription source.
func NewHub(s Subscriber) *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		RegisterCh:   make(chan *Client),
		UnregisterCh: make(chan *Client),
		BroadcastCh:  make(chan models.Report),
		storage:      s,
	}
}

// startPubSubListener forwards Redis report events into the broadcast channel.
func (h *Hub) startPubSubListener() {
	go func() {
		pubsub := h.storage.SubscribeReports()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var rep models.Report
			if err := json.Unmarshal([]byte(msg.Payload), &rep); err != nil {
				log.Printf("error unmarshalling report event: %v", err)
				continue
			}
			h.BroadcastCh <- rep
		}
	}()
}

// Run is the hub dispatcher. It owns the client set; all mutations go
// through the channels, so no locking is needed.
func (h *Hub) Run() {
	if h.storage != nil {
		h.startPubSubListener()
	}

	for {
		select {
		case client := <-h.RegisterCh:
			h.clients[client] = true

		case client := <-h.UnregisterCh:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case rep := <-h.BroadcastCh:
			for client := range h.clients {
				select {
				case client.Send <- rep:
				default:
					// Slow client, drop it rather than block the hub.
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}
