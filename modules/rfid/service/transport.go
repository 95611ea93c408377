package service

import (
	"context"
	"time"

	"enoki-admin/core/logger"
	"enoki-admin/modules/rfid/entity"

	"github.com/gorilla/websocket"
)

// TransportEvents are the callbacks a transport drives. The client only
// reflects transport-reported state; reconnection policy lives down here.
type TransportEvents struct {
	OnConnect    func()
	OnDisconnect func()
	OnMessage    func(entity.BadgeEvent)
}

// Transport owns the wire to the bridge server. Run blocks until ctx is
// cancelled and must invoke the callbacks from a single goroutine.
type Transport interface {
	Run(ctx context.Context, address string, events TransportEvents)
}

// WebsocketTransport dials the bridge over a websocket and redials on loss.
type WebsocketTransport struct {
	RedialDelay time.Duration
}

func NewWebsocketTransport() *WebsocketTransport {
	return &WebsocketTransport{RedialDelay: 3 * time.Second}
}

func (t *WebsocketTransport) Run(ctx context.Context, address string, events TransportEvents) {
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, address, nil)
		if err != nil {
			logger.Debug("Bridge dial failed", "address", address, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(t.RedialDelay):
				continue
			}
		}

		if events.OnConnect != nil {
			events.OnConnect()
		}

		// Unblock ReadJSON when the context is cancelled
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = conn.Close()
			case <-done:
			}
		}()

		for {
			var evt entity.BadgeEvent
			if err := conn.ReadJSON(&evt); err != nil {
				break
			}
			if events.OnMessage != nil {
				events.OnMessage(evt)
			}
		}

		close(done)
		_ = conn.Close()
		if events.OnDisconnect != nil {
			events.OnDisconnect()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(t.RedialDelay):
		}
	}
}
