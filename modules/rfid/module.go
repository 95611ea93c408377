package rfid

import (
	"context"
	"time"

	"enoki-admin/core/config"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/rfid/controller"
	"enoki-admin/modules/rfid/entity"
	"enoki-admin/modules/rfid/router"
	"enoki-admin/modules/rfid/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init wires the bridge client to the live-feed hub and presence cache and
// registers routes. The returned client must be closed on shutdown.
func Init(e *echo.Echo, cfg config.Config, rdb *redis.Client, mw *middleware.Middleware) *service.BridgeClient {
	hub := service.NewHub()
	presence := service.NewPresenceService(rdb)

	client := service.NewBridgeClient(service.Options{
		ServerAddress: cfg.Bridge.ServerAddress,
		Enabled:       cfg.Bridge.Enabled,
		PlaySound:     cfg.Bridge.PlaySound,
		SoundResource: cfg.Bridge.SoundResource,
		PulseDuration: time.Duration(cfg.Bridge.PulseDurationMs) * time.Millisecond,
		OnEvent: func(evt entity.BadgeEvent) {
			hub.Broadcast(evt)
			if evt.Type == entity.EventTypeBadgeRead {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				presence.MarkSeen(ctx, evt.Data)
			}
		},
	})

	ctrl := controller.NewRFIDController(client, hub, presence, cfg.Bridge.ServerAddress)
	rtr := router.NewRFIDRouter(ctrl)

	rtr.Setup(e, mw)
	return client
}
