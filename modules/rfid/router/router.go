package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/rfid/controller"

	"github.com/labstack/echo/v4"
)

// RFIDRouter handles RFID bridge routes
type RFIDRouter struct {
	RFIDController *controller.RFIDController
}

func NewRFIDRouter(rfidController *controller.RFIDController) *RFIDRouter {
	return &RFIDRouter{
		RFIDController: rfidController,
	}
}

// Setup registers RFID routes. The live feed skips auth middleware because
// browsers cannot set headers on websocket upgrades; it is read-only.
func (r *RFIDRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	rfidRoutes := privateRoutes.Group("/rfid", mw.AuthMiddleware())
	rfidRoutes.GET("/status", r.RFIDController.GetStatus)
	rfidRoutes.GET("/recent-scans", r.RFIDController.GetRecentScans)

	v1.GET("/rfid/live", r.RFIDController.LiveFeed)
}
