package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/kiosk/controller"

	"github.com/labstack/echo/v4"
)

// KioskRouter handles kiosk routes
type KioskRouter struct {
	KioskController *controller.KioskController
}

func NewKioskRouter(kioskController *controller.KioskController) *KioskRouter {
	return &KioskRouter{
		KioskController: kioskController,
	}
}

// Setup registers kiosk routes
func (r *KioskRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	kioskRoutes := privateRoutes.Group("/kiosk", mw.AuthMiddleware())
	kioskRoutes.POST("/page", r.KioskController.PrivatePageTeacher)
	kioskRoutes.POST("/complete", r.KioskController.PrivateCompletePage)
	kioskRoutes.GET("/queue", r.KioskController.PrivateGetQueue)
	kioskRoutes.GET("/recent-activity", r.KioskController.PrivateGetRecentActivity)
	kioskRoutes.GET("/metrics", r.KioskController.PrivateGetMetrics)
}
