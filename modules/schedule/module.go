package schedule

import (
	"enoki-admin/core/config"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/schedule/controller"
	"enoki-admin/modules/schedule/router"
	"enoki-admin/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes
func Init(e *echo.Echo, cfg config.Config, mw *middleware.Middleware) *service.Engine {
	engine := service.NewEngine(cfg.Schedule.DisplayUTCOffset)
	ctrl := controller.NewScheduleController(engine)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
	return engine
}
