package notification

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/notification/controller"
	"enoki-admin/modules/notification/repository"
	"enoki-admin/modules/notification/router"
	"enoki-admin/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
