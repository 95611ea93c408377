package kiosk

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/core/worker"
	"enoki-admin/modules/kiosk/controller"
	"enoki-admin/modules/kiosk/repository"
	"enoki-admin/modules/kiosk/router"
	"enoki-admin/modules/kiosk/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init wires the paging queue: postgres rows, the redis live queue, and the
// asynq dispatch/expire handlers.
func Init(e *echo.Echo, db database.IDatabase, rdb *redis.Client, w *worker.Worker, notifier service.Notifier, mw *middleware.Middleware) *service.KioskService {
	repo := repository.NewPageRepository(db)
	queue := service.NewLiveQueue(rdb)
	svc := service.NewKioskService(repo, queue, w.Client())
	ctrl := controller.NewKioskController(svc)

	handlers := service.NewTaskHandlers(repo, queue, notifier)
	w.HandleFunc(worker.TypePageDispatch, handlers.HandlePageDispatch)
	w.HandleFunc(worker.TypePageExpire, handlers.HandlePageExpire)

	router.NewKioskRouter(ctrl).Setup(e, mw)

	return svc
}
