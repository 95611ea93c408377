package teacher

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	scheduleservice "enoki-admin/modules/schedule/service"
	"enoki-admin/modules/teacher/controller"
	"enoki-admin/modules/teacher/repository"
	"enoki-admin/modules/teacher/router"
	"enoki-admin/modules/teacher/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the teacher module and registers routes
func Init(e *echo.Echo, db database.IDatabase, engine *scheduleservice.Engine, mw *middleware.Middleware) *service.TeacherService {
	repo := repository.NewTeacherRepository(db)
	svc := service.NewTeacherService(repo, engine)
	ctrl := controller.NewTeacherController(svc)

	router.NewTeacherRouter(ctrl).Setup(e, mw)

	return svc
}
