package student

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/student/controller"
	"enoki-admin/modules/student/repository"
	"enoki-admin/modules/student/router"
	"enoki-admin/modules/student/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the student module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.StudentService {
	repo := repository.NewStudentRepository(db)
	svc := service.NewStudentService(repo)
	ctrl := controller.NewStudentController(svc)

	router.NewStudentRouter(ctrl).Setup(e, mw)

	return svc
}
