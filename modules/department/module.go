package department

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/department/controller"
	"enoki-admin/modules/department/repository"
	"enoki-admin/modules/department/router"
	"enoki-admin/modules/department/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the department module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.DepartmentService {
	repo := repository.NewDepartmentRepository(db)
	svc := service.NewDepartmentService(repo)
	ctrl := controller.NewDepartmentController(svc)

	router.NewDepartmentRouter(ctrl).Setup(e, mw)

	return svc
}
