package course

import (
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/course/controller"
	"enoki-admin/modules/course/repository"
	"enoki-admin/modules/course/router"
	"enoki-admin/modules/course/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the course module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.CourseService {
	repo := repository.NewCourseRepository(db)
	svc := service.NewCourseService(repo)
	ctrl := controller.NewCourseController(svc)

	router.NewCourseRouter(ctrl).Setup(e, mw)

	return svc
}
