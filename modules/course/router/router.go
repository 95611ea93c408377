package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/course/controller"

	"github.com/labstack/echo/v4"
)

// CourseRouter handles course routes
type CourseRouter struct {
	CourseController *controller.CourseController
}

func NewCourseRouter(courseController *controller.CourseController) *CourseRouter {
	return &CourseRouter{
		CourseController: courseController,
	}
}

// Setup registers course routes
func (r *CourseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	courseRoutes := privateRoutes.Group("/courses", mw.AuthMiddleware())
	courseRoutes.POST("", r.CourseController.PrivateCreateCourse)
	courseRoutes.GET("", r.CourseController.PrivateGetCourses)
	courseRoutes.GET("/:id", r.CourseController.PrivateGetCourseById)
	courseRoutes.PUT("/:id", r.CourseController.PrivateUpdateCourse)
	courseRoutes.DELETE("/:id", r.CourseController.PrivateDeleteCourse)
}
