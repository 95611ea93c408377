package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/teacher/controller"

	"github.com/labstack/echo/v4"
)

// TeacherRouter handles teacher routes
type TeacherRouter struct {
	TeacherController *controller.TeacherController
}

func NewTeacherRouter(teacherController *controller.TeacherController) *TeacherRouter {
	return &TeacherRouter{
		TeacherController: teacherController,
	}
}

// Setup registers teacher routes
func (r *TeacherRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	teacherRoutes := privateRoutes.Group("/teachers", mw.AuthMiddleware())
	teacherRoutes.POST("", r.TeacherController.PrivateCreateTeacher)
	teacherRoutes.GET("", r.TeacherController.PrivateGetTeachers)
	teacherRoutes.GET("/:id", r.TeacherController.PrivateGetTeacherById)
	teacherRoutes.PUT("/:id", r.TeacherController.PrivateUpdateTeacher)
	teacherRoutes.DELETE("/:id", r.TeacherController.PrivateDeleteTeacher)
	teacherRoutes.POST("/check-email", r.TeacherController.PrivateCheckEmail)
	teacherRoutes.POST("/check-rfid", r.TeacherController.PrivateCheckRFID)
}
