package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/student/controller"

	"github.com/labstack/echo/v4"
)

// StudentRouter handles student routes
type StudentRouter struct {
	StudentController *controller.StudentController
}

func NewStudentRouter(studentController *controller.StudentController) *StudentRouter {
	return &StudentRouter{
		StudentController: studentController,
	}
}

// Setup registers student routes
func (r *StudentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	studentRoutes := privateRoutes.Group("/students", mw.AuthMiddleware())
	studentRoutes.POST("", r.StudentController.PrivateCreateStudent)
	studentRoutes.GET("", r.StudentController.PrivateGetStudents)
	studentRoutes.GET("/:id", r.StudentController.PrivateGetStudentById)
	studentRoutes.PUT("/:id", r.StudentController.PrivateUpdateStudent)
	studentRoutes.DELETE("/:id", r.StudentController.PrivateDeleteStudent)
	studentRoutes.POST("/check-studentId", r.StudentController.PrivateCheckStudentID)
	studentRoutes.POST("/check-rfid", r.StudentController.PrivateCheckRFID)
}
