package router

import (
	"enoki-admin/core/middleware"
	"enoki-admin/modules/department/controller"

	"github.com/labstack/echo/v4"
)

// DepartmentRouter handles department routes
type DepartmentRouter struct {
	DepartmentController *controller.DepartmentController
}

func NewDepartmentRouter(departmentController *controller.DepartmentController) *DepartmentRouter {
	return &DepartmentRouter{
		DepartmentController: departmentController,
	}
}

// Setup registers department routes
func (r *DepartmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	departmentRoutes := privateRoutes.Group("/departments", mw.AuthMiddleware())
	departmentRoutes.POST("", r.DepartmentController.PrivateCreateDepartment)
	departmentRoutes.GET("", r.DepartmentController.PrivateGetDepartments)
	departmentRoutes.GET("/:id", r.DepartmentController.PrivateGetDepartmentById)
	departmentRoutes.PUT("/:id", r.DepartmentController.PrivateUpdateDepartment)
	departmentRoutes.DELETE("/:id", r.DepartmentController.PrivateDeleteDepartment)
}
