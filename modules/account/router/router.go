package router

import (
	"enoki-admin/core/constants"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/account/controller"

	"github.com/labstack/echo/v4"
)

// AccountRouter handles account routes
type AccountRouter struct {
	AccountController *controller.AccountController
}

func NewAccountRouter(accountController *controller.AccountController) *AccountRouter {
	return &AccountRouter{
		AccountController: accountController,
	}
}

// Setup registers account routes. Account management is admin-only.
func (r *AccountRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.POST("/login", r.AccountController.PublicLogin)

	privateRoutes := v1.Group("/private")
	accountRoutes := privateRoutes.Group("/accounts", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	accountRoutes.POST("", r.AccountController.PrivateCreateAccount)
	accountRoutes.GET("", r.AccountController.PrivateGetAccounts)
	accountRoutes.PUT("/:id", r.AccountController.PrivateChangeAccount)
	accountRoutes.DELETE("/:id", r.AccountController.PrivateDeleteAccount)
}
