package account

import (
	"enoki-admin/core/config"
	"enoki-admin/core/database"
	"enoki-admin/core/middleware"
	"enoki-admin/modules/account/controller"
	"enoki-admin/modules/account/repository"
	"enoki-admin/modules/account/router"
	"enoki-admin/modules/account/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the account module and registers routes
func Init(e *echo.Echo, db database.IDatabase, cfg config.Config, mw *middleware.Middleware) *service.AccountService {
	repo := repository.NewAccountRepository(db)
	svc := service.NewAccountService(repo, cfg.Auth.JWTSecret, mw.AccessTokenTTL())
	ctrl := controller.NewAccountController(svc)

	router.NewAccountRouter(ctrl).Setup(e, mw)

	return svc
}
