package controller

import (
	"strings"

	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/account/dto"
	"enoki-admin/modules/account/service"

	"github.com/labstack/echo/v4"
)

type AccountController struct {
	controller.BaseController
	AccountService service.AccountServiceInterface
}

func NewAccountController(svc service.AccountServiceInterface) *AccountController {
	return &AccountController{
		BaseController: controller.NewBaseController(),
		AccountService: svc,
	}
}

// PublicLogin handles POST /login
// @Summary Log in to the dashboard
// @Description Verifies credentials and issues a JWT
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /public/login [post]
func (ctrl *AccountController) PublicLogin(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := ctrl.AccountService.Login(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, result, "login success")
}

func (ctrl *AccountController) PrivateCreateAccount(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateAccountRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.Username) == "" || requestData.Password == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "username and password are required", nil)
	}

	account, appErr := ctrl.AccountService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, account, "create account success")
}

// PrivateChangeAccount handles PUT /accounts/:id (the change-acct operation)
func (ctrl *AccountController) PrivateChangeAccount(c echo.Context) error {
	ctx := c.Request().Context()

	accountId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.ChangeAccountRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if appErr := ctrl.AccountService.Change(ctx, requestData, accountId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "change account success")
}

func (ctrl *AccountController) PrivateDeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()

	accountId := utils.ToUUID(c.Param("id"))
	if appErr := ctrl.AccountService.Delete(ctx, accountId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "delete account success")
}

func (ctrl *AccountController) PrivateGetAccounts(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	accounts, appErr := ctrl.AccountService.List(ctx, *queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, accounts, "get accounts success")
}
