package controller

import (
	"strings"

	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/department/dto"
	"enoki-admin/modules/department/service"

	"github.com/labstack/echo/v4"
)

type DepartmentController struct {
	controller.BaseController
	DepartmentService service.DepartmentServiceInterface
}

func NewDepartmentController(svc service.DepartmentServiceInterface) *DepartmentController {
	return &DepartmentController{
		BaseController:    controller.NewBaseController(),
		DepartmentService: svc,
	}
}

func (ctrl *DepartmentController) PrivateCreateDepartment(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.DepartmentRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.Name) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "name is required", nil)
	}

	department, appErr := ctrl.DepartmentService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, department, "create department success")
}

func (ctrl *DepartmentController) PrivateGetDepartmentById(c echo.Context) error {
	ctx := c.Request().Context()

	departmentId := utils.ToUUID(c.Param("id"))

	department, appErr := ctrl.DepartmentService.GetById(ctx, departmentId)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, department, "get department success")
}

func (ctrl *DepartmentController) PrivateUpdateDepartment(c echo.Context) error {
	ctx := c.Request().Context()

	departmentId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.DepartmentRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.Name) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "name is required", nil)
	}

	if appErr := ctrl.DepartmentService.Update(ctx, requestData, departmentId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "update department success")
}

func (ctrl *DepartmentController) PrivateDeleteDepartment(c echo.Context) error {
	ctx := c.Request().Context()

	departmentId := utils.ToUUID(c.Param("id"))
	if appErr := ctrl.DepartmentService.Delete(ctx, departmentId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "delete department success")
}

func (ctrl *DepartmentController) PrivateGetDepartments(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	departments, appErr := ctrl.DepartmentService.List(ctx, *queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, departments, "get departments success")
}
