package controller

import (
	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/teacher/dto"
	"enoki-admin/modules/teacher/service"
	"enoki-admin/modules/teacher/validator"

	"github.com/labstack/echo/v4"
)

type TeacherController struct {
	controller.BaseController
	TeacherService service.TeacherServiceInterface
}

func NewTeacherController(svc service.TeacherServiceInterface) *TeacherController {
	return &TeacherController{
		BaseController: controller.NewBaseController(),
		TeacherService: svc,
	}
}

// PrivateCreateTeacher handles POST /teachers
// @Summary Create a teacher
// @Description Creates a teacher with a weekly schedule; the schedule must pass validation
// @Tags Teachers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TeacherRequest true "Teacher payload"
// @Success 200 {object} dto.TeacherResponse
// @Router /private/teachers [post]
func (ctrl *TeacherController) PrivateCreateTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.TeacherRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTeacherRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	teacher, appErr := ctrl.TeacherService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, teacher, "create teacher success")
}

func (ctrl *TeacherController) PrivateGetTeacherById(c echo.Context) error {
	ctx := c.Request().Context()

	teacherId := utils.ToUUID(c.Param("id"))

	teacher, appErr := ctrl.TeacherService.GetById(ctx, teacherId)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, teacher, "get teacher success")
}

func (ctrl *TeacherController) PrivateUpdateTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	teacherId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.TeacherRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTeacherRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if appErr := ctrl.TeacherService.Update(ctx, requestData, teacherId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "update teacher success")
}

func (ctrl *TeacherController) PrivateDeleteTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	teacherId := utils.ToUUID(c.Param("id"))
	if appErr := ctrl.TeacherService.Delete(ctx, teacherId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "delete teacher success")
}

func (ctrl *TeacherController) PrivateGetTeachers(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	teachers, appErr := ctrl.TeacherService.List(ctx, *queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, teachers, "get teachers success")
}

// PrivateCheckEmail probes for a duplicate email while the form is open
func (ctrl *TeacherController) PrivateCheckEmail(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CheckEmailRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := ctrl.TeacherService.CheckEmail(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, result, "check email success")
}

func (ctrl *TeacherController) PrivateCheckRFID(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CheckRFIDRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := ctrl.TeacherService.CheckRFID(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, result, "check rfid success")
}
