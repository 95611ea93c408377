package controller

import (
	"strings"

	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/student/dto"
	"enoki-admin/modules/student/service"

	"github.com/labstack/echo/v4"
)

type StudentController struct {
	controller.BaseController
	StudentService service.StudentServiceInterface
}

func NewStudentController(svc service.StudentServiceInterface) *StudentController {
	return &StudentController{
		BaseController: controller.NewBaseController(),
		StudentService: svc,
	}
}

func (ctrl *StudentController) PrivateCreateStudent(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.StudentRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.StudentID) == "" || strings.TrimSpace(requestData.Name) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "studentId and name are required", nil)
	}

	student, appErr := ctrl.StudentService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, student, "create student success")
}

func (ctrl *StudentController) PrivateGetStudentById(c echo.Context) error {
	ctx := c.Request().Context()

	studentId := utils.ToUUID(c.Param("id"))

	student, appErr := ctrl.StudentService.GetById(ctx, studentId)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, student, "get student success")
}

func (ctrl *StudentController) PrivateUpdateStudent(c echo.Context) error {
	ctx := c.Request().Context()

	studentId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.StudentRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.StudentID) == "" || strings.TrimSpace(requestData.Name) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "studentId and name are required", nil)
	}

	if appErr := ctrl.StudentService.Update(ctx, requestData, studentId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "update student success")
}

func (ctrl *StudentController) PrivateDeleteStudent(c echo.Context) error {
	ctx := c.Request().Context()

	studentId := utils.ToUUID(c.Param("id"))
	if appErr := ctrl.StudentService.Delete(ctx, studentId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "delete student success")
}

func (ctrl *StudentController) PrivateGetStudents(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	students, appErr := ctrl.StudentService.List(ctx, *queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, students, "get students success")
}

func (ctrl *StudentController) PrivateCheckStudentID(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CheckStudentIDRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := ctrl.StudentService.CheckStudentID(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, result, "check student id success")
}

func (ctrl *StudentController) PrivateCheckRFID(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CheckRFIDRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := ctrl.StudentService.CheckRFID(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, result, "check rfid success")
}
