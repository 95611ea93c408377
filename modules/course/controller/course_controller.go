package controller

import (
	"strings"

	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/course/dto"
	"enoki-admin/modules/course/service"

	"github.com/labstack/echo/v4"
)

type CourseController struct {
	controller.BaseController
	CourseService service.CourseServiceInterface
}

func NewCourseController(svc service.CourseServiceInterface) *CourseController {
	return &CourseController{
		BaseController: controller.NewBaseController(),
		CourseService:  svc,
	}
}

func (ctrl *CourseController) PrivateCreateCourse(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CourseRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.Code) == "" || strings.TrimSpace(requestData.Title) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "code and title are required", nil)
	}

	course, appErr := ctrl.CourseService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, course, "create course success")
}

func (ctrl *CourseController) PrivateGetCourseById(c echo.Context) error {
	ctx := c.Request().Context()

	courseId := utils.ToUUID(c.Param("id"))

	course, appErr := ctrl.CourseService.GetById(ctx, courseId)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, course, "get course success")
}

func (ctrl *CourseController) PrivateUpdateCourse(c echo.Context) error {
	ctx := c.Request().Context()

	courseId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.CourseRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if strings.TrimSpace(requestData.Code) == "" || strings.TrimSpace(requestData.Title) == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "code and title are required", nil)
	}

	if appErr := ctrl.CourseService.Update(ctx, requestData, courseId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "update course success")
}

func (ctrl *CourseController) PrivateDeleteCourse(c echo.Context) error {
	ctx := c.Request().Context()

	courseId := utils.ToUUID(c.Param("id"))
	if appErr := ctrl.CourseService.Delete(ctx, courseId); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "delete course success")
}

func (ctrl *CourseController) PrivateGetCourses(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	courses, appErr := ctrl.CourseService.List(ctx, *queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, courses, "get courses success")
}
